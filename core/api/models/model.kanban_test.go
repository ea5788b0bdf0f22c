package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardRef(t *testing.T) {
	t.Run("Round trip qua dạng wire", func(t *testing.T) {
		ref := CardRef{Status: "2", ID: "15", Index: 3}
		parsed, ok := ParseCardRef(ref.String())
		require.True(t, ok)
		assert.Equal(t, ref, parsed)
	})

	t.Run("Record id chứa dấu gạch vẫn parse đúng", func(t *testing.T) {
		parsed, ok := ParseCardRef("2-abc-def-3")
		require.True(t, ok)
		assert.Equal(t, CardRef{Status: "2", ID: "abc-def", Index: 3}, parsed)
	})

	t.Run("Thiếu segment là không hợp lệ", func(t *testing.T) {
		_, ok := ParseCardRef("2-15")
		assert.False(t, ok)
	})

	t.Run("Index không phải số là không hợp lệ", func(t *testing.T) {
		_, ok := ParseCardRef("2-15-x")
		assert.False(t, ok)
	})
}

func TestNormalizeStatusID(t *testing.T) {
	assert.Equal(t, "2", NormalizeStatusID("2"))
	assert.Equal(t, "2", NormalizeStatusID("2-dropzone"))
	assert.Equal(t, "15", NormalizeStatusID("15-column-body"))
}

func TestParseBoardData(t *testing.T) {
	t.Run("Mảng group với key records", func(t *testing.T) {
		board := ParseBoardData([]any{
			map[string]any{"id": 1, "title": "Mới", "records": []any{
				map[string]any{"id": 7},
			}},
		})
		require.NotNil(t, board)
		assert.Equal(t, BoardShapeGroups, board.Shape)
		assert.Equal(t, []string{"1"}, board.Statuses())

		records, ok := board.ColumnRecords("1")
		require.True(t, ok)
		require.Len(t, records, 1)
	})

	t.Run("Mảng group với key data giữ nguyên key khi serialize", func(t *testing.T) {
		board := ParseBoardData([]any{
			map[string]any{"id": 1, "title": "Mới", "data": []any{
				map[string]any{"id": 7},
			}},
		})
		require.NotNil(t, board)

		out, err := json.Marshal(board)
		require.NoError(t, err)
		assert.Contains(t, string(out), `"data"`)
		assert.NotContains(t, string(out), `"records"`)
	})

	t.Run("Map cột", func(t *testing.T) {
		board := ParseBoardData(map[string]any{
			"1": []any{map[string]any{"id": 7}},
			"2": []any{},
		})
		require.NotNil(t, board)
		assert.Equal(t, BoardShapeColumns, board.Shape)
		assert.ElementsMatch(t, []string{"1", "2"}, board.Statuses())
	})

	t.Run("Dữ liệu không hỗ trợ trả về nil", func(t *testing.T) {
		assert.Nil(t, ParseBoardData("chuỗi"))
		assert.Nil(t, ParseBoardData(nil))
	})
}

func TestBoardDataClone(t *testing.T) {
	board := ParseBoardData(map[string]any{
		"1": []any{map[string]any{"id": 7, "name": "gốc"}},
	})
	clone := board.Clone()

	records, _ := clone.ColumnRecords("1")
	records[0]["name"] = "đã sửa"

	original, _ := board.ColumnRecords("1")
	assert.Equal(t, "gốc", original[0]["name"])
}

func TestBoardDataLocate(t *testing.T) {
	board := ParseBoardData(map[string]any{
		"1": []any{
			map[string]any{"id": 7},
			map[string]any{"id": 8},
		},
	})

	t.Run("Khớp đủ bộ ba", func(t *testing.T) {
		status, index, ok := board.Locate(CardRef{Status: "1", ID: "8", Index: 1})
		require.True(t, ok)
		assert.Equal(t, "1", status)
		assert.Equal(t, 1, index)
	})

	t.Run("Id không khớp index", func(t *testing.T) {
		_, _, ok := board.Locate(CardRef{Status: "1", ID: "8", Index: 0})
		assert.False(t, ok)
	})

	t.Run("Index ngoài biên", func(t *testing.T) {
		_, _, ok := board.Locate(CardRef{Status: "1", ID: "7", Index: 9})
		assert.False(t, ok)
	})

	t.Run("Cột không tồn tại", func(t *testing.T) {
		_, _, ok := board.Locate(CardRef{Status: "9", ID: "7", Index: 0})
		assert.False(t, ok)
	})
}

func TestRecordHelpers(t *testing.T) {
	t.Run("Id số và string về cùng một dạng chuẩn", func(t *testing.T) {
		assert.Equal(t, "7", Record{"id": 7}.ID())
		assert.Equal(t, "7", Record{"id": "7"}.ID())
		assert.Equal(t, "7", Record{"id": json.Number("7")}.ID())
		assert.Equal(t, "7", Record{"id": float64(7)}.ID())
	})

	t.Run("Merge shallow giữ field không có trong other", func(t *testing.T) {
		rec := Record{"id": 1, "name": "A", "note": "giữ"}
		rec.Merge(Record{"name": "B"})
		assert.Equal(t, "B", rec["name"])
		assert.Equal(t, "giữ", rec["note"])
	})

	t.Run("Clone độc lập với bản gốc", func(t *testing.T) {
		rec := Record{"nested": map[string]any{"x": 1}}
		clone := rec.Clone()
		clone["nested"].(map[string]any)["x"] = 2
		assert.Equal(t, 1, rec["nested"].(map[string]any)["x"])
	})
}
