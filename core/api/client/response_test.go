package client

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iehsan77/crmv2-admin-client-api-sub001/core/api/models"
)

func TestParseResponse(t *testing.T) {
	t.Run("Envelope chuẩn: status nghiệp vụ được ưu tiên", func(t *testing.T) {
		body := []byte(`{"status": 422, "data": null, "message": "Dữ liệu sai"}`)

		resp, err := ParseResponse(200, body)
		require.NoError(t, err)
		assert.Equal(t, 422, resp.Status)
		assert.Equal(t, "Dữ liệu sai", resp.Message)
		assert.False(t, resp.IsSuccess())
	})

	t.Run("Envelope kèm pagination", func(t *testing.T) {
		body := []byte(`{"status": 200, "data": [], "pagination": {"total_pages": 5, "total": 42, "page": 2, "limit": 10}}`)

		resp, err := ParseResponse(200, body)
		require.NoError(t, err)
		require.NotNil(t, resp.Pagination)
		assert.Equal(t, int64(5), resp.Pagination.TotalPages)
		assert.Equal(t, int64(42), resp.Pagination.Total)
		assert.Equal(t, int64(2), resp.Pagination.Page)
	})

	t.Run("Body mảng trần dùng HTTP status", func(t *testing.T) {
		body := []byte(`[{"id": 1}, {"id": 2}]`)

		resp, err := ParseResponse(200, body)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.Status)
		assert.True(t, resp.IsSuccess())
	})

	t.Run("Object trần không bị nhầm thành envelope", func(t *testing.T) {
		// Record có field "status" dạng string không phải envelope
		body := []byte(`{"id": 1, "status": "active"}`)

		resp, err := ParseResponse(200, body)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.Status)
		rec := resp.Record()
		require.NotNil(t, rec)
		assert.Equal(t, "1", rec.ID())
	})

	t.Run("Body rỗng hợp lệ", func(t *testing.T) {
		resp, err := ParseResponse(204, nil)
		require.NoError(t, err)
		assert.True(t, resp.IsSuccess())
		assert.Nil(t, resp.Data)
	})

	t.Run("JSON hỏng trả về lỗi decode", func(t *testing.T) {
		_, err := ParseResponse(200, []byte(`{không phải json`))
		assert.Error(t, err)
	})

	t.Run("Id dạng số giữ nguyên độ chính xác qua json.Number", func(t *testing.T) {
		body := []byte(`{"status": 200, "data": {"id": 9007199254740993}}`)

		resp, err := ParseResponse(200, body)
		require.NoError(t, err)
		assert.Equal(t, "9007199254740993", resp.Record().ID())
	})
}

func TestResponseRecords(t *testing.T) {
	decode := func(raw string) any {
		var v any
		decoder := json.NewDecoder(strings.NewReader(raw))
		decoder.UseNumber()
		require.NoError(t, decoder.Decode(&v))
		return v
	}

	t.Run("Mảng trần", func(t *testing.T) {
		resp := &Response{Status: 200, Data: decode(`[{"id": 1}, {"id": 2}]`)}
		records := resp.Records()
		require.Len(t, records, 2)
		assert.Equal(t, "1", records[0].ID())
	})

	t.Run("Bọc dưới key records", func(t *testing.T) {
		resp := &Response{Status: 200, Data: decode(`{"records": [{"id": 1}]}`)}
		require.Len(t, resp.Records(), 1)
	})

	t.Run("Bọc dưới key data", func(t *testing.T) {
		resp := &Response{Status: 200, Data: decode(`{"data": [{"id": 1}]}`)}
		require.Len(t, resp.Records(), 1)
	})

	t.Run("Dữ liệu không phải danh sách trả về nil", func(t *testing.T) {
		resp := &Response{Status: 200, Data: decode(`{"id": 1}`)}
		assert.Nil(t, resp.Records())
	})
}

func TestResponseBoard(t *testing.T) {
	t.Run("Dạng map cột được giữ nguyên", func(t *testing.T) {
		resp := &Response{Status: 200, Data: map[string]any{
			"1": []any{map[string]any{"id": 1}},
			"2": []any{},
		}}
		board := resp.Board()
		require.NotNil(t, board)
		assert.Equal(t, models.BoardShapeColumns, board.Shape)
	})

	t.Run("Dạng mảng group bọc trong envelope data", func(t *testing.T) {
		resp := &Response{Status: 200, Data: map[string]any{
			"data": []any{
				map[string]any{"id": 1, "title": "Mới", "records": []any{}},
			},
		}}
		board := resp.Board()
		require.NotNil(t, board)
		assert.Equal(t, models.BoardShapeGroups, board.Shape)
	})
}

func TestJoinPath(t *testing.T) {
	assert.Equal(t, "https://api.example.com/crm/leads/get", JoinPath("https://api.example.com/", "/crm/leads/get"))
	assert.Equal(t, "https://api.example.com/crm/leads/get", JoinPath("https://api.example.com", "crm/leads/get"))
	assert.Equal(t, "/crm/leads/get", JoinPath("", "/crm/leads/get"))
}

func TestEndpointSetMissing(t *testing.T) {
	set := EndpointSet{
		Get:  NewEndpoint("POST", "/x/get"),
		Save: NewEndpoint("POST", "/x/save"),
	}

	missing := set.Missing(false)
	assert.ElementsMatch(t, []string{"getDetails", "delete", "restore", "favorite"}, missing)

	missingKanban := set.Missing(true)
	assert.Contains(t, missingKanban, "getByStatus")
	assert.Contains(t, missingKanban, "updateStatus")
}
