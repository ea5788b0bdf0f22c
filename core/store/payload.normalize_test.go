package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iehsan77/crmv2-admin-client-api-sub001/core/api/models"
)

func TestNormalizePayload(t *testing.T) {
	t.Run("Option object được thay bằng giá trị value", func(t *testing.T) {
		in := map[string]any{
			"lead_source_id": map[string]any{"value": "5", "label": "Website"},
		}
		out := NormalizePayload(in)
		assert.Equal(t, "5", out["lead_source_id"])
	})

	t.Run("Mảng option object được chuẩn hóa từng phần tử", func(t *testing.T) {
		in := map[string]any{
			"owner_id": []any{
				map[string]any{"value": "1", "label": "An"},
				map[string]any{"value": "2", "label": "Bình"},
				"3",
			},
		}
		out := NormalizePayload(in)
		assert.Equal(t, []any{"1", "2", "3"}, out["owner_id"])
	})

	t.Run("FieldOption typed cũng được flatten", func(t *testing.T) {
		in := map[string]any{
			"rating": models.FieldOption{Value: "hot", Label: "Hot"},
			"stages": []models.FieldOption{{Value: "a"}, {Value: "b"}},
		}
		out := NormalizePayload(in)
		assert.Equal(t, "hot", out["rating"])
		assert.Equal(t, []any{"a", "b"}, out["stages"])
	})

	t.Run("Giá trị khác được giữ nguyên", func(t *testing.T) {
		in := map[string]any{
			"keyword": "máy xúc",
			"amount":  1500,
			"active":  true,
			"object":  map[string]any{"from": 1, "to": 2},
		}
		out := NormalizePayload(in)
		assert.Equal(t, "máy xúc", out["keyword"])
		assert.Equal(t, 1500, out["amount"])
		assert.Equal(t, true, out["active"])
		// Object không có key "value" giữ nguyên cấu trúc
		assert.Equal(t, map[string]any{"from": 1, "to": 2}, out["object"])
	})

	t.Run("Input không bị mutate", func(t *testing.T) {
		opt := map[string]any{"value": "5", "label": "Website"}
		in := map[string]any{"lead_source_id": opt}

		NormalizePayload(in)

		assert.Equal(t, map[string]any{"value": "5", "label": "Website"}, in["lead_source_id"])
	})

	t.Run("Nil input trả về map rỗng", func(t *testing.T) {
		out := NormalizePayload(nil)
		assert.NotNil(t, out)
		assert.Empty(t, out)
	})
}
