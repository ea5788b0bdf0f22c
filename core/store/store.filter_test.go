package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iehsan77/crmv2-admin-client-api-sub001/core/api/models"
)

func filterCatalog(values ...string) []models.FieldOption {
	out := make([]models.FieldOption, len(values))
	for i, v := range values {
		out[i] = models.FieldOption{Value: v, Label: v}
	}
	return out
}

func TestFilterStore(t *testing.T) {
	t.Run("AddFilter trả về false khi đã đủ capacity", func(t *testing.T) {
		s := NewFilterStore(filterCatalog("a", "b", "c", "d", "e"), 5)

		ok := s.AddFilter(models.FieldOption{Value: "f"})
		assert.False(t, ok)
		assert.Len(t, s.Fields(), 5)
	})

	t.Run("AddFilter field đã có chỉ re-activate", func(t *testing.T) {
		s := NewFilterStore(filterCatalog("a", "b"), 5)

		ok := s.AddFilter(models.FieldOption{Value: "b"})
		assert.True(t, ok)
		assert.Len(t, s.Fields(), 2)
		assert.Equal(t, "b", s.ActiveFilter())
	})

	t.Run("RemoveFilter clear giá trị và chuyển active", func(t *testing.T) {
		s := NewFilterStore(filterCatalog("a", "b"), 5)
		s.UpdateValue("a", "xyz")
		s.SetActiveFilter("a")

		s.RemoveFilter("a")

		assert.Len(t, s.Fields(), 1)
		assert.Equal(t, "b", s.ActiveFilter())

		// Thêm lại field: giá trị cũ không được sống lại
		ok := s.AddFilter(models.FieldOption{Value: "a"})
		assert.True(t, ok)
		assert.Nil(t, s.Value("a"))
	})

	t.Run("RemoveFilter field không tồn tại là no-op", func(t *testing.T) {
		s := NewFilterStore(filterCatalog("a"), 5)
		s.RemoveFilter("zzz")
		assert.Len(t, s.Fields(), 1)
	})

	t.Run("UpdateValue bỏ qua field ngoài tập active", func(t *testing.T) {
		s := NewFilterStore(filterCatalog("a"), 5)
		s.UpdateValue("ghost", 1)
		assert.Empty(t, s.Payload())
	})

	t.Run("Payload bỏ các entry nil", func(t *testing.T) {
		s := NewFilterStore(filterCatalog("a", "b"), 5)
		s.UpdateValue("a", "1")

		payload := s.Payload()
		assert.Equal(t, map[string]any{"a": "1"}, payload)
	})

	t.Run("SetFilters cắt bỏ field vượt capacity", func(t *testing.T) {
		s := NewFilterStore(filterCatalog("a", "b", "c", "d", "e", "f", "g"), 0)
		assert.Equal(t, DefaultMaxFilters, s.MaxFilters())
		assert.Len(t, s.Fields(), DefaultMaxFilters)
	})
}
