package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iehsan77/crmv2-admin-client-api-sub001/core/api/models"
)

func viewTabCatalog() []models.FieldOption {
	return []models.FieldOption{
		{Value: DefaultViewTab, Label: "Tất cả"},
		{Value: "my", Label: "Của tôi"},
	}
}

func TestViewTabStore(t *testing.T) {
	t.Run("Tab mặc định không thể remove", func(t *testing.T) {
		s := NewViewTabStore(viewTabCatalog(), 6, "")

		s.RemoveTab(DefaultViewTab)

		assert.Len(t, s.Tabs(), 2)
		assert.Equal(t, DefaultViewTab, s.ActiveTab())
	})

	t.Run("Remove tab đang active chuyển active về tab đầu", func(t *testing.T) {
		s := NewViewTabStore(viewTabCatalog(), 6, "")
		s.SetActiveTab("my")

		s.RemoveTab("my")

		assert.Len(t, s.Tabs(), 1)
		assert.Equal(t, DefaultViewTab, s.ActiveTab())
	})

	t.Run("AddTab activate tab mới", func(t *testing.T) {
		s := NewViewTabStore(viewTabCatalog(), 6, "")

		ok := s.AddTab(models.FieldOption{Value: "won", Label: "Thắng"})
		assert.True(t, ok)
		assert.Equal(t, "won", s.ActiveTab())
	})

	t.Run("AddTab trả về false khi đầy", func(t *testing.T) {
		s := NewViewTabStore(viewTabCatalog(), 2, "")

		ok := s.AddTab(models.FieldOption{Value: "extra"})
		assert.False(t, ok)
		assert.Len(t, s.Tabs(), 2)
	})

	t.Run("SetActiveTab bỏ qua tab không tồn tại", func(t *testing.T) {
		s := NewViewTabStore(viewTabCatalog(), 6, "")
		s.SetActiveTab("ghost")
		assert.Equal(t, DefaultViewTab, s.ActiveTab())
	})

	t.Run("Tab được bảo vệ do call site chỉ định", func(t *testing.T) {
		tabs := []models.FieldOption{
			{Value: "pinned", Label: "Đã ghim"},
			{Value: DefaultViewTab, Label: "Tất cả"},
		}
		s := NewViewTabStore(tabs, 6, "pinned")
		assert.Equal(t, "pinned", s.ProtectedTab())

		// Tab được bảo vệ không thể remove
		s.RemoveTab("pinned")
		assert.Len(t, s.Tabs(), 2)

		// "all" không còn được bảo vệ khi call site chọn tab khác
		s.RemoveTab(DefaultViewTab)
		assert.Len(t, s.Tabs(), 1)
	})
}
