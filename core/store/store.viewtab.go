package store

import (
	"sync"

	"github.com/iehsan77/crmv2-admin-client-api-sub001/core/api/models"
)

// DefaultMaxViewTabs là số view tab tối đa mặc định trên một module
const DefaultMaxViewTabs = 6

// DefaultViewTab là giá trị tab được bảo vệ khi call site không chỉ định
const DefaultViewTab = "all"

// ViewTabStore giữ tập view tab đang mở của một module (saved view:
// "Tất cả", "Của tôi", "Mới trong tuần", ...). Tab đang active quyết định
// tham số "view" trong payload fetch.
//
// Mỗi store có một tab được bảo vệ (do call site chỉ định) không thể remove.
type ViewTabStore struct {
	mu        sync.RWMutex
	tabs      []models.FieldOption
	active    string
	protected string
	maxTabs   int
}

// NewViewTabStore tạo ViewTabStore với tập tab ban đầu.
// maxTabs <= 0 sẽ dùng DefaultMaxViewTabs; protected rỗng sẽ dùng
// DefaultViewTab.
func NewViewTabStore(tabs []models.FieldOption, maxTabs int, protected string) *ViewTabStore {
	if maxTabs <= 0 {
		maxTabs = DefaultMaxViewTabs
	}
	if protected == "" {
		protected = DefaultViewTab
	}
	s := &ViewTabStore{maxTabs: maxTabs, protected: protected}
	s.SetTabs(tabs)
	return s
}

// SetTabs khởi tạo lại toàn bộ tập tab.
// Tab vượt quá capacity bị cắt bỏ; tab đầu tiên trở thành active.
func (s *ViewTabStore) SetTabs(tabs []models.FieldOption) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(tabs) > s.maxTabs {
		tabs = tabs[:s.maxTabs]
	}

	s.tabs = append([]models.FieldOption(nil), tabs...)

	if len(s.tabs) > 0 {
		s.active = s.tabs[0].Value
	} else {
		s.active = ""
	}
}

// SetActiveTab đặt tab đang active.
// Bỏ qua nếu tab không tồn tại.
func (s *ViewTabStore) SetActiveTab(tabValue string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if models.ContainsOption(s.tabs, tabValue) {
		s.active = tabValue
	}
}

// AddTab thêm một tab mới và activate nó.
// Nếu tab đã có, chỉ re-activate (vẫn coi là thành công).
// Trả về false khi tập đã đầy.
func (s *ViewTabStore) AddTab(tab models.FieldOption) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if models.ContainsOption(s.tabs, tab.Value) {
		s.active = tab.Value
		return true
	}

	if len(s.tabs) >= s.maxTabs {
		return false
	}

	s.tabs = append(s.tabs, tab)
	s.active = tab.Value
	return true
}

// RemoveTab đóng một tab.
// Tab được bảo vệ không thể đóng: remove nó là no-op.
// Nếu tab bị đóng đang active, tab đầu tiên còn lại trở thành active.
func (s *ViewTabStore) RemoveTab(tabValue string) {
	if tabValue == s.protected {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := models.IndexOfOption(s.tabs, tabValue)
	if idx < 0 {
		return
	}

	s.tabs = append(s.tabs[:idx], s.tabs[idx+1:]...)

	if s.active == tabValue {
		if len(s.tabs) > 0 {
			s.active = s.tabs[0].Value
		} else {
			s.active = ""
		}
	}
}

// Tabs trả về bản copy tập tab đang mở
func (s *ViewTabStore) Tabs() []models.FieldOption {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.FieldOption(nil), s.tabs...)
}

// ActiveTab trả về tab value đang active
func (s *ViewTabStore) ActiveTab() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

// ProtectedTab trả về tab value được bảo vệ
func (s *ViewTabStore) ProtectedTab() string {
	return s.protected
}

// MaxTabs trả về capacity đã cấu hình
func (s *ViewTabStore) MaxTabs() int {
	return s.maxTabs
}
