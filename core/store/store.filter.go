package store

import (
	"sync"

	"github.com/iehsan77/crmv2-admin-client-api-sub001/core/api/models"
)

// DefaultMaxFilters là số filter field tối đa mặc định trên một module
const DefaultMaxFilters = 5

// FilterStore giữ tập con các filter field đang active của một module
// (bị chặn trên bởi maxFilters) cùng giá trị hiện tại của từng field.
// Mỗi module store sở hữu một FilterStore riêng, khởi tạo từ catalog field
// cố định của module đó.
//
// Bất biến: mỗi field trong tập active luôn có entry (có thể rỗng) trong
// value map; remove field đồng thời clear giá trị của nó.
type FilterStore struct {
	mu         sync.RWMutex
	fields     []models.FieldOption // Tập filter field đang active (có thứ tự)
	values     map[string]any       // Giá trị hiện tại, key theo field value
	active     string               // Field đang được focus trên UI
	maxFilters int                  // Số field tối đa
}

// NewFilterStore tạo FilterStore với tập field ban đầu.
// maxFilters <= 0 sẽ dùng DefaultMaxFilters.
func NewFilterStore(fields []models.FieldOption, maxFilters int) *FilterStore {
	if maxFilters <= 0 {
		maxFilters = DefaultMaxFilters
	}
	s := &FilterStore{
		values:     make(map[string]any),
		maxFilters: maxFilters,
	}
	s.SetFilters(fields)
	return s
}

// SetFilters khởi tạo lại toàn bộ tập filter field.
// Giá trị cũ bị xóa; field vượt quá capacity bị cắt bỏ.
func (s *FilterStore) SetFilters(fields []models.FieldOption) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(fields) > s.maxFilters {
		fields = fields[:s.maxFilters]
	}

	s.fields = append([]models.FieldOption(nil), fields...)
	s.values = make(map[string]any, len(fields))
	for _, f := range s.fields {
		s.values[f.Value] = nil
	}

	if len(s.fields) > 0 {
		s.active = s.fields[0].Value
	} else {
		s.active = ""
	}
}

// SetActiveFilter đặt field đang được focus.
// Bỏ qua nếu field không nằm trong tập active.
func (s *FilterStore) SetActiveFilter(fieldValue string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if models.ContainsOption(s.fields, fieldValue) {
		s.active = fieldValue
	}
}

// AddFilter thêm một field vào tập active.
// Nếu field đã có, chỉ re-activate nó (vẫn coi là thành công).
// Trả về false khi tập đã đầy — caller hiển thị thông báo capacity.
func (s *FilterStore) AddFilter(field models.FieldOption) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if models.ContainsOption(s.fields, field.Value) {
		s.active = field.Value
		return true
	}

	if len(s.fields) >= s.maxFilters {
		return false
	}

	s.fields = append(s.fields, field)
	s.values[field.Value] = nil
	s.active = field.Value
	return true
}

// RemoveFilter bỏ một field khỏi tập active và clear giá trị của nó.
// Nếu field bị bỏ đang active, field đầu tiên còn lại trở thành active.
func (s *FilterStore) RemoveFilter(fieldValue string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := models.IndexOfOption(s.fields, fieldValue)
	if idx < 0 {
		return
	}

	s.fields = append(s.fields[:idx], s.fields[idx+1:]...)
	delete(s.values, fieldValue)

	if s.active == fieldValue {
		if len(s.fields) > 0 {
			s.active = s.fields[0].Value
		} else {
			s.active = ""
		}
	}
}

// UpdateValue đặt giá trị cho một field.
// Không validate gì ở tầng này — validation là việc của view layer.
// Bỏ qua nếu field không nằm trong tập active (giữ bất biến value map).
func (s *FilterStore) UpdateValue(fieldValue string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !models.ContainsOption(s.fields, fieldValue) {
		return
	}
	s.values[fieldValue] = value
}

// Payload trả về bản copy của value map thô (bỏ các entry nil/rỗng).
// Chuẩn hóa option object là bước riêng do consumer áp dụng
// (NormalizePayload) — không phải consumer nào cũng muốn chuẩn hóa ở đây.
func (s *FilterStore) Payload() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]any, len(s.values))
	for k, v := range s.values {
		if v == nil {
			continue
		}
		out[k] = v
	}
	return out
}

// Fields trả về bản copy tập filter field đang active
func (s *FilterStore) Fields() []models.FieldOption {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.FieldOption(nil), s.fields...)
}

// ActiveFilter trả về field value đang được focus
func (s *FilterStore) ActiveFilter() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

// Value trả về giá trị hiện tại của một field
func (s *FilterStore) Value(fieldValue string) any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values[fieldValue]
}

// MaxFilters trả về capacity đã cấu hình
func (s *FilterStore) MaxFilters() int {
	return s.maxFilters
}
