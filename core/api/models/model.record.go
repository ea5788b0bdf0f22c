package models

import (
	"github.com/iehsan77/crmv2-admin-client-api-sub001/core/utility"
)

// Record là một bản ghi entity của một module (lead, contact, deal, ...).
// Ngoài 4 thuộc tính chuẩn (id, status, favorite, deleted) mọi field khác
// là dữ liệu riêng của module và được giữ nguyên dạng (opaque với core).
// Record không bao giờ bị hủy cục bộ: bản ghi soft-delete vẫn nằm trong
// danh sách với deleted=1.
type Record map[string]any

// Các field chuẩn của một record
const (
	FieldID       = "id"
	FieldStatus   = "status"
	FieldFavorite = "favorite"
	FieldDeleted  = "deleted"
)

// ID trả về định danh của record dưới dạng string.
// Server có thể trả id dạng số hoặc string; client luôn so sánh qua dạng string.
func (r Record) ID() string {
	if r == nil {
		return ""
	}
	return utility.ToString(r[FieldID])
}

// Status trả về status classifier (dùng cho kanban grouping) dưới dạng string
func (r Record) Status() string {
	if r == nil {
		return ""
	}
	return utility.ToString(r[FieldStatus])
}

// SetStatus ghi đè status của record
func (r Record) SetStatus(status any) {
	if r != nil {
		r[FieldStatus] = status
	}
}

// Favorite trả về cờ favorite (0/1)
func (r Record) Favorite() int {
	if r == nil {
		return 0
	}
	v, _ := utility.ToInt(r[FieldFavorite])
	return v
}

// SetFavorite ghi đè cờ favorite (0/1)
func (r Record) SetFavorite(value int) {
	if r != nil {
		r[FieldFavorite] = value
	}
}

// Deleted trả về cờ soft-delete (0/1)
func (r Record) Deleted() int {
	if r == nil {
		return 0
	}
	v, _ := utility.ToInt(r[FieldDeleted])
	return v
}

// SetDeleted ghi đè cờ soft-delete (0/1)
func (r Record) SetDeleted(value int) {
	if r != nil {
		r[FieldDeleted] = value
	}
}

// Merge gộp các field từ other vào record (shallow merge).
// Field không có trong other được giữ nguyên — dùng cho update trả về partial.
func (r Record) Merge(other Record) {
	if r == nil {
		return
	}
	for k, v := range other {
		r[k] = v
	}
}

// Clone trả về bản copy sâu của record
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	return Record(utility.DeepCopyMap(map[string]any(r)))
}

// CloneRecords trả về bản copy của danh sách records (copy sâu từng record)
func CloneRecords(records []Record) []Record {
	if records == nil {
		return nil
	}
	out := make([]Record, len(records))
	for i, r := range records {
		out[i] = r.Clone()
	}
	return out
}

// ToRecord chuyển một giá trị JSON-like sang Record.
// Trả về nil nếu giá trị không phải object.
func ToRecord(value any) Record {
	switch v := value.(type) {
	case Record:
		return v
	case map[string]any:
		return Record(v)
	default:
		return nil
	}
}

// ToRecords chuyển một giá trị JSON-like sang danh sách Record.
// Các phần tử không phải object bị bỏ qua.
func ToRecords(value any) []Record {
	switch v := value.(type) {
	case []Record:
		return v
	case []any:
		out := make([]Record, 0, len(v))
		for _, item := range v {
			if rec := ToRecord(item); rec != nil {
				out = append(out, rec)
			}
		}
		return out
	default:
		return nil
	}
}
