package store

import (
	"github.com/iehsan77/crmv2-admin-client-api-sub001/core/api/models"
	"github.com/iehsan77/crmv2-admin-client-api-sub001/core/utility"
)

// NormalizePayload chuyển map giá trị filter hỗn hợp về payload phẳng cho
// query layer của server. Filter input được soạn dưới dạng option object
// {value, label} (cho dropdown UI) nhưng server chỉ nhận scalar, nên:
//   - Giá trị là object có key "value" → thay bằng giá trị của key đó
//   - Giá trị là mảng → áp dụng quy tắc trên cho từng phần tử
//   - Mọi giá trị khác giữ nguyên
//
// Input không bao giờ bị mutate: hàm làm việc trên bản copy sâu.
// Không có điều kiện lỗi — entry thiếu hoặc sai dạng được giữ nguyên.
func NormalizePayload(values map[string]any) map[string]any {
	if values == nil {
		return map[string]any{}
	}

	out := make(map[string]any, len(values))
	for key, value := range values {
		out[key] = normalizeValue(utility.DeepCopyValue(value))
	}
	return out
}

// normalizeValue áp dụng quy tắc chuẩn hóa cho một giá trị đơn
func normalizeValue(value any) any {
	switch v := value.(type) {
	case models.FieldOption:
		return v.Value
	case *models.FieldOption:
		if v == nil {
			return nil
		}
		return v.Value
	case map[string]any:
		if inner, ok := v["value"]; ok {
			return inner
		}
		return v
	case []models.FieldOption:
		out := make([]any, len(v))
		for i, opt := range v {
			out[i] = opt.Value
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = normalizeValue(item)
		}
		return out
	default:
		return value
	}
}
