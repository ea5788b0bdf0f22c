package utility

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// ToString chuyển giá trị bất kỳ sang string.
// Id của record có thể là số nguyên hoặc string tùy server, nên mọi so sánh id
// trong client đều đi qua hàm này để có một dạng chuẩn duy nhất.
func ToString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case int:
		return strconv.Itoa(v)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case float32:
		return formatFloat(float64(v))
	case float64:
		return formatFloat(v)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprintf("%v", value)
	}
}

// formatFloat format float không có phần thập phân thừa (7.0 → "7")
func formatFloat(f float64) string {
	if f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// ToInt chuyển giá trị bất kỳ sang int.
// Trả về ok=false nếu không chuyển được.
func ToInt(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case float32:
		return int(v), true
	case float64:
		return int(v), true
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return int(i), true
		}
		if f, err := v.Float64(); err == nil {
			return int(f), true
		}
		return 0, false
	case string:
		if i, err := strconv.Atoi(v); err == nil {
			return i, true
		}
		return 0, false
	case bool:
		if v {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}

// ToInt64 chuyển giá trị bất kỳ sang int64 (dùng cho pagination từ API)
func ToInt64(value any) (int64, bool) {
	i, ok := ToInt(value)
	return int64(i), ok
}

// DeepCopyValue copy đệ quy một giá trị JSON-like (map, slice, scalar).
// Chỉ xử lý các kiểu xuất hiện sau json.Unmarshal; các kiểu khác trả về nguyên giá trị.
func DeepCopyValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		return DeepCopyMap(v)
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = DeepCopyValue(item)
		}
		return out
	default:
		return value
	}
}

// DeepCopyMap copy đệ quy một map JSON-like
func DeepCopyMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = DeepCopyValue(v)
	}
	return out
}

// Contains kiểm tra slice string có chứa phần tử không
func Contains(items []string, target string) bool {
	for _, item := range items {
		if item == target {
			return true
		}
	}
	return false
}
