package models

// FieldOption là descriptor {value, label} dùng chung cho filter field,
// view tab và option object trong giá trị filter (dropdown UI).
type FieldOption struct {
	Value string `json:"value" validate:"required"`
	Label string `json:"label"`
}

// IndexOfOption tìm vị trí của option theo value, trả về -1 nếu không có
func IndexOfOption(options []FieldOption, value string) int {
	for i, opt := range options {
		if opt.Value == value {
			return i
		}
	}
	return -1
}

// ContainsOption kiểm tra danh sách options có chứa value không
func ContainsOption(options []FieldOption, value string) bool {
	return IndexOfOption(options, value) >= 0
}
