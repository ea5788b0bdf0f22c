package global

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// InitValidator khởi tạo và đăng ký các custom validator
func InitValidator() {
	// Khởi tạo validator
	Validate = validator.New()

	// Đăng ký các custom validator
	_ = Validate.RegisterValidation("module_name", validateModuleName)
	_ = Validate.RegisterValidation("not_blank", validateNotBlank)
}

// moduleNameRegex: tên module chỉ gồm chữ thường, số và dấu gạch dưới (ví dụ: leads, rental_bookings)
var moduleNameRegex = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// validateModuleName kiểm tra định dạng tên module
func validateModuleName(fl validator.FieldLevel) bool {
	return moduleNameRegex.MatchString(fl.Field().String())
}

// validateNotBlank kiểm tra string không rỗng sau khi trim whitespace
func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
