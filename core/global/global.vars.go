package global

import (
	"github.com/go-playground/validator/v10"

	"github.com/iehsan77/crmv2-admin-client-api-sub001/config"
)

// Các biến toàn cục
var Validate *validator.Validate        // Biến để xác thực dữ liệu (endpoint set, module config)
var ServerConfig *config.Configuration  // Cấu hình của console client
