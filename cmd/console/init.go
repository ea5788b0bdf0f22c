package main

import (
	"github.com/sirupsen/logrus"

	"github.com/iehsan77/crmv2-admin-client-api-sub001/config"
	"github.com/iehsan77/crmv2-admin-client-api-sub001/core/global"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initValidator() // Khởi tạo validator
	initConfig()    // Khởi tạo cấu hình console
}

// Hàm khởi tạo validator (đăng ký custom validators: module_name, not_blank)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator")
}

// Hàm khởi tạo cấu hình console
func initConfig() {
	global.ServerConfig = config.NewConfig()
	if global.ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil")
	}
	logrus.Info("Initialized console config")
}
