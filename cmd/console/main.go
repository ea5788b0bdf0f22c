package main

import (
	"fmt"

	"github.com/iehsan77/crmv2-admin-client-api-sub001/core/global"
	"github.com/iehsan77/crmv2-admin-client-api-sub001/core/logger"
)

// initLogger khởi tạo và cấu hình logger cho toàn bộ ứng dụng
func initLogger() {
	// Logger tự đọc environment variables khi config là nil
	if err := logger.Init(nil); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	log := logger.GetAppLogger()
	log.Info("Logger system initialized successfully")
}

// main_thread khởi tạo và chạy Fiber server
func main_thread() {
	app := InitFiberApp()

	address := global.ServerConfig.Address

	log := logger.GetAppLogger()
	log.WithField("address", address).Info("Starting console server...")

	if err := app.Listen(address); err != nil {
		log.Fatalf("Error in Fiber Listen: %v", err)
	}
}

// Hàm main
func main() {
	// Khởi tạo logger
	initLogger()
	defer logger.Close()

	// Khởi tạo các biến toàn cục
	InitGlobal()

	// Khởi tạo registry các module store
	InitRegistry()

	// Chạy Fiber server trên main thread
	main_thread()
}
