// Package router khai báo HTTP surface của console: view layer (frontend)
// gọi các route này để đọc state và phát operation lên các module store.
package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/iehsan77/crmv2-admin-client-api-sub001/core/global"
)

// SetupRoutes đăng ký toàn bộ route của console
func SetupRoutes(app *fiber.App) {
	// Health check
	app.Get("/health", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Prometheus metrics (bật/tắt qua config)
	if global.ServerConfig == nil || global.ServerConfig.MetricsEnabled {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	}

	v1 := app.Group("/api/v1")

	// Danh sách module đã đăng ký
	v1.Get("/modules", handleListModules)

	// Module Record Store operations
	module := v1.Group("/modules/:module")
	module.Post("/fetch", handleFetchRecords)
	module.Post("/kanban", handleFetchKanban)
	module.Post("/kanban/move", handleMoveCard)
	module.Get("/records/:id", handleRecordDetails)
	module.Post("/save", handleSaveRecord)
	module.Post("/update", handleUpdateRecord)
	module.Post("/delete/:id", handleDeleteRecord)
	module.Post("/restore/:id", handleRestoreRecord)
	module.Post("/favorite/:id", handleMarkAsFavorite)

	// Filter Set Store / View Tab Store operations
	module.Get("/filters", handleGetFilters)
	module.Post("/filters", handleAddFilter)
	module.Post("/filters/remove", handleRemoveFilter)
	module.Post("/filters/value", handleUpdateFilterValue)
	module.Get("/tabs", handleGetTabs)
	module.Post("/tabs", handleAddTab)
	module.Post("/tabs/remove", handleRemoveTab)
	module.Post("/tabs/active", handleSetActiveTab)

	// Association Store operations
	assoc := v1.Group("/associations/:name")
	assoc.Post("/fetch", handleAssociationFetch)
	assoc.Post("/save", handleAssociationSave)
	assoc.Post("/delete", handleAssociationDelete)
	assoc.Post("/restore", handleAssociationRestore)

	// Xác nhận các thao tác phá hủy đang chờ
	v1.Get("/confirmations", handleListConfirmations)
	v1.Post("/confirmations/:id", handleResolveConfirmation)
}
