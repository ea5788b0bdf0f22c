package modules

import (
	"sync/atomic"

	"github.com/iehsan77/crmv2-admin-client-api-sub001/core/api/models"
	"github.com/iehsan77/crmv2-admin-client-api-sub001/core/store"
)

var bookingFilterCatalog = []models.FieldOption{
	{Value: "booking_status_id", Label: "Trạng thái đặt"},
	{Value: "owner_id", Label: "Người phụ trách"},
	{Value: "start_date", Label: "Ngày nhận"},
	{Value: "end_date", Label: "Ngày trả"},
}

// bookingVehicleID là id của xe đang được xem — booking luôn được liệt kê
// trong ngữ cảnh một xe cụ thể, không có danh sách booking toàn cục.
// View layer cập nhật qua SetBookingVehicleID khi user điều hướng.
var bookingVehicleID atomic.Value

// SetBookingVehicleID đặt xe hiện tại cho module booking
func SetBookingVehicleID(vehicleID string) {
	bookingVehicleID.Store(vehicleID)
}

// BookingVehicleID trả về id xe hiện tại ("" nếu chưa đặt)
func BookingVehicleID() string {
	if v, ok := bookingVehicleID.Load().(string); ok {
		return v
	}
	return ""
}

// newBookingStore tạo store cho module đặt xe.
// ExtraPayload gắn vehicle_id của ngữ cảnh hiện tại vào mọi payload fetch —
// giá trị được đọc tại thời điểm fetch, không chốt cứng lúc tạo store.
func newBookingStore(deps store.Deps) (*store.ModuleStore, error) {
	return store.NewModuleStore(store.ModuleConfig{
		Name:      "rental_bookings",
		Kanban:    true,
		Endpoints: standardEndpoints("/rental/bookings", true),
		Filters:   bookingFilterCatalog,
		ViewTabs: defaultViewTabs(
			models.FieldOption{Value: "active", Label: "Đang thuê"},
			models.FieldOption{Value: "returned", Label: "Đã trả"},
		),
		ExtraPayload: func(s *store.ModuleStore) map[string]any {
			if id := BookingVehicleID(); id != "" {
				return map[string]any{"vehicle_id": id}
			}
			return nil
		},
	}, deps)
}
