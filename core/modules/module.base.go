// Package modules khai báo catalog của từng module nghiệp vụ trong console
// (endpoint set, filter field, view tab) và đăng ký store instance của chúng
// vào registry dùng chung. Thêm một module mới = thêm một file module.<tên>.go
// và một dòng trong RegisterAll.
package modules

import (
	"fmt"

	"github.com/iehsan77/crmv2-admin-client-api-sub001/core/api/client"
	"github.com/iehsan77/crmv2-admin-client-api-sub001/core/api/models"
	"github.com/iehsan77/crmv2-admin-client-api-sub001/core/notify"
	"github.com/iehsan77/crmv2-admin-client-api-sub001/core/registry"
	"github.com/iehsan77/crmv2-admin-client-api-sub001/core/store"
)

// Stores giữ các Module Record Store theo tên module
var Stores = registry.NewRegistry[*store.ModuleStore]()

// Confirmations giữ các yêu cầu xác nhận đang chờ của mọi store
var Confirmations = notify.NewConfirmCenter()

// Associations giữ các Association Store theo tên
var Associations = registry.NewRegistry[*store.AssociationStore]()

// RegisterAll tạo store cho toàn bộ module và đăng ký vào registry.
// Dừng ở lỗi đầu tiên: store không tạo được là lỗi cấu hình, console không
// nên khởi động tiếp.
func RegisterAll(deps store.Deps) error {
	constructors := []func(store.Deps) (*store.ModuleStore, error){
		newLeadStore,
		newContactStore,
		newAccountStore,
		newDealStore,
		newTaskStore,
		newCallStore,
		newMeetingStore,
		newBookingStore,
	}

	for _, construct := range constructors {
		s, err := construct(deps)
		if err != nil {
			return err
		}
		if _, err := Stores.Register(s.Name(), s); err != nil {
			return err
		}
	}

	associations := []func(store.Deps) (*store.AssociationStore, error){
		newAccountContactStore,
		newDealContactStore,
	}

	for _, construct := range associations {
		s, err := construct(deps)
		if err != nil {
			return err
		}
		if _, err := Associations.Register(s.Name(), s); err != nil {
			return err
		}
	}

	return nil
}

// standardEndpoints dựng endpoint set theo convention chung của API nghiệp vụ:
//
//	POST <prefix>/get              danh sách
//	POST <prefix>/get-by-status    kanban (nếu module dùng)
//	GET  <prefix>/get/<id>         chi tiết
//	POST <prefix>/save             tạo mới / cập nhật
//	GET  <prefix>/delete/<id>      soft-delete
//	GET  <prefix>/restore/<id>     khôi phục
//	GET  <prefix>/favorite/<id>/<flag>
//	POST <prefix>/update-status
//
// Module lệch convention tự override field tương ứng sau khi gọi hàm này.
func standardEndpoints(prefix string, kanban bool) client.EndpointSet {
	set := client.EndpointSet{
		Get:        client.NewEndpoint("POST", prefix+"/get"),
		GetDetails: client.NewDynamicEndpoint("GET", argPath(prefix+"/get")),
		Save:       client.NewEndpoint("POST", prefix+"/save"),
		Delete:     client.NewDynamicEndpoint("GET", argPath(prefix+"/delete")),
		Restore:    client.NewDynamicEndpoint("GET", argPath(prefix+"/restore")),
		Favorite:   client.NewDynamicEndpoint("GET", argPath(prefix+"/favorite")),
	}
	if kanban {
		set.GetByStatus = client.NewEndpoint("POST", prefix+"/get-by-status")
		set.UpdateStatus = client.NewEndpoint("POST", prefix+"/update-status")
	}
	return set
}

// argPath trả về BuildFunc nối lần lượt các tham số vào sau prefix
func argPath(prefix string) client.BuildFunc {
	return func(args ...any) string {
		path := prefix
		for _, arg := range args {
			path += fmt.Sprintf("/%v", arg)
		}
		return path
	}
}

// defaultViewTabs trả về bộ view tab chuẩn: tab "all" được bảo vệ đứng đầu,
// theo sau là các tab riêng của module.
func defaultViewTabs(extra ...models.FieldOption) []models.FieldOption {
	tabs := []models.FieldOption{
		{Value: store.DefaultViewTab, Label: "Tất cả"},
		{Value: "my", Label: "Của tôi"},
	}
	return append(tabs, extra...)
}
