package modules

import (
	"github.com/iehsan77/crmv2-admin-client-api-sub001/core/api/models"
	"github.com/iehsan77/crmv2-admin-client-api-sub001/core/store"
)

var contactFilterCatalog = []models.FieldOption{
	{Value: "account_id", Label: "Công ty"},
	{Value: "owner_id", Label: "Người phụ trách"},
	{Value: "lead_source_id", Label: "Nguồn"},
	{Value: "city", Label: "Thành phố"},
	{Value: "created_at", Label: "Ngày tạo"},
}

// newContactStore tạo store cho module contact (chỉ dạng danh sách)
func newContactStore(deps store.Deps) (*store.ModuleStore, error) {
	return store.NewModuleStore(store.ModuleConfig{
		Name:      "contacts",
		Endpoints: standardEndpoints("/crm/contacts", false),
		Filters:   contactFilterCatalog,
		ViewTabs: defaultViewTabs(
			models.FieldOption{Value: "recently_viewed", Label: "Xem gần đây"},
		),
	}, deps)
}
