package modules

import (
	"github.com/iehsan77/crmv2-admin-client-api-sub001/core/api/models"
	"github.com/iehsan77/crmv2-admin-client-api-sub001/core/store"
)

var callFilterCatalog = []models.FieldOption{
	{Value: "call_type_id", Label: "Loại cuộc gọi"},
	{Value: "call_result_id", Label: "Kết quả"},
	{Value: "owner_id", Label: "Người gọi"},
	{Value: "call_date", Label: "Ngày gọi"},
}

// newCallStore tạo store cho module nhật ký cuộc gọi
func newCallStore(deps store.Deps) (*store.ModuleStore, error) {
	return store.NewModuleStore(store.ModuleConfig{
		Name:      "calls",
		Endpoints: standardEndpoints("/crm/calls", false),
		Filters:   callFilterCatalog,
		ViewTabs: defaultViewTabs(
			models.FieldOption{Value: "missed", Label: "Nhỡ"},
		),
	}, deps)
}
