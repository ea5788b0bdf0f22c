package modules

import (
	"github.com/iehsan77/crmv2-admin-client-api-sub001/core/api/models"
	"github.com/iehsan77/crmv2-admin-client-api-sub001/core/store"
)

// leadFilterCatalog là các field lọc được trên danh sách lead
var leadFilterCatalog = []models.FieldOption{
	{Value: "lead_source_id", Label: "Nguồn lead"},
	{Value: "lead_status_id", Label: "Trạng thái"},
	{Value: "owner_id", Label: "Người phụ trách"},
	{Value: "industry_id", Label: "Ngành"},
	{Value: "rating", Label: "Đánh giá"},
}

// newLeadStore tạo store cho module lead (có bảng kanban theo trạng thái)
func newLeadStore(deps store.Deps) (*store.ModuleStore, error) {
	return store.NewModuleStore(store.ModuleConfig{
		Name:      "leads",
		Kanban:    true,
		Endpoints: standardEndpoints("/crm/leads", true),
		Filters:   leadFilterCatalog,
		ViewTabs: defaultViewTabs(
			models.FieldOption{Value: "new_this_week", Label: "Mới trong tuần"},
			models.FieldOption{Value: "unassigned", Label: "Chưa phân công"},
		),
	}, deps)
}
