package modules

import (
	"github.com/iehsan77/crmv2-admin-client-api-sub001/core/api/models"
	"github.com/iehsan77/crmv2-admin-client-api-sub001/core/store"
)

var dealFilterCatalog = []models.FieldOption{
	{Value: "pipeline_id", Label: "Pipeline"},
	{Value: "deal_stage_id", Label: "Giai đoạn"},
	{Value: "owner_id", Label: "Người phụ trách"},
	{Value: "account_id", Label: "Công ty"},
	{Value: "amount", Label: "Giá trị"},
}

// newDealStore tạo store cho module deal.
// Bảng kanban của deal nhóm theo giai đoạn pipeline.
func newDealStore(deps store.Deps) (*store.ModuleStore, error) {
	return store.NewModuleStore(store.ModuleConfig{
		Name:      "deals",
		Kanban:    true,
		Endpoints: standardEndpoints("/crm/deals", true),
		Filters:   dealFilterCatalog,
		ViewTabs: defaultViewTabs(
			models.FieldOption{Value: "closing_this_month", Label: "Chốt trong tháng"},
			models.FieldOption{Value: "won", Label: "Thắng"},
			models.FieldOption{Value: "lost", Label: "Thua"},
		),
	}, deps)
}
