package modules

import (
	"github.com/iehsan77/crmv2-admin-client-api-sub001/core/api/models"
	"github.com/iehsan77/crmv2-admin-client-api-sub001/core/store"
)

var accountFilterCatalog = []models.FieldOption{
	{Value: "industry_id", Label: "Ngành"},
	{Value: "owner_id", Label: "Người phụ trách"},
	{Value: "account_type_id", Label: "Loại khách hàng"},
	{Value: "city", Label: "Thành phố"},
	{Value: "annual_revenue", Label: "Doanh thu năm"},
}

// newAccountStore tạo store cho module account (công ty khách hàng)
func newAccountStore(deps store.Deps) (*store.ModuleStore, error) {
	return store.NewModuleStore(store.ModuleConfig{
		Name:      "accounts",
		Endpoints: standardEndpoints("/crm/accounts", false),
		Filters:   accountFilterCatalog,
		ViewTabs:  defaultViewTabs(),
	}, deps)
}
