package modules

import (
	"github.com/iehsan77/crmv2-admin-client-api-sub001/core/api/models"
	"github.com/iehsan77/crmv2-admin-client-api-sub001/core/store"
)

var taskFilterCatalog = []models.FieldOption{
	{Value: "task_status_id", Label: "Trạng thái"},
	{Value: "priority_id", Label: "Độ ưu tiên"},
	{Value: "owner_id", Label: "Người phụ trách"},
	{Value: "due_date", Label: "Hạn xử lý"},
}

// newTaskStore tạo store cho module task (có bảng kanban theo trạng thái)
func newTaskStore(deps store.Deps) (*store.ModuleStore, error) {
	return store.NewModuleStore(store.ModuleConfig{
		Name:      "tasks",
		Kanban:    true,
		Endpoints: standardEndpoints("/crm/tasks", true),
		Filters:   taskFilterCatalog,
		ViewTabs: defaultViewTabs(
			models.FieldOption{Value: "overdue", Label: "Quá hạn"},
			models.FieldOption{Value: "today", Label: "Hôm nay"},
		),
	}, deps)
}
