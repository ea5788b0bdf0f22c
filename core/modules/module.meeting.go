package modules

import (
	"github.com/iehsan77/crmv2-admin-client-api-sub001/core/api/models"
	"github.com/iehsan77/crmv2-admin-client-api-sub001/core/store"
)

var meetingFilterCatalog = []models.FieldOption{
	{Value: "meeting_type_id", Label: "Loại cuộc họp"},
	{Value: "owner_id", Label: "Người chủ trì"},
	{Value: "location", Label: "Địa điểm"},
	{Value: "start_date", Label: "Ngày bắt đầu"},
}

// newMeetingStore tạo store cho module cuộc họp
func newMeetingStore(deps store.Deps) (*store.ModuleStore, error) {
	return store.NewModuleStore(store.ModuleConfig{
		Name:      "meetings",
		Endpoints: standardEndpoints("/crm/meetings", false),
		Filters:   meetingFilterCatalog,
		ViewTabs: defaultViewTabs(
			models.FieldOption{Value: "upcoming", Label: "Sắp diễn ra"},
		),
	}, deps)
}
