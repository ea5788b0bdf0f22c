package modules

import (
	"github.com/iehsan77/crmv2-admin-client-api-sub001/core/api/client"
	"github.com/iehsan77/crmv2-admin-client-api-sub001/core/store"
)

// associationEndpoints dựng endpoint set cho association theo convention:
// key (source_module, source_module_id, target_module) luôn nằm trong payload,
// không nhúng vào path.
func associationEndpoints(prefix string) client.AssociationEndpointSet {
	return client.AssociationEndpointSet{
		Get:     client.NewEndpoint("POST", prefix+"/get"),
		Save:    client.NewEndpoint("POST", prefix+"/save"),
		Delete:  client.NewEndpoint("POST", prefix+"/delete"),
		Restore: client.NewEndpoint("POST", prefix+"/restore"),
	}
}

// newAccountContactStore tạo store liên kết contact với account
// (tab "Liên hệ" trên trang chi tiết công ty)
func newAccountContactStore(deps store.Deps) (*store.AssociationStore, error) {
	return store.NewAssociationStore(store.AssociationConfig{
		Name:      "account_contacts",
		Endpoints: associationEndpoints("/crm/associations"),
	}, deps)
}

// newDealContactStore tạo store liên kết contact với deal
func newDealContactStore(deps store.Deps) (*store.AssociationStore, error) {
	return store.NewAssociationStore(store.AssociationConfig{
		Name:      "deal_contacts",
		Endpoints: associationEndpoints("/crm/associations"),
	}, deps)
}
