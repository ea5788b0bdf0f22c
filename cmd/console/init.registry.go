package main

import (
	"github.com/sirupsen/logrus"

	"github.com/iehsan77/crmv2-admin-client-api-sub001/core/api/client"
	"github.com/iehsan77/crmv2-admin-client-api-sub001/core/global"
	"github.com/iehsan77/crmv2-admin-client-api-sub001/core/logger"
	"github.com/iehsan77/crmv2-admin-client-api-sub001/core/modules"
	"github.com/iehsan77/crmv2-admin-client-api-sub001/core/notify"
	"github.com/iehsan77/crmv2-admin-client-api-sub001/core/store"
)

// InitRegistry tạo API client dùng chung và đăng ký store của toàn bộ module
// nghiệp vụ vào registry
func InitRegistry() {
	log := logger.GetAppLogger()

	deps := store.Deps{
		API:       client.NewApiClient(global.ServerConfig),
		Notifier:  notify.NewLogNotifier("console"),
		Confirmer: modules.Confirmations,
	}

	if err := modules.RegisterAll(deps); err != nil {
		log.Fatalf("Failed to register module stores: %v", err)
	}

	log.WithFields(logrus.Fields{
		"modules":      modules.Stores.Count(),
		"associations": modules.Associations.Count(),
	}).Info("Registered module stores")
}
