package service

import (
	"fmt"

	"waylog/internal/config"
	"waylog/internal/logger"
	"waylog/internal/utils"
)

type Services struct {
	ChatStub   ChatStubService
	UploadStub UploadStubService
	AppInfo    AppInfoService
}

func NewServices(cfg config.App, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	generator := utils.NewUUIDGenerator()

	return &Services{
		ChatStub:   NewChatStubService(generator, logger),
		UploadStub: NewUploadStubService(generator, logger),
		AppInfo:    appInfo,
	}, nil
}
