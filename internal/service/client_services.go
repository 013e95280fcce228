package service

import (
	"waylog/internal/adapter"
	"waylog/internal/logger"
	"waylog/internal/store"
	"waylog/internal/utils"
)

type ClientServices struct {
	UploadService ClientUploadService
	ChatService   ClientChatService
}

func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, generator *utils.UUIDGenerator, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		UploadService: NewClientUploadService(storages, serverAdapter, generator, logger),
		ChatService:   NewClientChatService(serverAdapter, generator, logger),
	}
}
