package service

import (
	"context"

	"waylog/models"
)

type ChatStubService interface {
	Reply(ctx context.Context, req models.ChatMessageRequest) models.ChatMessageResponse
}

type UploadStubService interface {
	Accept(ctx context.Context, entry models.UploadEntry, imageSize int64, voiceSize int64) models.UploadReceipt
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
