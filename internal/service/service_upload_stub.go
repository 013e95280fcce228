package service

import (
	"context"

	"waylog/internal/logger"
	"waylog/internal/utils"
	"waylog/models"
)

type uploadStubService struct {
	uuid *utils.UUIDGenerator

	logger *logger.Logger
}

func NewUploadStubService(generator *utils.UUIDGenerator, logger *logger.Logger) UploadStubService {
	return &uploadStubService{uuid: generator, logger: logger}
}

// Accept acknowledges an upload without storing anything. The receipt echoes
// the client-side entry ID when present so the client can correlate it.
func (s *uploadStubService) Accept(ctx context.Context, entry models.UploadEntry, imageSize int64, voiceSize int64) models.UploadReceipt {
	id := entry.ID
	if id == "" {
		id = s.uuid.Generate()
	}

	s.logger.Info().
		Str("func", "uploadStubService.Accept").
		Str("id", id).
		Int64("image_bytes", imageSize).
		Int64("voice_bytes", voiceSize).
		Msg("upload accepted, payload discarded")

	return models.UploadReceipt{ID: id, Status: models.UploadStatusAccepted}
}
