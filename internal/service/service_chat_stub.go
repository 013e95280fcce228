package service

import (
	"context"
	"sync/atomic"

	"waylog/internal/logger"
	"waylog/internal/utils"
	"waylog/models"
)

// cannedReplies is the fixed rotation the chat stub answers from. The stub
// keeps no conversation state, so the reply depends only on call order.
var cannedReplies = []string{
	"Got it, saved to your journal.",
	"Noted. Anything else from today?",
	"Thanks, I logged that.",
	"Sounds like quite a walk.",
	"Understood. Keep them coming.",
}

type chatStubService struct {
	uuid *utils.UUIDGenerator
	next atomic.Int64

	logger *logger.Logger
}

func NewChatStubService(generator *utils.UUIDGenerator, logger *logger.Logger) ChatStubService {
	return &chatStubService{uuid: generator, logger: logger}
}

func (s *chatStubService) Reply(ctx context.Context, req models.ChatMessageRequest) models.ChatMessageResponse {
	idx := int((s.next.Add(1) - 1) % int64(len(cannedReplies)))

	s.logger.Info().
		Str("func", "chatStubService.Reply").
		Int("text_len", len(req.Text)).
		Msg("serving canned chat reply")

	return models.ChatMessageResponse{
		ID:    s.uuid.Generate(),
		Reply: cannedReplies[idx],
	}
}
