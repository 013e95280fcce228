package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"waylog/internal/adapter"
	"waylog/internal/logger"
	"waylog/internal/utils"
	"waylog/models"
)

type clientChatService struct {
	adapter adapter.ServerAdapter
	uuid    *utils.UUIDGenerator

	logger *logger.Logger

	mu      sync.Mutex
	history []models.ChatMessage
}

func NewClientChatService(serverAdapter adapter.ServerAdapter, generator *utils.UUIDGenerator, logger *logger.Logger) ClientChatService {
	return &clientChatService{
		adapter: serverAdapter,
		uuid:    generator,
		logger:  logger,
	}
}

func (c *clientChatService) Send(ctx context.Context, text string) (models.ChatMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.ChatMessage{}, ErrEmptyMessage
	}

	userMessage := models.ChatMessage{
		ID:        c.uuid.Generate(),
		Author:    models.ChatAuthorUser,
		Text:      text,
		Timestamp: time.Now().UTC(),
	}

	c.mu.Lock()
	c.history = append(c.history, userMessage)
	c.mu.Unlock()

	resp, err := c.adapter.SendChatMessage(ctx, models.ChatMessageRequest{Text: text})
	if err != nil {
		return models.ChatMessage{}, fmt.Errorf("send chat message to backend: %w", err)
	}

	reply := models.ChatMessage{
		ID:        resp.ID,
		Author:    models.ChatAuthorAssistant,
		Text:      resp.Reply,
		Timestamp: time.Now().UTC(),
	}

	c.mu.Lock()
	c.history = append(c.history, reply)
	c.mu.Unlock()

	return reply, nil
}

func (c *clientChatService) History() []models.ChatMessage {
	c.mu.Lock()
	defer c.mu.Unlock()

	return append([]models.ChatMessage(nil), c.history...)
}
