package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"waylog/internal/config"
	"waylog/internal/logger"
	"waylog/internal/utils"
	"waylog/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SendChatMessage implements [ServerAdapter]. It POSTs the message to
// POST /api/chat/messages and decodes the backend reply. Returns an error if
// the request fails or the server responds with a non-2xx status.
func (h *httpServerAdapter) SendChatMessage(ctx context.Context, req models.ChatMessageRequest) (models.ChatMessageResponse, error) {
	var reply models.ChatMessageResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&reply).
		Post("/api/chat/messages")

	if err != nil {
		return models.ChatMessageResponse{}, fmt.Errorf("send chat message request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ChatMessageResponse{}, err
	}

	return reply, nil
}

// UploadEntry implements [ServerAdapter]. It POSTs the entry to
// POST /api/uploads as a multipart request: the entry metadata as a JSON form
// field named "metadata", plus "image" and "voice" file parts when the
// corresponding payload is non-empty. Part file names follow the side-car blob
// naming so the server sees the same identifiers the client stores locally.
// Returns the decoded [models.UploadReceipt]. Returns an error if the request,
// response mapping, or JSON decoding fails.
func (h *httpServerAdapter) UploadEntry(ctx context.Context, entry models.UploadEntry, image []byte, voice []byte) (models.UploadReceipt, error) {
	meta, err := json.Marshal(entry)
	if err != nil {
		return models.UploadReceipt{}, fmt.Errorf("encode upload metadata: %w", err)
	}

	req := h.client.R().
		SetContext(ctx).
		SetMultipartFormData(map[string]string{"metadata": string(meta)})

	if len(image) > 0 {
		req.SetMultipartField("image", entry.ID+".jpg", "image/jpeg", bytes.NewReader(image))
	}
	if len(voice) > 0 {
		req.SetMultipartField("voice", "voice_note_"+entry.ID+".m4a", "audio/mp4", bytes.NewReader(voice))
	}

	resp, err := req.Post("/api/uploads")
	if err != nil {
		return models.UploadReceipt{}, fmt.Errorf("upload entry request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UploadReceipt{}, err
	}

	var receipt models.UploadReceipt
	if err = json.Unmarshal(resp.Body(), &receipt); err != nil {
		return models.UploadReceipt{}, fmt.Errorf("decode upload receipt: %w", err)
	}

	return receipt, nil
}

// Ping implements [ServerAdapter]. It GETs the health endpoint
// GET /api/health and maps the response status. Returns nil on 2xx.
func (h *httpServerAdapter) Ping(ctx context.Context) error {
	resp, err := h.client.R().SetContext(ctx).Get("/api/health")
	if err != nil {
		return fmt.Errorf("health check request: %w", err)
	}

	return mapHTTPError(resp)
}
