package validators

import (
	"context"
	"strings"

	"waylog/models"
)

const (
	FieldText    = "text"
	FieldContent = "content"
)

type RequestValidator struct {
}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ChatMessageRequest:
		return v.validateChatMessage(ctx, value, fields...)
	case *models.ChatMessageRequest:
		return v.validateChatMessage(ctx, *value, fields...)

	case models.UploadDraft:
		return v.validateUploadDraft(ctx, value, fields...)
	case *models.UploadDraft:
		return v.validateUploadDraft(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateChatMessage(ctx context.Context, req models.ChatMessageRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldText}
	}

	for _, f := range fields {
		switch f {
		case FieldText:
			if strings.TrimSpace(req.Text) == "" {
				return ErrEmptyMessageText
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateUploadDraft(ctx context.Context, draft models.UploadDraft, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldContent}
	}

	for _, f := range fields {
		switch f {
		case FieldContent:
			if draft.Empty() {
				return ErrEmptyUploadContent
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
