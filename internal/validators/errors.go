package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyMessageText   = errors.New("message text is required")
	ErrEmptyUploadContent = errors.New("upload carries no note, image, or voice")
)
