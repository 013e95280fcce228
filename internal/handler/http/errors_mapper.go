package http

import (
	"errors"
	"net/http"

	"waylog/internal/validators"
)

var errorStatusMap = map[error]int{
	validators.ErrEmptyMessageText:   http.StatusBadRequest,
	validators.ErrEmptyUploadContent: http.StatusBadRequest,
	validators.ErrUnknownField:       http.StatusBadRequest,
	validators.ErrUnsupportedType:    http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
