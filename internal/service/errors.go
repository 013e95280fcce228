package service

import "errors"

var (
	ErrEmptyEntry   = errors.New("upload entry has no content")
	ErrEmptyMessage = errors.New("chat message text is empty")

	ErrVersionIsNotSpecified = errors.New("application version is not specified")
)
