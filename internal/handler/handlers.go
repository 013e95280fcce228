package handler

import (
	"waylog/internal/config"
	"waylog/internal/handler/http"
	"waylog/internal/logger"
	"waylog/internal/service"
	"waylog/internal/validators"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, validator validators.Validator, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, validator, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
