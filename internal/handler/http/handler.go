package http

import (
	"waylog/internal/logger"
	"waylog/internal/service"
	"waylog/internal/validators"
)

type Handler struct {
	services  *service.Services
	validator validators.Validator

	logger *logger.Logger
}

func NewHandler(services *service.Services, validator validators.Validator, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		validator: validator,
		logger:    logger,
	}
}
