package http

import (
	"time"

	"github.com/MKhiriev/go-ad-board/internal/config"
	"github.com/MKhiriev/go-ad-board/internal/logger"
	"github.com/MKhiriev/go-ad-board/internal/service"
)

type Handler struct {
	services *service.Services

	logger *logger.Logger

	requestTimeout time.Duration
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		logger:         logger,
		requestTimeout: cfg.RequestTimeout,
	}
}
