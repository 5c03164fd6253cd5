package http

import (
	"time"

	"github.com/MKhiriev/aura/internal/config"
	"github.com/MKhiriev/aura/internal/logger"
	"github.com/MKhiriev/aura/internal/service"
)

type Handler struct {
	services *service.Services

	allowedOrigins []string
	requestTimeout time.Duration

	// session cookie attributes
	secureCookie  bool
	tokenDuration time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, server config.Server, app config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		allowedOrigins: server.AllowedOrigins,
		requestTimeout: server.RequestTimeout,
		secureCookie:   app.Production,
		tokenDuration:  app.TokenDuration,
		logger:         logger,
	}
}
