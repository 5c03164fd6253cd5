package handler

import (
	"github.com/MKhiriev/aura/internal/config"
	"github.com/MKhiriev/aura/internal/handler/http"
	"github.com/MKhiriev/aura/internal/logger"
	"github.com/MKhiriev/aura/internal/service"
)

// Handlers groups the inbound transport handlers of the server.
type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds a handler for every transport that has a listen address
// in cfg.Server.
func NewHandlers(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg.Server, cfg.App, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
