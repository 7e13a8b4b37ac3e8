package http

import (
	"calhub/internal/config"
	"calhub/internal/logger"
	"calhub/internal/service"
)

// tokenIssuer is the expected "iss" claim of accepted bearer tokens.
const tokenIssuer = "calhub"

// Handler carries the dependencies shared by all route handlers.
type Handler struct {
	services     *service.Services
	tokenSignKey string
	logger       *logger.Logger
}

// NewHandler creates a Handler bound to the application services. The
// sign key from the app configuration is used to verify bearer tokens.
func NewHandler(services *service.Services, appCfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")

	return &Handler{
		services:     services,
		tokenSignKey: appCfg.TokenSignKey,
		logger:       logger,
	}
}
