package http

import (
	"fmt"
	"html/template"
	"time"

	"github.com/MKhiriev/go-expense-tracker/internal/config"
	"github.com/MKhiriev/go-expense-tracker/internal/logger"
	"github.com/MKhiriev/go-expense-tracker/internal/service"
	"github.com/MKhiriev/go-expense-tracker/internal/utils"
	"github.com/MKhiriev/go-expense-tracker/web"
)

type Handler struct {
	services  *service.Services
	templates *template.Template
	sessions  *sessionStore
	traceIDs  *utils.UUIDGenerator

	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) (*Handler, error) {
	templates, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParsingTemplates, err)
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		templates:      templates,
		sessions:       newSessionStore(cfg.App),
		traceIDs:       utils.NewUUIDGenerator(),
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}, nil
}
