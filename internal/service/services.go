package service

import (
	"github.com/MKhiriev/go-expense-tracker/internal/adapter"
	"github.com/MKhiriev/go-expense-tracker/internal/config"
	"github.com/MKhiriev/go-expense-tracker/internal/crypto"
	"github.com/MKhiriev/go-expense-tracker/internal/logger"
	"github.com/MKhiriev/go-expense-tracker/internal/store"
	"github.com/MKhiriev/go-expense-tracker/internal/validators"
	"github.com/MKhiriev/go-expense-tracker/models"
)

type Services struct {
	AuthService     AuthService
	LedgerService   LedgerService
	RecoveryService RecoveryService
	ReportService   ReportService
	AppInfoService  AppInfoService
}

func NewServices(storages *store.Storages, mailSender adapter.MailSender, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	hasher := crypto.NewPasswordHasher()
	validator := validators.NewFormValidator()

	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, hasher, validator, logger),
		LedgerService:   NewLedgerService(storages.UserRepository, validator, logger),
		RecoveryService: NewRecoveryService(storages.UserRepository, mailSender, crypto.NewOTPGenerator(), hasher, validator, cfg.App.OTPTTL, logger),
		ReportService:   NewReportService(storages.UserRepository, storages.ChartStorage, logger),
		AppInfoService:  appInfoService,
	}, nil
}
