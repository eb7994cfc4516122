package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-expense-tracker/internal/logger"
	"github.com/MKhiriev/go-expense-tracker/internal/report"
	"github.com/MKhiriev/go-expense-tracker/internal/store"
	"github.com/MKhiriev/go-expense-tracker/models"
)

type reportService struct {
	userRepository store.UserRepository
	chartStorage   store.ChartStorage

	renderChart func([]models.DailyTotal) ([]byte, error)

	logger *logger.Logger
}

func NewReportService(userRepository store.UserRepository, chartStorage store.ChartStorage, logger *logger.Logger) ReportService {
	return &reportService{
		userRepository: userRepository,
		chartStorage:   chartStorage,
		renderChart:    report.RenderChart,
		logger:         logger,
	}
}

// ExportCSV reads the full history of email and renders the window's share
// of it, sorted by date.
func (s *reportService) ExportCSV(ctx context.Context, email string, window models.ExportWindow) (models.CSVFile, error) {
	log := logger.FromContext(ctx)

	user, err := s.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		log.Err(err).Str("email", email).Msg("loading history for export failed")
		return models.CSVFile{}, fmt.Errorf("loading history failed: %w", err)
	}

	file, err := report.ExportCSV(user.Expenses, window)
	if err != nil {
		log.Err(err).Str("email", email).Msg("csv export failed")
		return models.CSVFile{}, err
	}

	return file, nil
}

// RenderChart draws the daily totals of the latest expenses and saves the
// image. An empty history is not an error: the result reports Rendered=false
// and no file is written.
func (s *reportService) RenderChart(ctx context.Context, view models.SessionView) (models.ChartResult, error) {
	log := logger.FromContext(ctx)

	user, err := s.userRepository.FindUserByEmail(ctx, view.Email)
	if err != nil {
		return models.ChartResult{}, fmt.Errorf("loading history failed: %w", err)
	}
	if len(user.Expenses) == 0 {
		log.Debug().Str("email", view.Email).Msg("no expenses to chart")
		return models.ChartResult{}, nil
	}

	png, err := s.renderChart(report.DailyTotals(user.Expenses, models.ChartWindow))
	if err != nil {
		if errors.Is(err, report.ErrNothingToChart) {
			return models.ChartResult{}, nil
		}
		return models.ChartResult{}, err
	}

	name, err := s.chartStorage.SaveChart(ctx, view.Name, view.Email, png)
	if err != nil {
		return models.ChartResult{}, fmt.Errorf("saving chart failed: %w", err)
	}
	log.Debug().Str("email", view.Email).Str("file", name).Msg("chart rendered")

	return models.ChartResult{Rendered: true, FileName: name}, nil
}

func (s *reportService) OpenChart(ctx context.Context, view models.SessionView) (store.ChartFile, error) {
	return s.chartStorage.OpenChart(ctx, view.Name, view.Email)
}

func (s *reportService) DeleteChart(ctx context.Context, view models.SessionView) error {
	return s.chartStorage.DeleteChart(ctx, view.Name, view.Email)
}
