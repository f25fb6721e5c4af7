package services

import (
	"context"
	"fmt"
	"time"

	"github.com/lavadero-app/lavadero-backend/internal/core/domain"
	portsrepo "github.com/lavadero-app/lavadero-backend/internal/core/ports/repositories"
	portssvc "github.com/lavadero-app/lavadero-backend/internal/core/ports/services"
	"github.com/lavadero-app/lavadero-backend/internal/platform/config"
)

// topListLimit caps the per-washer and per-service rankings of the
// detailed report.
const topListLimit = 10

type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	windowDays    int
	location      *time.Location
}

// NewReportingService creates the reporting service.
func NewReportingService(reportingRepo portsrepo.ReportingRepository, cfg *config.Config) portssvc.ReportingSvcFacade {
	loc := cfg.ReportLocation
	if loc == nil {
		loc = time.Local
	}
	return &reportingService{
		reportingRepo: reportingRepo,
		windowDays:    cfg.ReportWindowDays,
		location:      loc,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// DefaultWindow returns the trailing window ending today, evaluated in the
// configured timezone so day boundaries match the shop's clock.
func (s *reportingService) DefaultWindow() (time.Time, time.Time) {
	now := time.Now().In(s.location)
	to := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.location)
	from := to.AddDate(0, 0, -(s.windowDays - 1))
	return from, to
}

func (s *reportingService) Summary(ctx context.Context, from, to time.Time) (*domain.Summary, error) {
	summary, err := s.reportingRepo.GetSummaryData(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to compute summary: %w", err)
	}
	// Total revenue is always the sum of its paid and pending parts.
	summary.TotalRevenue = summary.PaidRevenue.Add(summary.PendingRevenue)
	return summary, nil
}

func (s *reportingService) Detailed(ctx context.Context, from, to time.Time) (*domain.DetailedReport, error) {
	summary, err := s.Summary(ctx, from, to)
	if err != nil {
		return nil, err
	}

	topWashers, err := s.reportingRepo.GetTopWashers(ctx, from, to, topListLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to compute washer ranking: %w", err)
	}

	topServices, err := s.reportingRepo.GetTopServices(ctx, from, to, topListLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to compute service ranking: %w", err)
	}

	byDay, err := s.reportingRepo.GetByDayOfWeek(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to compute day-of-week breakdown: %w", err)
	}

	byVehicle, err := s.reportingRepo.GetByVehicleType(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to compute vehicle type breakdown: %w", err)
	}

	return &domain.DetailedReport{
		Summary:     *summary,
		TopWashers:  topWashers,
		TopServices: topServices,
		ByDayOfWeek: byDay,
		ByVehicle:   byVehicle,
	}, nil
}
