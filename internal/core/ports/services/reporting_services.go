package services

import (
	"context"
	"time"

	"github.com/lavadero-app/lavadero-backend/internal/core/domain"
)

// ReportingSvcFacade computes derived statistics over the ledger.
// All operations are read-only.
type ReportingSvcFacade interface {
	// DefaultWindow returns the configured trailing window (last N days
	// ending today) evaluated in the configured report timezone.
	DefaultWindow() (from, to time.Time)
	Summary(ctx context.Context, from, to time.Time) (*domain.Summary, error)
	Detailed(ctx context.Context, from, to time.Time) (*domain.DetailedReport, error)
}
