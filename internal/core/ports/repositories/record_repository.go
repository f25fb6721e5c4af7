package repositories

import (
	"context"

	"github.com/lavadero-app/lavadero-backend/internal/core/domain"
)

// RecordRepository persists ledger records.
type RecordRepository interface {
	SaveRecord(ctx context.Context, record domain.Record) error
	FindRecordByID(ctx context.Context, recordID string) (*domain.Record, error)
	UpdateRecord(ctx context.Context, record domain.Record) error
	UpdatePayment(ctx context.Context, recordID string, status domain.PaymentStatus, updatedBy string) error
	DeleteRecord(ctx context.Context, recordID string) error
	// FindRecords applies the ANDed optional filters, ordered by date then
	// time descending. Limit is always bounded by the caller.
	FindRecords(ctx context.Context, filter domain.RecordFilter) ([]domain.Record, error)
}
