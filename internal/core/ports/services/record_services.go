package services

import (
	"context"

	"github.com/lavadero-app/lavadero-backend/internal/core/domain"
	"github.com/lavadero-app/lavadero-backend/internal/dto"
)

// RecordSvcFacade manages the wash record ledger.
type RecordSvcFacade interface {
	// CreateRecord validates every field and reports all failures in a
	// single *apperrors.ValidationError.
	CreateRecord(ctx context.Context, req dto.CreateRecordRequest, creatorUserID string) (*domain.Record, error)
	GetRecord(ctx context.Context, recordID string) (*domain.Record, error)
	// UpdateRecord is a full-field update. Only the owner or an admin may
	// update; others get ErrNotFound to hide existence.
	UpdateRecord(ctx context.Context, recordID string, req dto.UpdateRecordRequest, requesterID string, requesterRole domain.UserRole) (*domain.Record, error)
	SetPayment(ctx context.Context, recordID string, status domain.PaymentStatus, updaterUserID string) error
	// DeleteRecord deletes for admins or the owning identity; anyone else
	// gets the same ErrNotFound a missing id produces.
	DeleteRecord(ctx context.Context, recordID string, requesterID string, requesterRole domain.UserRole) error
	ListRecords(ctx context.Context, filter domain.RecordFilter) ([]domain.Record, error)
}
