package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lavadero-app/lavadero-backend/internal/apperrors"
	"github.com/lavadero-app/lavadero-backend/internal/core/domain"
	portsrepo "github.com/lavadero-app/lavadero-backend/internal/core/ports/repositories"
	portssvc "github.com/lavadero-app/lavadero-backend/internal/core/ports/services"
	"github.com/lavadero-app/lavadero-backend/internal/dto"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"

	plateMinLen = 3
	plateMaxLen = 10
)

type recordService struct {
	BaseService
	recordRepo  portsrepo.RecordRepository
	serviceRepo portsrepo.ServiceRepository
	washerRepo  portsrepo.WasherRepository
}

// NewRecordService creates the ledger service.
func NewRecordService(recordRepo portsrepo.RecordRepository, serviceRepo portsrepo.ServiceRepository, washerRepo portsrepo.WasherRepository) portssvc.RecordSvcFacade {
	return &recordService{
		recordRepo:  recordRepo,
		serviceRepo: serviceRepo,
		washerRepo:  washerRepo,
	}
}

var _ portssvc.RecordSvcFacade = (*recordService)(nil)

// validatedRecordInput holds the parsed fields of a record request after
// validation succeeded.
type validatedRecordInput struct {
	date        time.Time
	timeOfDay   string
	vehicleType domain.VehicleType
	plate       string
	payment     domain.PaymentStatus
}

// validateRecordInput checks every field and collects every failure so the
// client gets the full list in one round trip. Cost is range-checked only;
// it is deliberately not compared against the price catalog, so the captured
// amount is whatever the operator entered.
func (s *recordService) validateRecordInput(ctx context.Context, req dto.CreateRecordRequest) (*validatedRecordInput, error) {
	fields := []apperrors.FieldError{}
	out := &validatedRecordInput{}

	if req.Date == "" {
		fields = append(fields, apperrors.FieldError{Field: "fecha", Message: "es obligatoria"})
	} else if d, err := time.Parse(dateLayout, req.Date); err != nil {
		fields = append(fields, apperrors.FieldError{Field: "fecha", Message: "formato inválido, se espera YYYY-MM-DD"})
	} else {
		out.date = d
	}

	if req.Time == "" {
		fields = append(fields, apperrors.FieldError{Field: "hora", Message: "es obligatoria"})
	} else if _, err := time.Parse(timeLayout, req.Time); err != nil {
		fields = append(fields, apperrors.FieldError{Field: "hora", Message: "formato inválido, se espera HH:MM"})
	} else {
		out.timeOfDay = req.Time
	}

	vt := domain.VehicleType(req.VehicleType)
	if !vt.IsValid() {
		fields = append(fields, apperrors.FieldError{Field: "tipo_vehiculo", Message: "tipo de vehículo inválido"})
	} else {
		out.vehicleType = vt
	}

	plate := strings.ToUpper(strings.TrimSpace(req.Plate))
	if l := len(plate); l < plateMinLen || l > plateMaxLen {
		fields = append(fields, apperrors.FieldError{Field: "placa", Message: fmt.Sprintf("debe tener entre %d y %d caracteres", plateMinLen, plateMaxLen)})
	} else {
		out.plate = plate
	}

	if req.ServiceID == "" {
		fields = append(fields, apperrors.FieldError{Field: "servicio_id", Message: "es obligatorio"})
	} else if _, err := s.serviceRepo.FindServiceByID(ctx, req.ServiceID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			fields = append(fields, apperrors.FieldError{Field: "servicio_id", Message: "el servicio no existe"})
		} else {
			return nil, fmt.Errorf("failed to verify service: %w", err)
		}
	}

	if !req.Cost.IsPositive() {
		fields = append(fields, apperrors.FieldError{Field: "costo", Message: "debe ser mayor que cero"})
	}

	if req.Percentage.IsNegative() || req.Percentage.GreaterThan(hundred) {
		fields = append(fields, apperrors.FieldError{Field: "porcentaje", Message: "debe estar entre 0 y 100"})
	}

	if req.WasherID == "" {
		fields = append(fields, apperrors.FieldError{Field: "lavador_id", Message: "es obligatorio"})
	} else if washer, err := s.washerRepo.FindWasherByID(ctx, req.WasherID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			fields = append(fields, apperrors.FieldError{Field: "lavador_id", Message: "el lavador no existe"})
		} else {
			return nil, fmt.Errorf("failed to verify washer: %w", err)
		}
	} else if !washer.Active {
		fields = append(fields, apperrors.FieldError{Field: "lavador_id", Message: "el lavador está inactivo"})
	}

	// Payment defaults to pending when omitted.
	if req.Payment == "" {
		out.payment = domain.PaymentPending
	} else if ps := domain.PaymentStatus(req.Payment); !ps.IsValid() {
		fields = append(fields, apperrors.FieldError{Field: "pago", Message: "debe ser 'Pendiente' o 'Pagado'"})
	} else {
		out.payment = ps
	}

	if len(fields) > 0 {
		return nil, apperrors.NewValidationError(fields...)
	}
	return out, nil
}

func (s *recordService) CreateRecord(ctx context.Context, req dto.CreateRecordRequest, creatorUserID string) (*domain.Record, error) {
	in, err := s.validateRecordInput(ctx, req)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	record := domain.Record{
		RecordID:     uuid.NewString(),
		Date:         in.date,
		Time:         in.timeOfDay,
		VehicleType:  in.vehicleType,
		Plate:        in.plate,
		ServiceID:    req.ServiceID,
		Cost:         req.Cost,
		Percentage:   req.Percentage,
		WasherID:     req.WasherID,
		Observations: strings.TrimSpace(req.Observations),
		Payment:      in.payment,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.recordRepo.SaveRecord(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to save record: %w", err)
	}

	s.LogInfo(ctx, "record created",
		slog.String("registro_id", record.RecordID),
		slog.String("placa", record.Plate),
		slog.String("costo", record.Cost.String()))

	// Re-read to pick up the joined service and washer names.
	return s.recordRepo.FindRecordByID(ctx, record.RecordID)
}

func (s *recordService) GetRecord(ctx context.Context, recordID string) (*domain.Record, error) {
	return s.recordRepo.FindRecordByID(ctx, recordID)
}

// canModify reports whether the requester may touch the record. Strangers
// get the same answer as a missing id.
func canModify(record *domain.Record, requesterID string, requesterRole domain.UserRole) bool {
	return requesterRole == domain.RoleAdmin || record.CreatedBy == requesterID
}

func (s *recordService) UpdateRecord(ctx context.Context, recordID string, req dto.UpdateRecordRequest, requesterID string, requesterRole domain.UserRole) (*domain.Record, error) {
	existing, err := s.recordRepo.FindRecordByID(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if !canModify(existing, requesterID, requesterRole) {
		return nil, apperrors.ErrNotFound
	}

	in, err := s.validateRecordInput(ctx, dto.CreateRecordRequest(req))
	if err != nil {
		return nil, err
	}

	updated := *existing
	updated.Date = in.date
	updated.Time = in.timeOfDay
	updated.VehicleType = in.vehicleType
	updated.Plate = in.plate
	updated.ServiceID = req.ServiceID
	updated.Cost = req.Cost
	updated.Percentage = req.Percentage
	updated.WasherID = req.WasherID
	updated.Observations = strings.TrimSpace(req.Observations)
	updated.Payment = in.payment
	updated.LastUpdatedAt = time.Now()
	updated.LastUpdatedBy = requesterID

	if err := s.recordRepo.UpdateRecord(ctx, updated); err != nil {
		return nil, fmt.Errorf("failed to update record: %w", err)
	}

	s.LogInfo(ctx, "record updated", slog.String("registro_id", recordID))
	return s.recordRepo.FindRecordByID(ctx, recordID)
}

func (s *recordService) SetPayment(ctx context.Context, recordID string, status domain.PaymentStatus, updaterUserID string) error {
	if !status.IsValid() {
		return apperrors.NewValidationError(apperrors.FieldError{
			Field:   "pago",
			Message: "debe ser 'Pendiente' o 'Pagado'",
		})
	}
	// Both transitions are allowed; marking a paid record pending again is
	// how charge mistakes get corrected.
	if err := s.recordRepo.UpdatePayment(ctx, recordID, status, updaterUserID); err != nil {
		return err
	}
	s.LogInfo(ctx, "record payment updated",
		slog.String("registro_id", recordID),
		slog.String("pago", string(status)))
	return nil
}

func (s *recordService) DeleteRecord(ctx context.Context, recordID string, requesterID string, requesterRole domain.UserRole) error {
	existing, err := s.recordRepo.FindRecordByID(ctx, recordID)
	if err != nil {
		return err
	}
	if !canModify(existing, requesterID, requesterRole) {
		return apperrors.ErrNotFound
	}

	if err := s.recordRepo.DeleteRecord(ctx, recordID); err != nil {
		return err
	}
	s.LogInfo(ctx, "record deleted", slog.String("registro_id", recordID))
	return nil
}

func (s *recordService) ListRecords(ctx context.Context, filter domain.RecordFilter) ([]domain.Record, error) {
	records, err := s.recordRepo.FindRecords(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	return records, nil
}
