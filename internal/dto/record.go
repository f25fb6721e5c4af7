package dto

import (
	"github.com/lavadero-app/lavadero-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateRecordRequest creates a ledger record. Fields are validated in the
// service layer so every invalid field is reported in one response, not
// just the first one the binder trips over.
type CreateRecordRequest struct {
	Date         string          `json:"fecha"`
	Time         string          `json:"hora"`
	VehicleType  string          `json:"tipo_vehiculo"`
	Plate        string          `json:"placa"`
	ServiceID    string          `json:"servicio_id"`
	Cost         decimal.Decimal `json:"costo"`
	Percentage   decimal.Decimal `json:"porcentaje"`
	WasherID     string          `json:"lavador_id"`
	Observations string          `json:"observaciones"`
	Payment      string          `json:"pago"`
}

// UpdateRecordRequest is a full-field update of a ledger record.
type UpdateRecordRequest struct {
	Date         string          `json:"fecha"`
	Time         string          `json:"hora"`
	VehicleType  string          `json:"tipo_vehiculo"`
	Plate        string          `json:"placa"`
	ServiceID    string          `json:"servicio_id"`
	Cost         decimal.Decimal `json:"costo"`
	Percentage   decimal.Decimal `json:"porcentaje"`
	WasherID     string          `json:"lavador_id"`
	Observations string          `json:"observaciones"`
	Payment      string          `json:"pago"`
}

// SetPaymentRequest transitions the payment state of a record.
type SetPaymentRequest struct {
	Payment string `json:"pago" binding:"required"`
}

// ListRecordsParams are the optional query filters for listing records.
type ListRecordsParams struct {
	Plate     string `form:"placa"`
	Date      string `form:"fecha"`
	DateFrom  string `form:"fecha_desde"`
	DateTo    string `form:"fecha_hasta"`
	ServiceID string `form:"servicio_id"`
	Washer    string `form:"lavador"`
	Limit     int    `form:"limit"`
	Offset    int    `form:"offset"`
}

// RecordResponse is the public view of a ledger record.
type RecordResponse struct {
	RecordID     string          `json:"id"`
	Date         string          `json:"fecha"`
	Time         string          `json:"hora"`
	VehicleType  string          `json:"vehiculo"`
	Plate        string          `json:"placa"`
	ServiceID    string          `json:"servicio_id"`
	ServiceName  string          `json:"servicio_nombre"`
	Cost         decimal.Decimal `json:"costo"`
	Percentage   decimal.Decimal `json:"porcentaje"`
	Commission   decimal.Decimal `json:"comision"`
	WasherID     string          `json:"lavador_id"`
	WasherName   string          `json:"lavador"`
	Observations string          `json:"observaciones,omitempty"`
	Payment      string          `json:"pago"`
	CreatedBy    string          `json:"registrado_por"`
}

// ToRecordResponse converts a domain.Record.
func ToRecordResponse(r *domain.Record) RecordResponse {
	return RecordResponse{
		RecordID:     r.RecordID,
		Date:         r.Date.Format("2006-01-02"),
		Time:         r.Time,
		VehicleType:  string(r.VehicleType),
		Plate:        r.Plate,
		ServiceID:    r.ServiceID,
		ServiceName:  r.ServiceName,
		Cost:         r.Cost,
		Percentage:   r.Percentage,
		Commission:   r.Commission(),
		WasherID:     r.WasherID,
		WasherName:   r.WasherName,
		Observations: r.Observations,
		Payment:      string(r.Payment),
		CreatedBy:    r.CreatedBy,
	}
}

// ToRecordListResponse converts a slice of domain.Record.
func ToRecordListResponse(records []domain.Record) []RecordResponse {
	out := make([]RecordResponse, len(records))
	for i := range records {
		out[i] = ToRecordResponse(&records[i])
	}
	return out
}
