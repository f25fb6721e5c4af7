package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is the payment state of a ledger record.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "Pendiente"
	PaymentPaid    PaymentStatus = "Pagado"
)

// IsValid reports whether the status is one of the two known states.
func (p PaymentStatus) IsValid() bool {
	return p == PaymentPending || p == PaymentPaid
}

// Record is one completed wash transaction. Cost is captured at creation
// time and never re-derived from the price catalog afterward; records are
// immutable snapshots of the price at time of sale.
type Record struct {
	RecordID     string          `json:"registroID"`
	Date         time.Time       `json:"fecha"`
	Time         string          `json:"hora"`
	VehicleType  VehicleType     `json:"tipoVehiculo"`
	Plate        string          `json:"placa"`
	ServiceID    string          `json:"servicioID"`
	ServiceName  string          `json:"servicioNombre"`
	Cost         decimal.Decimal `json:"costo"`
	Percentage   decimal.Decimal `json:"porcentaje"`
	WasherID     string          `json:"lavadorID"`
	WasherName   string          `json:"lavador"`
	Observations string          `json:"observaciones"`
	Payment      PaymentStatus   `json:"pago"`
	AuditFields
}

// Commission is the washer's share of the record's cost.
func (r Record) Commission() decimal.Decimal {
	return r.Cost.Mul(r.Percentage).Div(decimal.NewFromInt(100))
}

// RecordFilter carries the optional, ANDed filters of a ledger query.
type RecordFilter struct {
	Plate     string // substring, case-insensitive
	Date      *time.Time
	DateFrom  *time.Time
	DateTo    *time.Time
	ServiceID string
	Washer    string // substring, case-insensitive
	Limit     int
	Offset    int
}
