package domain

import "github.com/shopspring/decimal"

// VehicleType is the closed set of vehicle categories a price can target.
type VehicleType string

const (
	VehicleCar        VehicleType = "car"
	VehicleMotorcycle VehicleType = "motorcycle"
	VehiclePickup     VehicleType = "pickup"
	VehicleSUV        VehicleType = "suv"
	VehicleTruck      VehicleType = "truck"
)

// VehicleTypes lists every valid vehicle type.
var VehicleTypes = []VehicleType{
	VehicleCar,
	VehicleMotorcycle,
	VehiclePickup,
	VehicleSUV,
	VehicleTruck,
}

// IsValid reports whether the vehicle type belongs to the closed set.
func (v VehicleType) IsValid() bool {
	switch v {
	case VehicleCar, VehicleMotorcycle, VehiclePickup, VehicleSUV, VehicleTruck:
		return true
	}
	return false
}

// Service is a wash service offered by the shop. BasePrice is a display
// fallback; the charged price always comes from the price catalog.
type Service struct {
	ServiceID   string          `json:"servicioID"`
	Name        string          `json:"nombre"`
	Description string          `json:"descripcion"`
	BasePrice   decimal.Decimal `json:"precioBase"`
	AuditFields
}

// ServicePrice is one price catalog entry. At most one active entry may
// exist per (service, vehicle type) pair.
type ServicePrice struct {
	ServiceID   string          `json:"servicioID"`
	VehicleType VehicleType     `json:"tipoVehiculo"`
	Price       decimal.Decimal `json:"precio"`
	Active      bool            `json:"activo"`
	AuditFields
}

// ServiceWithPrice is a catalog row joined with the service it prices,
// as listed per vehicle type.
type ServiceWithPrice struct {
	Service
	VehicleType VehicleType     `json:"tipoVehiculo"`
	Price       decimal.Decimal `json:"precio"`
}

// PopularService is a service ranked by ledger usage over a trailing window.
type PopularService struct {
	ServiceID string `json:"servicioID"`
	Name      string `json:"nombre"`
	UsageCnt  int64  `json:"usos"`
}
