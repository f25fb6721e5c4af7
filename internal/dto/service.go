package dto

import (
	"github.com/lavadero-app/lavadero-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateServiceRequest creates a catalog service.
type CreateServiceRequest struct {
	Name        string          `json:"nombre" binding:"required"`
	Description string          `json:"descripcion"`
	BasePrice   decimal.Decimal `json:"precio_base"`
}

// SetPriceRequest updates the active price of a (service, vehicle) pair.
type SetPriceRequest struct {
	Price decimal.Decimal `json:"precio" binding:"required"`
}

// ServiceResponse is the public view of a service.
type ServiceResponse struct {
	ServiceID   string          `json:"id"`
	Name        string          `json:"nombre"`
	Description string          `json:"descripcion"`
	BasePrice   decimal.Decimal `json:"precio_base"`
}

// ServiceWithPriceResponse is a service together with the active price for
// one vehicle type.
type ServiceWithPriceResponse struct {
	ServiceResponse
	VehicleType string          `json:"tipo_vehiculo"`
	Price       decimal.Decimal `json:"precio"`
}

// PriceResponse is one catalog price entry.
type PriceResponse struct {
	ServiceID   string          `json:"servicio_id"`
	VehicleType string          `json:"tipo_vehiculo"`
	Price       decimal.Decimal `json:"precio"`
	Active      bool            `json:"activo"`
}

// PopularServiceResponse is a usage-ranked service.
type PopularServiceResponse struct {
	ServiceID string `json:"servicio_id"`
	Name      string `json:"nombre"`
	Usage     int64  `json:"usos"`
}

// ToServiceResponse converts a domain.Service.
func ToServiceResponse(s *domain.Service) ServiceResponse {
	return ServiceResponse{
		ServiceID:   s.ServiceID,
		Name:        s.Name,
		Description: s.Description,
		BasePrice:   s.BasePrice,
	}
}

// ToServiceListResponse converts a slice of domain.Service.
func ToServiceListResponse(services []domain.Service) []ServiceResponse {
	out := make([]ServiceResponse, len(services))
	for i := range services {
		out[i] = ToServiceResponse(&services[i])
	}
	return out
}

// ToServiceWithPriceListResponse converts catalog rows joined with services.
func ToServiceWithPriceListResponse(rows []domain.ServiceWithPrice) []ServiceWithPriceResponse {
	out := make([]ServiceWithPriceResponse, len(rows))
	for i, row := range rows {
		out[i] = ServiceWithPriceResponse{
			ServiceResponse: ToServiceResponse(&row.Service),
			VehicleType:     string(row.VehicleType),
			Price:           row.Price,
		}
	}
	return out
}

// ToPriceResponse converts a domain.ServicePrice.
func ToPriceResponse(p *domain.ServicePrice) PriceResponse {
	return PriceResponse{
		ServiceID:   p.ServiceID,
		VehicleType: string(p.VehicleType),
		Price:       p.Price,
		Active:      p.Active,
	}
}

// ToPriceListResponse converts a slice of domain.ServicePrice.
func ToPriceListResponse(prices []domain.ServicePrice) []PriceResponse {
	out := make([]PriceResponse, len(prices))
	for i := range prices {
		out[i] = ToPriceResponse(&prices[i])
	}
	return out
}

// ToPopularServiceListResponse converts usage-ranked services.
func ToPopularServiceListResponse(rows []domain.PopularService) []PopularServiceResponse {
	out := make([]PopularServiceResponse, len(rows))
	for i, row := range rows {
		out[i] = PopularServiceResponse{
			ServiceID: row.ServiceID,
			Name:      row.Name,
			Usage:     row.UsageCnt,
		}
	}
	return out
}
