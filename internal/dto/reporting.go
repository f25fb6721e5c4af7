package dto

import (
	"time"

	"github.com/lavadero-app/lavadero-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SummaryResponse is the basic aggregate report.
type SummaryResponse struct {
	From            string          `json:"fecha_desde"`
	To              string          `json:"fecha_hasta"`
	TotalRecords    int64           `json:"total_registros"`
	TotalRevenue    decimal.Decimal `json:"ingresos_totales"`
	PaidRevenue     decimal.Decimal `json:"ingresos_pagados"`
	PendingRevenue  decimal.Decimal `json:"ingresos_pendientes"`
	PaidCommission  decimal.Decimal `json:"comisiones_pagadas"`
	TotalCommission decimal.Decimal `json:"comisiones_totales"`
	AverageCost     decimal.Decimal `json:"costo_promedio"`
	ActiveWashers   int64           `json:"lavadores_activos"`
}

// WasherStatResponse is one washer row of the detailed report.
type WasherStatResponse struct {
	WasherID     string          `json:"lavador_id"`
	WasherName   string          `json:"lavador"`
	Services     int64           `json:"servicios"`
	Revenue      decimal.Decimal `json:"ingresos"`
	Commission   decimal.Decimal `json:"comisiones"`
	AveragePrice decimal.Decimal `json:"precio_promedio"`
}

// ServiceStatResponse is one service row of the detailed report.
type ServiceStatResponse struct {
	ServiceID    string          `json:"servicio_id"`
	ServiceName  string          `json:"servicio"`
	Requests     int64           `json:"solicitudes"`
	Revenue      decimal.Decimal `json:"ingresos"`
	AveragePrice decimal.Decimal `json:"precio_promedio"`
}

// DayOfWeekStatResponse is one day-of-week bucket (ISO index, Monday=1).
type DayOfWeekStatResponse struct {
	DayOfWeek    int             `json:"dia_semana"`
	Records      int64           `json:"registros"`
	Revenue      decimal.Decimal `json:"ingresos"`
	AveragePrice decimal.Decimal `json:"precio_promedio"`
}

// VehicleTypeStatResponse is one vehicle-type bucket.
type VehicleTypeStatResponse struct {
	VehicleType string          `json:"tipo_vehiculo"`
	Records     int64           `json:"registros"`
	Revenue     decimal.Decimal `json:"ingresos"`
}

// DetailedReportResponse bundles every aggregate.
type DetailedReportResponse struct {
	Summary     SummaryResponse           `json:"resumen"`
	TopWashers  []WasherStatResponse      `json:"top_lavadores"`
	TopServices []ServiceStatResponse     `json:"top_servicios"`
	ByDayOfWeek []DayOfWeekStatResponse   `json:"por_dia_semana"`
	ByVehicle   []VehicleTypeStatResponse `json:"por_tipo_vehiculo"`
}

// ToSummaryResponse converts a domain.Summary for a window.
func ToSummaryResponse(s *domain.Summary, from, to time.Time) SummaryResponse {
	return SummaryResponse{
		From:            from.Format("2006-01-02"),
		To:              to.Format("2006-01-02"),
		TotalRecords:    s.TotalRecords,
		TotalRevenue:    s.TotalRevenue,
		PaidRevenue:     s.PaidRevenue,
		PendingRevenue:  s.PendingRevenue,
		PaidCommission:  s.PaidCommission,
		TotalCommission: s.TotalCommission,
		AverageCost:     s.AverageCost,
		ActiveWashers:   s.ActiveWasherCnt,
	}
}

// ToDetailedReportResponse converts a domain.DetailedReport for a window.
func ToDetailedReportResponse(r *domain.DetailedReport, from, to time.Time) DetailedReportResponse {
	resp := DetailedReportResponse{
		Summary:     ToSummaryResponse(&r.Summary, from, to),
		TopWashers:  make([]WasherStatResponse, len(r.TopWashers)),
		TopServices: make([]ServiceStatResponse, len(r.TopServices)),
		ByDayOfWeek: make([]DayOfWeekStatResponse, len(r.ByDayOfWeek)),
		ByVehicle:   make([]VehicleTypeStatResponse, len(r.ByVehicle)),
	}
	for i, w := range r.TopWashers {
		resp.TopWashers[i] = WasherStatResponse{
			WasherID:     w.WasherID,
			WasherName:   w.WasherName,
			Services:     w.Services,
			Revenue:      w.Revenue,
			Commission:   w.Commission,
			AveragePrice: w.AveragePrice,
		}
	}
	for i, s := range r.TopServices {
		resp.TopServices[i] = ServiceStatResponse{
			ServiceID:    s.ServiceID,
			ServiceName:  s.ServiceName,
			Requests:     s.Requests,
			Revenue:      s.Revenue,
			AveragePrice: s.AveragePrice,
		}
	}
	for i, d := range r.ByDayOfWeek {
		resp.ByDayOfWeek[i] = DayOfWeekStatResponse{
			DayOfWeek:    d.DayOfWeek,
			Records:      d.Records,
			Revenue:      d.Revenue,
			AveragePrice: d.AveragePrice,
		}
	}
	for i, v := range r.ByVehicle {
		resp.ByVehicle[i] = VehicleTypeStatResponse{
			VehicleType: string(v.VehicleType),
			Records:     v.Records,
			Revenue:     v.Revenue,
		}
	}
	return resp
}
