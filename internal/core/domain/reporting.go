package domain

import "github.com/shopspring/decimal"

// Summary aggregates the ledger over a date window.
type Summary struct {
	TotalRecords    int64
	TotalRevenue    decimal.Decimal
	PaidRevenue     decimal.Decimal
	PendingRevenue  decimal.Decimal
	PaidCommission  decimal.Decimal
	TotalCommission decimal.Decimal
	AverageCost     decimal.Decimal
	ActiveWasherCnt int64
}

// WasherStat is a per-washer breakdown ranked by revenue.
type WasherStat struct {
	WasherID     string
	WasherName   string
	Services     int64
	Revenue      decimal.Decimal
	Commission   decimal.Decimal
	AveragePrice decimal.Decimal
}

// ServiceStat is a per-service breakdown ranked by request count.
type ServiceStat struct {
	ServiceID    string
	ServiceName  string
	Requests     int64
	Revenue      decimal.Decimal
	AveragePrice decimal.Decimal
}

// DayOfWeekStat is one day-of-week bucket (ISO index, Monday=1).
type DayOfWeekStat struct {
	DayOfWeek    int
	Records      int64
	Revenue      decimal.Decimal
	AveragePrice decimal.Decimal
}

// VehicleTypeStat is a per-vehicle-type breakdown ranked by count.
type VehicleTypeStat struct {
	VehicleType VehicleType
	Records     int64
	Revenue     decimal.Decimal
}

// DetailedReport bundles every aggregate for the detailed report endpoint.
type DetailedReport struct {
	Summary     Summary
	TopWashers  []WasherStat
	TopServices []ServiceStat
	ByDayOfWeek []DayOfWeekStat
	ByVehicle   []VehicleTypeStat
}
