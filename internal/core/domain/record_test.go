package domain_test

import (
	"testing"

	"github.com/lavadero-app/lavadero-backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRecordCommission(t *testing.T) {
	tests := []struct {
		name       string
		cost       string
		percentage string
		want       string
	}{
		{"thirty percent", "10000", "30", "3000"},
		{"half", "20000", "50", "10000"},
		{"zero percentage", "18000", "0", "0"},
		{"fractional result", "10001", "33", "3300.33"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := domain.Record{
				Cost:       decimal.RequireFromString(tt.cost),
				Percentage: decimal.RequireFromString(tt.percentage),
			}
			assert.True(t, r.Commission().Equal(decimal.RequireFromString(tt.want)),
				"got %s", r.Commission())
		})
	}
}

func TestVehicleTypeIsValid(t *testing.T) {
	for _, vt := range domain.VehicleTypes {
		assert.True(t, vt.IsValid())
	}
	assert.False(t, domain.VehicleType("bicycle").IsValid())
	assert.False(t, domain.VehicleType("").IsValid())
}

func TestPaymentStatusIsValid(t *testing.T) {
	assert.True(t, domain.PaymentPending.IsValid())
	assert.True(t, domain.PaymentPaid.IsValid())
	assert.False(t, domain.PaymentStatus("pagado").IsValid()) // case-sensitive
}
