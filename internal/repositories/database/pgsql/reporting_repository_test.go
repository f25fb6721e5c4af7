package pgsql

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockReportingRepo(t *testing.T) (*reportingRepository, pgxmock.PgxPoolIface) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return &reportingRepository{BaseRepository: BaseRepository{Pool: mock}}, mock
}

func reportWindow() (time.Time, time.Time) {
	return time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
}

func TestGetTopWashers_RevenueThenNameOrdering(t *testing.T) {
	repo, mock := newMockReportingRepo(t)
	from, to := reportWindow()

	// Two washers tied on revenue come back in name order.
	rows := pgxmock.NewRows([]string{"lavador_id", "lavador_nombre", "servicios", "ingresos", "comisiones", "precio_promedio"}).
		AddRow("w-3", "Zoe Ruiz", int64(4), decimal.NewFromInt(90000), decimal.NewFromInt(27000), decimal.NewFromInt(22500)).
		AddRow("w-1", "Ana López", int64(2), decimal.NewFromInt(50000), decimal.NewFromInt(15000), decimal.NewFromInt(25000)).
		AddRow("w-2", "Pedro Gómez", int64(2), decimal.NewFromInt(50000), decimal.NewFromInt(15000), decimal.NewFromInt(25000))

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY ingresos DESC, lavador_nombre ASC")).
		WithArgs(from, to, 10).
		WillReturnRows(rows)

	result, err := repo.GetTopWashers(context.Background(), from, to, 10)

	require.NoError(t, err)
	require.Len(t, result, 3)
	assert.Equal(t, "Zoe Ruiz", result[0].WasherName)
	assert.Equal(t, "Ana López", result[1].WasherName)
	assert.Equal(t, "Pedro Gómez", result[2].WasherName)
	assert.True(t, result[1].Revenue.Equal(result[2].Revenue))

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTopServices_RequestsThenNameOrdering(t *testing.T) {
	repo, mock := newMockReportingRepo(t)
	from, to := reportWindow()

	rows := pgxmock.NewRows([]string{"servicio_id", "nombre", "solicitudes", "ingresos", "precio_promedio"}).
		AddRow("s-2", "Encerado", int64(5), decimal.NewFromInt(150000), decimal.NewFromInt(30000)).
		AddRow("s-1", "Lavado Básico", int64(3), decimal.NewFromInt(45000), decimal.NewFromInt(15000)).
		AddRow("s-3", "Lavado Premium", int64(3), decimal.NewFromInt(90000), decimal.NewFromInt(30000))

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY solicitudes DESC, s.nombre ASC")).
		WithArgs(from, to, 10).
		WillReturnRows(rows)

	result, err := repo.GetTopServices(context.Background(), from, to, 10)

	require.NoError(t, err)
	require.Len(t, result, 3)
	assert.Equal(t, "Encerado", result[0].ServiceName)
	assert.Equal(t, "Lavado Básico", result[1].ServiceName)
	assert.Equal(t, "Lavado Premium", result[2].ServiceName)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByVehicleType_CountThenTypeOrdering(t *testing.T) {
	repo, mock := newMockReportingRepo(t)
	from, to := reportWindow()

	rows := pgxmock.NewRows([]string{"tipo_vehiculo", "registros", "ingresos"}).
		AddRow("car", int64(6), decimal.NewFromInt(120000)).
		AddRow("motorcycle", int64(2), decimal.NewFromInt(20000)).
		AddRow("suv", int64(2), decimal.NewFromInt(60000))

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY registros DESC, tipo_vehiculo ASC")).
		WithArgs(from, to).
		WillReturnRows(rows)

	result, err := repo.GetByVehicleType(context.Background(), from, to)

	require.NoError(t, err)
	require.Len(t, result, 3)
	assert.Equal(t, "car", string(result[0].VehicleType))
	assert.Equal(t, "motorcycle", string(result[1].VehicleType))
	assert.Equal(t, "suv", string(result[2].VehicleType))

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByDayOfWeek_IsoDayAscending(t *testing.T) {
	repo, mock := newMockReportingRepo(t)
	from, to := reportWindow()

	rows := pgxmock.NewRows([]string{"dia_semana", "registros", "ingresos", "precio_promedio"}).
		AddRow(1, int64(3), decimal.NewFromInt(45000), decimal.NewFromInt(15000)).
		AddRow(6, int64(8), decimal.NewFromInt(200000), decimal.NewFromInt(25000))

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY dia_semana ASC")).
		WithArgs(from, to).
		WillReturnRows(rows)

	result, err := repo.GetByDayOfWeek(context.Background(), from, to)

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, 1, result[0].DayOfWeek)
	assert.Equal(t, 6, result[1].DayOfWeek)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetSummaryData_WindowBounds(t *testing.T) {
	repo, mock := newMockReportingRepo(t)
	from, to := reportWindow()

	rows := pgxmock.NewRows([]string{"count", "pagados", "pendientes", "comisiones_pagadas", "comisiones", "promedio", "lavadores"}).
		AddRow(int64(10), decimal.NewFromInt(180000), decimal.NewFromInt(40000),
			decimal.NewFromInt(54000), decimal.NewFromInt(66000), decimal.NewFromInt(22000), int64(3))

	mock.ExpectQuery(regexp.QuoteMeta("WHERE fecha BETWEEN $1 AND $2")).
		WithArgs(from, to).
		WillReturnRows(rows)

	summary, err := repo.GetSummaryData(context.Background(), from, to)

	require.NoError(t, err)
	assert.Equal(t, int64(10), summary.TotalRecords)
	assert.True(t, summary.PaidRevenue.Equal(decimal.NewFromInt(180000)))
	assert.Equal(t, int64(3), summary.ActiveWasherCnt)

	require.NoError(t, mock.ExpectationsWereMet())
}
