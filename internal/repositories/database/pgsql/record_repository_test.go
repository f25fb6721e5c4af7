package pgsql

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/lavadero-app/lavadero-backend/internal/core/domain"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var recordColumns = []string{
	"registro_id", "fecha", "hora", "tipo_vehiculo", "placa",
	"servicio_id", "servicio_nombre", "costo", "porcentaje",
	"lavador_id", "lavador_nombre", "observaciones", "pago",
	"created_at", "created_by", "last_updated_at", "last_updated_by",
}

func newMockRecordRepo(t *testing.T) (*pgxRecordRepository, pgxmock.PgxPoolIface) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return &pgxRecordRepository{BaseRepository: BaseRepository{Pool: mock}}, mock
}

func recordRow(rows *pgxmock.Rows, id string, date time.Time, hour string) *pgxmock.Rows {
	now := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	return rows.AddRow(
		id, date, hour, "car", "ABC123",
		"svc-1", "Lavado Básico", decimal.NewFromInt(25000), decimal.NewFromInt(30),
		"wsh-1", "Ana López", "", "Pendiente",
		now, "usr-1", now, "usr-1",
	)
}

func TestFindRecords_NewestFirstOrdering(t *testing.T) {
	repo, mock := newMockRecordRepo(t)

	newer := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
	older := time.Date(2026, 8, 19, 0, 0, 0, 0, time.UTC)

	rows := pgxmock.NewRows(recordColumns)
	rows = recordRow(rows, "rec-3", newer, "16:30")
	rows = recordRow(rows, "rec-2", newer, "09:00")
	rows = recordRow(rows, "rec-1", older, "18:00")

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY r.fecha DESC, r.hora DESC LIMIT $1 OFFSET $2")).
		WithArgs(50, 0).
		WillReturnRows(rows)

	records, err := repo.FindRecords(context.Background(), domain.RecordFilter{Limit: 50, Offset: 0})

	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "rec-3", records[0].RecordID)
	assert.Equal(t, "rec-2", records[1].RecordID)
	assert.Equal(t, "rec-1", records[2].RecordID)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindRecords_FilterConditions(t *testing.T) {
	repo, mock := newMockRecordRepo(t)

	// Plate and washer filters land as case-insensitive substring matches,
	// ANDed, before the paging arguments.
	mock.ExpectQuery(regexp.QuoteMeta("WHERE r.placa ILIKE $1 AND (l.nombre || ' ' || l.apellido) ILIKE $2")).
		WithArgs("%abc%", "%ana%", 50, 0).
		WillReturnRows(pgxmock.NewRows(recordColumns))

	records, err := repo.FindRecords(context.Background(), domain.RecordFilter{
		Plate:  "abc",
		Washer: "ana",
		Limit:  50,
		Offset: 0,
	})

	require.NoError(t, err)
	assert.Empty(t, records)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindRecords_DateRangeFilter(t *testing.T) {
	repo, mock := newMockRecordRepo(t)

	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE r.fecha >= $1 AND r.fecha <= $2")).
		WithArgs(from, to, 50, 0).
		WillReturnRows(pgxmock.NewRows(recordColumns))

	_, err := repo.FindRecords(context.Background(), domain.RecordFilter{
		DateFrom: &from,
		DateTo:   &to,
		Limit:    50,
		Offset:   0,
	})

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
