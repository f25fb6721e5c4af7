package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/lavadero-app/lavadero-backend/internal/apperrors"
	"github.com/lavadero-app/lavadero-backend/internal/core/domain"
	portsrepo "github.com/lavadero-app/lavadero-backend/internal/core/ports/repositories"
)

type pgxRecordRepository struct {
	BaseRepository
}

func newPgxRecordRepository(db PgxPool) portsrepo.RecordRepository {
	return &pgxRecordRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.RecordRepository = (*pgxRecordRepository)(nil)

const recordSelect = `
	SELECT r.registro_id, r.fecha, r.hora, r.tipo_vehiculo, r.placa,
	       r.servicio_id, s.nombre AS servicio_nombre,
	       r.costo, r.porcentaje,
	       r.lavador_id, TRIM(l.nombre || ' ' || l.apellido) AS lavador_nombre,
	       COALESCE(r.observaciones, ''), r.pago,
	       r.created_at, r.created_by, r.last_updated_at, r.last_updated_by
	FROM registros r
	JOIN servicios s ON s.servicio_id = r.servicio_id
	JOIN lavadores l ON l.lavador_id = r.lavador_id
`

func scanRecord(row pgx.Row) (*domain.Record, error) {
	var rec domain.Record
	var vt, pago string
	err := row.Scan(
		&rec.RecordID,
		&rec.Date,
		&rec.Time,
		&vt,
		&rec.Plate,
		&rec.ServiceID,
		&rec.ServiceName,
		&rec.Cost,
		&rec.Percentage,
		&rec.WasherID,
		&rec.WasherName,
		&rec.Observations,
		&pago,
		&rec.CreatedAt,
		&rec.CreatedBy,
		&rec.LastUpdatedAt,
		&rec.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	rec.VehicleType = domain.VehicleType(vt)
	rec.Payment = domain.PaymentStatus(pago)
	return &rec, nil
}

func (r *pgxRecordRepository) SaveRecord(ctx context.Context, record domain.Record) error {
	query := `
        INSERT INTO registros (registro_id, fecha, hora, tipo_vehiculo, placa, servicio_id, costo, porcentaje, lavador_id, observaciones, pago, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NULLIF($10, ''), $11, $12, $13, $14, $15);
    `
	_, err := r.Pool.Exec(ctx, query,
		record.RecordID,
		record.Date,
		record.Time,
		string(record.VehicleType),
		record.Plate,
		record.ServiceID,
		record.Cost,
		record.Percentage,
		record.WasherID,
		record.Observations,
		string(record.Payment),
		record.CreatedAt,
		record.CreatedBy,
		record.LastUpdatedAt,
		record.LastUpdatedBy,
	)
	if err != nil {
		if mapped := mapPgError(err); mapped != err {
			return mapped
		}
		return fmt.Errorf("failed to save record: %w", err)
	}
	return nil
}

func (r *pgxRecordRepository) FindRecordByID(ctx context.Context, recordID string) (*domain.Record, error) {
	query := recordSelect + ` WHERE r.registro_id = $1;`
	rec, err := scanRecord(r.Pool.QueryRow(ctx, query, recordID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find record by ID %s: %w", recordID, err)
	}
	return rec, nil
}

func (r *pgxRecordRepository) UpdateRecord(ctx context.Context, record domain.Record) error {
	query := `
        UPDATE registros
        SET fecha = $1, hora = $2, tipo_vehiculo = $3, placa = $4, servicio_id = $5,
            costo = $6, porcentaje = $7, lavador_id = $8, observaciones = NULLIF($9, ''),
            pago = $10, last_updated_at = $11, last_updated_by = $12
        WHERE registro_id = $13;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		record.Date,
		record.Time,
		string(record.VehicleType),
		record.Plate,
		record.ServiceID,
		record.Cost,
		record.Percentage,
		record.WasherID,
		record.Observations,
		string(record.Payment),
		record.LastUpdatedAt,
		record.LastUpdatedBy,
		record.RecordID,
	)
	if err != nil {
		if mapped := mapPgError(err); mapped != err {
			return mapped
		}
		return fmt.Errorf("failed to update record: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *pgxRecordRepository) UpdatePayment(ctx context.Context, recordID string, status domain.PaymentStatus, updatedBy string) error {
	query := `
        UPDATE registros
        SET pago = $1, last_updated_at = $2, last_updated_by = $3
        WHERE registro_id = $4;
    `
	cmdTag, err := r.Pool.Exec(ctx, query, string(status), time.Now(), updatedBy, recordID)
	if err != nil {
		return fmt.Errorf("failed to update record payment: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *pgxRecordRepository) DeleteRecord(ctx context.Context, recordID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM registros WHERE registro_id = $1;`, recordID)
	if err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *pgxRecordRepository) FindRecords(ctx context.Context, filter domain.RecordFilter) ([]domain.Record, error) {
	conditions := []string{}
	args := []any{}

	addArg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if filter.Plate != "" {
		conditions = append(conditions, "r.placa ILIKE "+addArg("%"+filter.Plate+"%"))
	}
	if filter.Date != nil {
		conditions = append(conditions, "r.fecha = "+addArg(*filter.Date))
	}
	if filter.DateFrom != nil {
		conditions = append(conditions, "r.fecha >= "+addArg(*filter.DateFrom))
	}
	if filter.DateTo != nil {
		conditions = append(conditions, "r.fecha <= "+addArg(*filter.DateTo))
	}
	if filter.ServiceID != "" {
		conditions = append(conditions, "r.servicio_id = "+addArg(filter.ServiceID))
	}
	if filter.Washer != "" {
		conditions = append(conditions, "(l.nombre || ' ' || l.apellido) ILIKE "+addArg("%"+filter.Washer+"%"))
	}

	query := recordSelect
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY r.fecha DESC, r.hora DESC"
	query += " LIMIT " + addArg(filter.Limit)
	query += " OFFSET " + addArg(filter.Offset)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer rows.Close()

	records := []domain.Record{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan record row: %w", err)
		}
		records = append(records, *rec)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating record rows: %w", rows.Err())
	}
	return records, nil
}
