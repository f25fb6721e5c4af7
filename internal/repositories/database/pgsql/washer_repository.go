package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/lavadero-app/lavadero-backend/internal/apperrors"
	"github.com/lavadero-app/lavadero-backend/internal/core/domain"
	portsrepo "github.com/lavadero-app/lavadero-backend/internal/core/ports/repositories"
)

type pgxWasherRepository struct {
	BaseRepository
}

func newPgxWasherRepository(db PgxPool) portsrepo.WasherRepository {
	return &pgxWasherRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.WasherRepository = (*pgxWasherRepository)(nil)

func (r *pgxWasherRepository) SaveWasher(ctx context.Context, washer domain.Washer) error {
	query := `
        INSERT INTO lavadores (lavador_id, nombre, apellido, activo, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
    `
	_, err := r.Pool.Exec(ctx, query,
		washer.WasherID,
		washer.Name,
		washer.LastName,
		washer.Active,
		washer.CreatedAt,
		washer.CreatedBy,
		washer.LastUpdatedAt,
		washer.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save washer: %w", err)
	}
	return nil
}

func (r *pgxWasherRepository) FindWasherByID(ctx context.Context, washerID string) (*domain.Washer, error) {
	query := `
		SELECT lavador_id, nombre, apellido, activo, created_at, created_by, last_updated_at, last_updated_by
		FROM lavadores
		WHERE lavador_id = $1;
	`
	var w domain.Washer
	err := r.Pool.QueryRow(ctx, query, washerID).Scan(
		&w.WasherID,
		&w.Name,
		&w.LastName,
		&w.Active,
		&w.CreatedAt,
		&w.CreatedBy,
		&w.LastUpdatedAt,
		&w.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find washer by ID %s: %w", washerID, err)
	}
	return &w, nil
}

func (r *pgxWasherRepository) FindActiveWashers(ctx context.Context) ([]domain.Washer, error) {
	query := `
		SELECT lavador_id, nombre, apellido, activo, created_at, created_by, last_updated_at, last_updated_by
		FROM lavadores
		WHERE activo
		ORDER BY nombre ASC, apellido ASC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query washers: %w", err)
	}
	defer rows.Close()

	washers := []domain.Washer{}
	for rows.Next() {
		var w domain.Washer
		if err := rows.Scan(
			&w.WasherID,
			&w.Name,
			&w.LastName,
			&w.Active,
			&w.CreatedAt,
			&w.CreatedBy,
			&w.LastUpdatedAt,
			&w.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan washer row: %w", err)
		}
		washers = append(washers, w)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating washer rows: %w", rows.Err())
	}
	return washers, nil
}

func (r *pgxWasherRepository) SetWasherActive(ctx context.Context, washerID string, active bool, updatedBy string) error {
	query := `
        UPDATE lavadores
        SET activo = $1, last_updated_at = $2, last_updated_by = $3
        WHERE lavador_id = $4;
    `
	cmdTag, err := r.Pool.Exec(ctx, query, active, time.Now(), updatedBy, washerID)
	if err != nil {
		return fmt.Errorf("failed to update washer active flag: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
