package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/lavadero-app/lavadero-backend/internal/apperrors"
	"github.com/lavadero-app/lavadero-backend/internal/core/domain"
	portsrepo "github.com/lavadero-app/lavadero-backend/internal/core/ports/repositories"
)

type pgxServiceRepository struct {
	BaseRepository
}

func newPgxServiceRepository(db PgxPool) portsrepo.ServiceRepository {
	return &pgxServiceRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.ServiceRepository = (*pgxServiceRepository)(nil)

func (r *pgxServiceRepository) SaveService(ctx context.Context, service domain.Service) error {
	query := `
        INSERT INTO servicios (servicio_id, nombre, descripcion, precio_base, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
    `
	_, err := r.Pool.Exec(ctx, query,
		service.ServiceID,
		service.Name,
		service.Description,
		service.BasePrice,
		service.CreatedAt,
		service.CreatedBy,
		service.LastUpdatedAt,
		service.LastUpdatedBy,
	)
	if err != nil {
		if mapped := mapPgError(err); mapped != err {
			return mapped
		}
		return fmt.Errorf("failed to save service: %w", err)
	}
	return nil
}

func (r *pgxServiceRepository) FindServiceByID(ctx context.Context, serviceID string) (*domain.Service, error) {
	query := `
		SELECT servicio_id, nombre, descripcion, precio_base, created_at, created_by, last_updated_at, last_updated_by
		FROM servicios
		WHERE servicio_id = $1;
	`
	var s domain.Service
	err := r.Pool.QueryRow(ctx, query, serviceID).Scan(
		&s.ServiceID,
		&s.Name,
		&s.Description,
		&s.BasePrice,
		&s.CreatedAt,
		&s.CreatedBy,
		&s.LastUpdatedAt,
		&s.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find service by ID %s: %w", serviceID, err)
	}
	return &s, nil
}

func (r *pgxServiceRepository) FindServices(ctx context.Context) ([]domain.Service, error) {
	query := `
		SELECT servicio_id, nombre, descripcion, precio_base, created_at, created_by, last_updated_at, last_updated_by
		FROM servicios
		ORDER BY nombre ASC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query services: %w", err)
	}
	defer rows.Close()

	services := []domain.Service{}
	for rows.Next() {
		var s domain.Service
		if err := rows.Scan(
			&s.ServiceID,
			&s.Name,
			&s.Description,
			&s.BasePrice,
			&s.CreatedAt,
			&s.CreatedBy,
			&s.LastUpdatedAt,
			&s.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan service row: %w", err)
		}
		services = append(services, s)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating service rows: %w", rows.Err())
	}
	return services, nil
}

func (r *pgxServiceRepository) FindActivePrice(ctx context.Context, serviceID string, vehicleType domain.VehicleType) (*domain.ServicePrice, error) {
	query := `
		SELECT servicio_id, tipo_vehiculo, precio, activo, created_at, created_by, last_updated_at, last_updated_by
		FROM servicio_precios
		WHERE servicio_id = $1 AND tipo_vehiculo = $2 AND activo;
	`
	var p domain.ServicePrice
	var vt string
	err := r.Pool.QueryRow(ctx, query, serviceID, string(vehicleType)).Scan(
		&p.ServiceID,
		&vt,
		&p.Price,
		&p.Active,
		&p.CreatedAt,
		&p.CreatedBy,
		&p.LastUpdatedAt,
		&p.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNoPriceDefined
		}
		return nil, fmt.Errorf("failed to find active price: %w", err)
	}
	p.VehicleType = domain.VehicleType(vt)
	return &p, nil
}

// UpsertPrice retires the current active entry for the pair and inserts the
// new one inside a single transaction so lookups never see two active rows.
func (r *pgxServiceRepository) UpsertPrice(ctx context.Context, price domain.ServicePrice) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	deactivate := `
        UPDATE servicio_precios
        SET activo = FALSE, last_updated_at = $1, last_updated_by = $2
        WHERE servicio_id = $3 AND tipo_vehiculo = $4 AND activo;
    `
	if _, err := tx.Exec(ctx, deactivate, time.Now(), price.LastUpdatedBy, price.ServiceID, string(price.VehicleType)); err != nil {
		return fmt.Errorf("failed to deactivate previous price: %w", err)
	}

	insert := `
        INSERT INTO servicio_precios (precio_id, servicio_id, tipo_vehiculo, precio, activo, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, TRUE, $5, $6, $7, $8);
    `
	if _, err := tx.Exec(ctx, insert,
		uuid.NewString(),
		price.ServiceID,
		string(price.VehicleType),
		price.Price,
		price.CreatedAt,
		price.CreatedBy,
		price.LastUpdatedAt,
		price.LastUpdatedBy,
	); err != nil {
		if mapped := mapPgError(err); mapped != err {
			return mapped
		}
		return fmt.Errorf("failed to insert price: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit price upsert: %w", err)
	}
	return nil
}

func (r *pgxServiceRepository) FindPricesForVehicle(ctx context.Context, vehicleType domain.VehicleType) ([]domain.ServiceWithPrice, error) {
	query := `
		SELECT s.servicio_id, s.nombre, s.descripcion, s.precio_base, s.created_at, s.created_by, s.last_updated_at, s.last_updated_by,
		       p.tipo_vehiculo, p.precio
		FROM servicio_precios p
		JOIN servicios s ON s.servicio_id = p.servicio_id
		WHERE p.tipo_vehiculo = $1 AND p.activo
		ORDER BY s.nombre ASC;
	`
	rows, err := r.Pool.Query(ctx, query, string(vehicleType))
	if err != nil {
		return nil, fmt.Errorf("failed to query prices for vehicle type: %w", err)
	}
	defer rows.Close()

	result := []domain.ServiceWithPrice{}
	for rows.Next() {
		var row domain.ServiceWithPrice
		var vt string
		if err := rows.Scan(
			&row.ServiceID,
			&row.Name,
			&row.Description,
			&row.BasePrice,
			&row.CreatedAt,
			&row.CreatedBy,
			&row.LastUpdatedAt,
			&row.LastUpdatedBy,
			&vt,
			&row.Price,
		); err != nil {
			return nil, fmt.Errorf("failed to scan price row: %w", err)
		}
		row.VehicleType = domain.VehicleType(vt)
		result = append(result, row)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating price rows: %w", rows.Err())
	}
	return result, nil
}

func (r *pgxServiceRepository) FindAllActivePrices(ctx context.Context) ([]domain.ServicePrice, error) {
	query := `
		SELECT servicio_id, tipo_vehiculo, precio, activo, created_at, created_by, last_updated_at, last_updated_by
		FROM servicio_precios
		WHERE activo
		ORDER BY servicio_id ASC, tipo_vehiculo ASC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query active prices: %w", err)
	}
	defer rows.Close()

	prices := []domain.ServicePrice{}
	for rows.Next() {
		var p domain.ServicePrice
		var vt string
		if err := rows.Scan(
			&p.ServiceID,
			&vt,
			&p.Price,
			&p.Active,
			&p.CreatedAt,
			&p.CreatedBy,
			&p.LastUpdatedAt,
			&p.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan active price row: %w", err)
		}
		p.VehicleType = domain.VehicleType(vt)
		prices = append(prices, p)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating active price rows: %w", rows.Err())
	}
	return prices, nil
}

func (r *pgxServiceRepository) FindPopularServices(ctx context.Context, vehicleType *domain.VehicleType, since time.Time, limit int) ([]domain.PopularService, error) {
	query := `
		SELECT s.servicio_id, s.nombre, COUNT(*) AS usos
		FROM registros r
		JOIN servicios s ON s.servicio_id = r.servicio_id
		WHERE r.fecha >= $1
		  AND ($2::text IS NULL OR r.tipo_vehiculo = $2)
		GROUP BY s.servicio_id, s.nombre
		ORDER BY usos DESC, s.nombre ASC
		LIMIT $3;
	`
	var vt *string
	if vehicleType != nil {
		v := string(*vehicleType)
		vt = &v
	}
	rows, err := r.Pool.Query(ctx, query, since, vt, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query popular services: %w", err)
	}
	defer rows.Close()

	result := []domain.PopularService{}
	for rows.Next() {
		var p domain.PopularService
		if err := rows.Scan(&p.ServiceID, &p.Name, &p.UsageCnt); err != nil {
			return nil, fmt.Errorf("failed to scan popular service row: %w", err)
		}
		result = append(result, p)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating popular service rows: %w", rows.Err())
	}
	return result, nil
}
