package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/lavadero-app/lavadero-backend/internal/core/domain"
	portsrepo "github.com/lavadero-app/lavadero-backend/internal/core/ports/repositories"
)

// reportingRepository implements the ReportingRepository interface.
type reportingRepository struct {
	BaseRepository
}

func newReportingRepository(db PgxPool) portsrepo.ReportingRepository {
	return &reportingRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.ReportingRepository = (*reportingRepository)(nil)

// GetSummaryData aggregates the ledger over [from, to]. Paid and pending
// revenue are aggregated separately; the service derives the total from
// their sum so the totals invariant holds by construction.
func (r *reportingRepository) GetSummaryData(ctx context.Context, from, to time.Time) (*domain.Summary, error) {
	query := `
		SELECT
			COUNT(*),
			COALESCE(SUM(costo) FILTER (WHERE pago = 'Pagado'), 0),
			COALESCE(SUM(costo) FILTER (WHERE pago = 'Pendiente'), 0),
			COALESCE(SUM(costo * porcentaje / 100) FILTER (WHERE pago = 'Pagado'), 0),
			COALESCE(SUM(costo * porcentaje / 100), 0),
			COALESCE(AVG(costo), 0),
			COUNT(DISTINCT lavador_id)
		FROM registros
		WHERE fecha BETWEEN $1 AND $2;
	`
	var s domain.Summary
	err := r.Pool.QueryRow(ctx, query, from, to).Scan(
		&s.TotalRecords,
		&s.PaidRevenue,
		&s.PendingRevenue,
		&s.PaidCommission,
		&s.TotalCommission,
		&s.AverageCost,
		&s.ActiveWasherCnt,
	)
	if err != nil {
		return nil, fmt.Errorf("error querying summary data: %w", err)
	}
	return &s, nil
}

func (r *reportingRepository) GetTopWashers(ctx context.Context, from, to time.Time, limit int) ([]domain.WasherStat, error) {
	query := `
		SELECT
			l.lavador_id,
			TRIM(l.nombre || ' ' || l.apellido) AS lavador_nombre,
			COUNT(*) AS servicios,
			SUM(r.costo) AS ingresos,
			SUM(r.costo * r.porcentaje / 100) AS comisiones,
			AVG(r.costo) AS precio_promedio
		FROM registros r
		JOIN lavadores l ON l.lavador_id = r.lavador_id
		WHERE r.fecha BETWEEN $1 AND $2
		GROUP BY l.lavador_id, l.nombre, l.apellido
		ORDER BY ingresos DESC, lavador_nombre ASC
		LIMIT $3;
	`
	rows, err := r.Pool.Query(ctx, query, from, to, limit)
	if err != nil {
		return nil, fmt.Errorf("error querying top washers: %w", err)
	}
	defer rows.Close()

	result := []domain.WasherStat{}
	for rows.Next() {
		var w domain.WasherStat
		if err := rows.Scan(
			&w.WasherID,
			&w.WasherName,
			&w.Services,
			&w.Revenue,
			&w.Commission,
			&w.AveragePrice,
		); err != nil {
			return nil, fmt.Errorf("error scanning top washer row: %w", err)
		}
		result = append(result, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating top washer rows: %w", err)
	}
	return result, nil
}

func (r *reportingRepository) GetTopServices(ctx context.Context, from, to time.Time, limit int) ([]domain.ServiceStat, error) {
	query := `
		SELECT
			s.servicio_id,
			s.nombre,
			COUNT(*) AS solicitudes,
			SUM(r.costo) AS ingresos,
			AVG(r.costo) AS precio_promedio
		FROM registros r
		JOIN servicios s ON s.servicio_id = r.servicio_id
		WHERE r.fecha BETWEEN $1 AND $2
		GROUP BY s.servicio_id, s.nombre
		ORDER BY solicitudes DESC, s.nombre ASC
		LIMIT $3;
	`
	rows, err := r.Pool.Query(ctx, query, from, to, limit)
	if err != nil {
		return nil, fmt.Errorf("error querying top services: %w", err)
	}
	defer rows.Close()

	result := []domain.ServiceStat{}
	for rows.Next() {
		var s domain.ServiceStat
		if err := rows.Scan(
			&s.ServiceID,
			&s.ServiceName,
			&s.Requests,
			&s.Revenue,
			&s.AveragePrice,
		); err != nil {
			return nil, fmt.Errorf("error scanning top service row: %w", err)
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating top service rows: %w", err)
	}
	return result, nil
}

func (r *reportingRepository) GetByDayOfWeek(ctx context.Context, from, to time.Time) ([]domain.DayOfWeekStat, error) {
	query := `
		SELECT
			EXTRACT(ISODOW FROM fecha)::int AS dia_semana,
			COUNT(*) AS registros,
			SUM(costo) AS ingresos,
			AVG(costo) AS precio_promedio
		FROM registros
		WHERE fecha BETWEEN $1 AND $2
		GROUP BY dia_semana
		ORDER BY dia_semana ASC;
	`
	rows, err := r.Pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("error querying day-of-week stats: %w", err)
	}
	defer rows.Close()

	result := []domain.DayOfWeekStat{}
	for rows.Next() {
		var d domain.DayOfWeekStat
		if err := rows.Scan(&d.DayOfWeek, &d.Records, &d.Revenue, &d.AveragePrice); err != nil {
			return nil, fmt.Errorf("error scanning day-of-week row: %w", err)
		}
		result = append(result, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating day-of-week rows: %w", err)
	}
	return result, nil
}

func (r *reportingRepository) GetByVehicleType(ctx context.Context, from, to time.Time) ([]domain.VehicleTypeStat, error) {
	query := `
		SELECT
			tipo_vehiculo,
			COUNT(*) AS registros,
			SUM(costo) AS ingresos
		FROM registros
		WHERE fecha BETWEEN $1 AND $2
		GROUP BY tipo_vehiculo
		ORDER BY registros DESC, tipo_vehiculo ASC;
	`
	rows, err := r.Pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("error querying vehicle type stats: %w", err)
	}
	defer rows.Close()

	result := []domain.VehicleTypeStat{}
	for rows.Next() {
		var v domain.VehicleTypeStat
		var vt string
		if err := rows.Scan(&vt, &v.Records, &v.Revenue); err != nil {
			return nil, fmt.Errorf("error scanning vehicle type row: %w", err)
		}
		v.VehicleType = domain.VehicleType(vt)
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating vehicle type rows: %w", err)
	}
	return result, nil
}
