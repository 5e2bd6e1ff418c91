package repository

import (
	"context"
	"fmt"

	pgx "github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Surajsachintha/itams-haci-project/internal/entity"
)

type DashboardRepository struct {
	db *pgxpool.Pool
}

func NewDashboardRepository(db *pgxpool.Pool) *DashboardRepository {
	return &DashboardRepository{db: db}
}

func (r *DashboardRepository) Stats(ctx context.Context) (entity.DashboardStats, error) {
	q := `
	SELECT
		COUNT(*),
		COUNT(*) FILTER (WHERE status = $1),
		COUNT(*) FILTER (WHERE status = $2),
		COUNT(*) FILTER (WHERE status = $3),
		COALESCE(SUM(purchase_value), 0),
		COUNT(*) FILTER (WHERE created_at >= NOW() - INTERVAL '30 days'),
		COUNT(*) FILTER (
			WHERE warranty_expire_date BETWEEN CURRENT_DATE AND CURRENT_DATE + 30
			AND status = $1
		),
		COUNT(DISTINCT station_id)
	FROM dms_devices
	WHERE is_delete = 0`

	var s entity.DashboardStats

	err := r.db.QueryRow(ctx, q,
		entity.DeviceStatusActive,
		entity.DeviceStatusInRepair,
		entity.DeviceStatusCondemned,
	).Scan(
		&s.TotalDevices,
		&s.ActiveDevices,
		&s.InRepair,
		&s.Condemned,
		&s.TotalValue,
		&s.RecentRegistrations,
		&s.WarrantyExpiring,
		&s.Divisions,
	)
	if err != nil {
		return entity.DashboardStats{}, fmt.Errorf("dashboard stats: %w", err)
	}

	return s, nil
}

func (r *DashboardRepository) DevicesByCategory(ctx context.Context) ([]entity.CategoryCount, error) {
	q := `
	SELECT c.id, c.category_name, COUNT(d.id) AS count
	FROM code_categories c
	LEFT JOIN dms_devices d ON c.id = d.category_id AND d.is_delete = 0
	GROUP BY c.id, c.category_name
	ORDER BY count DESC, c.id`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.CategoryCount, error) {
		var c entity.CategoryCount
		err := row.Scan(&c.CategoryID, &c.CategoryName, &c.Count)

		return c, err
	})
}

func (r *DashboardRepository) DevicesByStation(ctx context.Context, limit int) ([]entity.StationCount, error) {
	q := `
	SELECT s.station_id, s.station_name, COALESCE(dv.division_name, 'Unknown'), COUNT(d.id) AS count
	FROM code_stations s
	LEFT JOIN code_divisions dv ON s.division_id = dv.division_id
	LEFT JOIN dms_devices d ON s.station_id = d.station_id AND d.is_delete = 0
	GROUP BY s.station_id, s.station_name, dv.division_name
	HAVING COUNT(d.id) > 0
	ORDER BY count DESC, s.station_id
	LIMIT $1`

	rows, err := r.db.Query(ctx, q, limit)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.StationCount, error) {
		var s entity.StationCount
		err := row.Scan(&s.StationID, &s.StationName, &s.DivisionName, &s.Count)

		return s, err
	})
}

func (r *DashboardRepository) TopBrands(ctx context.Context, limit int) ([]entity.BrandCount, error) {
	q := `
	SELECT b.id, b.brand_name, COUNT(d.id) AS count
	FROM code_brand_name b
	LEFT JOIN dms_devices d ON b.id = d.brand_id AND d.is_delete = 0
	GROUP BY b.id, b.brand_name
	HAVING COUNT(d.id) > 0
	ORDER BY count DESC, b.id
	LIMIT $1`

	rows, err := r.db.Query(ctx, q, limit)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.BrandCount, error) {
		var b entity.BrandCount
		err := row.Scan(&b.BrandID, &b.BrandName, &b.Count)

		return b, err
	})
}

func (r *DashboardRepository) StatusDistribution(ctx context.Context) ([]entity.StatusCount, error) {
	q := `
	SELECT status, COUNT(*) AS count
	FROM dms_devices
	WHERE is_delete = 0
	GROUP BY status
	ORDER BY count DESC, status`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.StatusCount, error) {
		var s entity.StatusCount
		err := row.Scan(&s.Status, &s.Count)

		return s, err
	})
}

// RegistrationTrend counts registrations per month over the last 12 months.
func (r *DashboardRepository) RegistrationTrend(ctx context.Context) ([]entity.MonthCount, error) {
	q := `
	SELECT TO_CHAR(created_at, 'YYYY-MM') AS month, COUNT(*)
	FROM dms_devices
	WHERE created_at >= NOW() - INTERVAL '12 months' AND is_delete = 0
	GROUP BY month
	ORDER BY month`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.MonthCount, error) {
		var m entity.MonthCount
		err := row.Scan(&m.Month, &m.Count)

		return m, err
	})
}

// WarrantyAlerts lists active devices whose warranty ends within the next days.
func (r *DashboardRepository) WarrantyAlerts(ctx context.Context, days int) ([]entity.WarrantyAlert, error) {
	q := `
	SELECT
		d.id,
		d.asset_tag_number,
		d.serial_number,
		d.warranty_expire_date,
		COALESCE(b.brand_name, 'Unknown'),
		COALESCE(m.model_name, 'Unknown'),
		COALESCE(s.station_name, 'Unknown'),
		d.warranty_expire_date - CURRENT_DATE
	FROM dms_devices d
	LEFT JOIN code_brand_name b ON d.brand_id = b.id
	LEFT JOIN code_models m ON d.model_id = m.id
	LEFT JOIN code_stations s ON d.station_id = s.station_id
	WHERE d.warranty_expire_date BETWEEN CURRENT_DATE AND CURRENT_DATE + $1::int
	AND d.status = $2
	AND d.is_delete = 0
	ORDER BY d.warranty_expire_date, d.id`

	rows, err := r.db.Query(ctx, q, days, entity.DeviceStatusActive)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.WarrantyAlert, error) {
		var a entity.WarrantyAlert
		err := row.Scan(
			&a.ID,
			&a.AssetTagNumber,
			&a.SerialNumber,
			&a.WarrantyExpireDate,
			&a.BrandName,
			&a.ModelName,
			&a.StationName,
			&a.DaysRemaining,
		)

		return a, err
	})
}

func (r *DashboardRepository) ValueByCategory(ctx context.Context) ([]entity.CategoryValue, error) {
	q := `
	SELECT
		c.id,
		c.category_name,
		COALESCE(SUM(d.purchase_value), 0) AS total_value,
		COUNT(d.id),
		ROUND(COALESCE(AVG(d.purchase_value), 0), 2)
	FROM code_categories c
	LEFT JOIN dms_devices d ON c.id = d.category_id AND d.is_delete = 0
	GROUP BY c.id, c.category_name
	HAVING COALESCE(SUM(d.purchase_value), 0) > 0
	ORDER BY total_value DESC, c.id`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.CategoryValue, error) {
		var v entity.CategoryValue
		err := row.Scan(&v.CategoryID, &v.CategoryName, &v.TotalValue, &v.DeviceCount, &v.AvgValue)

		return v, err
	})
}

func (r *DashboardRepository) DevicesByAge(ctx context.Context) ([]entity.AgeGroupCount, error) {
	q := `
	WITH aged AS (
		SELECT
			(EXTRACT(YEAR FROM AGE(NOW(), purchase_date)) * 12
				+ EXTRACT(MONTH FROM AGE(NOW(), purchase_date)))::int AS months
		FROM dms_devices
		WHERE is_delete = 0 AND purchase_date IS NOT NULL
	), grouped AS (
		SELECT
			CASE
				WHEN months <= 12 THEN 1
				WHEN months <= 24 THEN 2
				WHEN months <= 36 THEN 3
				WHEN months <= 60 THEN 4
				ELSE 5
			END AS bucket
		FROM aged
	)
	SELECT
		CASE bucket
			WHEN 1 THEN '0-1 years'
			WHEN 2 THEN '1-2 years'
			WHEN 3 THEN '2-3 years'
			WHEN 4 THEN '3-5 years'
			ELSE '5+ years'
		END,
		COUNT(*)
	FROM grouped
	GROUP BY bucket
	ORDER BY bucket`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.AgeGroupCount, error) {
		var a entity.AgeGroupCount
		err := row.Scan(&a.AgeGroup, &a.Count)

		return a, err
	})
}
