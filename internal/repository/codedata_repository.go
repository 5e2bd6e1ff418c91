package repository

import (
	"context"

	pgx "github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Surajsachintha/itams-haci-project/internal/entity"
)

type CodeDataRepository struct {
	db *pgxpool.Pool
}

func NewCodeDataRepository(db *pgxpool.Pool) *CodeDataRepository {
	return &CodeDataRepository{db: db}
}

func (r *CodeDataRepository) Stations(ctx context.Context) ([]entity.Station, error) {
	q := `SELECT station_id, station_name, division_id, unit_id FROM code_stations ORDER BY station_name`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.Station, error) {
		var s entity.Station
		err := row.Scan(&s.StationID, &s.StationName, &s.DivisionID, &s.UnitID)

		return s, err
	})
}

func (r *CodeDataRepository) DeviceTypes(ctx context.Context, categoryID int64) ([]entity.DeviceType, error) {
	q := `SELECT id, device_short_name, device_name FROM code_device_types WHERE category_id = $1 ORDER BY device_name`

	rows, err := r.db.Query(ctx, q, categoryID)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.DeviceType, error) {
		var t entity.DeviceType
		err := row.Scan(&t.ID, &t.DeviceShortName, &t.DeviceName)

		return t, err
	})
}

func (r *CodeDataRepository) Models(ctx context.Context, typeID, brandID int64) ([]entity.Model, error) {
	q := `SELECT id, model_name FROM code_models WHERE device_types_id = $1 AND brand_id = $2 ORDER BY model_name`

	rows, err := r.db.Query(ctx, q, typeID, brandID)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.Model, error) {
		var m entity.Model
		err := row.Scan(&m.ID, &m.ModelName)

		return m, err
	})
}

// EditingColumns returns the settings-screen metadata of a table, skipping auto-managed columns.
func (r *CodeDataRepository) EditingColumns(ctx context.Context, table string) ([]entity.EditingColumn, error) {
	q := `
	SELECT id, table_name, column_name, input_type, code_id, code_name, codetable_name, auto_tab
	FROM dms_codedata_editing
	WHERE table_name = $1 AND auto_tab <> 1
	ORDER BY id`

	rows, err := r.db.Query(ctx, q, table)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.EditingColumn, error) {
		var c entity.EditingColumn
		err := row.Scan(
			&c.ID,
			&c.TableName,
			&c.ColumnName,
			&c.InputType,
			&c.CodeID,
			&c.CodeName,
			&c.CodeTableName,
			&c.AutoTab,
		)

		return c, err
	})
}

func (r *CodeDataRepository) StationIDsForUnit(ctx context.Context, unitID int64) ([]int64, error) {
	q := `SELECT station_id FROM code_stations WHERE unit_id = $1 ORDER BY station_id`

	rows, err := r.db.Query(ctx, q, unitID)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, pgx.RowTo[int64])
}
