package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Surajsachintha/itams-haci-project/internal/entity"
)

type ComputerRepository struct {
	db *pgxpool.Pool
}

func NewComputerRepository(db *pgxpool.Pool) *ComputerRepository {
	return &ComputerRepository{db: db}
}

func (r *ComputerRepository) Computers(ctx context.Context, stationIDs []int64) ([]entity.ComputerView, error) {
	stmt := sq.Select(
		"id",
		"uuid",
		"asset_tag_number",
		"serial_number",
		"station_id",
		"station_name",
		"brand_name",
		"model_name",
		"status",
		"detail_id",
		"ip_address",
		"anydesk_id",
		"operating_system",
		"processor_spec",
		"ram_bus_type",
		"ram_spec",
		"hdd_capacity",
		"ssd_capacity",
		"vga_spec",
	).From("view_computer_devices").OrderBy("id DESC").PlaceholderFormat(sq.Dollar)

	if stationIDs != nil {
		stmt = stmt.Where(sq.Eq{"station_id": stationIDs})
	}

	q, args, err := stmt.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	computers := make([]entity.ComputerView, 0)

	for rows.Next() {
		var c entity.ComputerView

		err = rows.Scan(
			&c.ID,
			&c.UUID,
			&c.AssetTagNumber,
			&c.SerialNumber,
			&c.StationID,
			&c.StationName,
			&c.BrandName,
			&c.ModelName,
			&c.Status,
			&c.DetailID,
			&c.IPAddress,
			&c.AnydeskID,
			&c.OperatingSystem,
			&c.ProcessorSpec,
			&c.RAMBusType,
			&c.RAMSpec,
			&c.HDDCapacity,
			&c.SSDCapacity,
			&c.VGASpec,
		)
		if err != nil {
			return nil, err
		}

		computers = append(computers, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return computers, nil
}

func (r *ComputerRepository) CreateSpec(ctx context.Context, spec entity.ComputerSpec, userID int64) (int64, error) {
	q := `
	INSERT INTO dms_computer_details (
		device_id, ip_address, anydesk_id, operating_system, processor_spec,
		ram_bus_type, ram_spec, hdd_capacity, ssd_capacity, vga_spec, user_id, create_date
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW())
	RETURNING id`

	var id int64

	err := r.db.QueryRow(ctx, q,
		spec.DeviceID,
		spec.IPAddress,
		spec.AnydeskID,
		spec.OperatingSystem,
		spec.ProcessorSpec,
		spec.RAMBusType,
		spec.RAMSpec,
		spec.HDDCapacity,
		spec.SSDCapacity,
		spec.VGASpec,
		userID,
	).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

func (r *ComputerRepository) UpdateSpec(ctx context.Context, id int64, spec entity.ComputerSpec, userID int64) (int64, error) {
	q := `
	UPDATE dms_computer_details SET
		ip_address = $1, anydesk_id = $2, operating_system = $3, processor_spec = $4,
		ram_bus_type = $5, ram_spec = $6, hdd_capacity = $7, ssd_capacity = $8, vga_spec = $9,
		user_id = $10, update_date = NOW()
	WHERE id = $11`

	tag, err := r.db.Exec(ctx, q,
		spec.IPAddress,
		spec.AnydeskID,
		spec.OperatingSystem,
		spec.ProcessorSpec,
		spec.RAMBusType,
		spec.RAMSpec,
		spec.HDDCapacity,
		spec.SSDCapacity,
		spec.VGASpec,
		userID,
		id,
	)
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}
