package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	pgx "github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Surajsachintha/itams-haci-project/internal/entity"
)

type DeviceRepository struct {
	db *pgxpool.Pool
}

func NewDeviceRepository(db *pgxpool.Pool) *DeviceRepository {
	return &DeviceRepository{db: db}
}

// Devices lists non-deleted devices. A nil stationIDs means no station filter.
func (r *DeviceRepository) Devices(ctx context.Context, stationIDs []int64) ([]entity.DeviceView, error) {
	stmt := sq.Select(
		"id",
		"uuid",
		"serial_number",
		"asset_tag_number",
		"qr_code_string",
		"category_id",
		"category_name",
		"type_id",
		"device_name",
		"brand_id",
		"brand_name",
		"model_id",
		"model_name",
		"specifications",
		"parent_device_id",
		"station_id",
		"station_name",
		"status",
		"health_score",
		"purchase_date",
		"warranty_expire_date",
		"purchase_value",
		"vendor_id",
		"vendor_name",
		"created_at",
	).From("view_device_list").OrderBy("id DESC").PlaceholderFormat(sq.Dollar)

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

	devices := make([]entity.DeviceView, 0)

	for rows.Next() {
		var d entity.DeviceView

		err = rows.Scan(
			&d.ID,
			&d.UUID,
			&d.SerialNumber,
			&d.AssetTagNumber,
			&d.QRCodeString,
			&d.CategoryID,
			&d.CategoryName,
			&d.TypeID,
			&d.DeviceName,
			&d.BrandID,
			&d.BrandName,
			&d.ModelID,
			&d.ModelName,
			&d.Specifications,
			&d.ParentDeviceID,
			&d.StationID,
			&d.StationName,
			&d.Status,
			&d.HealthScore,
			&d.PurchaseDate,
			&d.WarrantyExpireDate,
			&d.PurchaseValue,
			&d.VendorID,
			&d.VendorName,
			&d.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		devices = append(devices, d)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return devices, nil
}

func (r *DeviceRepository) CreateDevice(ctx context.Context, in entity.DeviceInput, id uuid.UUID, userID int64) (int64, error) {
	q := `
	INSERT INTO dms_devices (
		uuid, serial_number, asset_tag_number, qr_code_string,
		category_id, type_id, brand_id, model_id,
		specifications, parent_device_id, station_id,
		status, health_score, purchase_date, warranty_expire_date,
		purchase_value, vendor_id, user_id, created_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, NOW())
	RETURNING id`

	var deviceID int64

	err := r.db.QueryRow(ctx, q,
		id,
		in.SerialNumber,
		in.AssetTagNumber,
		in.QRCodeString,
		in.CategoryID,
		in.TypeID,
		in.BrandID,
		in.ModelID,
		in.Specifications,
		in.ParentDeviceID,
		in.StationID,
		in.Status,
		in.HealthScore,
		in.PurchaseDate,
		in.WarrantyExpireDate,
		in.PurchaseValue,
		in.VendorID,
		userID,
	).Scan(&deviceID)
	if err != nil {
		return 0, err
	}

	return deviceID, nil
}

// UpdateDevice rewrites every column of a non-deleted device.
func (r *DeviceRepository) UpdateDevice(ctx context.Context, id int64, in entity.DeviceInput, userID int64) (int64, error) {
	q := `
	UPDATE dms_devices SET
		serial_number = $1, asset_tag_number = $2, qr_code_string = $3,
		category_id = $4, type_id = $5, brand_id = $6, model_id = $7,
		specifications = $8, parent_device_id = $9, station_id = $10,
		status = $11, health_score = $12, purchase_date = $13, warranty_expire_date = $14,
		purchase_value = $15, vendor_id = $16, user_id = $17, updated_at = NOW()
	WHERE id = $18 AND is_delete = 0`

	tag, err := r.db.Exec(ctx, q,
		in.SerialNumber,
		in.AssetTagNumber,
		in.QRCodeString,
		in.CategoryID,
		in.TypeID,
		in.BrandID,
		in.ModelID,
		in.Specifications,
		in.ParentDeviceID,
		in.StationID,
		in.Status,
		in.HealthScore,
		in.PurchaseDate,
		in.WarrantyExpireDate,
		in.PurchaseValue,
		in.VendorID,
		userID,
		id,
	)
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}

// SoftDeleteDevice marks the device deleted. Deleting an already deleted device affects no rows.
func (r *DeviceRepository) SoftDeleteDevice(ctx context.Context, id, userID int64) (int64, error) {
	q := `UPDATE dms_devices SET is_delete = 1, user_id = $1, updated_at = NOW() WHERE id = $2 AND is_delete = 0`

	tag, err := r.db.Exec(ctx, q, userID, id)
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}

func (r *DeviceRepository) LastDeviceID(ctx context.Context) (int64, error) {
	q := `SELECT id FROM dms_devices ORDER BY id DESC LIMIT 1`

	var id int64

	err := r.db.QueryRow(ctx, q).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, entity.ErrNotFound
		}

		return 0, err
	}

	return id, nil
}

func (r *DeviceRepository) DeviceByID(ctx context.Context, id int64) (entity.Device, error) {
	q := `SELECT id, uuid, asset_tag_number, qr_code_string, is_delete = 1 FROM dms_devices WHERE id = $1`

	var d entity.Device

	err := r.db.QueryRow(ctx, q, id).Scan(&d.ID, &d.UUID, &d.AssetTagNumber, &d.QRCodeString, &d.IsDeleted)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Device{}, entity.ErrNotFound
		}

		return entity.Device{}, err
	}

	return d, nil
}
