package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

const (
	DeviceStatusActive    = "ACTIVE"
	DeviceStatusInRepair  = "IN_REPAIR"
	DeviceStatusCondemned = "CONDEMNED"
)

type DeviceInput struct {
	SerialNumber       *string          `json:"serial_number"`
	AssetTagNumber     *string          `json:"asset_tag_number"`
	QRCodeString       *string          `json:"qr_code_string"`
	CategoryID         *int64           `json:"category_id"`
	TypeID             *int64           `json:"type_id"`
	BrandID            *int64           `json:"brand_id"`
	ModelID            *int64           `json:"model_id"`
	Specifications     *string          `json:"specifications"`
	ParentDeviceID     *int64           `json:"parent_device_id"`
	StationID          *int64           `json:"station_id"`
	Status             string           `json:"status"`
	HealthScore        *int             `json:"health_score"`
	PurchaseDate       *Date            `json:"purchase_date"`
	WarrantyExpireDate *Date            `json:"warranty_expire_date"`
	PurchaseValue      *decimal.Decimal `json:"purchase_value"`
	VendorID           *int64           `json:"vendor_id"`
}

type Device struct {
	ID             int64
	UUID           uuid.UUID
	AssetTagNumber *string
	QRCodeString   *string
	IsDeleted      bool
}

// QRPayload is the text encoded into the device label.
func (d Device) QRPayload() string {
	if d.QRCodeString != nil && *d.QRCodeString != "" {
		return *d.QRCodeString
	}

	return d.UUID.String()
}

type DeviceView struct {
	ID                 int64            `json:"id"`
	UUID               uuid.UUID        `json:"uuid"`
	SerialNumber       *string          `json:"serial_number"`
	AssetTagNumber     *string          `json:"asset_tag_number"`
	QRCodeString       *string          `json:"qr_code_string"`
	CategoryID         *int64           `json:"category_id"`
	CategoryName       *string          `json:"category_name"`
	TypeID             *int64           `json:"type_id"`
	DeviceName         *string          `json:"device_name"`
	BrandID            *int64           `json:"brand_id"`
	BrandName          *string          `json:"brand_name"`
	ModelID            *int64           `json:"model_id"`
	ModelName          *string          `json:"model_name"`
	Specifications     *string          `json:"specifications"`
	ParentDeviceID     *int64           `json:"parent_device_id"`
	StationID          *int64           `json:"station_id"`
	StationName        *string          `json:"station_name"`
	Status             string           `json:"status"`
	HealthScore        *int             `json:"health_score"`
	PurchaseDate       *Date            `json:"purchase_date"`
	WarrantyExpireDate *Date            `json:"warranty_expire_date"`
	PurchaseValue      *decimal.Decimal `json:"purchase_value"`
	VendorID           *int64           `json:"vendor_id"`
	VendorName         *string          `json:"vendor_name"`
	CreatedAt          time.Time        `json:"created_at"`
}

type DeviceCreated struct {
	Message        string    `json:"message"`
	ID             int64     `json:"id"`
	UUID           uuid.UUID `json:"uuid"`
	AssetTagNumber *string   `json:"asset_tag_number"`
}

type DeviceRef struct {
	ID int64 `json:"id"`
}
