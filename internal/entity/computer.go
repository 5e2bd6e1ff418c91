package entity

import "github.com/gofrs/uuid/v5"

type ComputerSpec struct {
	DeviceID        int64   `json:"device_id"`
	IPAddress       *string `json:"ip_address"`
	AnydeskID       *string `json:"anydesk_id"`
	OperatingSystem *string `json:"operating_system"`
	ProcessorSpec   *string `json:"processor_spec"`
	RAMBusType      *string `json:"ram_bus_type"`
	RAMSpec         *string `json:"ram_spec"`
	HDDCapacity     *string `json:"hdd_capacity"`
	SSDCapacity     *string `json:"ssd_capacity"`
	VGASpec         *string `json:"vga_spec"`
}

type ComputerView struct {
	ID              int64     `json:"id"`
	UUID            uuid.UUID `json:"uuid"`
	AssetTagNumber  *string   `json:"asset_tag_number"`
	SerialNumber    *string   `json:"serial_number"`
	StationID       *int64    `json:"station_id"`
	StationName     *string   `json:"station_name"`
	BrandName       *string   `json:"brand_name"`
	ModelName       *string   `json:"model_name"`
	Status          string    `json:"status"`
	DetailID        *int64    `json:"detail_id"`
	IPAddress       *string   `json:"ip_address"`
	AnydeskID       *string   `json:"anydesk_id"`
	OperatingSystem *string   `json:"operating_system"`
	ProcessorSpec   *string   `json:"processor_spec"`
	RAMBusType      *string   `json:"ram_bus_type"`
	RAMSpec         *string   `json:"ram_spec"`
	HDDCapacity     *string   `json:"hdd_capacity"`
	SSDCapacity     *string   `json:"ssd_capacity"`
	VGASpec         *string   `json:"vga_spec"`
}
