package entity

import "github.com/shopspring/decimal"

type DashboardStats struct {
	TotalDevices        int64           `json:"totalDevices"`
	ActiveDevices       int64           `json:"activeDevices"`
	InRepair            int64           `json:"inRepair"`
	Condemned           int64           `json:"condemned"`
	TotalValue          decimal.Decimal `json:"totalValue"`
	RecentRegistrations int64           `json:"recentRegistrations"`
	WarrantyExpiring    int64           `json:"warrantyExpiring"`
	Divisions           int64           `json:"divisions"`
}

type CategoryCount struct {
	CategoryID   int64  `json:"category_id"`
	CategoryName string `json:"category_name"`
	Count        int64  `json:"count"`
}

type StationCount struct {
	StationID    int64  `json:"station_id"`
	StationName  string `json:"station_name"`
	DivisionName string `json:"division_name"`
	Count        int64  `json:"count"`
}

type BrandCount struct {
	BrandID   int64  `json:"brand_id"`
	BrandName string `json:"brand_name"`
	Count     int64  `json:"count"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type MonthCount struct {
	Month string `json:"month"`
	Count int64  `json:"count"`
}

type WarrantyAlert struct {
	ID                 int64   `json:"id"`
	AssetTagNumber     *string `json:"asset_tag_number"`
	SerialNumber       *string `json:"serial_number"`
	WarrantyExpireDate Date    `json:"warranty_expire_date"`
	BrandName          string  `json:"brand_name"`
	ModelName          string  `json:"model_name"`
	StationName        string  `json:"station_name"`
	DaysRemaining      int     `json:"days_remaining"`
}

type CategoryValue struct {
	CategoryID   int64           `json:"category_id"`
	CategoryName string          `json:"category_name"`
	TotalValue   decimal.Decimal `json:"total_value"`
	DeviceCount  int64           `json:"device_count"`
	AvgValue     decimal.Decimal `json:"avg_value"`
}

type AgeGroupCount struct {
	AgeGroup string `json:"age_group"`
	Count    int64  `json:"count"`
}
