package service

import (
	"context"
	"fmt"

	"github.com/Surajsachintha/itams-haci-project/internal/entity"
)

const (
	DefaultStationLimit = 10
	DefaultBrandLimit   = 5
	DefaultWarrantyDays = 30
	MaxDashboardLimit   = 100
)

// clamp replaces a non-positive value with def and caps it at MaxDashboardLimit.
func clamp(v, def int) int {
	if v <= 0 {
		return def
	}

	return min(v, MaxDashboardLimit)
}

func (s *Service) DashboardStats(ctx context.Context) (entity.DashboardStats, error) {
	stats, err := s.dashboard.Stats(ctx)
	if err != nil {
		return entity.DashboardStats{}, fmt.Errorf("dashboard stats: %w", err)
	}

	return stats, nil
}

func (s *Service) DevicesByCategory(ctx context.Context) ([]entity.CategoryCount, error) {
	res, err := s.dashboard.DevicesByCategory(ctx)
	if err != nil {
		return nil, fmt.Errorf("devices by category: %w", err)
	}

	return res, nil
}

func (s *Service) DevicesByStation(ctx context.Context, limit int) ([]entity.StationCount, error) {
	res, err := s.dashboard.DevicesByStation(ctx, clamp(limit, DefaultStationLimit))
	if err != nil {
		return nil, fmt.Errorf("devices by station: %w", err)
	}

	return res, nil
}

func (s *Service) TopBrands(ctx context.Context, limit int) ([]entity.BrandCount, error) {
	res, err := s.dashboard.TopBrands(ctx, clamp(limit, DefaultBrandLimit))
	if err != nil {
		return nil, fmt.Errorf("top brands: %w", err)
	}

	return res, nil
}

func (s *Service) StatusDistribution(ctx context.Context) ([]entity.StatusCount, error) {
	res, err := s.dashboard.StatusDistribution(ctx)
	if err != nil {
		return nil, fmt.Errorf("status distribution: %w", err)
	}

	return res, nil
}

func (s *Service) RegistrationTrend(ctx context.Context) ([]entity.MonthCount, error) {
	res, err := s.dashboard.RegistrationTrend(ctx)
	if err != nil {
		return nil, fmt.Errorf("registration trend: %w", err)
	}

	return res, nil
}

func (s *Service) WarrantyAlerts(ctx context.Context, days int) ([]entity.WarrantyAlert, error) {
	if days <= 0 {
		days = DefaultWarrantyDays
	}

	res, err := s.dashboard.WarrantyAlerts(ctx, days)
	if err != nil {
		return nil, fmt.Errorf("warranty alerts: %w", err)
	}

	return res, nil
}

func (s *Service) ValueByCategory(ctx context.Context) ([]entity.CategoryValue, error) {
	res, err := s.dashboard.ValueByCategory(ctx)
	if err != nil {
		return nil, fmt.Errorf("value by category: %w", err)
	}

	return res, nil
}

func (s *Service) DevicesByAge(ctx context.Context) ([]entity.AgeGroupCount, error) {
	res, err := s.dashboard.DevicesByAge(ctx)
	if err != nil {
		return nil, fmt.Errorf("devices by age: %w", err)
	}

	return res, nil
}
