package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/skip2/go-qrcode"

	"github.com/Surajsachintha/itams-haci-project/internal/entity"
)

const (
	auditPageDevices = "devices"

	DefaultQRSize = 256
	MaxQRSize     = 1024
)

// stationScope returns the stations the caller may list, nil meaning all of them.
func (s *Service) stationScope(ctx context.Context, caller entity.Identity) ([]int64, error) {
	if !s.cfg.ScopeListsByUnit || caller.Role.Global() {
		return nil, nil
	}

	if caller.Unit == nil {
		return []int64{}, nil
	}

	ids, err := s.codeData.StationIDsForUnit(ctx, *caller.Unit)
	if err != nil {
		return nil, fmt.Errorf("stations of unit %d: %w", *caller.Unit, err)
	}

	if ids == nil {
		ids = []int64{}
	}

	return ids, nil
}

func (s *Service) Devices(ctx context.Context, caller entity.Identity) ([]entity.DeviceView, error) {
	stations, err := s.stationScope(ctx, caller)
	if err != nil {
		return nil, err
	}

	devices, err := s.devices.Devices(ctx, stations)
	if err != nil {
		return nil, fmt.Errorf("list devices: %w", err)
	}

	return devices, nil
}

func (s *Service) CreateDevice(ctx context.Context, caller entity.Identity, in entity.DeviceInput) (entity.DeviceCreated, error) {
	err := ValidateDeviceInput(in)
	if err != nil {
		return entity.DeviceCreated{}, err
	}

	if in.Status == "" {
		in.Status = entity.DeviceStatusActive
	}

	id, err := uuid.NewV4()
	if err != nil {
		return entity.DeviceCreated{}, fmt.Errorf("generate uuid: %w", err)
	}

	deviceID, err := s.devices.CreateDevice(ctx, in, id, caller.ID)
	if err != nil {
		return entity.DeviceCreated{}, fmt.Errorf("create device: %w", err)
	}

	s.recordAudit(ctx, caller, auditPageDevices, entity.AuditEventInsert, deviceID, in)

	return entity.DeviceCreated{
		Message:        "Device inserted successfully",
		ID:             deviceID,
		UUID:           id,
		AssetTagNumber: in.AssetTagNumber,
	}, nil
}

func (s *Service) UpdateDevice(ctx context.Context, caller entity.Identity, id int64, in entity.DeviceInput) (entity.WriteResult, error) {
	err := ValidateDeviceInput(in)
	if err != nil {
		return entity.WriteResult{}, err
	}

	if in.Status == "" {
		in.Status = entity.DeviceStatusActive
	}

	n, err := s.devices.UpdateDevice(ctx, id, in, caller.ID)
	if err != nil {
		return entity.WriteResult{}, fmt.Errorf("update device %d: %w", id, err)
	}

	s.recordAudit(ctx, caller, auditPageDevices, entity.AuditEventUpdate, id, in)

	return entity.WriteResult{AffectedRows: n}, nil
}

// DeleteDevice soft-deletes a device. A repeated delete succeeds with zero affected rows.
func (s *Service) DeleteDevice(ctx context.Context, caller entity.Identity, id int64) (entity.WriteResult, error) {
	n, err := s.devices.SoftDeleteDevice(ctx, id, caller.ID)
	if err != nil {
		return entity.WriteResult{}, fmt.Errorf("delete device %d: %w", id, err)
	}

	if n > 0 {
		s.recordAudit(ctx, caller, auditPageDevices, entity.AuditEventDelete, id, nil)
	}

	return entity.WriteResult{AffectedRows: n}, nil
}

// LastDeviceID returns nil when no device exists.
func (s *Service) LastDeviceID(ctx context.Context) (*entity.DeviceRef, error) {
	id, err := s.devices.LastDeviceID(ctx)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, nil
		}

		return nil, fmt.Errorf("last device id: %w", err)
	}

	return &entity.DeviceRef{ID: id}, nil
}

// DeviceQRCode renders the label of a non-deleted device as PNG.
func (s *Service) DeviceQRCode(ctx context.Context, id int64, size int) ([]byte, error) {
	if size <= 0 {
		size = DefaultQRSize
	}

	if size > MaxQRSize {
		return nil, invalid("size", fmt.Sprintf("must be at most %d", MaxQRSize))
	}

	d, err := s.devices.DeviceByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("device %d: %w", id, err)
	}

	if d.IsDeleted {
		return nil, fmt.Errorf("device %d: %w", id, entity.ErrNotFound)
	}

	png, err := qrcode.Encode(d.QRPayload(), qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("encode qr code: %w", err)
	}

	return png, nil
}
