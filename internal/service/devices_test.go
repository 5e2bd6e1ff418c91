package service_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Surajsachintha/itams-haci-project/internal/entity"
)

func TestService_DeleteDevice_Twice(t *testing.T) {
	t.Parallel()

	s, d := newService(t, testConfig())
	caller := entity.Identity{ID: 2, Username: "tech", Role: entity.RoleTechnician}

	gomock.InOrder(
		d.devices.EXPECT().SoftDeleteDevice(gomock.Any(), int64(12), int64(2)).Return(int64(1), nil),
		d.devices.EXPECT().SoftDeleteDevice(gomock.Any(), int64(12), int64(2)).Return(int64(0), nil),
	)
	d.audit.EXPECT().SaveAuditEvent(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	res, err := s.DeleteDevice(context.Background(), caller, 12)
	require.NoError(t, err)
	require.Equal(t, int64(1), res.AffectedRows)

	res, err = s.DeleteDevice(context.Background(), caller, 12)
	require.NoError(t, err)
	require.Zero(t, res.AffectedRows)
}

func TestService_CreateDevice(t *testing.T) {
	t.Parallel()

	s, d := newService(t, testConfig())
	caller := entity.Identity{ID: 2, Username: "tech", Role: entity.RoleTechnician}

	var gotUUID uuid.UUID

	d.devices.EXPECT().CreateDevice(gomock.Any(), gomock.Any(), gomock.Any(), int64(2)).
		DoAndReturn(func(_ context.Context, in entity.DeviceInput, id uuid.UUID, _ int64) (int64, error) {
			require.Equal(t, entity.DeviceStatusActive, in.Status)
			require.False(t, id.IsNil())

			gotUUID = id

			return 31, nil
		})
	d.audit.EXPECT().SaveAuditEvent(gomock.Any(), gomock.Any()).Return(nil)

	res, err := s.CreateDevice(context.Background(), caller, entity.DeviceInput{AssetTagNumber: ptr("IT-0031")})
	require.NoError(t, err)
	require.Equal(t, entity.DeviceCreated{
		Message:        "Device inserted successfully",
		ID:             31,
		UUID:           gotUUID,
		AssetTagNumber: ptr("IT-0031"),
	}, res)
}

func TestService_CreateDevice_Invalid(t *testing.T) {
	t.Parallel()

	s, _ := newService(t, testConfig())

	_, err := s.CreateDevice(context.Background(), entity.Identity{ID: 2}, entity.DeviceInput{HealthScore: ptr(150)})
	require.ErrorIs(t, err, entity.ErrValidation)
}

func TestService_LastDeviceID(t *testing.T) {
	t.Parallel()

	s, d := newService(t, testConfig())

	gomock.InOrder(
		d.devices.EXPECT().LastDeviceID(gomock.Any()).Return(int64(0), entity.ErrNotFound),
		d.devices.EXPECT().LastDeviceID(gomock.Any()).Return(int64(44), nil),
	)

	ref, err := s.LastDeviceID(context.Background())
	require.NoError(t, err)
	require.Nil(t, ref)

	ref, err = s.LastDeviceID(context.Background())
	require.NoError(t, err)
	require.Equal(t, &entity.DeviceRef{ID: 44}, ref)
}

func TestService_DeviceQRCode(t *testing.T) {
	t.Parallel()

	s, d := newService(t, testConfig())
	id := uuid.Must(uuid.NewV4())

	d.devices.EXPECT().DeviceByID(gomock.Any(), int64(1)).Return(entity.Device{ID: 1, UUID: id}, nil)
	d.devices.EXPECT().DeviceByID(gomock.Any(), int64(2)).Return(entity.Device{ID: 2, UUID: id, IsDeleted: true}, nil)

	png, err := s.DeviceQRCode(context.Background(), 1, 128)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))

	_, err = s.DeviceQRCode(context.Background(), 2, 128)
	require.ErrorIs(t, err, entity.ErrNotFound)

	_, err = s.DeviceQRCode(context.Background(), 1, 5000)
	require.ErrorIs(t, err, entity.ErrValidation)
}

func TestService_Devices_ScopedByUnit(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.ScopeListsByUnit = true

	t.Run("unit role", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t, cfg)
		caller := entity.Identity{ID: 3, Role: entity.RoleStation, Unit: ptr(int64(4))}

		d.codeData.EXPECT().StationIDsForUnit(gomock.Any(), int64(4)).Return([]int64{1, 2}, nil)
		d.devices.EXPECT().Devices(gomock.Any(), []int64{1, 2}).Return([]entity.DeviceView{{ID: 1}}, nil)

		devices, err := s.Devices(context.Background(), caller)
		require.NoError(t, err)
		require.Len(t, devices, 1)
	})

	t.Run("unit without stations", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t, cfg)
		caller := entity.Identity{ID: 3, Role: entity.RoleStation, Unit: ptr(int64(4))}

		d.codeData.EXPECT().StationIDsForUnit(gomock.Any(), int64(4)).Return(nil, nil)
		d.devices.EXPECT().Devices(gomock.Any(), []int64{}).Return([]entity.DeviceView{}, nil)

		devices, err := s.Devices(context.Background(), caller)
		require.NoError(t, err)
		require.Empty(t, devices)
	})

	t.Run("global role", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t, cfg)

		d.devices.EXPECT().Devices(gomock.Any(), gomock.Nil()).Return([]entity.DeviceView{{ID: 1}, {ID: 2}}, nil)

		devices, err := s.Devices(context.Background(), entity.Identity{ID: 1, Role: entity.RoleAdmin})
		require.NoError(t, err)
		require.Len(t, devices, 2)
	})
}

func TestService_Computers_Unscoped(t *testing.T) {
	t.Parallel()

	s, d := newService(t, testConfig())

	d.computers.EXPECT().Computers(gomock.Any(), gomock.Nil()).Return([]entity.ComputerView{{ID: 5}}, nil)

	computers, err := s.Computers(context.Background(), entity.Identity{ID: 3, Role: entity.RoleStation, Unit: ptr(int64(4))})
	require.NoError(t, err)
	require.Len(t, computers, 1)
}
