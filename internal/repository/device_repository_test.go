package repository_test

import (
	"context"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/Surajsachintha/itams-haci-project/internal/entity"
	"github.com/Surajsachintha/itams-haci-project/internal/repository"
)

type DeviceRepositoryTestSuite struct {
	suite.Suite
	repo      *repository.DeviceRepository
	computers *repository.ComputerRepository
	userID    int64
}

func (ts *DeviceRepositoryTestSuite) SetupTest() {
	db := repository.SetupTestDatabase(ts.T())
	ts.repo = repository.NewDeviceRepository(db)
	ts.computers = repository.NewComputerRepository(db)

	userID, err := repository.NewUserRepository(db).CreateUser(context.Background(), entity.UserInput{
		Username: "device-owner",
		Role:     entity.RoleTechnician,
	}, nil)
	ts.Require().NoError(err)

	ts.userID = userID
}

func TestDeviceRepositoryTestSuite(t *testing.T) { //nolint:paralleltest
	suite.Run(t, new(DeviceRepositoryTestSuite))
}

func (ts *DeviceRepositoryTestSuite) createDevice(tag string) (int64, uuid.UUID) {
	id := uuid.Must(uuid.NewV4())
	value := decimal.RequireFromString("1250.50")
	purchased := entity.NewDate(2024, 1, 15)

	deviceID, err := ts.repo.CreateDevice(context.Background(), entity.DeviceInput{
		AssetTagNumber: lo.ToPtr(tag),
		SerialNumber:   lo.ToPtr("SN-" + tag),
		CategoryID:     lo.ToPtr(int64(1)),
		Status:         entity.DeviceStatusActive,
		PurchaseDate:   &purchased,
		PurchaseValue:  &value,
	}, id, ts.userID)
	ts.Require().NoError(err)

	return deviceID, id
}

func (ts *DeviceRepositoryTestSuite) TestCreateAndList() {
	ctx := context.Background()
	deviceID, id := ts.createDevice("AT-1")

	devices, err := ts.repo.Devices(ctx, nil)
	ts.Require().NoError(err)
	ts.Require().Len(devices, 1)
	ts.Require().Equal(deviceID, devices[0].ID)
	ts.Require().Equal(id, devices[0].UUID)
	ts.Require().Equal("1250.5", devices[0].PurchaseValue.String())
	ts.Require().Equal("2024-01-15", devices[0].PurchaseDate.Format(entity.DateLayout))

	devices, err = ts.repo.Devices(ctx, []int64{})
	ts.Require().NoError(err)
	ts.Require().Empty(devices)

	computers, err := ts.computers.Computers(ctx, nil)
	ts.Require().NoError(err)
	ts.Require().Len(computers, 1)
	ts.Require().Nil(computers[0].DetailID)
}

func (ts *DeviceRepositoryTestSuite) TestSoftDeleteTwice() {
	ctx := context.Background()
	deviceID, _ := ts.createDevice("AT-2")

	n, err := ts.repo.SoftDeleteDevice(ctx, deviceID, ts.userID)
	ts.Require().NoError(err)
	ts.Require().Equal(int64(1), n)

	n, err = ts.repo.SoftDeleteDevice(ctx, deviceID, ts.userID)
	ts.Require().NoError(err)
	ts.Require().Zero(n)

	devices, err := ts.repo.Devices(ctx, nil)
	ts.Require().NoError(err)
	ts.Require().Empty(devices)

	d, err := ts.repo.DeviceByID(ctx, deviceID)
	ts.Require().NoError(err)
	ts.Require().True(d.IsDeleted)

	n, err = ts.repo.UpdateDevice(ctx, deviceID, entity.DeviceInput{Status: entity.DeviceStatusInRepair}, ts.userID)
	ts.Require().NoError(err)
	ts.Require().Zero(n)
}

func (ts *DeviceRepositoryTestSuite) TestLastDeviceID() {
	ctx := context.Background()

	_, err := ts.repo.LastDeviceID(ctx)
	ts.Require().ErrorIs(err, entity.ErrNotFound)

	ts.createDevice("AT-3")
	last, _ := ts.createDevice("AT-4")

	id, err := ts.repo.LastDeviceID(ctx)
	ts.Require().NoError(err)
	ts.Require().Equal(last, id)
}

func (ts *DeviceRepositoryTestSuite) TestComputerSpec() {
	ctx := context.Background()
	deviceID, _ := ts.createDevice("PC-1")

	specID, err := ts.computers.CreateSpec(ctx, entity.ComputerSpec{
		DeviceID:        deviceID,
		IPAddress:       lo.ToPtr("10.0.0.5"),
		OperatingSystem: lo.ToPtr("Windows 11"),
	}, ts.userID)
	ts.Require().NoError(err)

	n, err := ts.computers.UpdateSpec(ctx, specID, entity.ComputerSpec{IPAddress: lo.ToPtr("10.0.0.6")}, ts.userID)
	ts.Require().NoError(err)
	ts.Require().Equal(int64(1), n)

	computers, err := ts.computers.Computers(ctx, nil)
	ts.Require().NoError(err)
	ts.Require().Len(computers, 1)
	ts.Require().Equal(specID, *computers[0].DetailID)
	ts.Require().Equal("10.0.0.6", *computers[0].IPAddress)
	ts.Require().Nil(computers[0].OperatingSystem)
}
