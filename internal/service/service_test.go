package service_test

import (
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/Surajsachintha/itams-haci-project/internal/mocks"
	"github.com/Surajsachintha/itams-haci-project/internal/schema"
	"github.com/Surajsachintha/itams-haci-project/internal/service"
	"github.com/Surajsachintha/itams-haci-project/pkg/config"
)

const testSecret = "test-secret"

type deps struct {
	users      *mocks.MockUserRepository
	devices    *mocks.MockDeviceRepository
	computers  *mocks.MockComputerRepository
	codeData   *mocks.MockCodeDataRepository
	dashboard  *mocks.MockDashboardRepository
	audit      *mocks.MockAuditRepository
	usedTokens *mocks.MockUsedTokenRepository
	gateway    *mocks.MockTableGateway
	mailer     *mocks.MockMailer
	push       *mocks.MockPushSender
}

func testConfig() config.Config {
	return config.Config{
		FrontendURL: "https://ams.test",
		JWT: config.JWTConfig{
			Secret:     testSecret,
			SessionTTL: time.Hour,
			SetupTTL:   24 * time.Hour,
			ResetTTL:   time.Hour,
		},
		Jobs: config.JobsConfig{
			WarrantyAlertDays: 30,
		},
	}
}

func newService(t *testing.T, cfg config.Config) (*service.Service, deps) {
	t.Helper()

	ctrl := gomock.NewController(t)

	d := deps{
		users:      mocks.NewMockUserRepository(ctrl),
		devices:    mocks.NewMockDeviceRepository(ctrl),
		computers:  mocks.NewMockComputerRepository(ctrl),
		codeData:   mocks.NewMockCodeDataRepository(ctrl),
		dashboard:  mocks.NewMockDashboardRepository(ctrl),
		audit:      mocks.NewMockAuditRepository(ctrl),
		usedTokens: mocks.NewMockUsedTokenRepository(ctrl),
		gateway:    mocks.NewMockTableGateway(ctrl),
		mailer:     mocks.NewMockMailer(ctrl),
		push:       mocks.NewMockPushSender(ctrl),
	}

	s := service.New(cfg, d.users, d.devices, d.computers, d.codeData, d.dashboard, d.audit,
		d.usedTokens, d.gateway, schema.CodeTables(), d.mailer, d.push)

	return s, d
}

func ptr[T any](v T) *T {
	return &v
}
