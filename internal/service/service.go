package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/Surajsachintha/itams-haci-project/internal/entity"
	"github.com/Surajsachintha/itams-haci-project/internal/schema"
	"github.com/Surajsachintha/itams-haci-project/pkg/config"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service.go -package=mocks

type UserRepository interface {
	ActiveUserByUsername(ctx context.Context, username string) (entity.User, error)
	UserByID(ctx context.Context, id int64) (entity.User, error)
	UpdateFCMToken(ctx context.Context, userID int64, token string) error
	UpdatePassword(ctx context.Context, username, hash string) (int64, error)
	UpdatePasswordByID(ctx context.Context, userID int64, hash string) (int64, error)
	Users(ctx context.Context) ([]entity.UserView, error)
	CreateUser(ctx context.Context, in entity.UserInput, passwordHash *string) (int64, error)
	UpdateUser(ctx context.Context, id int64, in entity.UserInput) (int64, error)
	SetUserStatus(ctx context.Context, id int64, status int) (int64, error)
	FCMToken(ctx context.Context, userID int64) (string, error)
	FCMTokensByRoles(ctx context.Context, roles ...entity.Role) ([]string, error)
}

type DeviceRepository interface {
	Devices(ctx context.Context, stationIDs []int64) ([]entity.DeviceView, error)
	CreateDevice(ctx context.Context, in entity.DeviceInput, id uuid.UUID, userID int64) (int64, error)
	UpdateDevice(ctx context.Context, id int64, in entity.DeviceInput, userID int64) (int64, error)
	SoftDeleteDevice(ctx context.Context, id, userID int64) (int64, error)
	LastDeviceID(ctx context.Context) (int64, error)
	DeviceByID(ctx context.Context, id int64) (entity.Device, error)
}

type ComputerRepository interface {
	Computers(ctx context.Context, stationIDs []int64) ([]entity.ComputerView, error)
	CreateSpec(ctx context.Context, spec entity.ComputerSpec, userID int64) (int64, error)
	UpdateSpec(ctx context.Context, id int64, spec entity.ComputerSpec, userID int64) (int64, error)
}

type CodeDataRepository interface {
	Stations(ctx context.Context) ([]entity.Station, error)
	DeviceTypes(ctx context.Context, categoryID int64) ([]entity.DeviceType, error)
	Models(ctx context.Context, typeID, brandID int64) ([]entity.Model, error)
	EditingColumns(ctx context.Context, table string) ([]entity.EditingColumn, error)
	StationIDsForUnit(ctx context.Context, unitID int64) ([]int64, error)
}

type DashboardRepository interface {
	Stats(ctx context.Context) (entity.DashboardStats, error)
	DevicesByCategory(ctx context.Context) ([]entity.CategoryCount, error)
	DevicesByStation(ctx context.Context, limit int) ([]entity.StationCount, error)
	TopBrands(ctx context.Context, limit int) ([]entity.BrandCount, error)
	StatusDistribution(ctx context.Context) ([]entity.StatusCount, error)
	RegistrationTrend(ctx context.Context) ([]entity.MonthCount, error)
	WarrantyAlerts(ctx context.Context, days int) ([]entity.WarrantyAlert, error)
	ValueByCategory(ctx context.Context) ([]entity.CategoryValue, error)
	DevicesByAge(ctx context.Context) ([]entity.AgeGroupCount, error)
}

type AuditRepository interface {
	SaveAuditEvent(ctx context.Context, e entity.AuditEvent) error
}

type UsedTokenRepository interface {
	MarkTokenUsed(ctx context.Context, jti uuid.UUID, expiresAt time.Time) error
	DeleteExpiredTokens(ctx context.Context) (int64, error)
}

// TableGateway executes statements on catalog tables.
type TableGateway interface {
	Select(ctx context.Context, t schema.Table) ([]entity.Record, error)
	Insert(ctx context.Context, t schema.Table, v schema.Values) (int64, error)
	Update(ctx context.Context, t schema.Table, id any, v schema.Values) (int64, error)
	Delete(ctx context.Context, t schema.Table, id any) (int64, error)
	Pairs(ctx context.Context, t schema.Table, idColumn, labelColumn string) ([]entity.Record, error)
}

type Mailer interface {
	SendMessage(subject, message string, recipients []string, contentType string) error
}

type PushSender interface {
	Send(ctx context.Context, msg entity.PushMessage) (string, error)
}

// AuditPublisher hands audit events to the broker.
type AuditPublisher interface {
	PublishAuditEvent(ctx context.Context, e entity.AuditEvent) error
}

type Service struct {
	cfg        config.Config
	users      UserRepository
	devices    DeviceRepository
	computers  ComputerRepository
	codeData   CodeDataRepository
	dashboard  DashboardRepository
	audit      AuditRepository
	usedTokens UsedTokenRepository
	gateway    TableGateway
	catalog    *schema.Catalog
	mailer     Mailer
	push       PushSender
	publisher  AuditPublisher
}

func New(
	cfg config.Config,
	users UserRepository,
	devices DeviceRepository,
	computers ComputerRepository,
	codeData CodeDataRepository,
	dashboard DashboardRepository,
	audit AuditRepository,
	usedTokens UsedTokenRepository,
	gateway TableGateway,
	catalog *schema.Catalog,
	mailer Mailer,
	push PushSender,
) *Service {
	return &Service{
		cfg:        cfg,
		users:      users,
		devices:    devices,
		computers:  computers,
		codeData:   codeData,
		dashboard:  dashboard,
		audit:      audit,
		usedTokens: usedTokens,
		gateway:    gateway,
		catalog:    catalog,
		mailer:     mailer,
		push:       push,
	}
}

// WithAuditPublisher routes audit events through p instead of writing them directly.
func (s *Service) WithAuditPublisher(p AuditPublisher) *Service {
	s.publisher = p
	return s
}
