package api

import (
	"context"
	"net/http"

	"github.com/Surajsachintha/itams-haci-project/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=../mocks/handler.go -package=mocks

type Service interface {
	Login(ctx context.Context, username, password, fcmToken string) (string, error)
	ChangePassword(ctx context.Context, caller entity.Identity, username, password string) error
	SetupPassword(ctx context.Context, token, password string) error
	ForgotPassword(ctx context.Context, username string) (string, error)
	Me(ctx context.Context, caller entity.Identity) (entity.Me, error)

	Users(ctx context.Context) ([]entity.UserView, error)
	CreateUser(ctx context.Context, caller entity.Identity, in entity.UserInput) (entity.UserCreated, error)
	UpdateUser(ctx context.Context, caller entity.Identity, id int64, in entity.UserInput) (entity.WriteResult, error)
	SetUserStatus(ctx context.Context, caller entity.Identity, id int64, status int) (entity.WriteResult, error)

	Devices(ctx context.Context, caller entity.Identity) ([]entity.DeviceView, error)
	CreateDevice(ctx context.Context, caller entity.Identity, in entity.DeviceInput) (entity.DeviceCreated, error)
	UpdateDevice(ctx context.Context, caller entity.Identity, id int64, in entity.DeviceInput) (entity.WriteResult, error)
	DeleteDevice(ctx context.Context, caller entity.Identity, id int64) (entity.WriteResult, error)
	LastDeviceID(ctx context.Context) (*entity.DeviceRef, error)
	DeviceQRCode(ctx context.Context, id int64, size int) ([]byte, error)
	SendNotification(ctx context.Context, req entity.PushRequest) (entity.PushResult, error)

	Computers(ctx context.Context, caller entity.Identity) ([]entity.ComputerView, error)
	CreateComputerSpec(ctx context.Context, caller entity.Identity, spec entity.ComputerSpec) (entity.WriteResult, error)
	UpdateComputerSpec(ctx context.Context, caller entity.Identity, id int64, spec entity.ComputerSpec) (entity.WriteResult, error)

	CodeTableRows(ctx context.Context, table string, resolve bool) ([]entity.Record, error)
	Stations(ctx context.Context) ([]entity.Station, error)
	DeviceTypes(ctx context.Context, categoryID int64) ([]entity.DeviceType, error)
	Models(ctx context.Context, typeID, brandID int64) ([]entity.Model, error)
	EditingColumns(ctx context.Context, table string) ([]entity.EditingColumn, error)
	LookupEntries(ctx context.Context, table, idColumn, labelColumn string) ([]entity.Record, error)
	ResolveLookups(ctx context.Context, table string) (entity.LookupSet, error)
	DynamicInsert(ctx context.Context, caller entity.Identity, table string, rec entity.Record) (entity.WriteResult, error)
	DynamicUpdate(ctx context.Context, caller entity.Identity, table string, id any, rec entity.Record) (entity.WriteResult, error)
	DynamicDelete(ctx context.Context, caller entity.Identity, table string, id any) (entity.WriteResult, error)
	RecordUserLog(ctx context.Context, caller entity.Identity, e entity.AuditEvent) error

	DashboardStats(ctx context.Context) (entity.DashboardStats, error)
	DevicesByCategory(ctx context.Context) ([]entity.CategoryCount, error)
	DevicesByStation(ctx context.Context, limit int) ([]entity.StationCount, error)
	TopBrands(ctx context.Context, limit int) ([]entity.BrandCount, error)
	StatusDistribution(ctx context.Context) ([]entity.StatusCount, error)
	RegistrationTrend(ctx context.Context) ([]entity.MonthCount, error)
	WarrantyAlerts(ctx context.Context, days int) ([]entity.WarrantyAlert, error)
	ValueByCategory(ctx context.Context) ([]entity.CategoryValue, error)
	DevicesByAge(ctx context.Context) ([]entity.AgeGroupCount, error)
}

// @title IT Asset Management API
// @version 1.0
// @description Devices, computers, users and code tables of the IT division.
// @BasePath /dms
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

type Handler struct {
	s            Service
	exposeErrors bool
}

func NewHandler(s Service, exposeErrors bool) *Handler {
	return &Handler{
		s:            s,
		exposeErrors: exposeErrors,
	}
}

// Health godoc
// @Summary      Service health
// @Tags         health
// @Success      200 {string} string "ok"
// @Router       /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	_, err := w.Write([]byte("ok\n"))
	if err != nil {
		h.fail(ctx, w, err)
	}
}

func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, err error) {
	code, msg := errorStatus(err)
	SendErr(ctx, w, code, err, msg, h.exposeErrors)
}

func (h *Handler) caller(ctx context.Context, w http.ResponseWriter) (entity.Identity, bool) {
	id, err := entity.IdentityFromContext(ctx)
	if err != nil {
		SendErr(ctx, w, http.StatusUnauthorized, err, "Unauthorized", h.exposeErrors)
		return entity.Identity{}, false
	}

	return id, true
}
