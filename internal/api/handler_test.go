package api_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/golang-jwt/jwt/v5"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Surajsachintha/itams-haci-project/internal/api"
	"github.com/Surajsachintha/itams-haci-project/internal/entity"
	"github.com/Surajsachintha/itams-haci-project/internal/mocks"
	"github.com/Surajsachintha/itams-haci-project/internal/repository"
	"github.com/Surajsachintha/itams-haci-project/internal/schema"
	"github.com/Surajsachintha/itams-haci-project/internal/service"
	"github.com/Surajsachintha/itams-haci-project/pkg/config"
)

var (
	admin = entity.Identity{ID: 1, Username: "admin", Name: "Admin", Role: entity.RoleAdmin}
	tech  = entity.Identity{ID: 2, Username: "tech", Name: "Tech", Role: entity.RoleTechnician}
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Token   string          `json:"token"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

type testAPI struct {
	svc    *mocks.MockService
	auth   *mocks.MockAuthService
	router http.Handler
}

func newTestAPI(t *testing.T, exposeErrors bool) *testAPI {
	t.Helper()

	ctrl := gomock.NewController(t)

	c := &testAPI{
		svc:  mocks.NewMockService(ctrl),
		auth: mocks.NewMockAuthService(ctrl),
	}

	c.router = api.NewRouter(api.NewHandler(c.svc, exposeErrors), api.NewMiddleware(c.auth, exposeErrors))

	c.auth.EXPECT().ParseSessionToken("admin-token").Return(admin, nil).AnyTimes()
	c.auth.EXPECT().ParseSessionToken("tech-token").Return(tech, nil).AnyTimes()

	return c
}

func do(t *testing.T, h http.Handler, method, path, token, body string) (int, envelope) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return rec.Code, env
}

func TestAuth_RejectsBeforeHandler(t *testing.T) {
	t.Parallel()

	c := newTestAPI(t, true)

	c.auth.EXPECT().ParseSessionToken("expired-token").Return(entity.Identity{}, entity.ErrTokenExpired)
	c.auth.EXPECT().ParseSessionToken("garbage").Return(entity.Identity{}, entity.ErrUnauthorized)

	code, env := do(t, c.router, http.MethodGet, "/dms/devices/device-list", "", "")
	require.Equal(t, http.StatusUnauthorized, code)
	require.False(t, env.Success)
	require.NotEmpty(t, env.Message)

	code, env = do(t, c.router, http.MethodGet, "/dms/devices/device-list", "expired-token", "")
	require.Equal(t, http.StatusUnauthorized, code)
	require.Equal(t, "Token expired", env.Message)

	code, _ = do(t, c.router, http.MethodDelete, "/dms/devices/device/3", "garbage", "")
	require.Equal(t, http.StatusUnauthorized, code)
}

func TestRequireRole(t *testing.T) {
	t.Parallel()

	c := newTestAPI(t, true)

	code, env := do(t, c.router, http.MethodPost, "/dms/codedata/dynamic-insert", "tech-token",
		`{"table":"code_vendors","data":{"vendor_name":"Acme"}}`)
	require.Equal(t, http.StatusForbidden, code)
	require.False(t, env.Success)

	code, _ = do(t, c.router, http.MethodGet, "/dms/users", "tech-token", "")
	require.Equal(t, http.StatusForbidden, code)

	c.svc.EXPECT().Users(gomock.Any()).Return([]entity.UserView{{ID: 1, Username: "admin"}}, nil)

	code, env = do(t, c.router, http.MethodGet, "/dms/users", "admin-token", "")
	require.Equal(t, http.StatusOK, code)
	require.True(t, env.Success)
}

func TestHandler_Login(t *testing.T) {
	t.Parallel()

	c := newTestAPI(t, true)

	c.svc.EXPECT().Login(gomock.Any(), "jdoe", "wrong", "").Return("", entity.ErrInvalidCredentials)
	c.svc.EXPECT().Login(gomock.Any(), "jdoe", "right", "fcm").Return("session-token", nil)

	code, env := do(t, c.router, http.MethodPost, "/dms/login", "", `{"username":"jdoe","password":"wrong"}`)
	require.Equal(t, http.StatusUnauthorized, code)
	require.False(t, env.Success)
	require.Empty(t, env.Token)

	code, env = do(t, c.router, http.MethodPost, "/dms/login", "", `{"username":"jdoe","password":"right","fcmToken":"fcm"}`)
	require.Equal(t, http.StatusOK, code)
	require.True(t, env.Success)
	require.Equal(t, "session-token", env.Token)
	require.Empty(t, env.Data)

	code, _ = do(t, c.router, http.MethodPost, "/dms/login", "", `{"username":`)
	require.Equal(t, http.StatusBadRequest, code)
}

func TestEnvelope_ServerError(t *testing.T) {
	t.Parallel()

	t.Run("detail exposed", func(t *testing.T) {
		t.Parallel()

		c := newTestAPI(t, true)

		c.svc.EXPECT().DashboardStats(gomock.Any()).Return(entity.DashboardStats{}, context.DeadlineExceeded)

		code, env := do(t, c.router, http.MethodGet, "/dms/dashboard/stats", "", "")
		require.Equal(t, http.StatusInternalServerError, code)
		require.False(t, env.Success)
		require.Equal(t, "Internal Server Error", env.Message)
		require.Equal(t, context.DeadlineExceeded.Error(), env.Error)
	})

	t.Run("detail hidden", func(t *testing.T) {
		t.Parallel()

		c := newTestAPI(t, false)

		c.svc.EXPECT().DashboardStats(gomock.Any()).Return(entity.DashboardStats{}, context.DeadlineExceeded)

		code, env := do(t, c.router, http.MethodGet, "/dms/dashboard/stats", "", "")
		require.Equal(t, http.StatusInternalServerError, code)
		require.Empty(t, env.Error)
	})

	t.Run("panic", func(t *testing.T) {
		t.Parallel()

		c := newTestAPI(t, true)

		c.svc.EXPECT().Devices(gomock.Any(), admin).DoAndReturn(func(context.Context, entity.Identity) ([]entity.DeviceView, error) {
			panic("nil map")
		})

		code, env := do(t, c.router, http.MethodGet, "/dms/devices/device-list", "admin-token", "")
		require.Equal(t, http.StatusInternalServerError, code)
		require.False(t, env.Success)
		require.Contains(t, env.Error, "nil map")
	})
}

func TestHandler_DeleteDeviceTwice(t *testing.T) {
	t.Parallel()

	c := newTestAPI(t, true)

	gomock.InOrder(
		c.svc.EXPECT().DeleteDevice(gomock.Any(), tech, int64(3)).Return(entity.WriteResult{AffectedRows: 1}, nil),
		c.svc.EXPECT().DeleteDevice(gomock.Any(), tech, int64(3)).Return(entity.WriteResult{AffectedRows: 0}, nil),
	)

	code, env := do(t, c.router, http.MethodDelete, "/dms/devices/device/3", "tech-token", "")
	require.Equal(t, http.StatusOK, code)
	require.JSONEq(t, `{"affectedRows":1}`, string(env.Data))

	code, env = do(t, c.router, http.MethodDelete, "/dms/devices/device/3", "tech-token", "")
	require.Equal(t, http.StatusOK, code)
	require.True(t, env.Success)
	require.JSONEq(t, `{"affectedRows":0}`, string(env.Data))

	code, _ = do(t, c.router, http.MethodDelete, "/dms/devices/device/abc", "tech-token", "")
	require.Equal(t, http.StatusBadRequest, code)
}

func TestHandler_LastDeviceID_None(t *testing.T) {
	t.Parallel()

	c := newTestAPI(t, true)

	c.svc.EXPECT().LastDeviceID(gomock.Any()).Return(nil, nil)

	code, env := do(t, c.router, http.MethodGet, "/dms/devices/device-last-id", "tech-token", "")
	require.Equal(t, http.StatusOK, code)
	require.True(t, env.Success)
	require.Equal(t, "null", string(env.Data))
}

func TestHandler_CreateUser_MailFailure(t *testing.T) {
	t.Parallel()

	c := newTestAPI(t, true)

	c.svc.EXPECT().CreateUser(gomock.Any(), admin, gomock.Any()).Return(entity.UserCreated{
		WriteResult: entity.WriteResult{InsertID: 7, AffectedRows: 1},
		SetupEmail:  entity.Delivery{Sent: false, Error: "smtp down"},
	}, nil)

	code, env := do(t, c.router, http.MethodPost, "/dms/users", "admin-token",
		`{"username":"jdoe","email":"jdoe@example.com","role":"USER"}`)
	require.Equal(t, http.StatusOK, code)
	require.True(t, env.Success)
	require.JSONEq(t, `{"insertId":7,"affectedRows":1,"setupEmail":{"sent":false,"error":"smtp down"}}`, string(env.Data))
}

func TestHandler_SetupPassword_Reused(t *testing.T) {
	t.Parallel()

	c := newTestAPI(t, true)

	gomock.InOrder(
		c.svc.EXPECT().SetupPassword(gomock.Any(), "setup", "new-password").Return(nil),
		c.svc.EXPECT().SetupPassword(gomock.Any(), "setup", "new-password").Return(entity.ErrTokenUsed),
	)

	code, _ := do(t, c.router, http.MethodPost, "/dms/setup-password", "", `{"token":"setup","password":"new-password"}`)
	require.Equal(t, http.StatusOK, code)

	code, env := do(t, c.router, http.MethodPost, "/dms/setup-password", "", `{"token":"setup","password":"new-password"}`)
	require.Equal(t, http.StatusBadRequest, code)
	require.False(t, env.Success)
}

func TestHandler_SendNotification_MissingToken(t *testing.T) {
	t.Parallel()

	c := newTestAPI(t, true)

	c.svc.EXPECT().SendNotification(gomock.Any(), entity.PushRequest{Title: "hi"}).
		Return(entity.PushResult{}, entity.ErrPushTokenRequired)

	code, env := do(t, c.router, http.MethodPost, "/dms/devices/send", "tech-token", `{"title":"hi"}`)
	require.Equal(t, http.StatusBadRequest, code)
	require.Equal(t, entity.ErrPushTokenRequired.Error(), env.Message)
}

func TestHandler_DashboardLimit(t *testing.T) {
	t.Parallel()

	c := newTestAPI(t, true)

	c.svc.EXPECT().TopBrands(gomock.Any(), 3).Return([]entity.BrandCount{{BrandID: 1, BrandName: "Dell", Count: 9}}, nil)

	code, env := do(t, c.router, http.MethodGet, "/dms/dashboard/top-brands?limit=3", "", "")
	require.Equal(t, http.StatusOK, code)
	require.JSONEq(t, `[{"brand_id":1,"brand_name":"Dell","count":9}]`, string(env.Data))

	code, _ = do(t, c.router, http.MethodGet, "/dms/dashboard/top-brands?limit=many", "", "")
	require.Equal(t, http.StatusBadRequest, code)
}

// The code table endpoints run the real service against an in-memory database.
func TestRouter_CodeTableRoundTrip(t *testing.T) {
	t.Parallel()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)

	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
		CREATE TABLE code_vendors (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			vendor_name    TEXT NOT NULL,
			contact_number TEXT,
			email          TEXT,
			address        TEXT
		)`)
	require.NoError(t, err)

	cfg := config.Config{JWT: config.JWTConfig{Secret: "secret", SessionTTL: time.Hour}}

	audit := mocks.NewMockAuditRepository(gomock.NewController(t))
	audit.EXPECT().SaveAuditEvent(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	s := service.New(cfg, nil, nil, nil, nil, nil, audit, nil,
		repository.NewTableGateway(db, sq.Question), schema.CodeTables(), nil, nil)

	router := api.NewRouter(api.NewHandler(s, true), api.NewMiddleware(s, true))

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, entity.SessionClaims{
		Identity:         admin,
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	code, env := do(t, router, http.MethodPost, "/dms/codedata/dynamic-insert", token,
		`{"table":"code_vendors","data":{"vendor_name":"Acme"}}`)
	require.Equal(t, http.StatusOK, code, env.Message)
	require.JSONEq(t, `{"insertId":1,"affectedRows":1}`, string(env.Data))

	code, env = do(t, router, http.MethodGet, "/dms/codedata/code-data?table=code_vendors", token, "")
	require.Equal(t, http.StatusOK, code)
	require.JSONEq(t, `[{"id":1,"vendor_name":"Acme","contact_number":null,"email":null,"address":null}]`, string(env.Data))

	code, env = do(t, router, http.MethodPut, "/dms/codedata/dynamic-update", token,
		`{"table":"code_vendors","id":1,"data":{"email":"sales@acme.test"}}`)
	require.Equal(t, http.StatusOK, code)
	require.JSONEq(t, `{"affectedRows":1}`, string(env.Data))

	// the settings screen sends back the whole row it read, id included
	code, env = do(t, router, http.MethodPut, "/dms/codedata/dynamic-update", token,
		`{"table":"code_vendors","id":1,"data":{"id":1,"vendor_name":"Acme Ltd","contact_number":null,"email":"sales@acme.test","address":null}}`)
	require.Equal(t, http.StatusOK, code, env.Message)
	require.JSONEq(t, `{"affectedRows":1}`, string(env.Data))

	code, env = do(t, router, http.MethodGet, "/dms/codedata/code-data?table=code_vendors", token, "")
	require.Equal(t, http.StatusOK, code)
	require.JSONEq(t, `[{"id":1,"vendor_name":"Acme Ltd","contact_number":null,"email":"sales@acme.test","address":null}]`, string(env.Data))

	code, _ = do(t, router, http.MethodPut, "/dms/codedata/dynamic-update", token,
		`{"table":"code_vendors","id":1,"data":{"id":2,"vendor_name":"Other"}}`)
	require.Equal(t, http.StatusBadRequest, code)

	code, env = do(t, router, http.MethodPost, "/dms/codedata/dynamic-insert", token,
		`{"table":"dms_users","data":{"username":"x"}}`)
	require.Equal(t, http.StatusBadRequest, code)
	require.False(t, env.Success)

	code, _ = do(t, router, http.MethodPost, "/dms/codedata/dynamic-insert", token,
		`{"table":"code_vendors","data":{"vendor_name":"Acme","password":"x"}}`)
	require.Equal(t, http.StatusBadRequest, code)

	code, env = do(t, router, http.MethodDelete, "/dms/codedata/dynamic-delete", token, `{"table":"code_vendors","id":1}`)
	require.Equal(t, http.StatusOK, code)
	require.JSONEq(t, `{"affectedRows":1}`, string(env.Data))

	code, env = do(t, router, http.MethodDelete, "/dms/codedata/dynamic-delete", token, `{"table":"code_vendors","id":1}`)
	require.Equal(t, http.StatusOK, code)
	require.JSONEq(t, `{"affectedRows":0}`, string(env.Data))
}
