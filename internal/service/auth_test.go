package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/Surajsachintha/itams-haci-project/internal/entity"
)

func hashed(t *testing.T, password string) *string {
	t.Helper()

	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return ptr(string(b))
}

func sign(t *testing.T, claims jwt.Claims, secret string) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	return token
}

func passwordToken(t *testing.T, userID int64, scope entity.TokenScope) string {
	t.Helper()

	return sign(t, entity.PasswordTokenClaims{
		UserID:   userID,
		Username: "jdoe",
		Scope:    scope,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.Must(uuid.NewV4()).String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}, testSecret)
}

func TestService_Login(t *testing.T) {
	t.Parallel()

	s, d := newService(t, testConfig())

	u := entity.User{
		ID:           5,
		Username:     "jdoe",
		PasswordHash: hashed(t, "correct-horse"),
		FullName:     ptr("John Doe"),
		Role:         entity.RoleTechnician,
		UnitID:       ptr(int64(3)),
		Status:       entity.UserStatusActive,
	}

	d.users.EXPECT().ActiveUserByUsername(gomock.Any(), "jdoe").Return(u, nil)
	d.users.EXPECT().UpdateFCMToken(gomock.Any(), int64(5), "fcm-1").Return(nil)

	token, err := s.Login(context.Background(), "jdoe", "correct-horse", "fcm-1")
	require.NoError(t, err)

	id, err := s.ParseSessionToken(token)
	require.NoError(t, err)
	require.Equal(t, u.Identity(), id)
}

func TestService_Login_Rejected(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		user     entity.User
		err      error
		password string
	}{
		{
			name:     "wrong password",
			user:     entity.User{ID: 1, Username: "jdoe", PasswordHash: hashed(t, "correct-horse"), Role: entity.RoleUser},
			password: "battery-staple",
		},
		{
			name:     "password not set",
			user:     entity.User{ID: 1, Username: "jdoe", Role: entity.RoleUser},
			password: "anything",
		},
		{
			name:     "unknown user",
			err:      entity.ErrNotFound,
			password: "anything",
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			s, d := newService(t, testConfig())

			d.users.EXPECT().ActiveUserByUsername(gomock.Any(), "jdoe").Return(test.user, test.err)

			token, err := s.Login(context.Background(), "jdoe", test.password, "fcm-1")
			require.ErrorIs(t, err, entity.ErrInvalidCredentials)
			require.Empty(t, token)
		})
	}
}

func TestService_ParseSessionToken_Rejected(t *testing.T) {
	t.Parallel()

	identity := entity.Identity{ID: 1, Username: "jdoe", Name: "John", Role: entity.RoleAdmin}
	future := jwt.NewNumericDate(time.Now().Add(time.Hour))

	tests := []struct {
		name  string
		token string
		want  error
	}{
		{
			name: "expired",
			token: sign(t, entity.SessionClaims{
				Identity: identity,
				RegisteredClaims: jwt.RegisteredClaims{
					ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
				},
			}, testSecret),
			want: entity.ErrTokenExpired,
		},
		{
			name:  "malformed",
			token: "not-a-jwt",
			want:  entity.ErrUnauthorized,
		},
		{
			name: "bad signature",
			token: sign(t, entity.SessionClaims{
				Identity:         identity,
				RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: future},
			}, "other-secret"),
			want: entity.ErrUnauthorized,
		},
		{
			name: "setup token",
			token: sign(t, entity.SessionClaims{
				Identity:         identity,
				Scope:            entity.ScopeAccountSetup,
				RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: future},
			}, testSecret),
			want: entity.ErrUnauthorized,
		},
		{
			name: "no expiry",
			token: sign(t, entity.SessionClaims{
				Identity: identity,
			}, testSecret),
			want: entity.ErrUnauthorized,
		},
		{
			name: "unknown role",
			token: sign(t, entity.SessionClaims{
				Identity:         entity.Identity{ID: 1, Username: "jdoe", Role: "ROOT"},
				RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: future},
			}, testSecret),
			want: entity.ErrUnauthorized,
		},
	}

	s, _ := newService(t, testConfig())

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			_, err := s.ParseSessionToken(test.token)
			require.ErrorIs(t, err, test.want)
		})
	}
}

func TestService_ChangePassword(t *testing.T) {
	t.Parallel()

	t.Run("self", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t, testConfig())
		caller := entity.Identity{ID: 2, Username: "jdoe", Role: entity.RoleUser}

		d.users.EXPECT().UpdatePassword(gomock.Any(), "jdoe", gomock.Any()).Return(int64(1), nil)
		d.audit.EXPECT().SaveAuditEvent(gomock.Any(), gomock.Any()).Return(nil)

		require.NoError(t, s.ChangePassword(context.Background(), caller, "jdoe", "new-password"))
	})

	t.Run("other user without global role", func(t *testing.T) {
		t.Parallel()

		s, _ := newService(t, testConfig())
		caller := entity.Identity{ID: 2, Username: "jdoe", Role: entity.RoleUnitAdmin}

		err := s.ChangePassword(context.Background(), caller, "someone", "new-password")
		require.ErrorIs(t, err, entity.ErrForbidden)
	})

	t.Run("inactive user", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t, testConfig())
		caller := entity.Identity{ID: 1, Username: "admin", Role: entity.RoleSuper}

		d.users.EXPECT().UpdatePassword(gomock.Any(), "someone", gomock.Any()).Return(int64(0), nil)

		err := s.ChangePassword(context.Background(), caller, "someone", "new-password")
		require.ErrorIs(t, err, entity.ErrUserNotFoundOrInact)
	})

	t.Run("short password", func(t *testing.T) {
		t.Parallel()

		s, _ := newService(t, testConfig())
		caller := entity.Identity{ID: 2, Username: "jdoe", Role: entity.RoleUser}

		err := s.ChangePassword(context.Background(), caller, "jdoe", "abc")
		require.ErrorIs(t, err, entity.ErrValidation)
	})
}

func TestService_SetupPassword_SingleUse(t *testing.T) {
	t.Parallel()

	s, d := newService(t, testConfig())
	token := passwordToken(t, 9, entity.ScopeAccountSetup)

	gomock.InOrder(
		d.usedTokens.EXPECT().MarkTokenUsed(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil),
		d.usedTokens.EXPECT().MarkTokenUsed(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(entity.ErrTokenUsed),
	)
	d.users.EXPECT().UpdatePasswordByID(gomock.Any(), int64(9), gomock.Any()).Return(int64(1), nil)
	d.audit.EXPECT().SaveAuditEvent(gomock.Any(), gomock.Any()).Return(nil)

	require.NoError(t, s.SetupPassword(context.Background(), token, "new-password"))

	err := s.SetupPassword(context.Background(), token, "new-password")
	require.ErrorIs(t, err, entity.ErrTokenUsed)
}

func TestService_SetupPassword_Rejected(t *testing.T) {
	t.Parallel()

	session := sign(t, entity.SessionClaims{
		Identity:         entity.Identity{ID: 9, Username: "jdoe", Role: entity.RoleUser},
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	}, testSecret)

	tests := []struct {
		name  string
		token string
		want  error
	}{
		{name: "session token", token: session, want: entity.ErrInvalidTokenScope},
		{name: "unknown scope", token: passwordToken(t, 9, "delete_account"), want: entity.ErrInvalidTokenScope},
		{name: "garbage", token: "abc.def.ghi", want: entity.ErrInvalidToken},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			s, _ := newService(t, testConfig())

			err := s.SetupPassword(context.Background(), test.token, "new-password")
			require.ErrorIs(t, err, test.want)
		})
	}
}

func TestService_SetupPassword_InactiveUser(t *testing.T) {
	t.Parallel()

	s, d := newService(t, testConfig())

	d.usedTokens.EXPECT().MarkTokenUsed(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	d.users.EXPECT().UpdatePasswordByID(gomock.Any(), int64(9), gomock.Any()).Return(int64(0), nil)

	err := s.SetupPassword(context.Background(), passwordToken(t, 9, entity.ScopePasswordReset), "new-password")
	require.ErrorIs(t, err, entity.ErrUserNotFoundOrInact)
}

func TestService_ForgotPassword(t *testing.T) {
	t.Parallel()

	u := entity.User{ID: 4, Username: "jdoe", Email: ptr("jdoe@example.com"), Role: entity.RoleUser}

	t.Run("sends reset link", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t, testConfig())

		d.users.EXPECT().ActiveUserByUsername(gomock.Any(), "jdoe").Return(u, nil)
		d.mailer.EXPECT().SendMessage("Password Reset - IT Division", gomock.Any(), []string{"jdoe@example.com"}, "text/html").
			DoAndReturn(func(_, message string, _ []string, _ string) error {
				require.Contains(t, message, "https://ams.test/set-password?token=")
				require.Contains(t, message, "1 hour")
				return nil
			})

		email, err := s.ForgotPassword(context.Background(), "jdoe")
		require.NoError(t, err)
		require.Equal(t, "jdoe@example.com", email)
	})

	t.Run("mail failure", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t, testConfig())

		d.users.EXPECT().ActiveUserByUsername(gomock.Any(), "jdoe").Return(u, nil)
		d.mailer.EXPECT().SendMessage(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))

		_, err := s.ForgotPassword(context.Background(), "jdoe")
		require.Error(t, err)
		require.True(t, strings.Contains(err.Error(), "smtp down"))
	})

	t.Run("unknown user", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t, testConfig())

		d.users.EXPECT().ActiveUserByUsername(gomock.Any(), "ghost").Return(entity.User{}, entity.ErrNotFound)

		_, err := s.ForgotPassword(context.Background(), "ghost")
		require.ErrorIs(t, err, entity.ErrNotFound)
	})
}

func TestService_Me(t *testing.T) {
	t.Parallel()

	s, d := newService(t, testConfig())
	caller := entity.Identity{ID: 2, Username: "jdoe", Role: entity.RoleStation, Unit: ptr(int64(7))}

	d.codeData.EXPECT().StationIDsForUnit(gomock.Any(), int64(7)).Return([]int64{11, 12}, nil)

	me, err := s.Me(context.Background(), caller)
	require.NoError(t, err)
	require.Equal(t, []int64{11, 12}, me.Stations)
	require.Equal(t, caller, me.Identity)

	me, err = s.Me(context.Background(), entity.Identity{ID: 1, Role: entity.RoleAdmin})
	require.NoError(t, err)
	require.Empty(t, me.Stations)
}
