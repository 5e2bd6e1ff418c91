package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/Surajsachintha/itams-haci-project/internal/entity"
)

func TestService_CreateUser(t *testing.T) {
	t.Parallel()

	admin := entity.Identity{ID: 1, Username: "admin", Role: entity.RoleAdmin}

	in := entity.UserInput{
		Username: "  jdoe ",
		FullName: ptr("John Doe"),
		Email:    ptr("jdoe@example.com"),
		Role:     entity.RoleTechnician,
	}

	t.Run("setup email sent", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t, testConfig())

		d.users.EXPECT().CreateUser(gomock.Any(), gomock.Any(), nil).
			DoAndReturn(func(_ context.Context, got entity.UserInput, _ *string) (int64, error) {
				require.Equal(t, "jdoe", got.Username)
				return 7, nil
			})
		d.audit.EXPECT().SaveAuditEvent(gomock.Any(), gomock.Any()).Return(nil)
		d.mailer.EXPECT().SendMessage("Account Setup - IT Division", gomock.Any(), []string{"jdoe@example.com"}, "text/html").
			DoAndReturn(func(_, message string, _ []string, _ string) error {
				require.Contains(t, message, "John Doe")
				require.Contains(t, message, "24 hours")
				return nil
			})

		res, err := s.CreateUser(context.Background(), admin, in)
		require.NoError(t, err)
		require.Equal(t, int64(7), res.InsertID)
		require.Equal(t, entity.Delivery{Sent: true}, res.SetupEmail)
	})

	t.Run("mail failure keeps the user", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t, testConfig())

		d.users.EXPECT().CreateUser(gomock.Any(), gomock.Any(), nil).Return(int64(8), nil)
		d.audit.EXPECT().SaveAuditEvent(gomock.Any(), gomock.Any()).Return(nil)
		d.mailer.EXPECT().SendMessage(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))

		res, err := s.CreateUser(context.Background(), admin, in)
		require.NoError(t, err)
		require.Equal(t, int64(8), res.InsertID)
		require.False(t, res.SetupEmail.Sent)
		require.Contains(t, res.SetupEmail.Error, "smtp down")
	})

	t.Run("no email", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t, testConfig())

		noEmail := in
		noEmail.Email = nil

		d.users.EXPECT().CreateUser(gomock.Any(), gomock.Any(), nil).Return(int64(9), nil)
		d.audit.EXPECT().SaveAuditEvent(gomock.Any(), gomock.Any()).Return(nil)

		res, err := s.CreateUser(context.Background(), admin, noEmail)
		require.NoError(t, err)
		require.False(t, res.SetupEmail.Sent)
		require.Contains(t, res.SetupEmail.Error, "no email")
	})

	t.Run("audit failure does not fail the write", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t, testConfig())

		d.users.EXPECT().CreateUser(gomock.Any(), gomock.Any(), nil).Return(int64(10), nil)
		d.audit.EXPECT().SaveAuditEvent(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
		d.mailer.EXPECT().SendMessage(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		res, err := s.CreateUser(context.Background(), admin, in)
		require.NoError(t, err)
		require.Equal(t, int64(10), res.InsertID)
	})

	t.Run("invalid input", func(t *testing.T) {
		t.Parallel()

		s, _ := newService(t, testConfig())

		bad := in
		bad.Role = "ROOT"

		_, err := s.CreateUser(context.Background(), admin, bad)
		require.ErrorIs(t, err, entity.ErrValidation)
	})

	t.Run("duplicate username", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t, testConfig())

		d.users.EXPECT().CreateUser(gomock.Any(), gomock.Any(), nil).Return(int64(0), entity.ErrAlreadyExists)

		_, err := s.CreateUser(context.Background(), admin, in)
		require.ErrorIs(t, err, entity.ErrAlreadyExists)
	})
}

func TestService_SetUserStatus(t *testing.T) {
	t.Parallel()

	s, d := newService(t, testConfig())
	admin := entity.Identity{ID: 1, Username: "admin", Role: entity.RoleAdmin}

	d.users.EXPECT().SetUserStatus(gomock.Any(), int64(4), entity.UserStatusInactive).Return(int64(1), nil)
	d.audit.EXPECT().SaveAuditEvent(gomock.Any(), gomock.Any()).Return(nil)

	res, err := s.SetUserStatus(context.Background(), admin, 4, entity.UserStatusInactive)
	require.NoError(t, err)
	require.Equal(t, int64(1), res.AffectedRows)

	_, err = s.SetUserStatus(context.Background(), admin, 4, 5)
	require.ErrorIs(t, err, entity.ErrValidation)
}

func TestService_CreateAdmin(t *testing.T) {
	t.Parallel()

	t.Run("stored with password", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t, testConfig())

		d.users.EXPECT().CreateUser(gomock.Any(), gomock.Any(), gomock.Not(gomock.Nil())).
			DoAndReturn(func(_ context.Context, got entity.UserInput, hash *string) (int64, error) {
				require.Equal(t, entity.RoleAdmin, got.Role)
				require.Equal(t, entity.UserStatusActive, *got.Status)
				require.NoError(t, bcrypt.CompareHashAndPassword([]byte(*hash), []byte("bootstrap-pass")))
				return 1, nil
			})
		d.audit.EXPECT().SaveAuditEvent(gomock.Any(), gomock.Any()).Return(nil)

		id, err := s.CreateAdmin(context.Background(), entity.UserInput{Username: " root "}, "bootstrap-pass")
		require.NoError(t, err)
		require.Equal(t, int64(1), id)
	})

	t.Run("short password", func(t *testing.T) {
		t.Parallel()

		s, _ := newService(t, testConfig())

		_, err := s.CreateAdmin(context.Background(), entity.UserInput{Username: "root"}, "123")
		require.ErrorIs(t, err, entity.ErrValidation)

		_, err = s.CreateAdmin(context.Background(), entity.UserInput{Username: "root", Role: entity.RoleTechnician}, "bootstrap-pass")
		require.ErrorIs(t, err, entity.ErrValidation)
	})
}
