package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Surajsachintha/itams-haci-project/internal/entity"
)

func TestService_SendNotification(t *testing.T) {
	t.Parallel()

	t.Run("raw token with defaults", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t, testConfig())

		d.push.EXPECT().Send(gomock.Any(), entity.PushMessage{
			Token: "device-token",
			Title: entity.DefaultPushTitle,
			Body:  entity.DefaultPushBody,
		}).Return("msg-1", nil)

		res, err := s.SendNotification(context.Background(), entity.PushRequest{FCMToken: "device-token"})
		require.NoError(t, err)
		require.Equal(t, entity.PushResult{Response: "msg-1"}, res)
	})

	t.Run("stored user token", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t, testConfig())

		d.users.EXPECT().FCMToken(gomock.Any(), int64(6)).Return("stored-token", nil)
		d.push.EXPECT().Send(gomock.Any(), entity.PushMessage{
			Token: "stored-token",
			Title: "Repair done",
			Body:  "Pick up your laptop",
		}).Return("msg-2", nil)

		res, err := s.SendNotification(context.Background(), entity.PushRequest{
			UserID: ptr(int64(6)),
			Title:  "Repair done",
			Body:   "Pick up your laptop",
		})
		require.NoError(t, err)
		require.Equal(t, "msg-2", res.Response)
	})

	t.Run("missing token", func(t *testing.T) {
		t.Parallel()

		s, _ := newService(t, testConfig())

		_, err := s.SendNotification(context.Background(), entity.PushRequest{Title: "x"})
		require.ErrorIs(t, err, entity.ErrPushTokenRequired)
	})

	t.Run("user without token", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t, testConfig())

		d.users.EXPECT().FCMToken(gomock.Any(), int64(6)).Return("", nil)

		_, err := s.SendNotification(context.Background(), entity.PushRequest{UserID: ptr(int64(6))})
		require.ErrorIs(t, err, entity.ErrPushTokenRequired)
	})

	t.Run("gateway failure", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t, testConfig())

		d.push.EXPECT().Send(gomock.Any(), gomock.Any()).Return("", errors.New("status 502"))

		_, err := s.SendNotification(context.Background(), entity.PushRequest{FCMToken: "device-token"})
		require.Error(t, err)
		require.False(t, entity.IsValidation(err))
	})
}

func TestService_WarrantyAlertJob(t *testing.T) {
	t.Parallel()

	t.Run("pushes to every admin token once", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t, testConfig())

		d.dashboard.EXPECT().WarrantyAlerts(gomock.Any(), 30).Return([]entity.WarrantyAlert{{ID: 1}, {ID: 2}}, nil)
		d.users.EXPECT().FCMTokensByRoles(gomock.Any(), entity.RoleAdmin, entity.RoleSuper).
			Return([]string{"a", "b", "a"}, nil)
		d.push.EXPECT().Send(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msg entity.PushMessage) (string, error) {
				require.Equal(t, "2", msg.Data["count"])

				if msg.Token == "b" {
					return "", errors.New("unregistered")
				}

				return "ok", nil
			}).Times(2)

		err := s.WarrantyAlertJob(context.Background())
		require.ErrorContains(t, err, "unregistered")
	})

	t.Run("nothing expiring", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t, testConfig())

		d.dashboard.EXPECT().WarrantyAlerts(gomock.Any(), 30).Return(nil, nil)

		require.NoError(t, s.WarrantyAlertJob(context.Background()))
	})
}
