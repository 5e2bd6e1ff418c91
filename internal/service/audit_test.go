package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Surajsachintha/itams-haci-project/internal/entity"
	"github.com/Surajsachintha/itams-haci-project/internal/mocks"
)

func TestService_RecordUserLog(t *testing.T) {
	t.Parallel()

	caller := entity.Identity{ID: 3, Username: "jdoe", Role: entity.RoleUser}
	ctx := context.WithValue(context.Background(), entity.CtxKeyIP{}, "10.1.1.1")

	t.Run("published", func(t *testing.T) {
		t.Parallel()

		s, _ := newService(t, testConfig())
		publisher := mocks.NewMockAuditPublisher(gomock.NewController(t))
		s.WithAuditPublisher(publisher)

		publisher.EXPECT().PublishAuditEvent(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e entity.AuditEvent) error {
				require.Equal(t, int64(3), *e.UserID)
				require.Equal(t, "10.1.1.1", e.IPAddress)
				require.False(t, e.CreatedAt.IsZero())
				return nil
			})

		require.NoError(t, s.RecordUserLog(ctx, caller, entity.AuditEvent{Page: "devices", Event: "VIEW"}))
	})

	t.Run("broker down falls back to direct write", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t, testConfig())
		publisher := mocks.NewMockAuditPublisher(gomock.NewController(t))
		s.WithAuditPublisher(publisher)

		publisher.EXPECT().PublishAuditEvent(gomock.Any(), gomock.Any()).Return(errors.New("no brokers"))
		d.audit.EXPECT().SaveAuditEvent(gomock.Any(), gomock.Any()).Return(nil)

		require.NoError(t, s.RecordUserLog(ctx, caller, entity.AuditEvent{Page: "devices", Event: "VIEW"}))
	})

	t.Run("missing event", func(t *testing.T) {
		t.Parallel()

		s, _ := newService(t, testConfig())

		err := s.RecordUserLog(ctx, caller, entity.AuditEvent{Page: "devices"})
		require.ErrorIs(t, err, entity.ErrValidation)
	})
}
