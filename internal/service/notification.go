package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/samber/lo"

	"github.com/Surajsachintha/itams-haci-project/internal/entity"
)

// SendNotification pushes to the given device token, or to the token stored for the user.
func (s *Service) SendNotification(ctx context.Context, req entity.PushRequest) (entity.PushResult, error) {
	token := req.FCMToken

	if token == "" && req.UserID != nil {
		t, err := s.users.FCMToken(ctx, *req.UserID)
		if err != nil {
			return entity.PushResult{}, fmt.Errorf("token of user %d: %w", *req.UserID, err)
		}

		token = t
	}

	if token == "" {
		return entity.PushResult{}, entity.ErrPushTokenRequired
	}

	msg := entity.PushMessage{
		Token: token,
		Title: lo.Ternary(req.Title != "", req.Title, entity.DefaultPushTitle),
		Body:  lo.Ternary(req.Body != "", req.Body, entity.DefaultPushBody),
	}

	id, err := s.push.Send(ctx, msg)
	if err != nil {
		return entity.PushResult{}, fmt.Errorf("send push: %w", err)
	}

	return entity.PushResult{Response: id}, nil
}

// WarrantyAlertJob notifies administrators about warranties that run out soon.
func (s *Service) WarrantyAlertJob(ctx context.Context) error {
	alerts, err := s.dashboard.WarrantyAlerts(ctx, s.cfg.Jobs.WarrantyAlertDays)
	if err != nil {
		return fmt.Errorf("warranty alerts: %w", err)
	}

	if len(alerts) == 0 {
		return nil
	}

	tokens, err := s.users.FCMTokensByRoles(ctx, entity.RoleAdmin, entity.RoleSuper)
	if err != nil {
		return fmt.Errorf("admin tokens: %w", err)
	}

	msg := entity.PushMessage{
		Title: "Warranty alert",
		Body: fmt.Sprintf("%d device(s) have a warranty expiring within %d days",
			len(alerts), s.cfg.Jobs.WarrantyAlertDays),
		Data: map[string]string{
			"type":  "warranty_alert",
			"count": strconv.Itoa(len(alerts)),
		},
	}

	var errs []error

	for _, token := range lo.Uniq(tokens) {
		msg.Token = token

		_, err = s.push.Send(ctx, msg)
		if err != nil {
			errs = append(errs, err)
		}
	}

	slog.InfoContext(ctx, "warranty alerts sent", "devices", len(alerts), "recipients", len(tokens), "failed", len(errs))

	return errors.Join(errs...)
}
