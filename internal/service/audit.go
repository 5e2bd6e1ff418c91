package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/Surajsachintha/itams-haci-project/internal/entity"
)

// RecordUserLog stores an audit record sent by the client on behalf of the caller.
func (s *Service) RecordUserLog(ctx context.Context, caller entity.Identity, e entity.AuditEvent) error {
	if e.Page == "" || e.Event == "" {
		return invalid("page and event", "are required")
	}

	e.UserID = &caller.ID
	e.IPAddress = entity.IPFromCtx(ctx)
	e.CreatedAt = time.Now()

	return s.publishAudit(ctx, e)
}

// StoreAuditEvent persists an event delivered by the broker.
func (s *Service) StoreAuditEvent(ctx context.Context, e entity.AuditEvent) error {
	err := s.audit.SaveAuditEvent(ctx, e)
	if err != nil {
		return fmt.Errorf("save audit event: %w", err)
	}

	return nil
}

func (s *Service) publishAudit(ctx context.Context, e entity.AuditEvent) error {
	if s.publisher != nil {
		err := s.publisher.PublishAuditEvent(ctx, e)
		if err == nil {
			return nil
		}

		slog.WarnContext(ctx, "publish audit event, writing directly", "error", err)
	}

	return s.StoreAuditEvent(ctx, e)
}

// recordAudit logs server-side writes. Failures never fail the write itself.
func (s *Service) recordAudit(ctx context.Context, caller entity.Identity, page, event string, rowID any, newData any) {
	e := entity.AuditEvent{
		Page:      page,
		Event:     event,
		RowID:     entity.FlexString(fmt.Sprint(rowID)),
		IPAddress: entity.IPFromCtx(ctx),
		CreatedAt: time.Now(),
	}

	if caller.ID != 0 {
		id := caller.ID
		e.UserID = &id
	}

	if newData != nil {
		b, err := json.Marshal(newData)
		if err == nil {
			e.NewData = b
		}
	}

	err := s.publishAudit(ctx, e)
	if err != nil {
		slog.ErrorContext(ctx, "failed to record audit event", "page", page, "event", event, "error", err)
	}
}
