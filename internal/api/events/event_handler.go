package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"

	"github.com/Surajsachintha/itams-haci-project/internal/entity"
)

type Service interface {
	StoreAuditEvent(ctx context.Context, e entity.AuditEvent) error
}

type EventHandler struct {
	s Service
}

func NewEventHandler(s Service) *EventHandler {
	return &EventHandler{s: s}
}

// OnAuditEvent writes an audit event published by any instance to the user log.
func (h *EventHandler) OnAuditEvent(ctx context.Context, msg kafka.Message) error {
	var event entity.AuditEvent

	err := json.Unmarshal(msg.Value, &event)
	if err != nil {
		return fmt.Errorf("unmarshal event: %w", err)
	}

	if event.Page == "" || event.Event == "" {
		return nil
	}

	err = h.s.StoreAuditEvent(ctx, event)
	if err != nil {
		return fmt.Errorf("store audit event: %w", err)
	}

	return nil
}
