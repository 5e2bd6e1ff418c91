package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/segmentio/kafka-go"

	"github.com/Surajsachintha/itams-haci-project/internal/entity"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Producer struct {
	l          *slog.Logger
	w          messageWriter
	auditTopic string
}

func NewProducer(l *slog.Logger, brokers []string, auditTopic string) *Producer {
	l = l.WithGroup("kafka").With("topic", auditTopic)

	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.LeastBytes{},
		Async:                  true,
		Logger:                 &infoLogger{l: l},
		ErrorLogger:            &errorLogger{l: l},
		AllowAutoTopicCreation: true,
	}

	return &Producer{
		l:          l,
		w:          w,
		auditTopic: auditTopic,
	}
}

// PublishAuditEvent queues the event; the writer is async so delivery errors are only logged.
func (p *Producer) PublishAuditEvent(ctx context.Context, event entity.AuditEvent) error {
	b, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	err = p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.Page),
		Value: b,
		Topic: p.auditTopic,
	})
	if err != nil {
		return fmt.Errorf("write kafka message: %w", err)
	}

	return nil
}

func (p *Producer) Close() {
	err := p.w.Close()
	if err != nil {
		p.l.Error(fmt.Sprintf("close kafka writer: %s", err))
	}
}
