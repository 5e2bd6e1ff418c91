package broker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/segmentio/kafka-go"

	"github.com/Surajsachintha/itams-haci-project/pkg/logger"
)

type Handler func(context.Context, kafka.Message) error

type messageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
	Close() error
}

type Consumer struct {
	l             *slog.Logger
	r             messageReader
	wg            sync.WaitGroup
	topicHandlers map[string]Handler
}

func NewConsumer(brokers []string, groupID string, topics ...string) *Consumer {
	l := slog.Default().WithGroup("kafka").With("group_id", groupID)

	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     brokers,
		GroupID:     groupID,
		GroupTopics: topics,
		Logger:      &infoLogger{l: l},
		ErrorLogger: &errorLogger{l: l},
	})

	return newConsumer(l, r)
}

func newConsumer(l *slog.Logger, r messageReader) *Consumer {
	return &Consumer{
		l:             l,
		r:             r,
		topicHandlers: make(map[string]Handler),
	}
}

func (c *Consumer) Handle(topic string, handler Handler) *Consumer {
	c.topicHandlers[topic] = handler
	return c
}

// Consume reads messages in one goroutine until ctx is done or the reader reports EOF.
func (c *Consumer) Consume(ctx context.Context) *Consumer {
	c.wg.Add(1)

	go func() {
		defer c.wg.Done()

		ctx = logger.SetLogType(ctx, "kafka")

		for {
			m, err := c.r.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() != nil || errors.Is(err, io.EOF) {
					c.l.Info("consumer stopped")
					return
				}

				c.l.ErrorContext(ctx, "read kafka msg", "error", err)

				continue
			}

			c.dispatch(ctx, m)
		}
	}()

	return c
}

func (c *Consumer) dispatch(ctx context.Context, m kafka.Message) {
	l := c.l.With("topic", m.Topic, "partition", m.Partition, "offset", m.Offset)

	handler, ok := c.topicHandlers[m.Topic]
	if !ok {
		l.WarnContext(ctx, "kafka handler not found")
		return
	}

	err := handler(ctx, m)
	if err != nil {
		l.ErrorContext(ctx, "handle kafka msg", "error", err)
		return
	}

	l.DebugContext(ctx, "kafka msg handled")
}

func (c *Consumer) Close() {
	err := c.r.Close()
	if err != nil {
		c.l.Error(fmt.Sprintf("close kafka reader: %s", err))
	}

	c.wg.Wait()
}
