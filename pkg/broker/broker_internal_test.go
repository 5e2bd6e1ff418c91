package broker

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"

	"github.com/Surajsachintha/itams-haci-project/internal/entity"
)

type fakeWriter struct {
	msgs []kafka.Message
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error { return nil }

type fakeReader struct {
	mu   sync.Mutex
	msgs []kafka.Message
}

func (r *fakeReader) ReadMessage(ctx context.Context) (kafka.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.msgs) == 0 {
		return kafka.Message{}, io.EOF
	}

	m := r.msgs[0]
	r.msgs = r.msgs[1:]

	return m, nil
}

func (r *fakeReader) Close() error { return nil }

func TestProducer_PublishAuditEvent(t *testing.T) {
	t.Parallel()

	w := &fakeWriter{}
	p := &Producer{l: slog.Default(), w: w, auditTopic: "itams.audit"}

	err := p.PublishAuditEvent(context.Background(), entity.AuditEvent{
		Page:  "code_vendors",
		Event: entity.AuditEventInsert,
		RowID: "7",
	})
	require.NoError(t, err)
	require.Len(t, w.msgs, 1)
	require.Equal(t, "itams.audit", w.msgs[0].Topic)
	require.Equal(t, []byte("code_vendors"), w.msgs[0].Key)

	var got entity.AuditEvent
	require.NoError(t, json.Unmarshal(w.msgs[0].Value, &got))
	require.Equal(t, entity.FlexString("7"), got.RowID)
}

func TestConsumer_DispatchesByTopic(t *testing.T) {
	t.Parallel()

	r := &fakeReader{msgs: []kafka.Message{
		{Topic: "itams.audit", Value: []byte("a")},
		{Topic: "unknown", Value: []byte("b")},
		{Topic: "itams.audit", Value: []byte("c")},
	}}

	var (
		mu   sync.Mutex
		seen []string
	)

	c := newConsumer(slog.Default(), r).Handle("itams.audit", func(_ context.Context, m kafka.Message) error {
		mu.Lock()
		defer mu.Unlock()

		seen = append(seen, string(m.Value))

		return errors.New("handler errors are logged")
	})

	c.Consume(context.Background())
	c.Close()

	require.Equal(t, []string{"a", "c"}, seen)
}
