package publisher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	k "smarthome/internal/kafka"
	"smarthome/internal/worker"

	"github.com/segmentio/kafka-go"
)

var (
	ErrMarshalEvent = errors.New("error marshalling event")
	ErrWriteMessage = errors.New("error writing message")
)

const (
	defaultQueueSize = 256
	// maxBatch matches kafka-go's default writer batch size.
	maxBatch = 100
)

type Config struct {
	Brokers   []string
	Topic     string
	QueueSize int
	// Transport overrides kafka-go's default transport when set.
	Transport kafka.RoundTripper
}

// Publisher ships lookup events to Kafka off the request path. Record never
// blocks; events that do not fit in the queue are dropped. Events already
// queued when the worker wakes up go out in a single write.
type Publisher struct {
	worker *worker.Worker
	writer k.Writer
	queue  chan k.LookupEvent
}

func New(cfg Config) *Publisher {
	return newPublisher(k.NewWriter(cfg.Brokers, cfg.Topic, cfg.Transport), cfg.QueueSize)
}

func newPublisher(writer k.Writer, queueSize int) *Publisher {
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}
	publisher := &Publisher{
		writer: writer,
		queue:  make(chan k.LookupEvent, queueSize),
	}
	publisher.worker = worker.New(worker.Config{
		Name:      "lookup-publisher",
		Processor: publisher,
	})
	return publisher
}

func (p *Publisher) Record(ctx context.Context, event k.LookupEvent) {
	select {
	case p.queue <- event:
	default:
		slog.WarnContext(ctx, "Lookup event queue full, dropping event",
			"entity", event.Entity,
			"key", event.Key,
			"outcome", event.Outcome,
		)
	}
}

func (p *Publisher) Run(ctx context.Context) {
	p.worker.Run(ctx)
}

// Close publishes whatever is still queued, bounded by ctx, then closes the writer.
func (p *Publisher) Close(ctx context.Context) {
	slog.InfoContext(ctx, "Closing publisher resources...", "pending", len(p.queue))
	for len(p.queue) > 0 {
		if err := p.publish(ctx, p.drain(<-p.queue)); err != nil {
			slog.ErrorContext(ctx, "Error flushing lookup event", "error", err)
		}
	}
	if err := p.writer.Close(); err != nil {
		slog.ErrorContext(ctx, "Error closing kafka writer", "error", err)
	}
}

func (p *Publisher) ProcessMessage(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case event := <-p.queue:
		return p.publish(ctx, p.drain(event))
	}
}

// drain takes whatever is already queued behind first, without waiting.
func (p *Publisher) drain(first k.LookupEvent) []k.LookupEvent {
	batch := []k.LookupEvent{first}
	for len(batch) < maxBatch {
		select {
		case event := <-p.queue:
			batch = append(batch, event)
		default:
			return batch
		}
	}
	return batch
}

func (p *Publisher) publish(ctx context.Context, events []k.LookupEvent) error {
	const fn = "Publisher:publish"
	msgs := make([]kafka.Message, 0, len(events))
	for _, event := range events {
		out, err := json.Marshal(k.StructuredConnectRecord{
			Schema:  k.LookupSchema,
			Payload: event,
		})
		if err != nil {
			return fmt.Errorf("%s:%w:%w", fn, ErrMarshalEvent, err)
		}
		msgs = append(msgs, kafka.Message{Key: event.MessageKey(), Value: out})
	}
	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrWriteMessage, err)
	}
	slog.DebugContext(ctx, "Published lookup events", "count", len(msgs))
	return nil
}
