package kafka

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

// WriterBatchTimeout bounds how long a synchronous write waits for more
// messages before flushing a partial batch. kafka-go defaults to one second.
const WriterBatchTimeout = 10 * time.Millisecond

//go:generate mockery --name Writer --inpackage --with-expecter --filename mock_writer.go
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Reader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
	Close() error
}

// NewWriter returns a synchronous writer for topic. A nil transport uses
// kafka-go's default.
func NewWriter(brokers []string, topic string, transport kafka.RoundTripper) Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           WriterBatchTimeout,
		AllowAutoTopicCreation: true,
		Transport:              transport,
	}
}

// NewReader reads one partition of topic from offset. kafka-go ignores
// StartOffset without a consumer group, so the position is set explicitly.
func NewReader(brokers []string, topic string, partition int, offset int64) (Reader, error) {
	const fn = "Kafka:NewReader"
	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:   brokers,
		Topic:     topic,
		Partition: partition,
	})
	if err := r.SetOffset(offset); err != nil {
		r.Close()
		return nil, fmt.Errorf("%s:%w", fn, err)
	}
	return r, nil
}

// EndOffsets returns, per partition of topic, the offset the next message
// will be written at. A topic that does not exist yet reads from the start of
// partition 0, where auto-creation puts it.
func EndOffsets(ctx context.Context, broker, topic string) (map[int]int64, error) {
	const fn = "Kafka:EndOffsets"
	conn, err := kafka.DialContext(ctx, "tcp", broker)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", fn, err)
	}
	defer conn.Close()

	partitions, err := conn.ReadPartitions(topic)
	if errors.Is(err, kafka.UnknownTopicOrPartition) {
		return map[int]int64{0: kafka.FirstOffset}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s:%w", fn, err)
	}
	offsets := make(map[int]int64, len(partitions))
	for _, p := range partitions {
		leader, err := kafka.DialLeader(ctx, "tcp", broker, topic, p.ID)
		if err != nil {
			return nil, fmt.Errorf("%s:partition %d:%w", fn, p.ID, err)
		}
		offset, err := leader.ReadLastOffset()
		leader.Close()
		if err != nil {
			return nil, fmt.Errorf("%s:partition %d:%w", fn, p.ID, err)
		}
		offsets[p.ID] = offset
	}
	return offsets, nil
}
