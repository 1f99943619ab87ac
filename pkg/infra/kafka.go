package infra

import (
	"context"
	"time"

	"github.com/segmentio/kafka-go"
)

// connectTimeout bounds the initial reachability check of every backend.
const connectTimeout = 5 * time.Second

// KafkaWriter is the subset of *kafka.Writer used by publishers.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}
}
