package kafka

import (
	"context"
	"fmt"
	"time"

	"deposit-gateway/config"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
)

// messageWriter is the part of *kafka.Writer the publisher uses.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher implements ports.EventPublisher on a Kafka topic. Messages are
// keyed by deposit ID so one deposit's events stay ordered on a partition.
type Publisher struct {
	writer messageWriter
	topic  string
	log    zerolog.Logger
}

// NewPublisher builds a synchronous writer so delivery errors reach the caller.
func NewPublisher(cfg config.KafkaConfig, log zerolog.Logger) *Publisher {
	writeTimeout := cfg.WriteTimeout
	if writeTimeout <= 0 {
		writeTimeout = 10 * time.Second
	}

	w := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		MaxAttempts:  3,
		BatchTimeout: 10 * time.Millisecond,
		WriteTimeout: writeTimeout,
		Logger: kafka.LoggerFunc(func(msg string, args ...interface{}) {
			log.Debug().Msg(fmt.Sprintf(msg, args...))
		}),
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...interface{}) {
			log.Warn().Msg(fmt.Sprintf(msg, args...))
		}),
	}

	log.Info().
		Strs("brokers", cfg.Brokers).
		Str("topic", cfg.Topic).
		Msg("Kafka writer initialized")

	return newPublisher(w, cfg.Topic, log)
}

func newPublisher(w messageWriter, topic string, log zerolog.Logger) *Publisher {
	return &Publisher{writer: w, topic: topic, log: log}
}

// Publish writes one message with the given headers.
func (p *Publisher) Publish(ctx context.Context, key string, payload []byte, headers map[string]string) error {
	msg := kafka.Message{
		Key:   []byte(key),
		Value: payload,
		Time:  time.Now().UTC(),
	}
	for k, v := range headers {
		msg.Headers = append(msg.Headers, kafka.Header{Key: k, Value: []byte(v)})
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish to %s: %w", p.topic, err)
	}
	return nil
}

// Close flushes pending messages and closes the writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}

// NopPublisher drops every message. It stands in when Kafka is disabled.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, []byte, map[string]string) error { return nil }
func (NopPublisher) Close() error                                                     { return nil }
