// Package events publishes domain events to Kafka.
package events

import (
	"context"
	"encoding/json"

	"github.com/sbilibin2017/gw-social/internal/logger"
	"github.com/sbilibin2017/gw-social/internal/models"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=publisher.go -destination=mock_publisher.go -package=events

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// Recorder counts publish attempts.
type Recorder interface {
	RecordEvent(eventType string, ok bool)
}

// Publisher sends events keyed by the subject id. Publishing is best effort:
// failures are logged and never returned to the caller.
type Publisher struct {
	writer   KafkaWriter
	recorder Recorder
}

// NewPublisher creates a Publisher. A nil writer disables publishing; recorder may be nil.
func NewPublisher(writer KafkaWriter, recorder Recorder) *Publisher {
	return &Publisher{writer: writer, recorder: recorder}
}

// Publish sends e to the broker.
func (p *Publisher) Publish(ctx context.Context, e models.Event) {
	if p == nil || p.writer == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "event_id", e.ID, "type", e.Type)
		return
	}

	data, err := json.Marshal(e)
	if err != nil {
		logger.Log.Errorw("Failed to marshal event for Kafka", "event_id", e.ID, "error", err)
		p.record(e, false)
		return
	}

	msg := kafka.Message{
		Key:   []byte(e.SubjectID.String()),
		Value: data,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(e.Type)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish event to Kafka", "event_id", e.ID, "type", e.Type, "error", err)
		p.record(e, false)
		return
	}

	logger.Log.Infow("Event published to Kafka", "event_id", e.ID, "type", e.Type, "subject_id", e.SubjectID)
	p.record(e, true)
}

// Close closes the underlying writer.
func (p *Publisher) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}

func (p *Publisher) record(e models.Event, ok bool) {
	if p.recorder != nil {
		p.recorder.RecordEvent(string(e.Type), ok)
	}
}
