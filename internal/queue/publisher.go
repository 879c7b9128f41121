package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/harshit2786/pdf-chat-be/internal/models"
	"github.com/harshit2786/pdf-chat-be/pkg/logger"
	"github.com/segmentio/kafka-go"
)

// IngestionPublisher hands ingestion jobs to the embedding worker over Kafka.
// The worker itself runs as a separate deployment.
type IngestionPublisher struct {
	writer *kafka.Writer
	log    *logger.Logger
}

// NewIngestionPublisher creates a publisher writing to the configured topic.
func NewIngestionPublisher(brokers []string, topic string, log *logger.Logger) *IngestionPublisher {
	writer := kafka.NewWriter(kafka.WriterConfig{
		Brokers:  brokers,
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	})
	return &IngestionPublisher{
		writer: writer,
		log:    log,
	}
}

// Publish enqueues one ingestion job, keyed by PDF ID so retries for the same
// document land on the same partition.
func (p *IngestionPublisher) Publish(ctx context.Context, job models.IngestionJob) error {
	msgBytes, err := json.Marshal(job)
	if err != nil {
		p.log.WithError(err).Error("Failed to marshal ingestion job")
		return err
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(fmt.Sprintf("%d", job.PDFID)),
		Value: msgBytes,
	})
	if err != nil {
		p.log.WithError(err).WithPayload(map[string]interface{}{"topic": p.writer.Topic}).Error("Failed to write ingestion job to Kafka")
		return err
	}
	return nil
}

// Close closes the underlying Kafka writer.
func (p *IngestionPublisher) Close() error {
	return p.writer.Close()
}
