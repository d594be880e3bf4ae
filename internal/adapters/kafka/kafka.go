package kafka

import (
	"context"
	"encoding/json"
	"log/slog"

	"election-service/internal/ports/models"

	"github.com/segmentio/kafka-go"
)

// VoteEventWriter mirrors committed ballots onto a Kafka topic so
// downstream consumers (tally boards, archival) can replay them.
// Publishing is best-effort: a delivery failure is logged and never
// surfaced to the vote transaction.
type VoteEventWriter struct {
	writer *kafka.Writer
}

// NewVoteEventWriter returns nil when no brokers are configured, which
// disables the mirror entirely.
func NewVoteEventWriter(brokers []string, topic string) *VoteEventWriter {
	if len(brokers) == 0 {
		return nil
	}
	return &VoteEventWriter{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.Hash{},
		},
	}
}

// PublishCommit writes one message per committed ballot, keyed by the
// student row so a student's votes land on one partition.
func (w *VoteEventWriter) PublishCommit(ctx context.Context, studentRowID string, commit *models.BallotCommit) {
	if w == nil {
		return
	}

	value, err := json.Marshal(commit)
	if err != nil {
		slog.Error("Failed to encode ballot commit", "error", err)
		return
	}

	err = w.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(studentRowID),
		Value: value,
	})
	if err != nil {
		slog.Error("Failed to publish ballot commit", "student", studentRowID, "error", err)
	}
}

// Close flushes and closes the underlying writer.
func (w *VoteEventWriter) Close() error {
	if w == nil {
		return nil
	}
	return w.writer.Close()
}
