package service

import (
	"context"

	"election-service/internal/adapters/kafka"
	"election-service/internal/ports/models"
)

// CommitPublisher receives the events for one committed ballot. The
// websocket hub implements it.
type CommitPublisher interface {
	PublishVoteCommitted(commit *models.BallotCommit)
}

// Notifier fans a committed ballot out to live observers and, when
// configured, mirrors it onto Kafka. It is called only after the commit
// is durable and its failures never touch the transaction.
type Notifier struct {
	hub    CommitPublisher
	stream *kafka.VoteEventWriter
}

func NewNotifier(hub CommitPublisher, stream *kafka.VoteEventWriter) *Notifier {
	return &Notifier{hub: hub, stream: stream}
}

// PublishVoteCommitted delivers the commit's events best-effort.
func (n *Notifier) PublishVoteCommitted(ctx context.Context, studentRowID string, commit *models.BallotCommit) {
	if commit == nil {
		return
	}
	if n.hub != nil {
		n.hub.PublishVoteCommitted(commit)
	}
	if n.stream != nil {
		go n.stream.PublishCommit(context.WithoutCancel(ctx), studentRowID, commit)
	}
}
