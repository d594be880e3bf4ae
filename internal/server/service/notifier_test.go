package service

import (
	"context"
	"testing"

	"election-service/internal/ports/models"

	"github.com/stretchr/testify/assert"
)

type capturingPublisher struct {
	commits []*models.BallotCommit
}

func (p *capturingPublisher) PublishVoteCommitted(commit *models.BallotCommit) {
	p.commits = append(p.commits, commit)
}

func TestNotifierDeliversToHub(t *testing.T) {
	publisher := &capturingPublisher{}
	notifier := NewNotifier(publisher, nil)

	commit := &models.BallotCommit{UpdatedTotals: map[string]int64{"cand-a": 1}}
	notifier.PublishVoteCommitted(context.Background(), "row-1", commit)

	assert.Equal(t, []*models.BallotCommit{commit}, publisher.commits)
}

func TestNotifierIgnoresNilCommit(t *testing.T) {
	publisher := &capturingPublisher{}
	notifier := NewNotifier(publisher, nil)

	notifier.PublishVoteCommitted(context.Background(), "row-1", nil)

	assert.Empty(t, publisher.commits)
}
