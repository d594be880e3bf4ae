package service

import (
	"context"
	"testing"
	"time"

	"election-service/internal/ports/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElectionStatusCreatesPendingRecord(t *testing.T) {
	env := newTestEnv(t)

	status, err := env.elections.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.ElectionPending, status.Status)
	assert.Nil(t, status.StartTime)
	assert.Nil(t, status.EndTime)
	assert.Zero(t, status.RemainingSeconds)
}

func TestElectionStartRequiresFutureEndTime(t *testing.T) {
	env := newTestEnv(t)

	err := env.elections.Start(context.Background(), time.Now().Add(-time.Minute))
	assert.ErrorIs(t, err, models.ErrInvalidEndTime)

	status, err := env.elections.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.ElectionPending, status.Status)
}

func TestElectionLifecycle(t *testing.T) {
	env := newTestEnv(t)
	endTime := time.Now().Add(2 * time.Hour)

	require.NoError(t, env.elections.Start(context.Background(), endTime))

	status, err := env.elections.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.ElectionRunning, status.Status)
	require.NotNil(t, status.StartTime)
	require.NotNil(t, status.EndTime)
	assert.Greater(t, status.RemainingSeconds, int64(0))

	require.NoError(t, env.elections.End(context.Background()))

	status, err = env.elections.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.ElectionEnded, status.Status)
	assert.Zero(t, status.RemainingSeconds)
}

func TestElectionResetClearsEverything(t *testing.T) {
	env := newTestEnv(t)
	a, _, c, _ := twoPositionBallot(t, env)
	student := env.addStudent(t, "STU-4001")

	_, err := env.votes.SubmitBallot(context.Background(), student.ID, map[string]string{
		"Head Girl": a.ID,
		"Head Boy":  c.ID,
	})
	require.NoError(t, err)
	require.NoError(t, env.elections.End(context.Background()))

	require.NoError(t, env.elections.Reset(context.Background()))

	status, err := env.elections.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.ElectionPending, status.Status)
	assert.Nil(t, status.StartTime)
	assert.Nil(t, status.EndTime)

	assert.Equal(t, int64(0), env.candidateVotes(t, a.ID))
	assert.Equal(t, int64(0), env.candidateVotes(t, c.ID))
	assert.Equal(t, int64(0), env.ledgerCount(t))

	refreshed, err := env.studentRepo.FindByID(context.Background(), student.ID)
	require.NoError(t, err)
	assert.False(t, refreshed.HasVoted)
	assert.Empty(t, refreshed.VotedPositions)

	// Candidate registry itself survives a reset.
	candidates, err := env.candidateRepo.FindAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, candidates, 4)
}
