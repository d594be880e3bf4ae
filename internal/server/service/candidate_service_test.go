package service

import (
	"context"
	"testing"

	"election-service/internal/ports/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCandidateService(env *testEnv) *CandidateService {
	return NewCandidateService(env.candidateRepo, env.voteLogRepo, nil)
}

func TestCandidateAddValidatesPosition(t *testing.T) {
	env := newTestEnv(t)
	svc := newCandidateService(env)

	_, err := svc.Add(context.Background(), models.AddCandidateRequest{
		Name:     "Eve",
		Position: "Supreme Leader",
	}, nil)
	assert.ErrorIs(t, err, ErrUnknownPosition)

	_, err = svc.Add(context.Background(), models.AddCandidateRequest{
		Name:     "Eve",
		Position: models.PositionCustom,
	}, nil)
	assert.ErrorIs(t, err, ErrCustomPositionMissing)

	candidate, err := svc.Add(context.Background(), models.AddCandidateRequest{
		Name:           "Eve",
		Position:       models.PositionCustom,
		CustomPosition: "Assembly Prefect",
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Assembly Prefect", candidate.DisplayPosition())
	assert.Equal(t, models.DefaultCandidateImage, candidate.Image)
}

func TestCandidateGroupedByPosition(t *testing.T) {
	env := newTestEnv(t)
	svc := newCandidateService(env)
	env.addCandidate(t, "Alice", "Head Girl")
	env.addCandidate(t, "Beth", "Head Girl")
	env.addCandidate(t, "Carl", "Head Boy")

	grouped, err := svc.GroupedByPosition(context.Background())
	require.NoError(t, err)
	assert.Len(t, grouped, 2)
	assert.Len(t, grouped["Head Girl"], 2)
	assert.Len(t, grouped["Head Boy"], 1)
}

func TestCandidatePositionChart(t *testing.T) {
	env := newTestEnv(t)
	svc := newCandidateService(env)
	a, b, c, _ := twoPositionBallot(t, env)

	for i, id := range []string{"STU-7001", "STU-7002", "STU-7003"} {
		student := env.addStudent(t, id)
		girl := a.ID
		if i == 2 {
			girl = b.ID
		}
		_, err := env.votes.SubmitBallot(context.Background(), student.ID, map[string]string{
			"Head Girl": girl,
			"Head Boy":  c.ID,
		})
		require.NoError(t, err)
	}

	chart, err := svc.PositionChart(context.Background(), "Head Girl")
	require.NoError(t, err)
	assert.Equal(t, "Head Girl", chart.Position)
	assert.Equal(t, int64(3), chart.TotalVotes)
	require.Len(t, chart.Labels, 2)

	// FindByPosition orders by votes, so Alice leads.
	assert.Equal(t, "Alice", chart.Labels[0])
	assert.Equal(t, int64(2), chart.Votes[0])
	assert.Equal(t, int64(1), chart.Votes[1])
}

func TestCandidateVotesListsLedgerRows(t *testing.T) {
	env := newTestEnv(t)
	svc := newCandidateService(env)
	a, _, c, _ := twoPositionBallot(t, env)
	student := env.addStudent(t, "STU-7004")

	_, err := env.votes.SubmitBallot(context.Background(), student.ID, map[string]string{
		"Head Girl": a.ID,
		"Head Boy":  c.ID,
	})
	require.NoError(t, err)

	candidate, logs, err := svc.Votes(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), candidate.Votes)
	require.Len(t, logs, 1)
	assert.Equal(t, student.ID, logs[0].StudentRowID)

	_, _, err = svc.Votes(context.Background(), "missing-candidate")
	assert.ErrorIs(t, err, ErrCandidateNotFound)
}

func TestCandidateDeleteWithoutMediaClient(t *testing.T) {
	env := newTestEnv(t)
	svc := newCandidateService(env)
	a := env.addCandidate(t, "Alice", "Head Girl")

	require.NoError(t, svc.Delete(context.Background(), a.ID))

	_, err := env.candidateRepo.FindByID(context.Background(), a.ID)
	assert.Error(t, err)
}
