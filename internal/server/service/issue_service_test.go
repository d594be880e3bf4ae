package service

import (
	"context"
	"testing"

	"election-service/internal/ports/models"
	"election-service/internal/server/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueLifecycle(t *testing.T) {
	env := newTestEnv(t)
	svc := NewIssueService(repository.NewIssueRepository(env.db))

	issue, err := svc.Submit(context.Background(), models.SubmitIssueRequest{
		Name:      "A. Student",
		ClassName: "SS2 Gold",
		Problem:   "The ballot page does not load on the library computers.",
	})
	require.NoError(t, err)
	assert.Equal(t, models.IssuePending, issue.Status)

	require.NoError(t, svc.UpdateStatus(context.Background(), issue.ID, models.IssueResolved))

	err = svc.UpdateStatus(context.Background(), issue.ID, "archived")
	assert.ErrorIs(t, err, ErrInvalidIssueStatus)

	issues, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, models.IssueResolved, issues[0].Status)
}
