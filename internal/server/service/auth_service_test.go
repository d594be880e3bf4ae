package service

import (
	"context"
	"testing"

	"election-service/internal/ports/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStudentLogin(t *testing.T) {
	env := newTestEnv(t)
	student := env.addStudent(t, "STU-6001")

	result, err := env.auth.StudentLogin(context.Background(), "STU-6001", "changeme1")
	require.NoError(t, err)
	assert.Equal(t, models.RoleStudent, result.Role)
	assert.False(t, result.HasVoted)

	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(result.Token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	assert.Equal(t, student.ID, claims["sub"])
	assert.Equal(t, models.RoleStudent, claims["role"])
}

func TestStudentLoginRejectsBadCredentials(t *testing.T) {
	env := newTestEnv(t)
	env.addStudent(t, "STU-6002")

	_, err := env.auth.StudentLogin(context.Background(), "STU-6002", "wrongpass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = env.auth.StudentLogin(context.Background(), "STU-9999", "changeme1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestStudentLoginFlagsPriorVote(t *testing.T) {
	env := newTestEnv(t)
	a, _, c, _ := twoPositionBallot(t, env)
	student := env.addStudent(t, "STU-6003")

	_, err := env.votes.SubmitBallot(context.Background(), student.ID, map[string]string{
		"Head Girl": a.ID,
		"Head Boy":  c.ID,
	})
	require.NoError(t, err)

	result, err := env.auth.StudentLogin(context.Background(), "STU-6003", "changeme1")
	require.NoError(t, err)
	assert.True(t, result.HasVoted)
}

func TestAdminLogin(t *testing.T) {
	env := newTestEnv(t)

	result, err := env.auth.AdminLogin("admin-secret")
	require.NoError(t, err)
	assert.Equal(t, models.RoleTeacher, result.Role)
	assert.NotEmpty(t, result.Token)

	_, err = env.auth.AdminLogin("not-the-secret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
