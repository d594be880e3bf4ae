package service

import (
	"context"
	"testing"
	"time"

	"election-service/internal/adapters/database"
	"election-service/internal/ports/models"
	"election-service/internal/server/repository"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// testEnv wires the services against one in-memory database.
type testEnv struct {
	db        *gorm.DB
	elections *ElectionService
	votes     *VoteService
	students  *StudentService
	auth      *AuthService

	electionRepo  *repository.ElectionRepository
	candidateRepo *repository.CandidateRepository
	studentRepo   *repository.StudentRepository
	voteLogRepo   *repository.VoteLogRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	// One connection: every handle must see the same in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))

	electionRepo := repository.NewElectionRepository(db)
	candidateRepo := repository.NewCandidateRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	voteLogRepo := repository.NewVoteLogRepository(db)

	return &testEnv{
		db:            db,
		elections:     NewElectionService(db, electionRepo, candidateRepo, studentRepo, voteLogRepo),
		votes:         NewVoteService(db, electionRepo, studentRepo, candidateRepo, voteLogRepo),
		students:      NewStudentService(db, studentRepo, candidateRepo, voteLogRepo),
		auth:          NewAuthService(studentRepo, "test-secret", time.Hour, "admin-secret"),
		electionRepo:  electionRepo,
		candidateRepo: candidateRepo,
		studentRepo:   studentRepo,
		voteLogRepo:   voteLogRepo,
	}
}

func (e *testEnv) addCandidate(t *testing.T, name, position string) *models.Candidate {
	t.Helper()
	candidate := &models.Candidate{Name: name, Position: position}
	require.NoError(t, e.candidateRepo.Create(context.Background(), candidate))
	return candidate
}

func (e *testEnv) addStudent(t *testing.T, studentID string) *models.Student {
	t.Helper()
	hashed, err := HashPassword("changeme1")
	require.NoError(t, err)
	student := &models.Student{StudentID: studentID, Password: hashed}
	require.NoError(t, e.studentRepo.Create(context.Background(), student))
	return student
}

func (e *testEnv) startElection(t *testing.T) {
	t.Helper()
	require.NoError(t, e.elections.Start(context.Background(), time.Now().Add(time.Hour)))
}

func (e *testEnv) candidateVotes(t *testing.T, id string) int64 {
	t.Helper()
	candidate, err := e.candidateRepo.FindByID(context.Background(), id)
	require.NoError(t, err)
	return candidate.Votes
}

func (e *testEnv) ledgerCount(t *testing.T) int64 {
	t.Helper()
	var count int64
	require.NoError(t, e.db.Model(&models.VoteLog{}).Count(&count).Error)
	return count
}
