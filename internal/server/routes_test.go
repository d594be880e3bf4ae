package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"election-service/configs"
	"election-service/internal/adapters/database"
	"election-service/internal/ports/models"
	"election-service/internal/server/handlers"
	"election-service/internal/server/middleware"
	"election-service/internal/server/repository"
	"election-service/internal/server/service"
	"election-service/internal/ws"
	"election-service/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type apiFixture struct {
	router *gin.Engine
	db     *gorm.DB
	auth   *service.AuthService

	candidateRepo *repository.CandidateRepository
	studentRepo   *repository.StudentRepository
	elections     *service.ElectionService
	students      *service.StudentService
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := configs.Load()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))

	electionRepo := repository.NewElectionRepository(db)
	candidateRepo := repository.NewCandidateRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	voteLogRepo := repository.NewVoteLogRepository(db)
	issueRepo := repository.NewIssueRepository(db)

	electionService := service.NewElectionService(db, electionRepo, candidateRepo, studentRepo, voteLogRepo)
	voteService := service.NewVoteService(db, electionRepo, studentRepo, candidateRepo, voteLogRepo)
	studentService := service.NewStudentService(db, studentRepo, candidateRepo, voteLogRepo)
	candidateService := service.NewCandidateService(candidateRepo, voteLogRepo, nil)
	issueService := service.NewIssueService(issueRepo)
	authService := service.NewAuthService(studentRepo, cfg.JWTSecret, time.Hour, cfg.AdminSecret)

	hub := ws.NewHub()
	go hub.Run()
	notifier := service.NewNotifier(hub, nil)

	router := gin.New()
	SetupRoutes(
		router,
		hub,
		middleware.NewRateLimitMiddleware(nil),
		handlers.NewAuthHandler(authService),
		handlers.NewVoteHandler(voteService, candidateService, electionService, notifier),
		handlers.NewElectionHandler(electionService, voteService, studentService, candidateService),
		handlers.NewCandidateHandler(candidateService),
		handlers.NewStudentHandler(studentService),
		handlers.NewIssueHandler(issueService),
	)

	return &apiFixture{
		router:        router,
		db:            db,
		auth:          authService,
		candidateRepo: candidateRepo,
		studentRepo:   studentRepo,
		elections:     electionService,
		students:      studentService,
	}
}

func (f *apiFixture) request(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func (f *apiFixture) loginStudent(t *testing.T, studentID, password string) string {
	t.Helper()
	rec := f.request(t, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"student_id": studentID,
		"password":   password,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var result struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	require.NotEmpty(t, result.Token)
	return result.Token
}

func (f *apiFixture) seedVotingScenario(t *testing.T) (girlID, boyID string) {
	t.Helper()
	ctx := context.Background()
	girl := &models.Candidate{Name: "Alice", Position: "Head Girl"}
	boy := &models.Candidate{Name: "Carl", Position: "Head Boy"}
	require.NoError(t, f.candidateRepo.Create(ctx, girl))
	require.NoError(t, f.candidateRepo.Create(ctx, boy))
	require.NoError(t, f.elections.Start(ctx, time.Now().Add(time.Hour)))

	_, err := f.students.Add(ctx, models.AddStudentRequest{StudentID: "STU-1001", Password: "secret123"})
	require.NoError(t, err)
	return girl.ID, boy.ID
}

func TestVoteFlowOverHTTP(t *testing.T) {
	f := newAPIFixture(t)
	girlID, boyID := f.seedVotingScenario(t)
	token := f.loginStudent(t, "STU-1001", "secret123")

	// Ballot form lists both offices.
	rec := f.request(t, http.MethodGet, "/api/v1/ballot", token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var form struct {
		Candidates map[string][]models.Candidate `json:"candidates"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &form))
	assert.Len(t, form.Candidates, 2)

	// Cast the ballot.
	rec = f.request(t, http.MethodPost, "/api/v1/vote", token, gin.H{
		"selections": gin.H{"Head Girl": girlID, "Head Boy": boyID},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var cast struct {
		Code    int                  `json:"code"`
		Receipt models.BallotReceipt `json:"receipt"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cast))
	assert.Equal(t, response.CodeBallotCommitted, cast.Code)
	assert.True(t, cast.Receipt.AlreadyVoted)
	assert.Len(t, cast.Receipt.VotedCandidates, 2)

	// A repeat vote is a soft success pointing at the slip.
	rec = f.request(t, http.MethodPost, "/api/v1/vote", token, gin.H{
		"selections": gin.H{"Head Girl": girlID, "Head Boy": boyID},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cast))
	assert.Equal(t, response.CodeAlreadyVoted, cast.Code)

	// The slip shows the committed choices.
	rec = f.request(t, http.MethodGet, "/api/v1/slip", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var slip models.BallotReceipt
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &slip))
	assert.True(t, slip.AlreadyVoted)
}

func TestVoteRejectionsOverHTTP(t *testing.T) {
	f := newAPIFixture(t)
	girlID, boyID := f.seedVotingScenario(t)
	token := f.loginStudent(t, "STU-1001", "secret123")

	// Incomplete ballot.
	rec := f.request(t, http.MethodPost, "/api/v1/vote", token, gin.H{
		"selections": gin.H{"Head Girl": girlID},
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	var failure struct {
		Code     int    `json:"code"`
		Position string `json:"position"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &failure))
	assert.Equal(t, response.CodeIncompleteBallot, failure.Code)
	assert.Equal(t, "Head Boy", failure.Position)

	// Ended election.
	require.NoError(t, f.elections.End(context.Background()), "end election")
	rec = f.request(t, http.MethodPost, "/api/v1/vote", token, gin.H{
		"selections": gin.H{"Head Girl": girlID, "Head Boy": boyID},
	})
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &failure))
	assert.Equal(t, response.CodeElectionNotRunning, failure.Code)
}

func TestVoteRequiresToken(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.request(t, http.MethodPost, "/api/v1/vote", "", gin.H{"selections": gin.H{}})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = f.request(t, http.MethodGet, "/api/v1/ballot", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminRoutesRequireTeacherRole(t *testing.T) {
	f := newAPIFixture(t)
	f.seedVotingScenario(t)
	studentToken := f.loginStudent(t, "STU-1001", "secret123")

	rec := f.request(t, http.MethodGet, "/api/v1/admin/dashboard", studentToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	cfg := configs.Load()
	adminRec := f.request(t, http.MethodPost, "/api/v1/auth/admin", "", gin.H{"secret": cfg.AdminSecret})
	require.Equal(t, http.StatusOK, adminRec.Code, adminRec.Body.String())
	var result struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(adminRec.Body.Bytes(), &result))

	rec = f.request(t, http.MethodGet, "/api/v1/admin/dashboard", result.Token, nil)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestIssueSubmissionIsPublic(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.request(t, http.MethodPost, "/api/v1/issues", "", gin.H{
		"name":       "A. Student",
		"class_name": "SS2 Gold",
		"problem":    "Cannot log in from the library machines.",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestElectionStatusIsPublic(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.request(t, http.MethodGet, "/api/v1/election", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var status models.ElectionStatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, models.ElectionPending, status.Status)
}

