package handlers

import (
	"errors"
	"net/http"

	"election-service/internal/ports/models"
	"election-service/internal/server/service"

	"github.com/gin-gonic/gin"
)

type ElectionHandler struct {
	electionService *service.ElectionService
	voteService     *service.VoteService
	studentService  *service.StudentService
	candidateSvc    *service.CandidateService
}

func NewElectionHandler(
	electionService *service.ElectionService,
	voteService *service.VoteService,
	studentService *service.StudentService,
	candidateSvc *service.CandidateService,
) *ElectionHandler {
	return &ElectionHandler{
		electionService: electionService,
		voteService:     voteService,
		studentService:  studentService,
		candidateSvc:    candidateSvc,
	}
}

// @Summary Election status
// @Description Current election phase and remaining time
// @Tags election
// @Produce json
// @Success 200 {object} models.ElectionStatusResponse
// @Router /election [get]
func (h *ElectionHandler) Status(c *gin.Context) {
	status, err := h.electionService.Status(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, status)
}

// @Summary Start the election
// @Description Open voting until the given end time
// @Tags election
// @Accept json
// @Produce json
// @Param request body models.StartElectionRequest true "Start Request"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /admin/election/start [post]
func (h *ElectionHandler) Start(c *gin.Context) {
	var req models.StartElectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end time is required to start the election"})
		return
	}

	err := h.electionService.Start(c.Request.Context(), req.EndTime)
	if errors.Is(err, models.ErrInvalidEndTime) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end time must be in the future"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "election started"})
}

// @Summary End the election
// @Tags election
// @Produce json
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /admin/election/end [post]
func (h *ElectionHandler) End(c *gin.Context) {
	if err := h.electionService.End(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "election ended"})
}

// @Summary Reset the election
// @Description Return to pending and clear all votes, counters and the ledger
// @Tags election
// @Produce json
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /admin/election/reset [post]
func (h *ElectionHandler) Reset(c *gin.Context) {
	if err := h.electionService.Reset(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "election reset"})
}

// @Summary Admin dashboard data
// @Description Candidates, vote ledger, students and election state
// @Tags election
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /admin/dashboard [get]
func (h *ElectionHandler) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()

	status, err := h.electionService.Status(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	candidates, err := h.candidateSvc.List(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	entries, err := h.voteService.LedgerEntries(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	students, err := h.studentService.List(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	positions, err := h.candidateSvc.DistinctPositions(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"election":   status,
		"candidates": candidates,
		"vote_logs":  entries,
		"students":   students,
		"positions":  positions,
	})
}
