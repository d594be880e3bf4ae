package handlers

import (
	"errors"
	"net/http"

	"election-service/internal/ports/models"
	"election-service/internal/server/middleware"
	"election-service/internal/server/service"
	"election-service/pkg/response"

	"github.com/gin-gonic/gin"
)

type VoteHandler struct {
	voteService      *service.VoteService
	candidateService *service.CandidateService
	electionService  *service.ElectionService
	notifier         *service.Notifier
}

func NewVoteHandler(
	voteService *service.VoteService,
	candidateService *service.CandidateService,
	electionService *service.ElectionService,
	notifier *service.Notifier,
) *VoteHandler {
	return &VoteHandler{
		voteService:      voteService,
		candidateService: candidateService,
		electionService:  electionService,
		notifier:         notifier,
	}
}

// @Summary Ballot form data
// @Description Candidates grouped by position for the voting form
// @Tags vote
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Security BearerAuth
// @Router /ballot [get]
func (h *VoteHandler) GetBallot(c *gin.Context) {
	identity, err := middleware.GetIdentityFromContext(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	status, err := h.electionService.Status(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if status.Status != models.ElectionRunning {
		c.JSON(http.StatusForbidden, gin.H{
			"code":  response.CodeElectionNotRunning,
			"error": response.Message(response.CodeElectionNotRunning),
		})
		return
	}

	receipt, err := h.voteService.Receipt(c.Request.Context(), identity.StudentRowID)
	if err != nil {
		h.renderVoteError(c, err)
		return
	}
	if receipt.AlreadyVoted {
		c.JSON(http.StatusOK, gin.H{
			"code":    response.CodeAlreadyVoted,
			"message": response.Message(response.CodeAlreadyVoted),
			"receipt": receipt,
		})
		return
	}

	grouped, err := h.candidateService.GroupedByPosition(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"candidates":        grouped,
		"remaining_seconds": status.RemainingSeconds,
	})
}

// @Summary Cast a ballot
// @Description Submit one candidate selection per open position
// @Tags vote
// @Accept json
// @Produce json
// @Param request body models.BallotRequest true "Ballot"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Security BearerAuth
// @Router /vote [post]
func (h *VoteHandler) SubmitBallot(c *gin.Context) {
	identity, err := middleware.GetIdentityFromContext(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req models.BallotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	commit, err := h.voteService.SubmitBallot(c.Request.Context(), identity.StudentRowID, req.Selections)
	if errors.Is(err, models.ErrAlreadyVoted) {
		// Soft outcome: steer the student to their slip.
		receipt, rerr := h.voteService.Receipt(c.Request.Context(), identity.StudentRowID)
		if rerr != nil {
			h.renderVoteError(c, rerr)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"code":    response.CodeAlreadyVoted,
			"message": response.Message(response.CodeAlreadyVoted),
			"receipt": receipt,
		})
		return
	}
	if err != nil {
		h.renderVoteError(c, err)
		return
	}

	// Post-commit only: a publish failure never unwinds the vote.
	h.notifier.PublishVoteCommitted(c.Request.Context(), identity.StudentRowID, commit)

	receipt, err := h.voteService.Receipt(c.Request.Context(), identity.StudentRowID)
	if err != nil {
		h.renderVoteError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"code":    response.CodeBallotCommitted,
		"message": response.Message(response.CodeBallotCommitted),
		"receipt": receipt,
	})
}

// @Summary Vote slip
// @Description The student's committed choices
// @Tags vote
// @Produce json
// @Success 200 {object} models.BallotReceipt
// @Security BearerAuth
// @Router /slip [get]
func (h *VoteHandler) GetSlip(c *gin.Context) {
	identity, err := middleware.GetIdentityFromContext(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	receipt, err := h.voteService.Receipt(c.Request.Context(), identity.StudentRowID)
	if err != nil {
		h.renderVoteError(c, err)
		return
	}
	c.JSON(http.StatusOK, receipt)
}

func (h *VoteHandler) renderVoteError(c *gin.Context, err error) {
	var incomplete *models.IncompleteBallotError
	var invalid *models.InvalidCandidateError

	switch {
	case errors.Is(err, models.ErrElectionNotRunning):
		c.JSON(http.StatusForbidden, gin.H{
			"code":  response.CodeElectionNotRunning,
			"error": response.Message(response.CodeElectionNotRunning),
		})
	case errors.Is(err, models.ErrStudentNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"code":  response.CodeStudentNotFound,
			"error": response.Message(response.CodeStudentNotFound),
		})
	case errors.Is(err, models.ErrStudentSuspended):
		c.JSON(http.StatusForbidden, gin.H{
			"code":  response.CodeStudentSuspended,
			"error": response.Message(response.CodeStudentSuspended),
		})
	case errors.As(err, &incomplete):
		c.JSON(http.StatusBadRequest, gin.H{
			"code":     response.CodeIncompleteBallot,
			"error":    response.Message(response.CodeIncompleteBallot),
			"position": incomplete.Position,
		})
	case errors.As(err, &invalid):
		c.JSON(http.StatusBadRequest, gin.H{
			"code":         response.CodeInvalidCandidate,
			"error":        response.Message(response.CodeInvalidCandidate),
			"position":     invalid.Position,
			"candidate_id": invalid.CandidateID,
		})
	case errors.Is(err, models.ErrNoOpenPositions):
		c.JSON(http.StatusBadRequest, gin.H{
			"code":  response.CodeNoOpenPositions,
			"error": response.Message(response.CodeNoOpenPositions),
		})
	case errors.Is(err, models.ErrTransactionFailed):
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":  response.CodeTransactionFailed,
			"error": response.Message(response.CodeTransactionFailed),
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
