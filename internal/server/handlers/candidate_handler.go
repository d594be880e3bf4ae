package handlers

import (
	"errors"
	"net/http"

	"election-service/internal/ports/models"
	"election-service/internal/server/service"

	"github.com/gin-gonic/gin"
)

type CandidateHandler struct {
	candidateService *service.CandidateService
}

func NewCandidateHandler(candidateService *service.CandidateService) *CandidateHandler {
	return &CandidateHandler{candidateService: candidateService}
}

// @Summary Add a candidate
// @Description Register a candidate with an optional photo
// @Tags candidates
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Candidate name"
// @Param position formData string true "Position"
// @Param custom_position formData string false "Custom position name"
// @Param image formData file false "Photo"
// @Success 201 {object} models.Candidate
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /admin/candidates [post]
func (h *CandidateHandler) Add(c *gin.Context) {
	var req models.AddCandidateRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Photo is optional.
	photo, _ := c.FormFile("image")

	candidate, err := h.candidateService.Add(c.Request.Context(), req, photo)
	if errors.Is(err, service.ErrUnknownPosition) || errors.Is(err, service.ErrCustomPositionMissing) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, candidate)
}

// @Summary List candidates
// @Tags candidates
// @Produce json
// @Success 200 {array} models.Candidate
// @Router /candidates [get]
func (h *CandidateHandler) List(c *gin.Context) {
	candidates, err := h.candidateService.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, candidates)
}

// @Summary Delete a candidate
// @Tags candidates
// @Produce json
// @Param id path string true "Candidate ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /admin/candidates/{id} [delete]
func (h *CandidateHandler) Delete(c *gin.Context) {
	err := h.candidateService.Delete(c.Request.Context(), c.Param("id"))
	if errors.Is(err, service.ErrCandidateNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "candidate not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "candidate deleted"})
}

// @Summary Votes for a candidate
// @Description The ledger rows referencing one candidate
// @Tags candidates
// @Produce json
// @Param id path string true "Candidate ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /admin/candidates/{id}/votes [get]
func (h *CandidateHandler) Votes(c *gin.Context) {
	candidate, logs, err := h.candidateService.Votes(c.Request.Context(), c.Param("id"))
	if errors.Is(err, service.ErrCandidateNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "candidate not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"candidate": candidate,
		"votes":     logs,
	})
}

// @Summary Position chart data
// @Tags candidates
// @Produce json
// @Param position path string true "Position"
// @Success 200 {object} models.PositionChart
// @Security BearerAuth
// @Router /admin/positions/{position}/chart [get]
func (h *CandidateHandler) PositionChart(c *gin.Context) {
	chart, err := h.candidateService.PositionChart(c.Request.Context(), c.Param("position"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, chart)
}
