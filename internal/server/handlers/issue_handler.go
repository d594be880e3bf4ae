package handlers

import (
	"errors"
	"net/http"

	"election-service/internal/ports/models"
	"election-service/internal/server/service"

	"github.com/gin-gonic/gin"
)

type IssueHandler struct {
	issueService *service.IssueService
}

func NewIssueHandler(issueService *service.IssueService) *IssueHandler {
	return &IssueHandler{issueService: issueService}
}

// @Summary Submit an issue
// @Description Report a problem from the login page
// @Tags issues
// @Accept json
// @Produce json
// @Param request body models.SubmitIssueRequest true "Issue"
// @Success 201 {object} models.Issue
// @Failure 400 {object} map[string]string
// @Router /issues [post]
func (h *IssueHandler) Submit(c *gin.Context) {
	var req models.SubmitIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "all fields are required"})
		return
	}

	issue, err := h.issueService.Submit(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, issue)
}

// @Summary List issues
// @Tags issues
// @Produce json
// @Success 200 {array} models.Issue
// @Security BearerAuth
// @Router /admin/issues [get]
func (h *IssueHandler) List(c *gin.Context) {
	issues, err := h.issueService.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, issues)
}

// @Summary Update an issue's status
// @Tags issues
// @Accept json
// @Produce json
// @Param id path string true "Issue ID"
// @Param request body models.UpdateIssueStatusRequest true "Status"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /admin/issues/{id}/status [post]
func (h *IssueHandler) UpdateStatus(c *gin.Context) {
	var req models.UpdateIssueStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.issueService.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if errors.Is(err, service.ErrInvalidIssueStatus) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "issue updated"})
}
