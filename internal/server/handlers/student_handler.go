package handlers

import (
	"errors"
	"net/http"

	"election-service/internal/ports/models"
	"election-service/internal/server/service"

	"github.com/gin-gonic/gin"
)

type StudentHandler struct {
	studentService *service.StudentService
}

func NewStudentHandler(studentService *service.StudentService) *StudentHandler {
	return &StudentHandler{studentService: studentService}
}

// @Summary Add a student
// @Tags students
// @Accept json
// @Produce json
// @Param request body models.AddStudentRequest true "Student"
// @Success 201 {object} models.Student
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /admin/students [post]
func (h *StudentHandler) Add(c *gin.Context) {
	var req models.AddStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	student, err := h.studentService.Add(c.Request.Context(), req)
	if errors.Is(err, service.ErrStudentExists) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "student already exists"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, student)
}

// @Summary List students
// @Tags students
// @Produce json
// @Success 200 {array} models.Student
// @Security BearerAuth
// @Router /admin/students [get]
func (h *StudentHandler) List(c *gin.Context) {
	students, err := h.studentService.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, students)
}

// @Summary Delete a student
// @Tags students
// @Produce json
// @Param id path string true "Student row ID"
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /admin/students/{id} [delete]
func (h *StudentHandler) Delete(c *gin.Context) {
	if err := h.studentService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "student deleted"})
}

// @Summary Reset a student's password
// @Tags students
// @Accept json
// @Produce json
// @Param id path string true "Student row ID"
// @Param request body models.UpdatePasswordRequest true "New password"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /admin/students/{id}/password [post]
func (h *StudentHandler) UpdatePassword(c *gin.Context) {
	var req models.UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.studentService.UpdatePassword(c.Request.Context(), c.Param("id"), req)
	switch {
	case errors.Is(err, service.ErrPasswordMismatch):
		c.JSON(http.StatusBadRequest, gin.H{"error": "passwords do not match"})
	case errors.Is(err, models.ErrStudentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "student not found"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "password updated"})
	}
}

// SuspendRequest defines the input for toggling suspension
type SuspendRequest struct {
	Suspended *bool `json:"suspended" binding:"required"`
}

// @Summary Suspend or reinstate a student
// @Tags students
// @Accept json
// @Produce json
// @Param id path string true "Student row ID"
// @Param request body SuspendRequest true "Suspension flag"
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /admin/students/{id}/suspend [post]
func (h *StudentHandler) Suspend(c *gin.Context) {
	var req SuspendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.studentService.SetSuspended(c.Request.Context(), c.Param("id"), *req.Suspended)
	if errors.Is(err, models.ErrStudentNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "student not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "student updated"})
}

// @Summary Reset a student's votes
// @Description Undo a cast ballot: decrement counters, delete ledger rows, clear the ballot
// @Tags students
// @Produce json
// @Param id path string true "Student row ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /admin/students/{id}/reset-votes [post]
func (h *StudentHandler) ResetVotes(c *gin.Context) {
	err := h.studentService.ResetVotes(c.Request.Context(), c.Param("id"))
	switch {
	case errors.Is(err, models.ErrStudentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "student not found"})
	case errors.Is(err, service.ErrStudentHasNotVoted):
		c.JSON(http.StatusBadRequest, gin.H{"error": "student has not voted"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "student votes reset"})
	}
}
