package handlers

import (
	"context"
	"net/http"

	"exam-service/internal/service"

	"github.com/gin-gonic/gin"
)

type ProgressHandler struct {
	Progress *service.ProgressService
	Users    *service.UserService
}

func NewProgressHandler(progress *service.ProgressService, users *service.UserService) *ProgressHandler {
	return &ProgressHandler{Progress: progress, Users: users}
}

// GetProgress returns the aggregated attempt history for a student. Students
// see themselves, parents their linked student, teachers and admins anyone.
func (h *ProgressHandler) GetProgress(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID is required"})
		return
	}
	role := c.GetHeader("X-User-Role")
	studentID := c.Param("studentId")

	allowed, err := h.Progress.CanView(context.Background(), userID, role, studentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check access"})
		return
	}
	if !allowed {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not allowed to view this student's progress"})
		return
	}

	summary, err := h.Progress.GetProgress(context.Background(), studentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build progress summary"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetMyProgress resolves the caller to a student and returns their summary.
// Parents get the progress of the student linked to their account.
func (h *ProgressHandler) GetMyProgress(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID is required"})
		return
	}
	role := c.GetHeader("X-User-Role")

	studentID, err := h.Users.ResolveStudentID(context.Background(), userID, role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve student"})
		return
	}
	if studentID == "" {
		c.JSON(http.StatusForbidden, gin.H{"error": "No student linked to this account"})
		return
	}

	summary, err := h.Progress.GetProgress(context.Background(), studentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build progress summary"})
		return
	}
	c.JSON(http.StatusOK, summary)
}
