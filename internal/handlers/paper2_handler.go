package handlers

import (
	"context"
	"errors"
	"net/http"
	"path"
	"strconv"
	"strings"

	"exam-service/internal/models"
	"exam-service/internal/service"
	"exam-service/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	paper2Uploads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "exam_paper2_uploads_total",
			Help: "Total number of paper 2 submission uploads",
		},
		[]string{"status"}, // success/failure
	)

	paper2Reviews = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "exam_paper2_reviews_total",
			Help: "Total number of paper 2 review saves",
		},
		[]string{"status"}, // draft/scored
	)
)

type Paper2Handler struct {
	Submissions *service.Paper2Service
	Users       *service.UserService
	Files       *storage.LocalStore
}

func NewPaper2Handler(submissions *service.Paper2Service, users *service.UserService, files *storage.LocalStore) *Paper2Handler {
	return &Paper2Handler{Submissions: submissions, Users: users, Files: files}
}

func isReviewer(role string) bool {
	return role == models.RoleTeacher || role == models.RoleAdmin
}

// resolveStudent maps the caller to the student the submission belongs to:
// students act for themselves, parents for their linked student.
func (h *Paper2Handler) resolveStudent(c *gin.Context) (string, bool) {
	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID is required"})
		return "", false
	}
	role := c.GetHeader("X-User-Role")

	studentID, err := h.Users.ResolveStudentID(context.Background(), userID, role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve student"})
		return "", false
	}
	if studentID == "" {
		c.JSON(http.StatusForbidden, gin.H{"error": "No student linked to this account"})
		return "", false
	}
	return studentID, true
}

// SubmitFiles accepts photographed answer sheets as multipart form files and
// upserts the student's submission. Parents submit on behalf of their linked
// student. Re-upload replaces the file list and clears any previous grade.
func (h *Paper2Handler) SubmitFiles(c *gin.Context) {
	studentID, ok := h.resolveStudent(c)
	if !ok {
		return
	}
	examID := c.Param("examId")

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid multipart form", "details": err.Error()})
		return
	}
	uploads := form.File["files"]
	if len(uploads) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At least one file is required"})
		return
	}

	paths := make([]string, 0, len(uploads))
	for _, f := range uploads {
		stored, err := h.Files.Save(studentID, examID, f)
		if err != nil {
			paper2Uploads.WithLabelValues("failure").Inc()
			switch {
			case errors.Is(err, storage.ErrNotAnImage):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Only image files are accepted"})
			case errors.Is(err, storage.ErrTooLarge):
				c.JSON(http.StatusBadRequest, gin.H{"error": "File exceeds the upload size limit"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store file"})
			}
			return
		}
		paths = append(paths, stored)
	}

	sub, err := h.Submissions.SubmitFiles(context.Background(), examID, studentID, paths)
	if err != nil {
		paper2Uploads.WithLabelValues("failure").Inc()
		if errors.Is(err, service.ErrExamNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Exam not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save submission"})
		return
	}

	paper2Uploads.WithLabelValues("success").Inc()
	c.JSON(http.StatusOK, sub)
}

// GetSubmission returns the submission of the caller's student for the exam,
// or an empty body when nothing has been uploaded yet.
func (h *Paper2Handler) GetSubmission(c *gin.Context) {
	studentID, ok := h.resolveStudent(c)
	if !ok {
		return
	}
	examID := c.Param("examId")

	sub, err := h.Submissions.GetSubmission(context.Background(), examID, studentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load submission"})
		return
	}
	if sub == nil {
		c.JSON(http.StatusOK, gin.H{"submission": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"submission": sub})
}

// ListSubmissions is the review queue. ?status= filters by workflow state,
// ?grade= by the submitting student's grade.
func (h *Paper2Handler) ListSubmissions(c *gin.Context) {
	role := c.GetHeader("X-User-Role")
	if !isReviewer(role) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Reviewer role required"})
		return
	}

	status := c.Query("status")
	grade, _ := strconv.Atoi(c.Query("grade"))

	items, err := h.Submissions.ListSubmissions(context.Background(), status, grade)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list submissions"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"submissions": items})
}

func (h *Paper2Handler) GetSubmissionDetail(c *gin.Context) {
	role := c.GetHeader("X-User-Role")
	if !isReviewer(role) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Reviewer role required"})
		return
	}

	item, err := h.Submissions.GetSubmissionDetail(context.Background(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrSubmissionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Submission not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load submission"})
		return
	}
	c.JSON(http.StatusOK, item)
}

// ScoreSubmission saves the reviewer's per-skill points and feedback. Status
// draft keeps the submission editable; scored finalizes it.
func (h *Paper2Handler) ScoreSubmission(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	role := c.GetHeader("X-User-Role")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID is required"})
		return
	}
	if !isReviewer(role) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Reviewer role required"})
		return
	}

	var req struct {
		SkillScores map[string]int `json:"skill_scores" binding:"required"`
		Feedback    string         `json:"feedback"`
		Status      string         `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
		return
	}
	for skill, points := range req.SkillScores {
		if !models.Skill(skill).IsValid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown skill: " + skill})
			return
		}
		if points < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Skill points must not be negative"})
			return
		}
	}

	total, err := h.Submissions.Score(context.Background(), c.Param("id"), req.SkillScores, req.Feedback, req.Status, userID)
	if err != nil {
		if errors.Is(err, service.ErrSubmissionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Submission not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save score"})
		return
	}

	if req.Status == models.Paper2Scored {
		paper2Reviews.WithLabelValues("scored").Inc()
	} else {
		paper2Reviews.WithLabelValues("draft").Inc()
	}
	c.JSON(http.StatusOK, gin.H{"total_score": total})
}

// ServeFile streams a stored answer-sheet image. Reviewers see everything;
// students and parents only files under their own student's directory.
func (h *Paper2Handler) ServeFile(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID is required"})
		return
	}
	role := c.GetHeader("X-User-Role")

	// Canonicalize before the ownership check so a ".." segment cannot dress
	// another student's path up with the caller's prefix.
	rel := path.Clean(strings.TrimPrefix(c.Param("filepath"), "/"))

	if !isReviewer(role) {
		studentID, err := h.Users.ResolveStudentID(context.Background(), userID, role)
		if err != nil || studentID == "" || !strings.HasPrefix(rel, studentID+"/") {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not allowed to view this file"})
			return
		}
	}

	abs, err := h.Files.Resolve(rel)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
		return
	}
	c.File(abs)
}
