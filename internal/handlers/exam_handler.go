package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"exam-service/internal/models"
	"exam-service/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	attemptStarts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "exam_attempt_starts_total",
			Help: "Total number of attempt start requests",
		},
		[]string{"status"}, // started/resumed/blocked
	)

	attemptSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "exam_attempt_submissions_total",
			Help: "Total number of attempt submissions",
		},
		[]string{"status"}, // success/failure
	)

	submissionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "exam_submission_duration_seconds",
			Help:    "Time spent scoring and persisting attempt submissions",
			Buckets: prometheus.DefBuckets,
		},
	)
)

type ExamHandler struct {
	Exams    *service.ExamService
	Attempts *service.AttemptService
}

func NewExamHandler(exams *service.ExamService, attempts *service.AttemptService) *ExamHandler {
	return &ExamHandler{Exams: exams, Attempts: attempts}
}

// requireStudent gates the attempt routes: only the student role may start,
// answer, or submit an attempt. Returns the student's ID, or "" after writing
// the error response.
func requireStudent(c *gin.Context) string {
	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID is required"})
		return ""
	}
	if c.GetHeader("X-User-Role") != models.RoleStudent {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only students can take exams"})
		return ""
	}
	return userID
}

// ListExams returns published exams for the caller. Students always see their
// own grade; teachers and parents may pass ?grade= to filter.
func (h *ExamHandler) ListExams(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID is required"})
		return
	}
	role := c.GetHeader("X-User-Role")

	grade, _ := strconv.Atoi(c.Query("grade"))

	exams, err := h.Exams.ListForCaller(context.Background(), userID, role, grade)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list exams"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"exams": exams})
}

// StartAttempt begins or resumes the caller's attempt at the exam.
func (h *ExamHandler) StartAttempt(c *gin.Context) {
	userID := requireStudent(c)
	if userID == "" {
		return
	}
	examID := c.Param("examId")

	res, err := h.Attempts.Start(context.Background(), examID, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrExamNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Exam not found"})
		case errors.Is(err, service.ErrAlreadyCompleted):
			attemptStarts.WithLabelValues("blocked").Inc()
			c.JSON(http.StatusConflict, gin.H{"error": "Exam already completed"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start attempt"})
		}
		return
	}

	if res.Resumed {
		attemptStarts.WithLabelValues("resumed").Inc()
	} else {
		attemptStarts.WithLabelValues("started").Inc()
	}

	c.JSON(http.StatusOK, gin.H{
		"attempt": res.Attempt,
		"exam":    res.Exam,
		"resumed": res.Resumed,
	})
}

// SaveAnswer records one answer plus the client timer on the active attempt.
func (h *ExamHandler) SaveAnswer(c *gin.Context) {
	userID := requireStudent(c)
	if userID == "" {
		return
	}
	examID := c.Param("examId")

	var req struct {
		QuestionID     string `json:"question_id" binding:"required"`
		SelectedOption string `json:"selected_option"`
		TimeRemaining  int    `json:"time_remaining"`
		Flagged        bool   `json:"flagged"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
		return
	}

	err := h.Attempts.SaveAnswer(context.Background(), examID, userID, req.QuestionID, req.SelectedOption, req.TimeRemaining, req.Flagged)
	if err != nil {
		if errors.Is(err, service.ErrNoActiveAttempt) {
			c.JSON(http.StatusConflict, gin.H{"error": "No active attempt for this exam"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save answer"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"saved": true})
}

// SubmitAttempt finalizes the active attempt and returns its score.
func (h *ExamHandler) SubmitAttempt(c *gin.Context) {
	userID := requireStudent(c)
	if userID == "" {
		return
	}
	examID := c.Param("examId")

	var req struct {
		TimeRemaining int `json:"time_remaining"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
		return
	}

	timer := prometheus.NewTimer(submissionDuration)
	result, err := h.Attempts.Submit(context.Background(), examID, userID, req.TimeRemaining)
	timer.ObserveDuration()

	if err != nil {
		attemptSubmissions.WithLabelValues("failure").Inc()
		switch {
		case errors.Is(err, service.ErrNoActiveAttempt):
			c.JSON(http.StatusConflict, gin.H{"error": "No active attempt for this exam"})
		case errors.Is(err, service.ErrExamNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Exam not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit attempt"})
		}
		return
	}

	attemptSubmissions.WithLabelValues("success").Inc()
	c.JSON(http.StatusOK, gin.H{
		"score":           result.Score,
		"total_questions": result.TotalQuestions,
		"percentage":      result.Percentage,
		"skill_breakdown": result.SkillBreakdown,
	})
}
