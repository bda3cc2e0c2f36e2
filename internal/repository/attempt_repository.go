package repository

import (
	"context"
	"time"

	"exam-service/internal/models"
	"exam-service/internal/scoring"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AttemptRepository struct {
	Col *mongo.Collection
}

func NewAttemptRepository(db *mongo.Database) *AttemptRepository {
	return &AttemptRepository{Col: db.Collection("attempts")}
}

func (r *AttemptRepository) findOne(ctx context.Context, examID, studentID, status string) (*models.ExamAttempt, error) {
	var attempt models.ExamAttempt
	err := r.Col.FindOne(ctx, bson.M{
		"exam_id":    examID,
		"student_id": studentID,
		"status":     status,
	}).Decode(&attempt)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &attempt, nil
}

func (r *AttemptRepository) FindInProgress(ctx context.Context, examID, studentID string) (*models.ExamAttempt, error) {
	return r.findOne(ctx, examID, studentID, models.AttemptInProgress)
}

func (r *AttemptRepository) FindSubmitted(ctx context.Context, examID, studentID string) (*models.ExamAttempt, error) {
	return r.findOne(ctx, examID, studentID, models.AttemptSubmitted)
}

// FindSubmittedByStudent returns the student's full submitted history ordered
// by submission time ascending, the order the progress aggregator expects.
func (r *AttemptRepository) FindSubmittedByStudent(ctx context.Context, studentID string) ([]models.ExamAttempt, error) {
	opts := options.Find().SetSort(bson.D{{Key: "submitted_at", Value: 1}})
	cur, err := r.Col.Find(ctx, bson.M{
		"student_id": studentID,
		"status":     models.AttemptSubmitted,
	}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var attempts []models.ExamAttempt
	for cur.Next(ctx) {
		var a models.ExamAttempt
		if err := cur.Decode(&a); err != nil {
			return nil, err
		}
		attempts = append(attempts, a)
	}
	return attempts, nil
}

func (r *AttemptRepository) Create(ctx context.Context, attempt *models.ExamAttempt) error {
	_, err := r.Col.InsertOne(ctx, attempt)
	return err
}

// SaveAnswer upserts one answer and the client-reported timer on the active
// attempt. The filter doubles as the state check: a submitted attempt never
// matches, so the write is a no-op after submission. Returns whether an active
// attempt was matched.
func (r *AttemptRepository) SaveAnswer(ctx context.Context, examID, studentID, questionID, selectedOption string, timeRemaining int, flagged bool) (bool, error) {
	filter := bson.M{
		"exam_id":    examID,
		"student_id": studentID,
		"status":     models.AttemptInProgress,
	}

	update := bson.M{
		"$set": bson.M{
			"answers." + questionID: selectedOption,
			"time_remaining":        timeRemaining,
			"updated_at":            time.Now().UTC(),
		},
	}
	if flagged {
		update["$addToSet"] = bson.M{"flagged_questions": questionID}
	} else {
		update["$pull"] = bson.M{"flagged_questions": questionID}
	}

	res, err := r.Col.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

// Submit finalizes the attempt with its scored fields. The status filter is a
// compare-and-swap: only a still-in_progress attempt transitions, so a
// concurrent duplicate submit loses the race instead of double-scoring.
func (r *AttemptRepository) Submit(ctx context.Context, examID, studentID string, result scoring.Result, timeRemaining int, submittedAt time.Time) (bool, error) {
	filter := bson.M{
		"exam_id":    examID,
		"student_id": studentID,
		"status":     models.AttemptInProgress,
	}

	res, err := r.Col.UpdateOne(ctx, filter, bson.M{
		"$set": bson.M{
			"status":          models.AttemptSubmitted,
			"submitted_at":    submittedAt,
			"score":           result.Score,
			"total_questions": result.TotalQuestions,
			"percentage":      result.Percentage,
			"skill_breakdown": result.SkillBreakdown,
			"time_remaining":  timeRemaining,
		},
	})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}
