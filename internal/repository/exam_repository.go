package repository

import (
	"context"

	"exam-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type ExamRepository struct {
	Col *mongo.Collection
}

func NewExamRepository(db *mongo.Database) *ExamRepository {
	return &ExamRepository{Col: db.Collection("exams")}
}

func (r *ExamRepository) FindByID(ctx context.Context, id string) (*models.Exam, error) {
	var exam models.Exam
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&exam)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &exam, nil
}

// FindPublished lists published exams, optionally scoped to one grade.
// grade 0 means no grade filter.
func (r *ExamRepository) FindPublished(ctx context.Context, grade int) ([]models.Exam, error) {
	filter := bson.M{"published": true}
	if grade > 0 {
		filter["grade"] = grade
	}

	cur, err := r.Col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var exams []models.Exam
	for cur.Next(ctx) {
		var e models.Exam
		if err := cur.Decode(&e); err != nil {
			return nil, err
		}
		exams = append(exams, e)
	}
	return exams, nil
}
