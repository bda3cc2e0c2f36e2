package service

import (
	"context"
	"time"

	"exam-service/internal/models"
)

// Paper2Service runs the manual review workflow: a student (or their parent)
// uploads photographed answer sheets, a teacher assigns per-skill points.
// Lifecycle: submitted -> draft -> scored, with re-submission dropping the
// document back to submitted and wiping the previous grade.
type Paper2Service struct {
	Submissions Paper2Store
	Exams       ExamStore
	Users       UserStore
}

func NewPaper2Service(submissions Paper2Store, exams ExamStore, users UserStore) *Paper2Service {
	return &Paper2Service{Submissions: submissions, Exams: exams, Users: users}
}

// SubmitFiles upserts the student's submission for the exam. The stored file
// list is replaced wholesale and prior scoring fields are cleared.
func (s *Paper2Service) SubmitFiles(ctx context.Context, examID, studentID string, files []string) (*models.Paper2Submission, error) {
	exam, err := s.Exams.FindByID(ctx, examID)
	if err != nil {
		return nil, err
	}
	if exam == nil {
		return nil, ErrExamNotFound
	}
	return s.Submissions.SubmitFiles(ctx, examID, studentID, files, time.Now().UTC())
}

// GetSubmission returns the student's submission, or nil when nothing has
// been submitted yet.
func (s *Paper2Service) GetSubmission(ctx context.Context, examID, studentID string) (*models.Paper2Submission, error) {
	return s.Submissions.FindByExamStudent(ctx, examID, studentID)
}

// ListSubmissions builds the teacher review queue, enriched with student and
// exam data. grade 0 means no grade filter.
func (s *Paper2Service) ListSubmissions(ctx context.Context, status string, grade int) ([]models.Paper2ListItem, error) {
	subs, err := s.Submissions.FindAll(ctx, status)
	if err != nil {
		return nil, err
	}

	items := make([]models.Paper2ListItem, 0, len(subs))
	for _, sub := range subs {
		item, err := s.enrich(ctx, sub)
		if err != nil {
			return nil, err
		}
		if grade > 0 && item.StudentGrade != grade {
			continue
		}
		items = append(items, *item)
	}
	return items, nil
}

func (s *Paper2Service) GetSubmissionDetail(ctx context.Context, id string) (*models.Paper2ListItem, error) {
	sub, err := s.Submissions.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, ErrSubmissionNotFound
	}
	return s.enrich(ctx, *sub)
}

// Score records the teacher's per-skill points and feedback. The total is the
// sum of the supplied skill points. Status stays draft unless the teacher
// explicitly finalizes to scored; nothing auto-promotes.
func (s *Paper2Service) Score(ctx context.Context, id string, skillScores map[string]int, feedback, status, teacherID string) (int, error) {
	if status != models.Paper2Scored {
		status = models.Paper2Draft
	}

	total := 0
	for _, points := range skillScores {
		total += points
	}

	matched, err := s.Submissions.Score(ctx, id, skillScores, total, feedback, status, teacherID, time.Now().UTC())
	if err != nil {
		return 0, err
	}
	if !matched {
		return 0, ErrSubmissionNotFound
	}
	return total, nil
}

func (s *Paper2Service) enrich(ctx context.Context, sub models.Paper2Submission) (*models.Paper2ListItem, error) {
	item := models.Paper2ListItem{
		Paper2Submission: sub,
		StudentName:      "Unknown",
		ExamTitle:        "Unknown",
	}

	student, err := s.Users.FindByID(ctx, sub.StudentID)
	if err != nil {
		return nil, err
	}
	if student != nil {
		item.StudentName = student.Name
		item.StudentGrade = student.Grade
	}

	exam, err := s.Exams.FindByID(ctx, sub.ExamID)
	if err != nil {
		return nil, err
	}
	if exam != nil {
		item.ExamTitle = exam.Title
	}

	return &item, nil
}
