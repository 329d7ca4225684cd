package repository

import (
	"coding_lessons_backend/internal/model"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ResponseRepository struct {
	DB *gorm.DB
}

func NewResponseRepository(db *gorm.DB) *ResponseRepository {
	return &ResponseRepository{DB: db}
}

// Upsert persists a submission as a single atomic conflict-clause statement
// keyed on (student, lesson, question type, question id). Two concurrent
// submissions for the same key cannot race into duplicate rows; the last
// writer's answer and correctness win. The surrounding transaction rolls the
// whole write back on any failure.
func (r *ResponseRepository) Upsert(resp *model.StudentResponse) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "student_id"},
				{Name: "lesson_id"},
				{Name: "question_type"},
				{Name: "question_id"},
			},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"student_answer": resp.Answer,
				"answer_kind":    resp.AnswerKind,
				"is_correct":     resp.IsCorrect,
				"updated_at":     time.Now(),
			}),
		}).Create(resp).Error
	})
}

// ListForLesson returns a student's responses for one lesson, most recently
// answered first.
func (r *ResponseRepository) ListForLesson(studentID uint, lessonSlug string) ([]model.StudentResponse, error) {
	responses := make([]model.StudentResponse, 0)
	err := r.DB.
		Joins("JOIN lessons ON lessons.id = student_responses.lesson_id").
		Where("student_responses.student_id = ? AND lessons.lesson_slug = ?", studentID, lessonSlug).
		Order("student_responses.updated_at DESC").
		Find(&responses).Error
	return responses, err
}

// ListStudentOverviews aggregates per-student activity for the dashboard
// roster, one row per student including those with no responses yet.
func (r *ResponseRepository) ListStudentOverviews() ([]model.StudentOverview, error) {
	rows := make([]model.StudentOverview, 0)
	err := r.DB.Model(&model.Student{}).
		Select("students.id, students.student_name, students.student_id, students.class_name, students.created_at, students.last_login, " +
			"COUNT(DISTINCT sr.lesson_id) AS lessons_started, COUNT(sr.id) AS total_responses").
		Joins("LEFT JOIN student_responses sr ON sr.student_id = students.id").
		Group("students.id").
		Order("students.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

// ListDetailsForStudent returns every response of one student annotated with
// lesson metadata, in dashboard display order.
func (r *ResponseRepository) ListDetailsForStudent(studentID uint) ([]model.ResponseDetail, error) {
	rows := make([]model.ResponseDetail, 0)
	err := r.DB.Table("student_responses AS sr").
		Select("sr.id, sr.student_id, sr.lesson_id, sr.question_type, sr.question_id, sr.student_answer, sr.answer_kind, sr.is_correct, sr.updated_at, "+
			"l.lesson_title, l.lesson_slug").
		Joins("JOIN lessons l ON l.id = sr.lesson_id").
		Where("sr.student_id = ?", studentID).
		Order("l.lesson_title, sr.question_type, sr.question_id").
		Scan(&rows).Error
	return rows, err
}

// LastActivity is the most recent update timestamp across all of a student's
// responses, nil when they have none.
func (r *ResponseRepository) LastActivity(studentID uint) (*time.Time, error) {
	var latest model.StudentResponse
	err := r.DB.Where("student_id = ?", studentID).
		Order("updated_at DESC").
		First(&latest).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &latest.UpdatedAt, nil
}
