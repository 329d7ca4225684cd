package service

import (
	"coding_lessons_backend/internal/model"
	"coding_lessons_backend/internal/repository"
	"coding_lessons_backend/internal/util"
	"coding_lessons_backend/pkg/monitoring"
	"encoding/json"

	"gorm.io/gorm"
)

// ResponseService turns a submitted answer into the idempotent stored row.
type ResponseService struct {
	Lessons   *repository.LessonRepository
	Responses *repository.ResponseRepository
}

func NewResponseService(lessons *repository.LessonRepository, responses *repository.ResponseRepository) *ResponseService {
	return &ResponseService{
		Lessons:   lessons,
		Responses: responses,
	}
}

// Submit validates, resolves the lesson slug and upserts the response.
// Validation failures return before any store interaction; unknown slugs
// leave no row behind.
func (s *ResponseService) Submit(studentID uint, lessonSlug, questionType, questionID string, answer json.RawMessage, isCorrect bool) error {
	if studentID == 0 || lessonSlug == "" || questionType == "" || questionID == "" {
		return util.ErrMissingFields
	}

	lesson, err := s.Lessons.FindBySlug(lessonSlug)
	if err == gorm.ErrRecordNotFound {
		return util.ErrLessonNotFound
	} else if err != nil {
		return err
	}

	encoded, err := model.EncodeAnswer(answer)
	if err != nil {
		return err
	}

	resp := &model.StudentResponse{
		StudentID:    studentID,
		LessonID:     lesson.ID,
		QuestionType: questionType,
		QuestionID:   questionID,
		Answer:       encoded.Text,
		AnswerKind:   encoded.Kind,
		IsCorrect:    isCorrect,
	}
	if err := s.Responses.Upsert(resp); err != nil {
		return err
	}

	monitoring.ResponseUpserts.WithLabelValues(lessonSlug, questionType).Inc()
	return nil
}
