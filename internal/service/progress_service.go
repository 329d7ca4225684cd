package service

import (
	"coding_lessons_backend/internal/model"
	"coding_lessons_backend/internal/repository"
)

// ProgressService reads back a student's answers for one lesson.
type ProgressService struct {
	Responses *repository.ResponseRepository
}

func NewProgressService(responses *repository.ResponseRepository) *ProgressService {
	return &ProgressService{Responses: responses}
}

// GetProgress returns the student's responses for the lesson, most recent
// first. A student with no responses gets an empty list, not an error.
func (s *ProgressService) GetProgress(studentID uint, lessonSlug string) ([]model.StudentResponse, error) {
	return s.Responses.ListForLesson(studentID, lessonSlug)
}
