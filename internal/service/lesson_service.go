package service

import (
	"coding_lessons_backend/internal/model"
	"coding_lessons_backend/internal/repository"
)

// LessonService exposes the read-only lesson catalog.
type LessonService struct {
	Lessons *repository.LessonRepository
}

func NewLessonService(lessons *repository.LessonRepository) *LessonService {
	return &LessonService{Lessons: lessons}
}

func (s *LessonService) List() ([]model.Lesson, error) {
	return s.Lessons.List()
}
