package repository

import (
	"coding_lessons_backend/internal/model"

	"gorm.io/gorm"
)

type LessonRepository struct {
	DB *gorm.DB
}

func NewLessonRepository(db *gorm.DB) *LessonRepository {
	return &LessonRepository{DB: db}
}

func (r *LessonRepository) FindBySlug(slug string) (*model.Lesson, error) {
	var lesson model.Lesson
	err := r.DB.Where("lesson_slug = ?", slug).First(&lesson).Error
	return &lesson, err
}

func (r *LessonRepository) List() ([]model.Lesson, error) {
	var lessons []model.Lesson
	err := r.DB.Order("lesson_title").Find(&lessons).Error
	return lessons, err
}
