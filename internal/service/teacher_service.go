package service

import (
	"coding_lessons_backend/internal/model"
	"coding_lessons_backend/internal/repository"
	"coding_lessons_backend/internal/util"

	"gorm.io/gorm"
)

// TeacherService powers the dashboard read paths.
type TeacherService struct {
	Students  *repository.StudentRepository
	Responses *repository.ResponseRepository
}

func NewTeacherService(students *repository.StudentRepository, responses *repository.ResponseRepository) *TeacherService {
	return &TeacherService{
		Students:  students,
		Responses: responses,
	}
}

func (s *TeacherService) ListStudents() ([]model.StudentOverview, error) {
	return s.Responses.ListStudentOverviews()
}

func (s *TeacherService) GetStudentDetail(studentID uint) (*model.StudentDetail, error) {
	student, err := s.Students.FindByID(studentID)
	if err == gorm.ErrRecordNotFound {
		return nil, util.ErrStudentNotFound
	} else if err != nil {
		return nil, err
	}

	responses, err := s.Responses.ListDetailsForStudent(studentID)
	if err != nil {
		return nil, err
	}

	lastActivity, err := s.Responses.LastActivity(studentID)
	if err != nil {
		return nil, err
	}

	return &model.StudentDetail{
		Student:      student,
		Responses:    responses,
		LastActivity: lastActivity,
	}, nil
}
