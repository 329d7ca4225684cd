package service

import (
	"coding_lessons_backend/internal/config"
	"coding_lessons_backend/internal/model"
	"coding_lessons_backend/internal/repository"
	"coding_lessons_backend/internal/util"
	"strings"

	"github.com/gin-gonic/gin"
)

// AnonymousIdentityService implements the lookup-or-create variant: a student
// self-identifies by name plus optional school code, no password involved.
type AnonymousIdentityService struct {
	Students *repository.StudentRepository
}

func NewAnonymousIdentityService(students *repository.StudentRepository) *AnonymousIdentityService {
	return &AnonymousIdentityService{Students: students}
}

func (s *AnonymousIdentityService) Mode() config.AuthMode {
	return config.AuthModeAnonymous
}

// Login resolves (name, code) to exactly one student row, creating it on
// first sight. Calling it twice with the same pair yields the same id.
func (s *AnonymousIdentityService) Login(name, studentCode, className string) (*model.Student, error) {
	if strings.TrimSpace(name) == "" {
		return nil, util.ErrStudentNameRequired
	}
	return s.Students.LookupOrCreate(name, studentCode, className)
}

func (s *AnonymousIdentityService) ResolveStudentID(c *gin.Context, presented uint) (uint, error) {
	if presented == 0 {
		return 0, util.ErrMissingFields
	}
	return presented, nil
}
