package service

import (
	"coding_lessons_backend/internal/config"
	"coding_lessons_backend/internal/model"
	"coding_lessons_backend/internal/repository"
	"coding_lessons_backend/internal/util"
	"context"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const revokedSessionPrefix = "session:revoked:"

// CredentialedIdentityService implements the account variant: email plus
// bcrypt-hashed password, session carried as a signed token. Logout writes
// the token id to a redis denylist so the session dies server-side; without
// redis it degrades to the client dropping its cookie.
type CredentialedIdentityService struct {
	Students *repository.StudentRepository
	Cfg      *config.Config
	Redis    *redis.Client
}

func NewCredentialedIdentityService(students *repository.StudentRepository, cfg *config.Config, rdb *redis.Client) *CredentialedIdentityService {
	return &CredentialedIdentityService{
		Students: students,
		Cfg:      cfg,
		Redis:    rdb,
	}
}

func (s *CredentialedIdentityService) Mode() config.AuthMode {
	return config.AuthModeCredentialed
}

type RegisterInput struct {
	Email           string
	Name            string
	StudentCode     string
	ClassName       string
	Password        string
	PasswordConfirm string
}

func (s *CredentialedIdentityService) Register(in RegisterInput) (*model.Student, string, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, "", util.ErrStudentNameRequired
	}
	if in.Email == "" || in.Password == "" {
		return nil, "", util.ErrMissingFields
	}
	if in.Password != in.PasswordConfirm {
		return nil, "", util.ErrPasswordMismatch
	}

	_, err := s.Students.FindByEmail(in.Email)
	if err == nil {
		return nil, "", util.ErrEmailRegistered
	} else if err != gorm.ErrRecordNotFound {
		return nil, "", err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	email := in.Email
	student := &model.Student{
		Name:         in.Name,
		StudentCode:  in.StudentCode,
		ClassName:    in.ClassName,
		Email:        &email,
		PasswordHash: string(hashed),
		IsActive:     true,
	}
	if err := s.Students.Create(student); err != nil {
		return nil, "", err
	}

	token, err := util.GenerateSessionToken(student.ID, email, s.Cfg.Auth.JWTSecret, s.Cfg.Auth.SessionExpire)
	if err != nil {
		return nil, "", err
	}
	return student, token, nil
}

func (s *CredentialedIdentityService) Login(email, password string) (*model.Student, string, error) {
	student, err := s.Students.FindByEmail(email)
	if err != nil {
		return nil, "", util.ErrInvalidCredentials
	}
	if !student.IsActive {
		return nil, "", util.ErrAccountDisabled
	}
	if err := bcrypt.CompareHashAndPassword([]byte(student.PasswordHash), []byte(password)); err != nil {
		return nil, "", util.ErrInvalidCredentials
	}

	if err := s.Students.TouchLastLogin(student.ID); err != nil {
		return nil, "", err
	}

	token, err := util.GenerateSessionToken(student.ID, email, s.Cfg.Auth.JWTSecret, s.Cfg.Auth.SessionExpire)
	if err != nil {
		return nil, "", err
	}
	return student, token, nil
}

// Logout revokes the presented session token for its remaining lifetime.
func (s *CredentialedIdentityService) Logout(ctx context.Context, tokenString string) error {
	if s.Redis == nil || tokenString == "" {
		return nil
	}

	claims, err := util.ParseSessionToken(tokenString, s.Cfg.Auth.JWTSecret)
	if err != nil {
		// Already invalid; nothing to revoke.
		return nil
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	return s.Redis.Set(ctx, revokedSessionPrefix+claims.ID, 1, ttl).Err()
}

// IsRevoked reports whether a session id sits on the logout denylist.
func (s *CredentialedIdentityService) IsRevoked(ctx context.Context, jti string) bool {
	if s.Redis == nil {
		return false
	}
	n, err := s.Redis.Exists(ctx, revokedSessionPrefix+jti).Result()
	return err == nil && n > 0
}

func (s *CredentialedIdentityService) ResolveStudentID(c *gin.Context, presented uint) (uint, error) {
	claims := util.GetSessionFromContext(c)
	if claims == nil {
		return 0, util.ErrInvalidCredentials
	}
	return claims.StudentID, nil
}

func (s *CredentialedIdentityService) CurrentStudent(c *gin.Context) *model.Student {
	claims := util.GetSessionFromContext(c)
	if claims == nil {
		return nil
	}
	student, err := s.Students.FindByID(claims.StudentID)
	if err != nil {
		return nil
	}
	return student
}
