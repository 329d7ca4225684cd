package service

import (
	"coding_lessons_backend/internal/config"
	"coding_lessons_backend/internal/model"
	"coding_lessons_backend/internal/repository"
	"coding_lessons_backend/internal/util"
	"errors"
	"testing"
	"time"
)

func newCredentialedService(t *testing.T) (*CredentialedIdentityService, *repository.StudentRepository) {
	t.Helper()
	db := setupTestDB(t)
	students := repository.NewStudentRepository(db)
	cfg := &config.Config{
		Auth: config.AuthConfig{
			Mode:          config.AuthModeCredentialed,
			JWTSecret:     "test-secret-for-unit-tests-only-000000",
			SessionExpire: time.Hour,
		},
	}
	return NewCredentialedIdentityService(students, cfg, nil), students
}

func validRegistration() RegisterInput {
	return RegisterInput{
		Email:           "ada@example.com",
		Name:            "Ada",
		StudentCode:     "S-001",
		ClassName:       "6B",
		Password:        "hunter2hunter2",
		PasswordConfirm: "hunter2hunter2",
	}
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newCredentialedService(t)

	student, token, err := svc.Register(validRegistration())
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if token == "" {
		t.Fatal("no session token issued on registration")
	}
	if student.PasswordHash == "hunter2hunter2" {
		t.Fatal("password stored in clear")
	}

	claims, err := util.ParseSessionToken(token, "test-secret-for-unit-tests-only-000000")
	if err != nil {
		t.Fatalf("issued token does not parse: %v", err)
	}
	if claims.StudentID != student.ID {
		t.Errorf("token student id = %d, want %d", claims.StudentID, student.ID)
	}
	if claims.ID == "" {
		t.Error("token has no id; logout revocation needs one")
	}

	loggedIn, token2, err := svc.Login("ada@example.com", "hunter2hunter2")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if loggedIn.ID != student.ID {
		t.Errorf("login resolved wrong student: %d", loggedIn.ID)
	}
	if token2 == "" {
		t.Error("no session token issued on login")
	}
}

func TestRegisterValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*RegisterInput)
		wantErr error
	}{
		{
			name:    "password mismatch",
			mutate:  func(in *RegisterInput) { in.PasswordConfirm = "different" },
			wantErr: util.ErrPasswordMismatch,
		},
		{
			name:    "empty name",
			mutate:  func(in *RegisterInput) { in.Name = "  " },
			wantErr: util.ErrStudentNameRequired,
		},
		{
			name:    "empty password",
			mutate:  func(in *RegisterInput) { in.Password = ""; in.PasswordConfirm = "" },
			wantErr: util.ErrMissingFields,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newCredentialedService(t)
			in := validRegistration()
			tt.mutate(&in)
			if _, _, err := svc.Register(in); !errors.Is(err, tt.wantErr) {
				t.Errorf("Register() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newCredentialedService(t)

	if _, _, err := svc.Register(validRegistration()); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}
	if _, _, err := svc.Register(validRegistration()); !errors.Is(err, util.ErrEmailRegistered) {
		t.Errorf("duplicate registration error = %v, want ErrEmailRegistered", err)
	}
}

func TestLoginFailures(t *testing.T) {
	svc, students := newCredentialedService(t)

	student, _, err := svc.Register(validRegistration())
	if err != nil {
		t.Fatalf("registration failed: %v", err)
	}

	if _, _, err := svc.Login("nobody@example.com", "whatever"); !errors.Is(err, util.ErrInvalidCredentials) {
		t.Errorf("unknown account error = %v, want ErrInvalidCredentials", err)
	}
	if _, _, err := svc.Login("ada@example.com", "wrong-password"); !errors.Is(err, util.ErrInvalidCredentials) {
		t.Errorf("wrong password error = %v, want ErrInvalidCredentials", err)
	}

	if err := students.DB.Model(&model.Student{}).
		Where("id = ?", student.ID).
		Update("is_active", false).Error; err != nil {
		t.Fatal(err)
	}
	if _, _, err := svc.Login("ada@example.com", "hunter2hunter2"); !errors.Is(err, util.ErrAccountDisabled) {
		t.Errorf("disabled account error = %v, want ErrAccountDisabled", err)
	}
}

func TestLoginTouchesLastLogin(t *testing.T) {
	svc, students := newCredentialedService(t)

	student, _, err := svc.Register(validRegistration())
	if err != nil {
		t.Fatalf("registration failed: %v", err)
	}

	before, err := students.FindByID(student.ID)
	if err != nil {
		t.Fatal(err)
	}

	time.Sleep(20 * time.Millisecond)

	if _, _, err := svc.Login("ada@example.com", "hunter2hunter2"); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	after, err := students.FindByID(student.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !after.LastLogin.After(before.LastLogin) {
		t.Errorf("last_login not refreshed: before=%v after=%v", before.LastLogin, after.LastLogin)
	}
}
