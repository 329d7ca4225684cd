package service

import (
	"coding_lessons_backend/internal/repository"
	"coding_lessons_backend/internal/util"
	"errors"
	"testing"
)

func TestAnonymousLoginLookupOrCreate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAnonymousIdentityService(repository.NewStudentRepository(db))

	first, err := svc.Login("Ada", "S-001", "6B")
	if err != nil {
		t.Fatalf("first login failed: %v", err)
	}

	again, err := svc.Login("Ada", "S-001", "6B")
	if err != nil {
		t.Fatalf("second login failed: %v", err)
	}
	if again.ID != first.ID {
		t.Errorf("same (name, code) resolved to different students: %d vs %d", again.ID, first.ID)
	}

	other, err := svc.Login("Ada", "S-002", "6B")
	if err != nil {
		t.Fatalf("login with different code failed: %v", err)
	}
	if other.ID == first.ID {
		t.Error("different code must resolve to a different student")
	}
}

func TestAnonymousLoginRequiresName(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAnonymousIdentityService(repository.NewStudentRepository(db))

	for _, name := range []string{"", "   "} {
		if _, err := svc.Login(name, "S-001", ""); !errors.Is(err, util.ErrStudentNameRequired) {
			t.Errorf("Login(%q) error = %v, want ErrStudentNameRequired", name, err)
		}
	}
}
