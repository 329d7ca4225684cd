package service

import (
	"coding_lessons_backend/internal/model"
	"coding_lessons_backend/internal/repository"
	"coding_lessons_backend/internal/util"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if err := db.AutoMigrate(&model.Student{}, &model.Lesson{}, &model.StudentResponse{}); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}
	return db
}

func newResponseService(t *testing.T) (*ResponseService, *gorm.DB, *model.Student) {
	t.Helper()
	db := setupTestDB(t)

	student := &model.Student{Name: "Ada", StudentCode: "S-001"}
	if err := db.Create(student).Error; err != nil {
		t.Fatal(err)
	}
	lesson := &model.Lesson{Slug: "coding-basics", Title: "Coding Basics"}
	if err := db.Create(lesson).Error; err != nil {
		t.Fatal(err)
	}

	svc := NewResponseService(
		repository.NewLessonRepository(db),
		repository.NewResponseRepository(db),
	)
	return svc, db, student
}

func TestSubmitStoresEncodedAnswer(t *testing.T) {
	svc, db, student := newResponseService(t)

	answer := json.RawMessage(`{"selected": ["a", "c"]}`)
	if err := svc.Submit(student.ID, "coding-basics", "multiple_choice", "q1", answer, true); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	var stored model.StudentResponse
	if err := db.First(&stored).Error; err != nil {
		t.Fatalf("no row stored: %v", err)
	}
	if stored.AnswerKind != model.AnswerKindStructured {
		t.Errorf("answer kind = %v, want structured", stored.AnswerKind)
	}
	if stored.Answer != `{"selected":["a","c"]}` {
		t.Errorf("stored answer = %q", stored.Answer)
	}
	if !stored.IsCorrect {
		t.Error("correctness flag lost")
	}
}

func TestSubmitUnknownLesson(t *testing.T) {
	svc, db, student := newResponseService(t)

	err := svc.Submit(student.ID, "no-such-lesson", "multiple_choice", "q1", json.RawMessage(`"a"`), false)
	if !errors.Is(err, util.ErrLessonNotFound) {
		t.Fatalf("error = %v, want ErrLessonNotFound", err)
	}

	var count int64
	db.Model(&model.StudentResponse{}).Count(&count)
	if count != 0 {
		t.Errorf("expected no rows, got %d", count)
	}
}

func TestSubmitMissingFields(t *testing.T) {
	svc, db, student := newResponseService(t)

	tests := []struct {
		name      string
		studentID uint
		slug      string
		qtype     string
		qid       string
	}{
		{name: "no student", studentID: 0, slug: "coding-basics", qtype: "multiple_choice", qid: "q1"},
		{name: "no slug", studentID: student.ID, qtype: "multiple_choice", qid: "q1"},
		{name: "no question type", studentID: student.ID, slug: "coding-basics", qid: "q1"},
		{name: "no question id", studentID: student.ID, slug: "coding-basics", qtype: "multiple_choice"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Submit(tt.studentID, tt.slug, tt.qtype, tt.qid, json.RawMessage(`"a"`), false)
			if !errors.Is(err, util.ErrMissingFields) {
				t.Fatalf("error = %v, want ErrMissingFields", err)
			}
		})
	}

	var count int64
	db.Model(&model.StudentResponse{}).Count(&count)
	if count != 0 {
		t.Errorf("validation failures must not touch the store, got %d rows", count)
	}
}

func TestSubmitMalformedAnswer(t *testing.T) {
	svc, db, student := newResponseService(t)

	err := svc.Submit(student.ID, "coding-basics", "multiple_choice", "q1", json.RawMessage(`{"a":`), false)
	if !errors.Is(err, model.ErrMalformedAnswer) {
		t.Fatalf("error = %v, want ErrMalformedAnswer", err)
	}

	var count int64
	db.Model(&model.StudentResponse{}).Count(&count)
	if count != 0 {
		t.Errorf("expected no rows, got %d", count)
	}
}
