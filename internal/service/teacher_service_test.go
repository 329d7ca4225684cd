package service

import (
	"coding_lessons_backend/internal/model"
	"coding_lessons_backend/internal/repository"
	"coding_lessons_backend/internal/util"
	"encoding/json"
	"errors"
	"testing"
)

func newTeacherFixture(t *testing.T) (*TeacherService, *ResponseService, *model.Student) {
	t.Helper()
	db := setupTestDB(t)

	student := &model.Student{Name: "Ada", StudentCode: "S-001", ClassName: "6B"}
	if err := db.Create(student).Error; err != nil {
		t.Fatal(err)
	}
	for _, l := range []model.Lesson{
		{Slug: "coding-basics", Title: "Coding Basics"},
		{Slug: "coding-algorithms", Title: "Coding with Algorithms"},
	} {
		lesson := l
		if err := db.Create(&lesson).Error; err != nil {
			t.Fatal(err)
		}
	}

	students := repository.NewStudentRepository(db)
	responses := repository.NewResponseRepository(db)
	teacher := NewTeacherService(students, responses)
	submit := NewResponseService(repository.NewLessonRepository(db), responses)
	return teacher, submit, student
}

func TestGetStudentDetailNotFound(t *testing.T) {
	teacher, _, _ := newTeacherFixture(t)

	if _, err := teacher.GetStudentDetail(9999); !errors.Is(err, util.ErrStudentNotFound) {
		t.Errorf("error = %v, want ErrStudentNotFound", err)
	}
}

func TestGetStudentDetail(t *testing.T) {
	teacher, submit, student := newTeacherFixture(t)

	answer := json.RawMessage(`"b"`)
	if err := submit.Submit(student.ID, "coding-basics", "multiple_choice", "q1", answer, true); err != nil {
		t.Fatal(err)
	}
	if err := submit.Submit(student.ID, "coding-algorithms", "short_answer", "q1", answer, false); err != nil {
		t.Fatal(err)
	}

	detail, err := teacher.GetStudentDetail(student.ID)
	if err != nil {
		t.Fatalf("GetStudentDetail failed: %v", err)
	}

	if detail.Student.ID != student.ID {
		t.Errorf("wrong student: %d", detail.Student.ID)
	}
	if len(detail.Responses) != 2 {
		t.Fatalf("expected 2 responses, got %d", len(detail.Responses))
	}
	if detail.Responses[0].LessonTitle != "Coding Basics" {
		t.Errorf("responses not ordered by lesson title: first is %q", detail.Responses[0].LessonTitle)
	}
	if detail.Responses[1].LessonSlug != "coding-algorithms" {
		t.Errorf("lesson metadata missing: %+v", detail.Responses[1])
	}
	if detail.LastActivity == nil {
		t.Error("expected a last activity timestamp")
	}
}

func TestListStudentsCounts(t *testing.T) {
	teacher, submit, student := newTeacherFixture(t)

	// 5 responses across 2 distinct lessons.
	answer := json.RawMessage(`"x"`)
	for _, qid := range []string{"q1", "q2", "q3"} {
		if err := submit.Submit(student.ID, "coding-basics", "multiple_choice", qid, answer, false); err != nil {
			t.Fatal(err)
		}
	}
	for _, qid := range []string{"q1", "q2"} {
		if err := submit.Submit(student.ID, "coding-algorithms", "multiple_choice", qid, answer, false); err != nil {
			t.Fatal(err)
		}
	}

	rows, err := teacher.ListStudents()
	if err != nil {
		t.Fatalf("ListStudents failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 roster row, got %d", len(rows))
	}
	if rows[0].LessonsStarted != 2 {
		t.Errorf("lessons_started = %d, want 2", rows[0].LessonsStarted)
	}
	if rows[0].TotalResponses != 5 {
		t.Errorf("total_responses = %d, want 5", rows[0].TotalResponses)
	}
	if rows[0].Name != "Ada" {
		t.Errorf("student name = %q", rows[0].Name)
	}
}
