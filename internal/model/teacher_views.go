package model

import (
	"time"
)

// StudentOverview is one dashboard roster row: a student plus activity counts
// aggregated over their responses.
type StudentOverview struct {
	ID             uint      `json:"id"`
	Name           string    `gorm:"column:student_name" json:"student_name"`
	StudentCode    string    `gorm:"column:student_id" json:"student_id"`
	ClassName      string    `gorm:"column:class_name" json:"class_name"`
	CreatedAt      time.Time `json:"created_at"`
	LastLogin      time.Time `json:"last_login"`
	LessonsStarted int64     `json:"lessons_started"`
	TotalResponses int64     `json:"total_responses"`
}

// ResponseDetail is a response row annotated with its lesson metadata, as
// shown on the per-student dashboard page.
type ResponseDetail struct {
	ID            uint       `json:"id"`
	StudentID     uint       `json:"student_id"`
	LessonID      uint       `json:"lesson_id"`
	QuestionType  string     `json:"question_type"`
	QuestionID    string     `json:"question_id"`
	StudentAnswer string     `json:"student_answer"`
	AnswerKind    AnswerKind `json:"answer_kind"`
	IsCorrect     bool       `json:"is_correct"`
	UpdatedAt     time.Time  `json:"updated_at"`
	LessonTitle   string     `json:"lesson_title"`
	LessonSlug    string     `json:"lesson_slug"`
}

// StudentDetail is the full per-student dashboard payload.
type StudentDetail struct {
	Student      *Student         `json:"student"`
	Responses    []ResponseDetail `json:"responses"`
	LastActivity *time.Time       `json:"last_activity"`
}
