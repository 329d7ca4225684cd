package model

// StudentResponse is one answer to one question by one student in one lesson.
// The composite unique index is what makes the save path an upsert: a
// resubmission lands on the same key and overwrites in place.
type StudentResponse struct {
	BaseModel
	StudentID    uint       `gorm:"column:student_id;not null;uniqueIndex:idx_student_responses_key,priority:1" json:"student_id"`
	LessonID     uint       `gorm:"column:lesson_id;not null;uniqueIndex:idx_student_responses_key,priority:2" json:"lesson_id"`
	QuestionType string     `gorm:"column:question_type;size:50;not null;uniqueIndex:idx_student_responses_key,priority:3" json:"question_type"`
	QuestionID   string     `gorm:"column:question_id;size:100;not null;uniqueIndex:idx_student_responses_key,priority:4" json:"question_id"`
	Answer       string     `gorm:"column:student_answer;type:text" json:"student_answer"`
	AnswerKind   AnswerKind `gorm:"column:answer_kind;size:10;default:'scalar'" json:"answer_kind"`
	IsCorrect    bool       `gorm:"column:is_correct" json:"is_correct"`
}

func (StudentResponse) TableName() string {
	return "student_responses"
}
