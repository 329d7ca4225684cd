package model

import (
	"time"
)

// Student is the identity record for both auth modes. Column names match the
// pre-existing `students` table: `student_id` there is the school-issued code,
// not the surrogate key.
type Student struct {
	BaseModel
	Name         string    `gorm:"column:student_name;size:100;not null" json:"student_name"`
	StudentCode  string    `gorm:"column:student_id;size:100;default:''" json:"student_id"`
	ClassName    string    `gorm:"column:class_name;size:100;default:''" json:"class_name"`
	Email        *string   `gorm:"size:100;uniqueIndex" json:"email,omitempty"`
	PasswordHash string    `gorm:"column:password_hash;size:100" json:"-"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`
	LastLogin    time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"last_login"`
}

func (Student) TableName() string {
	return "students"
}
