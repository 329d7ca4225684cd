package model

// Lesson is a static catalog entry, pre-seeded and read-only here.
type Lesson struct {
	BaseModel
	Slug  string `gorm:"column:lesson_slug;size:100;uniqueIndex;not null" json:"lesson_slug"`
	Title string `gorm:"column:lesson_title;size:200;not null" json:"lesson_title"`
}

func (Lesson) TableName() string {
	return "lessons"
}
