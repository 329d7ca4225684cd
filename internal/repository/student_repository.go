package repository

import (
	"coding_lessons_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type StudentRepository struct {
	DB *gorm.DB
}

func NewStudentRepository(db *gorm.DB) *StudentRepository {
	return &StudentRepository{DB: db}
}

func (r *StudentRepository) FindByID(id uint) (*model.Student, error) {
	var student model.Student
	err := r.DB.First(&student, id).Error
	return &student, err
}

func (r *StudentRepository) FindByEmail(email string) (*model.Student, error) {
	var student model.Student
	err := r.DB.Where("email = ?", email).First(&student).Error
	return &student, err
}

// LookupOrCreate maps a (name, student code) pair to exactly one row. The
// pair carries no secret; whoever presents it is trusted to be that student.
func (r *StudentRepository) LookupOrCreate(name, studentCode, className string) (*model.Student, error) {
	var student model.Student
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("student_name = ? AND student_id = ?", name, studentCode).
			First(&student).Error
		if err == nil {
			return nil
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}

		student = model.Student{
			Name:        name,
			StudentCode: studentCode,
			ClassName:   className,
		}
		return tx.Create(&student).Error
	})
	if err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *StudentRepository) Create(student *model.Student) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(student).Error
	})
}

func (r *StudentRepository) TouchLastLogin(id uint) error {
	return r.DB.Model(&model.Student{}).
		Where("id = ?", id).
		Update("last_login", time.Now()).
		Error
}
