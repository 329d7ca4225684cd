package database

import (
	"coding_lessons_backend/internal/config"
	"coding_lessons_backend/internal/model"
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig, migrate bool) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s",
		cfg.Host,
		cfg.User,
		cfg.Password,
		cfg.DBName,
		cfg.Port,
		cfg.SSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if migrate {
		if err := Migrate(db); err != nil {
			return nil, err
		}
		log.Println("Database migration completed")
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.Student{},
		&model.Lesson{},
		&model.StudentResponse{},
	)
	if err != nil {
		return err
	}

	SeedLessons(db)
	return nil
}

// SeedLessons inserts the lesson catalog when the table is empty. Lessons are
// read-only for this service, so seeding only ever runs once per database.
func SeedLessons(db *gorm.DB) {
	var count int64
	db.Model(&model.Lesson{}).Count(&count)
	if count > 0 {
		return
	}

	defaultLessons := []model.Lesson{
		{Slug: "coding-basics", Title: "Coding Basics"},
		{Slug: "coding-algorithms", Title: "Coding with Algorithms"},
	}
	for _, l := range defaultLessons {
		db.Create(&l)
	}
}
