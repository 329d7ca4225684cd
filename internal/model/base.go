package model

import (
	"time"
)

// BaseModel: rows in this system are created and updated, never deleted, so
// there is no soft-delete column.
type BaseModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
