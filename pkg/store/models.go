package store

import (
	"time"

	"gorm.io/datatypes"
)

// GORM models used for persistence.
type UserModel struct {
	ID           string `gorm:"primaryKey"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Status       string
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time
}

type ProfileModel struct {
	UserID    string `gorm:"primaryKey"`
	Tier      string `gorm:"not null"`
	FullName  string
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time
}

type GenerationModel struct {
	ID        string         `gorm:"primaryKey"`
	OwnerID   string         `gorm:"not null;index:idx_generations_owner_created"`
	ToolType  string         `gorm:"not null;index"`
	Input     datatypes.JSON `gorm:"type:jsonb"`
	Output    string         `gorm:"type:text;not null"`
	CreatedAt time.Time      `gorm:"not null;index:idx_generations_owner_created"`
}
