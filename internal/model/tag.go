package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tag belongs to a global pool shared by every project.
type Tag struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string    `gorm:"not null"`
	Color string    `gorm:"not null"`
}

func (t *Tag) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TaskTag attaches a tag to a task. Position keeps the order the tags were submitted in.
type TaskTag struct {
	TaskID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	TagID    uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	Position int       `gorm:"not null"`

	Tag Tag `gorm:"foreignKey:TagID;constraint:OnDelete:CASCADE"`
}
