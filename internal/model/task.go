package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TaskStatus string

const (
	StatusTodo       TaskStatus = "TODO"
	StatusInProgress TaskStatus = "IN_PROGRESS"
	StatusDone       TaskStatus = "DONE"
	StatusOnHold     TaskStatus = "ON_HOLD"
)

type TaskPriority string

const (
	PriorityHigh   TaskPriority = "HIGH"
	PriorityMedium TaskPriority = "MEDIUM"
	PriorityLow    TaskPriority = "LOW"
)

type Task struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProjectID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Title       string    `gorm:"not null"`
	Description *string
	Status      TaskStatus    `gorm:"type:varchar(16);not null"`
	Priority    *TaskPriority `gorm:"type:varchar(16)"`
	DueDate     *time.Time
	AssigneeID  *uuid.UUID `gorm:"type:uuid;index"`
	CreatorID   uuid.UUID  `gorm:"type:uuid;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Assignee *User     `gorm:"foreignKey:AssigneeID;constraint:OnDelete:SET NULL"`
	Creator  User      `gorm:"foreignKey:CreatorID"`
	Tags     []TaskTag `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE"`
	Comments []Comment `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE"`
}

func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
