package model

import (
	"time"

	"github.com/google/uuid"
)

// MemberRole is the role a user holds inside a project.
type MemberRole string

const (
	RoleOwner  MemberRole = "OWNER"  // may delete the project
	RoleMember MemberRole = "MEMBER" // read and write within the project
)

// ProjectMember links a user to a project. The (project, user) pair is the key.
type ProjectMember struct {
	ProjectID uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID  `gorm:"type:uuid;primaryKey;index"`
	Role      MemberRole `gorm:"type:varchar(16);not null"`
	CreatedAt time.Time  `gorm:"autoCreateTime"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
