// Package access decides whether a user may act on a project.
package access

import (
	"context"
	"fmt"

	"taskboard/internal/model"

	"github.com/google/uuid"
)

// MembershipFinder looks up the membership row for a (project, user) pair.
// A missing row is reported as nil, nil.
type MembershipFinder interface {
	Find(ctx context.Context, projectID, userID uuid.UUID) (*model.ProjectMember, error)
}

type Guard struct {
	members MembershipFinder
}

func NewGuard(members MembershipFinder) *Guard {
	return &Guard{members: members}
}

// HasProjectAccess reports whether the user holds any role in the project.
func (g *Guard) HasProjectAccess(ctx context.Context, projectID, userID uuid.UUID) (bool, error) {
	member, err := g.members.Find(ctx, projectID, userID)
	if err != nil {
		return false, fmt.Errorf("find membership: %w", err)
	}
	return member != nil, nil
}

// IsProjectOwner reports whether the user is the project's OWNER.
func (g *Guard) IsProjectOwner(ctx context.Context, projectID, userID uuid.UUID) (bool, error) {
	member, err := g.members.Find(ctx, projectID, userID)
	if err != nil {
		return false, fmt.Errorf("find membership: %w", err)
	}
	return member != nil && member.Role == model.RoleOwner, nil
}
