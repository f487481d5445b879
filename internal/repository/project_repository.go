package repository

import (
	"context"

	"taskboard/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProjectChanges holds the fields of a partial project update. Nil means unchanged.
type ProjectChanges struct {
	Name        *string
	Description *string
}

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// ListForMember returns the projects the user is a member of, newest first.
func (r *ProjectRepository) ListForMember(ctx context.Context, userID uuid.UUID) ([]model.Project, error) {
	var projects []model.Project
	err := r.db.WithContext(ctx).
		Joins("JOIN project_members ON project_members.project_id = projects.id").
		Where("project_members.user_id = ?", userID).
		Order("projects.created_at DESC").
		Find(&projects).Error
	return projects, translate(err)
}

// CreateWithOwner inserts the project and makes ownerID its OWNER in one transaction.
func (r *ProjectRepository) CreateWithOwner(ctx context.Context, project *model.Project, ownerID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(project).Error; err != nil {
			return translate(err)
		}

		owner := model.ProjectMember{
			ProjectID: project.ID,
			UserID:    ownerID,
			Role:      model.RoleOwner,
		}
		if err := tx.Omit(clause.Associations).Create(&owner).Error; err != nil {
			return translate(err)
		}
		return nil
	})
}

// GetDetail loads a project with its members and their users.
func (r *ProjectRepository) GetDetail(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	var project model.Project
	err := r.db.WithContext(ctx).
		Preload("Members", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at")
		}).
		Preload("Members.User").
		First(&project, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &project, nil
}

// TaskCounts returns the number of tasks per project. Projects without tasks are absent.
func (r *ProjectRepository) TaskCounts(ctx context.Context, projectIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	counts := make(map[uuid.UUID]int64, len(projectIDs))
	if len(projectIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		ProjectID uuid.UUID
		Total     int64
	}
	err := r.db.WithContext(ctx).
		Model(&model.Task{}).
		Select("project_id, COUNT(*) AS total").
		Where("project_id IN ?", projectIDs).
		Group("project_id").
		Scan(&rows).Error
	if err != nil {
		return nil, translate(err)
	}

	for _, row := range rows {
		counts[row.ProjectID] = row.Total
	}
	return counts, nil
}

// Update applies the non-nil changes and returns the reloaded project.
func (r *ProjectRepository) Update(ctx context.Context, id uuid.UUID, changes ProjectChanges) (*model.Project, error) {
	updates := map[string]any{}
	if changes.Name != nil {
		updates["name"] = *changes.Name
	}
	if changes.Description != nil {
		updates["description"] = *changes.Description
	}

	if len(updates) > 0 {
		result := r.db.WithContext(ctx).Model(&model.Project{}).Where("id = ?", id).Updates(updates)
		if result.Error != nil {
			return nil, translate(result.Error)
		}
		if result.RowsAffected == 0 {
			return nil, ErrNotFound
		}
	}

	return r.GetDetail(ctx, id)
}

// Delete removes the project together with its members, tasks, task tags and comments.
func (r *ProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		taskIDs := tx.Model(&model.Task{}).Select("id").Where("project_id = ?", id)

		if err := tx.Where("task_id IN (?)", taskIDs).Delete(&model.Comment{}).Error; err != nil {
			return translate(err)
		}
		if err := tx.Where("task_id IN (?)", taskIDs).Delete(&model.TaskTag{}).Error; err != nil {
			return translate(err)
		}
		if err := tx.Where("project_id = ?", id).Delete(&model.Task{}).Error; err != nil {
			return translate(err)
		}
		if err := tx.Where("project_id = ?", id).Delete(&model.ProjectMember{}).Error; err != nil {
			return translate(err)
		}

		result := tx.Delete(&model.Project{}, "id = ?", id)
		if result.Error != nil {
			return translate(result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
