package repository

import (
	"context"
	"time"

	"taskboard/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TaskChanges holds the fields of a partial task update. Nil means unchanged.
// When ReplaceTags is set the task's tags become exactly TagIDs, in order.
type TaskChanges struct {
	Title       *string
	Description *string
	Status      *model.TaskStatus
	Priority    *model.TaskPriority
	DueDate     *time.Time
	AssigneeID  *uuid.UUID
	ReplaceTags bool
	TagIDs      []uuid.UUID
}

func (c TaskChanges) columns() map[string]any {
	updates := map[string]any{}
	if c.Title != nil {
		updates["title"] = *c.Title
	}
	if c.Description != nil {
		updates["description"] = *c.Description
	}
	if c.Status != nil {
		updates["status"] = *c.Status
	}
	if c.Priority != nil {
		updates["priority"] = *c.Priority
	}
	if c.DueDate != nil {
		updates["due_date"] = *c.DueDate
	}
	if c.AssigneeID != nil {
		updates["assignee_id"] = *c.AssigneeID
	}
	return updates
}

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// withSummaries preloads the relations every task response carries.
func withSummaries(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Assignee").
		Preload("Creator").
		Preload("Tags", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		Preload("Tags.Tag")
}

// Create inserts the task and links the given tags in one transaction.
func (r *TaskRepository) Create(ctx context.Context, task *model.Task, tagIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(task).Error; err != nil {
			return translate(err)
		}
		return translate(insertTags(tx, task.ID, tagIDs))
	})
}

// ListByProject returns the project's tasks, newest first.
func (r *TaskRepository) ListByProject(ctx context.Context, projectID uuid.UUID) ([]model.Task, error) {
	var tasks []model.Task
	err := withSummaries(r.db.WithContext(ctx)).
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&tasks).Error
	return tasks, translate(err)
}

// GetInProject loads a task scoped to its project. Comments, newest first with
// their authors, are loaded only when withComments is set.
func (r *TaskRepository) GetInProject(ctx context.Context, projectID, taskID uuid.UUID, withComments bool) (*model.Task, error) {
	query := withSummaries(r.db.WithContext(ctx))
	if withComments {
		query = query.
			Preload("Comments", func(db *gorm.DB) *gorm.DB {
				return db.Order("created_at DESC")
			}).
			Preload("Comments.Author")
	}

	var task model.Task
	if err := query.Where("id = ? AND project_id = ?", taskID, projectID).First(&task).Error; err != nil {
		return nil, translate(err)
	}
	return &task, nil
}

func (r *TaskRepository) ExistsInProject(ctx context.Context, projectID, taskID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Task{}).
		Where("id = ? AND project_id = ?", taskID, projectID).
		Count(&count).Error
	return count > 0, translate(err)
}

// CommentCounts returns the number of comments per task. Tasks without comments are absent.
func (r *TaskRepository) CommentCounts(ctx context.Context, taskIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	counts := make(map[uuid.UUID]int64, len(taskIDs))
	if len(taskIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		TaskID uuid.UUID
		Total  int64
	}
	err := r.db.WithContext(ctx).
		Model(&model.Comment{}).
		Select("task_id, COUNT(*) AS total").
		Where("task_id IN ?", taskIDs).
		Group("task_id").
		Scan(&rows).Error
	if err != nil {
		return nil, translate(err)
	}

	for _, row := range rows {
		counts[row.TaskID] = row.Total
	}
	return counts, nil
}

// Update applies the changes to a task of the project. The existence check,
// column update and tag replacement share one transaction.
func (r *TaskRepository) Update(ctx context.Context, projectID, taskID uuid.UUID, changes TaskChanges) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := findInProject(tx, projectID, taskID); err != nil {
			return translate(err)
		}

		if updates := changes.columns(); len(updates) > 0 {
			if err := tx.Model(&model.Task{}).Where("id = ?", taskID).Updates(updates).Error; err != nil {
				return translate(err)
			}
		}

		if changes.ReplaceTags {
			if err := tx.Where("task_id = ?", taskID).Delete(&model.TaskTag{}).Error; err != nil {
				return translate(err)
			}
			if err := insertTags(tx, taskID, changes.TagIDs); err != nil {
				return translate(err)
			}
		}
		return nil
	})
}

// Delete removes a task of the project with its tag links and comments.
func (r *TaskRepository) Delete(ctx context.Context, projectID, taskID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := findInProject(tx, projectID, taskID); err != nil {
			return translate(err)
		}

		if err := tx.Where("task_id = ?", taskID).Delete(&model.Comment{}).Error; err != nil {
			return translate(err)
		}
		if err := tx.Where("task_id = ?", taskID).Delete(&model.TaskTag{}).Error; err != nil {
			return translate(err)
		}

		result := tx.Delete(&model.Task{}, "id = ?", taskID)
		if result.Error != nil {
			return translate(result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func findInProject(tx *gorm.DB, projectID, taskID uuid.UUID) error {
	var task model.Task
	err := tx.Select("id").Where("id = ? AND project_id = ?", taskID, projectID).First(&task).Error
	return translate(err)
}

// insertTags links tags to a task keeping list order. Repeated ids collapse onto the link key.
func insertTags(tx *gorm.DB, taskID uuid.UUID, tagIDs []uuid.UUID) error {
	if len(tagIDs) == 0 {
		return nil
	}

	links := make([]model.TaskTag, 0, len(tagIDs))
	for i, tagID := range tagIDs {
		links = append(links, model.TaskTag{TaskID: taskID, TagID: tagID, Position: i})
	}

	return tx.Omit(clause.Associations).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&links).Error
}
