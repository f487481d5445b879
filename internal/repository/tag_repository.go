package repository

import (
	"context"

	"taskboard/internal/model"

	"gorm.io/gorm"
)

type TagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) *TagRepository {
	return &TagRepository{db: db}
}

// List returns the global tag pool ordered by name.
func (r *TagRepository) List(ctx context.Context) ([]model.Tag, error) {
	var tags []model.Tag
	err := r.db.WithContext(ctx).Order("name").Find(&tags).Error
	return tags, translate(err)
}

func (r *TagRepository) Create(ctx context.Context, tag *model.Tag) error {
	return translate(r.db.WithContext(ctx).Create(tag).Error)
}
