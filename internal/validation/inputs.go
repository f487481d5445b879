package validation

import (
	"time"

	"taskboard/internal/model"

	"github.com/google/uuid"
)

type projectPayload struct {
	Name        *string `json:"name" validate:"required,min=1"`
	Description *string `json:"description"`
}

type projectPatchPayload struct {
	Name        *string `json:"name" validate:"omitnil,min=1"`
	Description *string `json:"description"`
}

type taskPayload struct {
	Title       *string  `json:"title" validate:"required,min=1"`
	Description *string  `json:"description"`
	Status      *string  `json:"status" validate:"required,oneof=TODO IN_PROGRESS DONE ON_HOLD"`
	Priority    *string  `json:"priority" validate:"omitnil,oneof=HIGH MEDIUM LOW"`
	DueDate     *string  `json:"dueDate" validate:"omitnil,rfc3339"`
	AssigneeID  *string  `json:"assigneeId" validate:"omitnil,uuid"`
	TagIDs      []string `json:"tagIds" validate:"omitempty,dive,uuid"`
}

type taskPatchPayload struct {
	Title       *string  `json:"title" validate:"omitnil,min=1"`
	Description *string  `json:"description"`
	Status      *string  `json:"status" validate:"omitnil,oneof=TODO IN_PROGRESS DONE ON_HOLD"`
	Priority    *string  `json:"priority" validate:"omitnil,oneof=HIGH MEDIUM LOW"`
	DueDate     *string  `json:"dueDate" validate:"omitnil,rfc3339"`
	AssigneeID  *string  `json:"assigneeId" validate:"omitnil,uuid"`
	TagIDs      []string `json:"tagIds" validate:"omitempty,dive,uuid"`
}

type commentPayload struct {
	Content *string `json:"content" validate:"required,min=1"`
}

type tagPayload struct {
	Name  *string `json:"name" validate:"required,min=1,max=64"`
	Color *string `json:"color" validate:"required,hexcolor"`
}

type CreateProjectInput struct {
	Name        string
	Description *string
}

// UpdateProjectInput leaves nil fields unchanged.
type UpdateProjectInput struct {
	Name        *string
	Description *string
}

type CreateTaskInput struct {
	Title       string
	Description *string
	Status      model.TaskStatus
	Priority    *model.TaskPriority
	DueDate     *time.Time
	AssigneeID  *uuid.UUID
	TagIDs      []uuid.UUID
}

// UpdateTaskInput leaves nil fields unchanged. TagIDs is nil when the payload
// did not mention tags, and empty when it asked for all tags to be removed.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Status      *model.TaskStatus
	Priority    *model.TaskPriority
	DueDate     *time.Time
	AssigneeID  *uuid.UUID
	TagIDs      []uuid.UUID
}

type CreateCommentInput struct {
	Content string
}

type CreateTagInput struct {
	Name  string
	Color string
}

func ParseCreateProject(raw []byte) (*CreateProjectInput, error) {
	var p projectPayload
	if err := decode(raw, &p); err != nil {
		return nil, err
	}
	return &CreateProjectInput{Name: *p.Name, Description: p.Description}, nil
}

// ParseUpdateProject accepts an empty object as a no-op update.
func ParseUpdateProject(raw []byte) (*UpdateProjectInput, error) {
	var p projectPatchPayload
	if err := decode(raw, &p); err != nil {
		return nil, err
	}
	return &UpdateProjectInput{Name: p.Name, Description: p.Description}, nil
}

func ParseCreateTask(raw []byte) (*CreateTaskInput, error) {
	var p taskPayload
	if err := decode(raw, &p); err != nil {
		return nil, err
	}

	in := &CreateTaskInput{
		Title:       *p.Title,
		Description: p.Description,
		Status:      model.TaskStatus(*p.Status),
		Priority:    priority(p.Priority),
		DueDate:     dueDate(p.DueDate),
		AssigneeID:  optionalUUID(p.AssigneeID),
		TagIDs:      uuids(p.TagIDs),
	}
	return in, nil
}

func ParseUpdateTask(raw []byte) (*UpdateTaskInput, error) {
	var p taskPatchPayload
	if err := decode(raw, &p); err != nil {
		return nil, err
	}

	in := &UpdateTaskInput{
		Title:       p.Title,
		Description: p.Description,
		Priority:    priority(p.Priority),
		DueDate:     dueDate(p.DueDate),
		AssigneeID:  optionalUUID(p.AssigneeID),
		TagIDs:      uuids(p.TagIDs),
	}
	if p.Status != nil {
		status := model.TaskStatus(*p.Status)
		in.Status = &status
	}
	return in, nil
}

func ParseCreateComment(raw []byte) (*CreateCommentInput, error) {
	var p commentPayload
	if err := decode(raw, &p); err != nil {
		return nil, err
	}
	return &CreateCommentInput{Content: *p.Content}, nil
}

func ParseCreateTag(raw []byte) (*CreateTagInput, error) {
	var p tagPayload
	if err := decode(raw, &p); err != nil {
		return nil, err
	}
	return &CreateTagInput{Name: *p.Name, Color: *p.Color}, nil
}

func priority(s *string) *model.TaskPriority {
	if s == nil {
		return nil
	}
	p := model.TaskPriority(*s)
	return &p
}

// The helpers below run after validation, so parse failures cannot occur.

func dueDate(s *string) *time.Time {
	if s == nil {
		return nil
	}
	t, _ := time.Parse(time.RFC3339, *s)
	return &t
}

func optionalUUID(s *string) *uuid.UUID {
	if s == nil {
		return nil
	}
	id := uuid.MustParse(*s)
	return &id
}

// uuids keeps the nil/empty distinction of the decoded list.
func uuids(ss []string) []uuid.UUID {
	if ss == nil {
		return nil
	}
	ids := make([]uuid.UUID, 0, len(ss))
	for _, s := range ss {
		ids = append(ids, uuid.MustParse(s))
	}
	return ids
}
