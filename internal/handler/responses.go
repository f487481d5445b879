package handler

import (
	"time"

	"taskboard/internal/model"
	"taskboard/internal/validation"
)

type ErrorResponse struct {
	Error   string                  `json:"error"`
	Details []validation.FieldError `json:"details,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// UserSummary is the public shape of a user nested in other resources.
type UserSummary struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Image *string `json:"image"`
}

type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Image     *string   `json:"image"`
	CreatedAt time.Time `json:"createdAt"`
}

type MemberResponse struct {
	Role      model.MemberRole `json:"role"`
	CreatedAt time.Time        `json:"createdAt"`
	User      MemberUser       `json:"user"`
}

type MemberUser struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Image *string `json:"image"`
}

type ProjectResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type ProjectSummaryResponse struct {
	ProjectResponse
	TaskCount int64 `json:"taskCount"`
}

type ProjectDetailResponse struct {
	ProjectResponse
	Members   []MemberResponse `json:"members"`
	TaskCount *int64           `json:"taskCount,omitempty"`
}

type TagResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

type TaskResponse struct {
	ID          string              `json:"id"`
	ProjectID   string              `json:"projectId"`
	Title       string              `json:"title"`
	Description *string             `json:"description"`
	Status      model.TaskStatus    `json:"status"`
	Priority    *model.TaskPriority `json:"priority"`
	DueDate     *time.Time          `json:"dueDate"`
	AssigneeID  *string             `json:"assigneeId"`
	CreatorID   string              `json:"creatorId"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
	Assignee    *UserSummary        `json:"assignee"`
	Creator     UserSummary         `json:"creator"`
	Tags        []TagResponse       `json:"tags"`
}

type TaskListItem struct {
	TaskResponse
	CommentCount int64 `json:"commentCount"`
}

type TaskDetailResponse struct {
	TaskResponse
	Comments []CommentResponse `json:"comments"`
}

type CommentResponse struct {
	ID        string      `json:"id"`
	TaskID    string      `json:"taskId"`
	Content   string      `json:"content"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
	Author    UserSummary `json:"author"`
}

func newUserSummary(u *model.User) UserSummary {
	return UserSummary{ID: u.ID.String(), Name: u.Name, Image: u.Image}
}

func newUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:        u.ID.String(),
		Name:      u.Name,
		Email:     u.Email,
		Image:     u.Image,
		CreatedAt: u.CreatedAt,
	}
}

func newProjectResponse(p *model.Project) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID.String(),
		Name:        p.Name,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func newProjectDetailResponse(p *model.Project) ProjectDetailResponse {
	members := make([]MemberResponse, 0, len(p.Members))
	for _, m := range p.Members {
		members = append(members, MemberResponse{
			Role:      m.Role,
			CreatedAt: m.CreatedAt,
			User: MemberUser{
				ID:    m.User.ID.String(),
				Name:  m.User.Name,
				Email: m.User.Email,
				Image: m.User.Image,
			},
		})
	}
	return ProjectDetailResponse{ProjectResponse: newProjectResponse(p), Members: members}
}

func newTagResponse(t *model.Tag) TagResponse {
	return TagResponse{ID: t.ID.String(), Name: t.Name, Color: t.Color}
}

func newTaskResponse(t *model.Task) TaskResponse {
	resp := TaskResponse{
		ID:          t.ID.String(),
		ProjectID:   t.ProjectID.String(),
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		Priority:    t.Priority,
		DueDate:     t.DueDate,
		CreatorID:   t.CreatorID.String(),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
		Creator:     newUserSummary(&t.Creator),
		Tags:        make([]TagResponse, 0, len(t.Tags)),
	}

	if t.AssigneeID != nil {
		assigneeID := t.AssigneeID.String()
		resp.AssigneeID = &assigneeID
	}
	if t.Assignee != nil {
		assignee := newUserSummary(t.Assignee)
		resp.Assignee = &assignee
	}
	for i := range t.Tags {
		resp.Tags = append(resp.Tags, newTagResponse(&t.Tags[i].Tag))
	}
	return resp
}

func newCommentResponse(c *model.Comment) CommentResponse {
	return CommentResponse{
		ID:        c.ID.String(),
		TaskID:    c.TaskID.String(),
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
		Author:    newUserSummary(&c.Author),
	}
}
