package handler

import (
	"context"
	"errors"
	"net/http"

	"taskboard/internal/logger"
	"taskboard/internal/middleware"
	"taskboard/internal/model"
	"taskboard/internal/repository"
	"taskboard/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	msgUnauthenticated   = "Authentication required"
	msgForbidden         = "You do not have permission to access this project"
	msgDeleteForbidden   = "You do not have permission to delete this project"
	msgInvalidInput      = "Invalid input"
	msgProjectNotFound   = "Project not found"
	msgTaskNotFound      = "Task not found"
	msgCommentNotFound   = "Comment not found"
	msgRelatedNotFound   = "Related resource not found"
	msgInternal          = "Internal server error"
	msgTemporaryFailure  = "Temporary failure, please retry"
	msgCommentForbidden  = "You can only delete your own comments"
	msgUserNotFound      = "User not found"
	msgInvalidCredential = "Invalid credentials"
)

// AccessGuard answers membership questions for a project.
type AccessGuard interface {
	HasProjectAccess(ctx context.Context, projectID, userID uuid.UUID) (bool, error)
	IsProjectOwner(ctx context.Context, projectID, userID uuid.UUID) (bool, error)
}

type ProjectStore interface {
	ListForMember(ctx context.Context, userID uuid.UUID) ([]model.Project, error)
	CreateWithOwner(ctx context.Context, project *model.Project, ownerID uuid.UUID) error
	GetDetail(ctx context.Context, id uuid.UUID) (*model.Project, error)
	TaskCounts(ctx context.Context, projectIDs []uuid.UUID) (map[uuid.UUID]int64, error)
	Update(ctx context.Context, id uuid.UUID, changes repository.ProjectChanges) (*model.Project, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type TaskStore interface {
	Create(ctx context.Context, task *model.Task, tagIDs []uuid.UUID) error
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]model.Task, error)
	GetInProject(ctx context.Context, projectID, taskID uuid.UUID, withComments bool) (*model.Task, error)
	ExistsInProject(ctx context.Context, projectID, taskID uuid.UUID) (bool, error)
	CommentCounts(ctx context.Context, taskIDs []uuid.UUID) (map[uuid.UUID]int64, error)
	Update(ctx context.Context, projectID, taskID uuid.UUID, changes repository.TaskChanges) error
	Delete(ctx context.Context, projectID, taskID uuid.UUID) error
}

type CommentStore interface {
	ListByTask(ctx context.Context, taskID uuid.UUID) ([]model.Comment, error)
	Create(ctx context.Context, comment *model.Comment) error
	GetForTask(ctx context.Context, taskID, commentID uuid.UUID) (*model.Comment, error)
	Delete(ctx context.Context, commentID uuid.UUID) error
}

type TagStore interface {
	List(ctx context.Context) ([]model.Tag, error)
	Create(ctx context.Context, tag *model.Tag) error
}

type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
}

// TokenIssuer signs access tokens for authenticated users.
type TokenIssuer interface {
	GenerateToken(userID string) (string, error)
}

func respondError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{Error: message})
}

// respondInternal logs the fault and answers with a generic message.
func respondInternal(c *gin.Context, err error) {
	if errors.Is(err, repository.ErrTransient) {
		logger.Warn("transient store failure", "method", c.Request.Method, "path", c.Request.URL.Path, "error", err)
		respondError(c, http.StatusInternalServerError, msgTemporaryFailure)
		return
	}
	logger.Error("request failed", "method", c.Request.Method, "path", c.Request.URL.Path, "error", err)
	respondError(c, http.StatusInternalServerError, msgInternal)
}

// respondStoreError maps repository error kinds onto responses. notFound is
// the message used when the targeted row is missing.
func respondStoreError(c *gin.Context, err error, notFound string) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		respondError(c, http.StatusNotFound, notFound)
	case errors.Is(err, repository.ErrConstraintViolation):
		respondError(c, http.StatusNotFound, msgRelatedNotFound)
	default:
		respondInternal(c, err)
	}
}

func respondInvalid(c *gin.Context, err error) {
	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		respondInternal(c, err)
		return
	}
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Error: msgInvalidInput, Details: verrs})
}

func currentUser(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, msgUnauthenticated)
	}
	return userID, ok
}

// requireProjectAccess resolves :projectId and checks that the user is a
// member. A malformed id cannot belong to any membership and is rejected the
// same way as a foreign project.
func requireProjectAccess(c *gin.Context, guard AccessGuard, userID uuid.UUID) (uuid.UUID, bool) {
	projectID, err := uuid.Parse(c.Param("projectId"))
	if err != nil {
		respondError(c, http.StatusForbidden, msgForbidden)
		return uuid.Nil, false
	}

	hasAccess, err := guard.HasProjectAccess(c.Request.Context(), projectID, userID)
	if err != nil {
		respondInternal(c, err)
		return uuid.Nil, false
	}
	if !hasAccess {
		respondError(c, http.StatusForbidden, msgForbidden)
		return uuid.Nil, false
	}
	return projectID, true
}

// pathID parses a uuid path parameter, answering 404 with notFound when it is malformed.
func pathID(c *gin.Context, name, notFound string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		respondError(c, http.StatusNotFound, notFound)
		return uuid.Nil, false
	}
	return id, true
}

func readBody(c *gin.Context) ([]byte, bool) {
	raw, err := c.GetRawData()
	if err != nil {
		respondInvalid(c, validation.Errors{{Field: "body", Code: "invalid_json", Message: "request body could not be read"}})
		return nil, false
	}
	return raw, true
}
