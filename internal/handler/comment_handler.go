package handler

import (
	"context"
	"net/http"

	"taskboard/internal/model"
	"taskboard/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TaskLookup reports whether a task belongs to a project.
type TaskLookup interface {
	ExistsInProject(ctx context.Context, projectID, taskID uuid.UUID) (bool, error)
}

type CommentHandler struct {
	comments CommentStore
	tasks    TaskLookup
	guard    AccessGuard
}

func NewCommentHandler(comments CommentStore, tasks TaskLookup, guard AccessGuard) *CommentHandler {
	return &CommentHandler{
		comments: comments,
		tasks:    tasks,
		guard:    guard,
	}
}

// requireTask resolves :taskId and checks it belongs to the project.
func (h *CommentHandler) requireTask(c *gin.Context, projectID uuid.UUID) (uuid.UUID, bool) {
	taskID, ok := pathID(c, "taskId", msgTaskNotFound)
	if !ok {
		return uuid.Nil, false
	}

	exists, err := h.tasks.ExistsInProject(c.Request.Context(), projectID, taskID)
	if err != nil {
		respondInternal(c, err)
		return uuid.Nil, false
	}
	if !exists {
		respondError(c, http.StatusNotFound, msgTaskNotFound)
		return uuid.Nil, false
	}
	return taskID, true
}

// List returns the task's comments, newest first
// @Summary  List comments of a task
// @Tags     Comments
// @Produce  json
// @Security BearerAuth
// @Param    projectId  path  string  true  "Project ID"
// @Param    taskId     path  string  true  "Task ID"
// @Success  200  {array}   CommentResponse
// @Failure  403  {object}  ErrorResponse
// @Failure  404  {object}  ErrorResponse
// @Router   /projects/{projectId}/tasks/{taskId}/comments [get]
func (h *CommentHandler) List(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	projectID, ok := requireProjectAccess(c, h.guard, userID)
	if !ok {
		return
	}
	taskID, ok := h.requireTask(c, projectID)
	if !ok {
		return
	}

	comments, err := h.comments.ListByTask(c.Request.Context(), taskID)
	if err != nil {
		respondInternal(c, err)
		return
	}

	response := make([]CommentResponse, 0, len(comments))
	for i := range comments {
		response = append(response, newCommentResponse(&comments[i]))
	}
	c.JSON(http.StatusOK, response)
}

// Create adds a comment authored by the caller
// @Summary  Comment on a task
// @Tags     Comments
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    projectId  path  string                  true  "Project ID"
// @Param    taskId     path  string                  true  "Task ID"
// @Param    comment    body  object{content=string}  true  "Comment"
// @Success  200  {object}  CommentResponse
// @Failure  400  {object}  ErrorResponse
// @Failure  403  {object}  ErrorResponse
// @Failure  404  {object}  ErrorResponse
// @Router   /projects/{projectId}/tasks/{taskId}/comments [post]
func (h *CommentHandler) Create(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	projectID, ok := requireProjectAccess(c, h.guard, userID)
	if !ok {
		return
	}
	taskID, ok := pathID(c, "taskId", msgTaskNotFound)
	if !ok {
		return
	}

	raw, ok := readBody(c)
	if !ok {
		return
	}
	in, err := validation.ParseCreateComment(raw)
	if err != nil {
		respondInvalid(c, err)
		return
	}

	exists, err := h.tasks.ExistsInProject(c.Request.Context(), projectID, taskID)
	if err != nil {
		respondInternal(c, err)
		return
	}
	if !exists {
		respondError(c, http.StatusNotFound, msgTaskNotFound)
		return
	}

	comment := &model.Comment{
		TaskID:   taskID,
		AuthorID: userID,
		Content:  in.Content,
	}
	if err := h.comments.Create(c.Request.Context(), comment); err != nil {
		respondStoreError(c, err, msgTaskNotFound)
		return
	}

	c.JSON(http.StatusOK, newCommentResponse(comment))
}

// Delete removes one of the caller's own comments
// @Summary  Delete a comment
// @Tags     Comments
// @Produce  json
// @Security BearerAuth
// @Param    projectId  path  string  true  "Project ID"
// @Param    taskId     path  string  true  "Task ID"
// @Param    commentId  path  string  true  "Comment ID"
// @Success  200  {object}  MessageResponse
// @Failure  403  {object}  ErrorResponse
// @Failure  404  {object}  ErrorResponse
// @Router   /projects/{projectId}/tasks/{taskId}/comments/{commentId} [delete]
func (h *CommentHandler) Delete(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	projectID, ok := requireProjectAccess(c, h.guard, userID)
	if !ok {
		return
	}
	taskID, ok := h.requireTask(c, projectID)
	if !ok {
		return
	}
	commentID, ok := pathID(c, "commentId", msgCommentNotFound)
	if !ok {
		return
	}

	comment, err := h.comments.GetForTask(c.Request.Context(), taskID, commentID)
	if err != nil {
		respondStoreError(c, err, msgCommentNotFound)
		return
	}
	if comment.AuthorID != userID {
		respondError(c, http.StatusForbidden, msgCommentForbidden)
		return
	}

	if err := h.comments.Delete(c.Request.Context(), commentID); err != nil {
		respondStoreError(c, err, msgCommentNotFound)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Comment deleted"})
}
