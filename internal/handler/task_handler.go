package handler

import (
	"net/http"

	"taskboard/internal/model"
	"taskboard/internal/repository"
	"taskboard/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TaskHandler struct {
	tasks TaskStore
	guard AccessGuard
}

func NewTaskHandler(tasks TaskStore, guard AccessGuard) *TaskHandler {
	return &TaskHandler{
		tasks: tasks,
		guard: guard,
	}
}

// List godoc
// @Summary      List tasks of a project
// @Description  Newest first, with assignee and creator summaries, tags and comment counts
// @Tags         Tasks
// @Produce      json
// @Security     BearerAuth
// @Param        projectId  path      string  true  "Project ID"
// @Success      200        {array}   TaskListItem
// @Failure      401        {object}  ErrorResponse
// @Failure      403        {object}  ErrorResponse
// @Router       /projects/{projectId}/tasks [get]
func (h *TaskHandler) List(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	projectID, ok := requireProjectAccess(c, h.guard, userID)
	if !ok {
		return
	}

	tasks, err := h.tasks.ListByProject(c.Request.Context(), projectID)
	if err != nil {
		respondInternal(c, err)
		return
	}

	ids := make([]uuid.UUID, 0, len(tasks))
	for _, t := range tasks {
		ids = append(ids, t.ID)
	}
	counts, err := h.tasks.CommentCounts(c.Request.Context(), ids)
	if err != nil {
		respondInternal(c, err)
		return
	}

	response := make([]TaskListItem, 0, len(tasks))
	for i := range tasks {
		response = append(response, TaskListItem{
			TaskResponse: newTaskResponse(&tasks[i]),
			CommentCount: counts[tasks[i].ID],
		})
	}

	c.JSON(http.StatusOK, response)
}

// Create godoc
// @Summary      Create a task
// @Description  The caller becomes the creator. Unknown assignee or tag ids answer 404.
// @Tags         Tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        projectId  path      string  true  "Project ID"
// @Param        task       body      object{title=string,description=string,status=string,priority=string,dueDate=string,assigneeId=string,tagIds=[]string}  true  "Task"
// @Success      200        {object}  TaskResponse
// @Failure      400        {object}  ErrorResponse
// @Failure      401        {object}  ErrorResponse
// @Failure      403        {object}  ErrorResponse
// @Failure      404        {object}  ErrorResponse
// @Router       /projects/{projectId}/tasks [post]
func (h *TaskHandler) Create(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	projectID, ok := requireProjectAccess(c, h.guard, userID)
	if !ok {
		return
	}

	raw, ok := readBody(c)
	if !ok {
		return
	}
	in, err := validation.ParseCreateTask(raw)
	if err != nil {
		respondInvalid(c, err)
		return
	}

	task := &model.Task{
		ProjectID:   projectID,
		Title:       in.Title,
		Description: in.Description,
		Status:      in.Status,
		Priority:    in.Priority,
		DueDate:     in.DueDate,
		AssigneeID:  in.AssigneeID,
		CreatorID:   userID,
	}
	if err := h.tasks.Create(c.Request.Context(), task, in.TagIDs); err != nil {
		respondStoreError(c, err, msgTaskNotFound)
		return
	}

	created, err := h.tasks.GetInProject(c.Request.Context(), projectID, task.ID, false)
	if err != nil {
		respondStoreError(c, err, msgTaskNotFound)
		return
	}

	c.JSON(http.StatusOK, newTaskResponse(created))
}

// Get godoc
// @Summary      Get a task
// @Description  Includes the full comment thread, newest first
// @Tags         Tasks
// @Produce      json
// @Security     BearerAuth
// @Param        projectId  path      string  true  "Project ID"
// @Param        taskId     path      string  true  "Task ID"
// @Success      200        {object}  TaskDetailResponse
// @Failure      401        {object}  ErrorResponse
// @Failure      403        {object}  ErrorResponse
// @Failure      404        {object}  ErrorResponse
// @Router       /projects/{projectId}/tasks/{taskId} [get]
func (h *TaskHandler) Get(c *gin.Context) {
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

	task, err := h.tasks.GetInProject(c.Request.Context(), projectID, taskID, true)
	if err != nil {
		respondStoreError(c, err, msgTaskNotFound)
		return
	}

	comments := make([]CommentResponse, 0, len(task.Comments))
	for i := range task.Comments {
		comments = append(comments, newCommentResponse(&task.Comments[i]))
	}

	c.JSON(http.StatusOK, TaskDetailResponse{
		TaskResponse: newTaskResponse(task),
		Comments:     comments,
	})
}

// Update godoc
// @Summary      Update a task
// @Description  Absent fields are left unchanged. A tagIds list replaces every tag of the task.
// @Tags         Tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        projectId  path      string  true  "Project ID"
// @Param        taskId     path      string  true  "Task ID"
// @Param        task       body      object{title=string,description=string,status=string,priority=string,dueDate=string,assigneeId=string,tagIds=[]string}  true  "Changes"
// @Success      200        {object}  TaskResponse
// @Failure      400        {object}  ErrorResponse
// @Failure      401        {object}  ErrorResponse
// @Failure      403        {object}  ErrorResponse
// @Failure      404        {object}  ErrorResponse
// @Router       /projects/{projectId}/tasks/{taskId} [patch]
func (h *TaskHandler) Update(c *gin.Context) {
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
	in, err := validation.ParseUpdateTask(raw)
	if err != nil {
		respondInvalid(c, err)
		return
	}

	changes := repository.TaskChanges{
		Title:       in.Title,
		Description: in.Description,
		Status:      in.Status,
		Priority:    in.Priority,
		DueDate:     in.DueDate,
		AssigneeID:  in.AssigneeID,
		ReplaceTags: in.TagIDs != nil,
		TagIDs:      in.TagIDs,
	}
	if err := h.tasks.Update(c.Request.Context(), projectID, taskID, changes); err != nil {
		respondStoreError(c, err, msgTaskNotFound)
		return
	}

	task, err := h.tasks.GetInProject(c.Request.Context(), projectID, taskID, false)
	if err != nil {
		respondStoreError(c, err, msgTaskNotFound)
		return
	}

	c.JSON(http.StatusOK, newTaskResponse(task))
}

// Delete godoc
// @Summary      Delete a task
// @Tags         Tasks
// @Produce      json
// @Security     BearerAuth
// @Param        projectId  path      string  true  "Project ID"
// @Param        taskId     path      string  true  "Task ID"
// @Success      200        {object}  MessageResponse
// @Failure      401        {object}  ErrorResponse
// @Failure      403        {object}  ErrorResponse
// @Failure      404        {object}  ErrorResponse
// @Router       /projects/{projectId}/tasks/{taskId} [delete]
func (h *TaskHandler) Delete(c *gin.Context) {
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

	if err := h.tasks.Delete(c.Request.Context(), projectID, taskID); err != nil {
		respondStoreError(c, err, msgTaskNotFound)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Task deleted"})
}
