package handler

import (
	"net/http"

	"taskboard/internal/model"
	"taskboard/internal/repository"
	"taskboard/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProjectHandler struct {
	projects ProjectStore
	guard    AccessGuard
}

func NewProjectHandler(projects ProjectStore, guard AccessGuard) *ProjectHandler {
	return &ProjectHandler{
		projects: projects,
		guard:    guard,
	}
}

// List godoc
// @Summary      List projects
// @Description  Projects the caller is a member of, newest first, with their task counts
// @Tags         Projects
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   ProjectSummaryResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /projects [get]
func (h *ProjectHandler) List(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	projects, err := h.projects.ListForMember(c.Request.Context(), userID)
	if err != nil {
		respondInternal(c, err)
		return
	}

	ids := make([]uuid.UUID, 0, len(projects))
	for _, p := range projects {
		ids = append(ids, p.ID)
	}
	counts, err := h.projects.TaskCounts(c.Request.Context(), ids)
	if err != nil {
		respondInternal(c, err)
		return
	}

	response := make([]ProjectSummaryResponse, 0, len(projects))
	for i := range projects {
		response = append(response, ProjectSummaryResponse{
			ProjectResponse: newProjectResponse(&projects[i]),
			TaskCount:       counts[projects[i].ID],
		})
	}

	c.JSON(http.StatusOK, response)
}

// Create godoc
// @Summary      Create a project
// @Description  The caller becomes the project's OWNER
// @Tags         Projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        project  body      object{name=string,description=string}  true  "Project"
// @Success      200      {object}  ProjectDetailResponse
// @Failure      400      {object}  ErrorResponse
// @Failure      401      {object}  ErrorResponse
// @Router       /projects [post]
func (h *ProjectHandler) Create(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	raw, ok := readBody(c)
	if !ok {
		return
	}
	in, err := validation.ParseCreateProject(raw)
	if err != nil {
		respondInvalid(c, err)
		return
	}

	project := &model.Project{
		Name:        in.Name,
		Description: in.Description,
	}
	if err := h.projects.CreateWithOwner(c.Request.Context(), project, userID); err != nil {
		respondStoreError(c, err, msgProjectNotFound)
		return
	}

	created, err := h.projects.GetDetail(c.Request.Context(), project.ID)
	if err != nil {
		respondStoreError(c, err, msgProjectNotFound)
		return
	}

	c.JSON(http.StatusOK, newProjectDetailResponse(created))
}

// Get godoc
// @Summary      Get a project
// @Tags         Projects
// @Produce      json
// @Security     BearerAuth
// @Param        projectId  path      string  true  "Project ID"
// @Success      200        {object}  ProjectDetailResponse
// @Failure      401        {object}  ErrorResponse
// @Failure      403        {object}  ErrorResponse
// @Failure      404        {object}  ErrorResponse
// @Router       /projects/{projectId} [get]
func (h *ProjectHandler) Get(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	projectID, ok := requireProjectAccess(c, h.guard, userID)
	if !ok {
		return
	}

	project, err := h.projects.GetDetail(c.Request.Context(), projectID)
	if err != nil {
		respondStoreError(c, err, msgProjectNotFound)
		return
	}

	counts, err := h.projects.TaskCounts(c.Request.Context(), []uuid.UUID{projectID})
	if err != nil {
		respondInternal(c, err)
		return
	}

	response := newProjectDetailResponse(project)
	taskCount := counts[projectID]
	response.TaskCount = &taskCount

	c.JSON(http.StatusOK, response)
}

// Update godoc
// @Summary      Update a project
// @Description  Absent fields are left unchanged; an empty body is a no-op
// @Tags         Projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        projectId  path      string                                  true  "Project ID"
// @Param        project    body      object{name=string,description=string}  true  "Changes"
// @Success      200        {object}  ProjectDetailResponse
// @Failure      400        {object}  ErrorResponse
// @Failure      401        {object}  ErrorResponse
// @Failure      403        {object}  ErrorResponse
// @Failure      404        {object}  ErrorResponse
// @Router       /projects/{projectId} [patch]
func (h *ProjectHandler) Update(c *gin.Context) {
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
	in, err := validation.ParseUpdateProject(raw)
	if err != nil {
		respondInvalid(c, err)
		return
	}

	project, err := h.projects.Update(c.Request.Context(), projectID, repository.ProjectChanges{
		Name:        in.Name,
		Description: in.Description,
	})
	if err != nil {
		respondStoreError(c, err, msgProjectNotFound)
		return
	}

	c.JSON(http.StatusOK, newProjectDetailResponse(project))
}

// Delete godoc
// @Summary      Delete a project
// @Description  Only the OWNER may delete; members, tasks, tag links and comments go with it
// @Tags         Projects
// @Produce      json
// @Security     BearerAuth
// @Param        projectId  path      string  true  "Project ID"
// @Success      200        {object}  MessageResponse
// @Failure      401        {object}  ErrorResponse
// @Failure      403        {object}  ErrorResponse
// @Failure      404        {object}  ErrorResponse
// @Router       /projects/{projectId} [delete]
func (h *ProjectHandler) Delete(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	projectID, err := uuid.Parse(c.Param("projectId"))
	if err != nil {
		respondError(c, http.StatusForbidden, msgDeleteForbidden)
		return
	}

	isOwner, err := h.guard.IsProjectOwner(c.Request.Context(), projectID, userID)
	if err != nil {
		respondInternal(c, err)
		return
	}
	if !isOwner {
		respondError(c, http.StatusForbidden, msgDeleteForbidden)
		return
	}

	if err := h.projects.Delete(c.Request.Context(), projectID); err != nil {
		respondStoreError(c, err, msgProjectNotFound)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Project deleted"})
}
