package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"taskboard/internal/handler"
	"taskboard/internal/model"
	"taskboard/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupProjectTest(userID uuid.UUID) (*gin.Engine, *MockProjectStore, *MockAccessGuard) {
	r := newRouter(userID)
	store := new(MockProjectStore)
	guard := new(MockAccessGuard)
	h := handler.NewProjectHandler(store, guard)

	r.GET("/projects", h.List)
	r.POST("/projects", h.Create)
	r.GET("/projects/:projectId", h.Get)
	r.PATCH("/projects/:projectId", h.Update)
	r.DELETE("/projects/:projectId", h.Delete)
	return r, store, guard
}

func TestProjectHandler_CreateThenList(t *testing.T) {
	userID := uuid.New()
	router, store, _ := setupProjectTest(userID)
	user := model.User{ID: userID, Name: "Test User", Email: "test@example.com"}
	description := "Test Description"

	var created *model.Project
	store.On("CreateWithOwner", mock.Anything, mock.AnythingOfType("*model.Project"), userID).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*model.Project)
			created.ID = uuid.New()
			created.CreatedAt = time.Now()
		}).
		Return(nil)
	detailed := &model.Project{
		Name:        "Test Project",
		Description: &description,
		Members:     []model.ProjectMember{{UserID: userID, Role: model.RoleOwner, User: user}},
	}
	store.On("GetDetail", mock.Anything, mock.AnythingOfType("uuid.UUID")).Return(detailed, nil)

	resp := doJSON(router, http.MethodPost, "/projects", `{"name":"Test Project","description":"Test Description"}`)
	require.Equal(t, http.StatusOK, resp.Code)

	var detail handler.ProjectDetailResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &detail))
	assert.Equal(t, "Test Project", detail.Name)
	require.Len(t, detail.Members, 1)
	assert.Equal(t, model.RoleOwner, detail.Members[0].Role)
	assert.Equal(t, userID.String(), detail.Members[0].User.ID)
	require.NotNil(t, created)
	assert.Equal(t, "Test Project", created.Name)
	assert.Equal(t, "Test Description", *created.Description)

	store.On("ListForMember", mock.Anything, userID).Return([]model.Project{*created}, nil)
	store.On("TaskCounts", mock.Anything, []uuid.UUID{created.ID}).Return(map[uuid.UUID]int64{created.ID: 3}, nil)

	resp = doJSON(router, http.MethodGet, "/projects", "")
	require.Equal(t, http.StatusOK, resp.Code)

	var list []handler.ProjectSummaryResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Test Project", list[0].Name)
	assert.Equal(t, int64(3), list[0].TaskCount)

	store.AssertExpectations(t)
}

func TestProjectHandler_ListEmpty(t *testing.T) {
	userID := uuid.New()
	router, store, _ := setupProjectTest(userID)
	store.On("ListForMember", mock.Anything, userID).Return([]model.Project{}, nil)
	store.On("TaskCounts", mock.Anything, []uuid.UUID{}).Return(map[uuid.UUID]int64{}, nil)

	resp := doJSON(router, http.MethodGet, "/projects", "")

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `[]`, resp.Body.String())
}

func TestProjectHandler_Unauthenticated(t *testing.T) {
	router, store, guard := setupProjectTest(uuid.Nil)

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/projects"},
		{http.MethodPost, "/projects"},
		{http.MethodGet, "/projects/" + uuid.NewString()},
		{http.MethodDelete, "/projects/" + uuid.NewString()},
	} {
		resp := doJSON(router, tc.method, tc.path, `{"name":"x"}`)
		assert.Equal(t, http.StatusUnauthorized, resp.Code, "%s %s", tc.method, tc.path)
		assert.Equal(t, "Authentication required", decodeError(t, resp).Error)
	}

	store.AssertNotCalled(t, "ListForMember", mock.Anything, mock.Anything)
	guard.AssertNotCalled(t, "HasProjectAccess", mock.Anything, mock.Anything, mock.Anything)
}

func TestProjectHandler_CreateInvalid(t *testing.T) {
	router, store, _ := setupProjectTest(uuid.New())

	resp := doJSON(router, http.MethodPost, "/projects", `{"name":""}`)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	body := decodeError(t, resp)
	assert.Equal(t, "Invalid input", body.Error)
	require.Len(t, body.Details, 1)
	assert.Equal(t, "name", body.Details[0].Field)
	store.AssertNotCalled(t, "CreateWithOwner", mock.Anything, mock.Anything, mock.Anything)
}

func TestProjectHandler_Get(t *testing.T) {
	userID, projectID := uuid.New(), uuid.New()
	router, store, guard := setupProjectTest(userID)

	guard.On("HasProjectAccess", mock.Anything, projectID, userID).Return(true, nil)
	store.On("GetDetail", mock.Anything, projectID).Return(&model.Project{ID: projectID, Name: "Launch"}, nil)
	store.On("TaskCounts", mock.Anything, []uuid.UUID{projectID}).Return(map[uuid.UUID]int64{}, nil)

	resp := doJSON(router, http.MethodGet, "/projects/"+projectID.String(), "")

	require.Equal(t, http.StatusOK, resp.Code)
	var detail map[string]any
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &detail))
	assert.Equal(t, "Launch", detail["name"])
	assert.Equal(t, float64(0), detail["taskCount"])
	assert.Equal(t, []any{}, detail["members"])
}

func TestProjectHandler_GetForbidden(t *testing.T) {
	userID, projectID := uuid.New(), uuid.New()
	router, store, guard := setupProjectTest(userID)
	guard.On("HasProjectAccess", mock.Anything, projectID, userID).Return(false, nil)

	resp := doJSON(router, http.MethodGet, "/projects/"+projectID.String(), "")

	assert.Equal(t, http.StatusForbidden, resp.Code)
	assert.Equal(t, "You do not have permission to access this project", decodeError(t, resp).Error)
	store.AssertNotCalled(t, "GetDetail", mock.Anything, mock.Anything)
}

func TestProjectHandler_MalformedProjectID(t *testing.T) {
	router, _, guard := setupProjectTest(uuid.New())

	resp := doJSON(router, http.MethodGet, "/projects/not-a-uuid", "")

	assert.Equal(t, http.StatusForbidden, resp.Code)
	guard.AssertNotCalled(t, "HasProjectAccess", mock.Anything, mock.Anything, mock.Anything)
}

func TestProjectHandler_UpdateAuthorizesBeforeValidating(t *testing.T) {
	userID, projectID := uuid.New(), uuid.New()
	router, store, guard := setupProjectTest(userID)
	guard.On("HasProjectAccess", mock.Anything, projectID, userID).Return(false, nil)

	resp := doJSON(router, http.MethodPatch, "/projects/"+projectID.String(), `{"name":""}`)

	assert.Equal(t, http.StatusForbidden, resp.Code)
	assert.Empty(t, decodeError(t, resp).Details)
	store.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestProjectHandler_Update(t *testing.T) {
	userID, projectID := uuid.New(), uuid.New()
	router, store, guard := setupProjectTest(userID)
	guard.On("HasProjectAccess", mock.Anything, projectID, userID).Return(true, nil)

	name := "Renamed"
	store.On("Update", mock.Anything, projectID, repository.ProjectChanges{Name: &name}).
		Return(&model.Project{ID: projectID, Name: name}, nil)

	resp := doJSON(router, http.MethodPatch, "/projects/"+projectID.String(), `{"name":"Renamed"}`)

	assert.Equal(t, http.StatusOK, resp.Code)
	store.AssertExpectations(t)
}

func TestProjectHandler_UpdateEmptyBody(t *testing.T) {
	userID, projectID := uuid.New(), uuid.New()
	router, store, guard := setupProjectTest(userID)
	guard.On("HasProjectAccess", mock.Anything, projectID, userID).Return(true, nil)
	store.On("Update", mock.Anything, projectID, repository.ProjectChanges{}).
		Return(&model.Project{ID: projectID, Name: "Launch"}, nil)

	resp := doJSON(router, http.MethodPatch, "/projects/"+projectID.String(), "")

	assert.Equal(t, http.StatusOK, resp.Code)
	store.AssertExpectations(t)
}

func TestProjectHandler_Delete(t *testing.T) {
	userID, projectID := uuid.New(), uuid.New()

	tests := []struct {
		name       string
		isOwner    bool
		deleteErr  error
		wantStatus int
		wantError  string
	}{
		{name: "owner", isOwner: true, wantStatus: http.StatusOK},
		{name: "member is forbidden", isOwner: false, wantStatus: http.StatusForbidden, wantError: "You do not have permission to delete this project"},
		{name: "already deleted", isOwner: true, deleteErr: repository.ErrNotFound, wantStatus: http.StatusNotFound, wantError: "Project not found"},
		{name: "store failure", isOwner: true, deleteErr: assert.AnError, wantStatus: http.StatusInternalServerError, wantError: "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, store, guard := setupProjectTest(userID)
			guard.On("IsProjectOwner", mock.Anything, projectID, userID).Return(tt.isOwner, nil)
			if tt.isOwner {
				store.On("Delete", mock.Anything, projectID).Return(tt.deleteErr)
			}

			resp := doJSON(router, http.MethodDelete, "/projects/"+projectID.String(), "")

			assert.Equal(t, tt.wantStatus, resp.Code)
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, decodeError(t, resp).Error)
			}
			if !tt.isOwner {
				store.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
			}
			guard.AssertExpectations(t)
		})
	}
}
