package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"taskboard/internal/middleware"
	"taskboard/internal/model"
	"taskboard/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAccessGuard struct {
	mock.Mock
}

func (m *MockAccessGuard) HasProjectAccess(ctx context.Context, projectID, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, projectID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockAccessGuard) IsProjectOwner(ctx context.Context, projectID, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, projectID, userID)
	return args.Bool(0), args.Error(1)
}

type MockProjectStore struct {
	mock.Mock
}

func (m *MockProjectStore) ListForMember(ctx context.Context, userID uuid.UUID) ([]model.Project, error) {
	args := m.Called(ctx, userID)
	projects, _ := args.Get(0).([]model.Project)
	return projects, args.Error(1)
}

func (m *MockProjectStore) CreateWithOwner(ctx context.Context, project *model.Project, ownerID uuid.UUID) error {
	args := m.Called(ctx, project, ownerID)
	return args.Error(0)
}

func (m *MockProjectStore) GetDetail(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	args := m.Called(ctx, id)
	project, _ := args.Get(0).(*model.Project)
	return project, args.Error(1)
}

func (m *MockProjectStore) TaskCounts(ctx context.Context, projectIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	args := m.Called(ctx, projectIDs)
	counts, _ := args.Get(0).(map[uuid.UUID]int64)
	return counts, args.Error(1)
}

func (m *MockProjectStore) Update(ctx context.Context, id uuid.UUID, changes repository.ProjectChanges) (*model.Project, error) {
	args := m.Called(ctx, id, changes)
	project, _ := args.Get(0).(*model.Project)
	return project, args.Error(1)
}

func (m *MockProjectStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockTaskStore struct {
	mock.Mock
}

func (m *MockTaskStore) Create(ctx context.Context, task *model.Task, tagIDs []uuid.UUID) error {
	args := m.Called(ctx, task, tagIDs)
	return args.Error(0)
}

func (m *MockTaskStore) ListByProject(ctx context.Context, projectID uuid.UUID) ([]model.Task, error) {
	args := m.Called(ctx, projectID)
	tasks, _ := args.Get(0).([]model.Task)
	return tasks, args.Error(1)
}

func (m *MockTaskStore) GetInProject(ctx context.Context, projectID, taskID uuid.UUID, withComments bool) (*model.Task, error) {
	args := m.Called(ctx, projectID, taskID, withComments)
	task, _ := args.Get(0).(*model.Task)
	return task, args.Error(1)
}

func (m *MockTaskStore) ExistsInProject(ctx context.Context, projectID, taskID uuid.UUID) (bool, error) {
	args := m.Called(ctx, projectID, taskID)
	return args.Bool(0), args.Error(1)
}

func (m *MockTaskStore) CommentCounts(ctx context.Context, taskIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	args := m.Called(ctx, taskIDs)
	counts, _ := args.Get(0).(map[uuid.UUID]int64)
	return counts, args.Error(1)
}

func (m *MockTaskStore) Update(ctx context.Context, projectID, taskID uuid.UUID, changes repository.TaskChanges) error {
	args := m.Called(ctx, projectID, taskID, changes)
	return args.Error(0)
}

func (m *MockTaskStore) Delete(ctx context.Context, projectID, taskID uuid.UUID) error {
	args := m.Called(ctx, projectID, taskID)
	return args.Error(0)
}

type MockCommentStore struct {
	mock.Mock
}

func (m *MockCommentStore) ListByTask(ctx context.Context, taskID uuid.UUID) ([]model.Comment, error) {
	args := m.Called(ctx, taskID)
	comments, _ := args.Get(0).([]model.Comment)
	return comments, args.Error(1)
}

func (m *MockCommentStore) Create(ctx context.Context, comment *model.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentStore) GetForTask(ctx context.Context, taskID, commentID uuid.UUID) (*model.Comment, error) {
	args := m.Called(ctx, taskID, commentID)
	comment, _ := args.Get(0).(*model.Comment)
	return comment, args.Error(1)
}

func (m *MockCommentStore) Delete(ctx context.Context, commentID uuid.UUID) error {
	args := m.Called(ctx, commentID)
	return args.Error(0)
}

type MockTagStore struct {
	mock.Mock
}

func (m *MockTagStore) List(ctx context.Context) ([]model.Tag, error) {
	args := m.Called(ctx)
	tags, _ := args.Get(0).([]model.Tag)
	return tags, args.Error(1)
}

func (m *MockTagStore) Create(ctx context.Context, tag *model.Tag) error {
	args := m.Called(ctx, tag)
	return args.Error(0)
}

// withUser stands in for the JWT middleware.
func withUser(userID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID != uuid.Nil {
			c.Set(middleware.UserIDKey, userID)
		}
		c.Next()
	}
}

func newRouter(userID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(withUser(userID))
	return r
}

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var reader *bytes.Buffer
	if body != "" {
		reader = bytes.NewBufferString(body)
	} else {
		reader = &bytes.Buffer{}
	}
	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

type errorBody struct {
	Error   string `json:"error"`
	Details []struct {
		Field string `json:"field"`
		Code  string `json:"code"`
	} `json:"details"`
}

func decodeError(t *testing.T, resp *httptest.ResponseRecorder) errorBody {
	t.Helper()

	var body errorBody
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	return body
}
