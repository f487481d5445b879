package handler_test

import (
	"net/http"
	"testing"

	"taskboard/internal/handler"
	"taskboard/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestTagHandler(t *testing.T) {
	router := newRouter(uuid.New())
	store := new(MockTagStore)
	h := handler.NewTagHandler(store)
	router.GET("/tags", h.List)
	router.POST("/tags", h.Create)

	tagID := uuid.New()
	store.On("List", mock.Anything).Return([]model.Tag{{ID: tagID, Name: "bug", Color: "#d73a4a"}}, nil)
	store.On("Create", mock.Anything, mock.AnythingOfType("*model.Tag")).Return(nil)

	resp := doJSON(router, http.MethodGet, "/tags", "")
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `[{"id":"`+tagID.String()+`","name":"bug","color":"#d73a4a"}]`, resp.Body.String())

	resp = doJSON(router, http.MethodPost, "/tags", `{"name":"feature","color":"#a2eeef"}`)
	assert.Equal(t, http.StatusOK, resp.Code)

	resp = doJSON(router, http.MethodPost, "/tags", `{"name":"feature","color":"blue"}`)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, "color", decodeError(t, resp).Details[0].Field)

	store.AssertNumberOfCalls(t, "Create", 1)
}

func TestTagHandler_Unauthenticated(t *testing.T) {
	router := newRouter(uuid.Nil)
	h := handler.NewTagHandler(new(MockTagStore))
	router.GET("/tags", h.List)

	resp := doJSON(router, http.MethodGet, "/tags", "")

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}
