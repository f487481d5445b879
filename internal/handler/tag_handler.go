package handler

import (
	"net/http"

	"taskboard/internal/model"
	"taskboard/internal/validation"

	"github.com/gin-gonic/gin"
)

// TagHandler serves the global tag pool. Any authenticated user may read or extend it.
type TagHandler struct {
	tags TagStore
}

func NewTagHandler(tags TagStore) *TagHandler {
	return &TagHandler{tags: tags}
}

func (h *TagHandler) List(c *gin.Context) {
	if _, ok := currentUser(c); !ok {
		return
	}

	tags, err := h.tags.List(c.Request.Context())
	if err != nil {
		respondInternal(c, err)
		return
	}

	response := make([]TagResponse, 0, len(tags))
	for i := range tags {
		response = append(response, newTagResponse(&tags[i]))
	}
	c.JSON(http.StatusOK, response)
}

func (h *TagHandler) Create(c *gin.Context) {
	if _, ok := currentUser(c); !ok {
		return
	}

	raw, ok := readBody(c)
	if !ok {
		return
	}
	in, err := validation.ParseCreateTag(raw)
	if err != nil {
		respondInvalid(c, err)
		return
	}

	tag := &model.Tag{Name: in.Name, Color: in.Color}
	if err := h.tags.Create(c.Request.Context(), tag); err != nil {
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, newTagResponse(tag))
}
