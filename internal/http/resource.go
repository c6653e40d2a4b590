package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ResourceController serves the CRUD routes of one resource kind.
type ResourceController[T any] struct {
	kind    string
	service ResourceService[T]
}

func newResourceController[T any](kind string, service ResourceService[T]) *ResourceController[T] {
	return &ResourceController[T]{kind: kind, service: service}
}

func (rc *ResourceController[T]) List(c *gin.Context) {
	items, err := rc.service.GetAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "list "+rc.kind)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (rc *ResourceController[T]) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	item, err := rc.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "get "+rc.kind)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (rc *ResourceController[T]) Create(c *gin.Context) {
	var in T
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	saved, err := rc.service.Save(c.Request.Context(), in)
	if err != nil {
		respondServiceError(c, err, "save "+rc.kind)
		return
	}
	respondCreated(c, saved)
}

// CreateWithID rejects a POST addressed at an existing id.
func (rc *ResourceController[T]) CreateWithID(c *gin.Context) {
	respondBadRequest(c, "ERROR: wrong URL")
}

func (rc *ResourceController[T]) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var in T
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	updated, err := rc.service.Update(c.Request.Context(), in, id)
	if err != nil {
		respondServiceError(c, err, "update "+rc.kind)
		return
	}
	respondResult(c, "updating", rc.kind, updated)
}

func (rc *ResourceController[T]) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	deleted, err := rc.service.Delete(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "delete "+rc.kind)
		return
	}
	respondResult(c, "deleting", rc.kind, deleted)
}

// MissingID rejects PUT and DELETE on the collection path.
func (rc *ResourceController[T]) MissingID(c *gin.Context) {
	respondBadRequest(c, "ERROR: "+rc.kind+" ID is required")
}

// register mounts the controller under base, with and without a trailing
// slash on the collection path. list serves GET on the collection.
func (rc *ResourceController[T]) register(router gin.IRoutes, base string, list gin.HandlerFunc) {
	for _, path := range []string{base, base + "/"} {
		router.GET(path, list)
		router.POST(path, rc.Create)
		router.PUT(path, rc.MissingID)
		router.DELETE(path, rc.MissingID)
	}
	router.GET(base+"/:id", rc.Get)
	router.POST(base+"/:id", rc.CreateWithID)
	router.PUT(base+"/:id", rc.Update)
	router.DELETE(base+"/:id", rc.Delete)
}
