package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/bedrock/sor-api/mapping"
	"github.com/bedrock/sor-api/repositories"
	"github.com/gin-gonic/gin"
)

// resource bundles the operations the generic handlers dispatch to. Each
// entity kind supplies its own closure set over its mapper and repository,
// so one handler set serves all eight collection endpoints.
type resource struct {
	path   string
	list   func() ([]map[string]any, error)
	get    func(id uint) (map[string]any, error)
	create func(payload map[string]any) (map[string]any, mapping.FieldErrors, error)
	update func(id uint, payload map[string]any) (map[string]any, mapping.FieldErrors, error)
	remove func(id uint) error
}

// register mounts the collection routes. Reads are open; writes go through
// the protected group.
func (rs resource) register(public, protected *gin.RouterGroup) {
	public.GET("/"+rs.path+"/", rs.handleList)
	public.GET("/"+rs.path+"/:id/", rs.handleGet)
	protected.POST("/"+rs.path+"/", rs.handleCreate)
	protected.PUT("/"+rs.path+"/:id/", rs.handleUpdate)
	protected.DELETE("/"+rs.path+"/:id/", rs.handleDelete)
}

func (rs resource) handleList(c *gin.Context) {
	out, err := rs.list()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (rs resource) handleGet(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	out, err := rs.get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (rs resource) handleCreate(c *gin.Context) {
	payload, ok := bindPayload(c)
	if !ok {
		return
	}
	out, fieldErrs, err := rs.create(payload)
	if err != nil {
		respondError(c, err)
		return
	}
	if len(fieldErrs) > 0 {
		c.JSON(http.StatusBadRequest, fieldErrs)
		return
	}
	c.JSON(http.StatusCreated, out)
}

func (rs resource) handleUpdate(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	payload, ok := bindPayload(c)
	if !ok {
		return
	}
	out, fieldErrs, err := rs.update(id, payload)
	if err != nil {
		respondError(c, err)
		return
	}
	if len(fieldErrs) > 0 {
		c.JSON(http.StatusBadRequest, fieldErrs)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (rs resource) handleDelete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := rs.remove(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
		return 0, false
	}
	return uint(id), true
}

func bindPayload(c *gin.Context) (map[string]any, bool) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid JSON body."})
		return nil, false
	}
	return payload, true
}

// respondError maps store-level failures to status codes. Internal details
// never reach the response body.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
	case errors.Is(err, repositories.ErrStillReferenced):
		c.JSON(http.StatusConflict, gin.H{"detail": "Cannot delete: other records still reference this one."})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error."})
	}
}
