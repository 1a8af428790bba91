package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"navio/internal/apperror"
	"navio/internal/models"
)

// Paging holds the list window defaults shared by every list endpoint.
type Paging struct {
	DefaultLimit int
	MaxLimit     int
}

// page reads limit and offset from the query string. Limits above MaxLimit are capped.
func (p Paging) page(c *gin.Context) (models.Page, error) {
	page := models.Page{Limit: p.DefaultLimit}

	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return page, apperror.Validation("limit must be a non-negative integer")
		}
		page.Limit = n
	}
	if raw := c.Query("offset"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return page, apperror.Validation("offset must be a non-negative integer")
		}
		page.Offset = n
	}

	if page.Limit == 0 {
		page.Limit = p.DefaultLimit
	}
	if page.Limit > p.MaxLimit {
		page.Limit = p.MaxLimit
	}
	return page, nil
}

// bindJSON decodes the body into dst. Any decoding or binding failure is
// reported as a validation error carrying msg.
func bindJSON(c *gin.Context, dst any, msg string) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		_ = c.Error(apperror.Validation(msg))
		return false
	}
	return true
}

// bindOptionalJSON decodes a body whose fields are all optional; an empty body is allowed.
func bindOptionalJSON(c *gin.Context, dst any) bool {
	if c.Request.ContentLength == 0 {
		return true
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		_ = c.Error(apperror.Validation("Invalid request body"))
		return false
	}
	return true
}

// pathID returns the :id parameter. Identifiers are UUIDs, so anything else
// cannot match a row.
func pathID(c *gin.Context, notFound string) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		_ = c.Error(apperror.NotFound(notFound))
		return "", false
	}
	return id, true
}

func fail(c *gin.Context, err error) {
	_ = c.Error(err)
}

func deleted(c *gin.Context, what string) {
	c.JSON(http.StatusOK, gin.H{"message": what + " deleted successfully"})
}

