package web

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/stylocoin/dashboard/internal/client/client"
	"github.com/stylocoin/dashboard/internal/client/models"
	"github.com/stylocoin/dashboard/internal/client/services"
)

// listParams are the query parameters every list route accepts.
type listParams struct {
	Page   int    `form:"page" binding:"omitempty,gte=1"`
	Size   int    `form:"size" binding:"omitempty,gte=1,lte=100"`
	Search string `form:"search"`
	Status string `form:"status"`
	Filter string `form:"filterBy"`
}

func bindList(c *gin.Context) (services.ListQuery, bool) {
	var p listParams
	if err := c.ShouldBindQuery(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return services.ListQuery{}, false
	}
	return services.ListQuery{Page: p.Page, Size: p.Size, Search: p.Search, Status: p.Status, Filter: p.Filter}, true
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return false
	}
	return true
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

// respondError maps a service error onto the gateway's status codes.
func respondError(c *gin.Context, err error) {
	_ = c.Error(err)

	var verrs models.ValidationErrors
	if errors.As(err, &verrs) {
		c.JSON(http.StatusBadRequest, gin.H{"errors": verrs})
		return
	}

	var herr *client.HTTPError
	switch {
	case errors.Is(err, services.ErrNotSignedIn), errors.Is(err, client.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": message(err)})
	case errors.Is(err, client.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": message(err)})
	case errors.Is(err, client.ErrUnavailable), errors.Is(err, client.ErrTimeout):
		c.JSON(http.StatusBadGateway, gin.H{"error": "backend unavailable"})
	case errors.As(err, &herr) && herr.StatusCode >= 400 && herr.StatusCode < 500:
		c.JSON(herr.StatusCode, gin.H{"error": message(err)})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func message(err error) string {
	if msg := client.MessageOf(err); msg != "" {
		return msg
	}
	return err.Error()
}
