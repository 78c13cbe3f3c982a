package v1

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"go-cvs-backend/pkg/apperror"
)

// idParam parses a positive numeric path parameter; a malformed value is
// reported on the context and aborts the handler.
func idParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.Error(apperror.BadRequest("Invalid " + name + " parameter"))
		return 0, false
	}
	return id, true
}
