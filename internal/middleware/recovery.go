package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"

	apperrors "todoapp/internal/errors"
	"todoapp/internal/logger"
	"todoapp/internal/response"
)

// Recovery returns a Gin middleware that turns a panic into the standard
// internal error envelope instead of an empty 500.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Get().Errorw("panic recovered",
			"request_id", RequestID(c),
			"panic", fmt.Sprint(recovered),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
		)
		response.Error(c, apperrors.ErrInternalServer)
	})
}
