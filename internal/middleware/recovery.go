package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/mindwell/backend/internal/apierror"
	"github.com/mindwell/backend/internal/logger"
)

// Recovery converts panics into the standard error envelope so a handler bug
// never leaks a stack trace or an unstructured body to the client.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Ctx(c.Request.Context()).Error("panic recovered",
					logger.Any("panic", r),
					logger.String("path", c.Request.URL.Path),
				)
				apierror.WriteInternal(c, "")
			}
		}()
		c.Next()
	}
}
