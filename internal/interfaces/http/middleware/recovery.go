package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/turtacn/DevFolio/internal/infrastructure/monitoring/logging"
	folioerrors "github.com/turtacn/DevFolio/pkg/errors"
)

// Recovery converts a handler panic into a 500 JSON response and logs it with
// the stack.  http.ErrAbortHandler is re-panicked so net/http can abort the
// connection.
func Recovery(logger logging.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	logger = logger.Named("http")

	return func(c *gin.Context) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			if err, ok := r.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(r)
			}
			logging.FromContext(c.Request.Context(), logger).Error("panic recovered",
				logging.String("panic", fmt.Sprint(r)),
				logging.String("method", c.Request.Method),
				logging.String("path", c.Request.URL.Path),
				logging.String("stack", string(debug.Stack())))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"code":    folioerrors.CodeInternal.String(),
				"message": "internal server error",
			})
		}()
		c.Next()
	}
}
