package middleware

import (
	"fmt"
	"log"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger emits one key=value line per request and recovers from panics with
// a JSON 500. Diagnostics stay on the console; nothing is persisted.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		defer func() {
			if recovered := recover(); recovered != nil {
				err := fmt.Errorf("%v", recovered)
				logRequest(c, start, "panic", err.Error())
				log.Printf("panic_stack request_id=%s stack=%s", requestID(c), debug.Stack())

				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"success": false,
					"error": gin.H{
						"code":    "INTERNAL_ERROR",
						"message": "Internal Server Error",
					},
				})
				return
			}

			status := c.Writer.Status()
			switch {
			case status >= http.StatusInternalServerError:
				logRequest(c, start, "http_error", fmt.Sprintf("status=%d", status))
			default:
				logRequest(c, start, "request", "")
			}
		}()

		c.Next()
	}
}

func logRequest(c *gin.Context, start time.Time, kind, message string) {
	log.Printf(
		"%s status=%d method=%s path=%s query=%s client_ip=%s user_id=%d request_id=%s latency=%s error=%q",
		kind,
		c.Writer.Status(),
		c.Request.Method,
		c.Request.URL.Path,
		c.Request.URL.RawQuery,
		c.ClientIP(),
		c.GetInt64("user_id"),
		requestID(c),
		time.Since(start),
		message,
	)
}
