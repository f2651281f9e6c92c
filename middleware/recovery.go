package middleware

import (
	"net/http"
	"runtime/debug"

	"git.thinkinpower.net/bingen/mod"
	"github.com/gin-gonic/gin"
	logger "github.com/sirupsen/logrus"
)

// Recovery turns a panic in a handler into a 500 failure response.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.WithField("requestId", c.GetString(RequestIdKey)).
					Errorf("panic: %v, %s", err, string(debug.Stack()))
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					mod.ResponseValue{Code: mod.ResponseCodeFailure, Msg: "internal error"})
			}
		}()
		c.Next()
	}
}
