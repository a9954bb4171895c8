package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/advisorhub/agentcrm/utils"
)

// ErrorHandler turns errors attached to the context into responses, unless a
// handler already wrote one.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Status() >= 400 {
			return
		}

		if len(c.Errors) > 0 {
			utils.HandleError(c, c.Errors.Last().Err)
		}
	}
}
