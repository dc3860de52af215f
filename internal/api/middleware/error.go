package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/martijn/exerlog/internal/api/dto"
	"github.com/sirupsen/logrus"
)

// ErrorHandlerMiddleware turns panics into a JSON 500 and logs errors that
// handlers attached to the context.
func ErrorHandlerMiddleware(log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.WithFields(logrus.Fields{
					"method": c.Request.Method,
					"path":   c.Request.URL.Path,
				}).Errorf("panic: %v", err)

				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
					Error: "Internal Server Error",
				})
			}
		}()

		c.Next()

		for _, err := range c.Errors {
			log.WithField("path", c.Request.URL.Path).Error(err.Err)
		}

		if len(c.Errors) > 0 && !c.Writer.Written() {
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
				Error: c.Errors.Last().Error(),
			})
		}
	}
}
