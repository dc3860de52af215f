package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/martijn/exerlog/internal/api/dto"
	"github.com/martijn/exerlog/internal/core/domain"
	"github.com/martijn/exerlog/internal/core/service"
)

// UserNotFoundMessage is what clients see for an unknown :_id.
const UserNotFoundMessage = "User Does Not Exist"

// respondError renders domain errors as 200 with an error body, which is what
// clients of this API expect. Anything else is a 500.
func respondError(c *gin.Context, err error) {
	var validationErr *service.ValidationError

	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusOK, dto.ErrorResponse{Error: UserNotFoundMessage})
	case errors.As(err, &validationErr):
		c.JSON(http.StatusOK, dto.ErrorResponse{
			Error: validationErr.Message,
			Field: validationErr.Field,
		})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal Server Error"})
	}
}

// bindError reports a body that could not be decoded at all, such as malformed
// JSON, in the same shape as a rejected field.
func bindError(err error) error {
	return service.NewValidationError("body", "invalid request body: %v", err)
}
