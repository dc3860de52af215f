package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/martijn/exerlog/internal/api/dto"
	"github.com/martijn/exerlog/internal/core/domain"
	"github.com/martijn/exerlog/internal/core/service"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// CreateUser handles POST /api/users
//
//	@Summary	Register a user, or return the existing one with this username
//	@Tags		users
//	@Accept		x-www-form-urlencoded
//	@Produce	json
//	@Param		username	formData	string	true	"Username"
//	@Success	200			{object}	dto.UserResponse
//	@Router		/api/users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, bindError(err))
		return
	}

	user, err := h.userService.Register(c.Request.Context(), req.Username)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(user))
}

// ListUsers handles GET /api/users
//
//	@Summary	List users in registration order
//	@Tags		users
//	@Produce	json
//	@Success	200	{array}	dto.UserResponse
//	@Router		/api/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]dto.UserResponse, len(users))
	for i, user := range users {
		response[i] = toUserResponse(user)
	}

	c.JSON(http.StatusOK, response)
}

func toUserResponse(user *domain.User) dto.UserResponse {
	return dto.UserResponse{
		Username: user.Username,
		ID:       user.ID,
	}
}
