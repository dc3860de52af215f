package dto

// CreateUserRequest is the POST /api/users form
type CreateUserRequest struct {
	Username string `form:"username" json:"username"`
}

// UserResponse represents a registered user
type UserResponse struct {
	Username string `json:"username"`
	ID       string `json:"_id"`
}
