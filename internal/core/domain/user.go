package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        string    `db:"id"`
	Username  string    `db:"username"`
	CreatedAt time.Time `db:"created_at"`
}

func NewUser(id, username string) *User {
	return &User{
		ID:        id,
		Username:  username,
		CreatedAt: time.Now().UTC(),
	}
}

// NewUserID returns 32 lowercase hex characters drawn from a random UUID.
func NewUserID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}
