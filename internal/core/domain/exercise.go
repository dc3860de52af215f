package domain

import "time"

// Exercise is one entry in a user's log. Entries are never changed once stored.
type Exercise struct {
	UserID      string    `db:"user_id"`
	Description string    `db:"description"`
	Duration    int       `db:"duration"` // minutes
	Date        Date      `db:"date"`
	CreatedAt   time.Time `db:"created_at"`
}

func NewExercise(userID, description string, duration int, date Date) *Exercise {
	return &Exercise{
		UserID:      userID,
		Description: description,
		Duration:    duration,
		Date:        date,
		CreatedAt:   time.Now().UTC(),
	}
}
