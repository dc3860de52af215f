package dto

import "encoding/json"

// RawValue keeps the text of a JSON string or number as is. Form values bind
// into it like a plain string.
type RawValue string

func (v *RawValue) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = RawValue(s)
		return nil
	}
	if string(data) == "null" {
		*v = ""
		return nil
	}
	*v = RawValue(data)
	return nil
}

func (v RawValue) String() string {
	return string(v)
}

// CreateExerciseRequest is the POST /api/users/:_id/exercises form.
// Duration stays raw so the service decides how to coerce it.
type CreateExerciseRequest struct {
	Description string   `form:"description" json:"description"`
	Duration    RawValue `form:"duration" json:"duration"`
	Date        string   `form:"date" json:"date"`
}

// ExerciseResponse represents a newly logged exercise with its owner
type ExerciseResponse struct {
	ID          string `json:"_id"`
	Username    string `json:"username"`
	Date        string `json:"date"`
	Duration    int    `json:"duration"`
	Description string `json:"description"`
}

// LogQueryRequest holds the optional GET /api/users/:_id/logs parameters
type LogQueryRequest struct {
	From  string `form:"from"`
	To    string `form:"to"`
	Limit string `form:"limit"`
}

// LogEntryResponse is one entry of a user's log
type LogEntryResponse struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

// LogResponse represents a user's filtered log
type LogResponse struct {
	ID       string             `json:"_id"`
	Username string             `json:"username"`
	Count    int                `json:"count"`
	Log      []LogEntryResponse `json:"log"`
}
