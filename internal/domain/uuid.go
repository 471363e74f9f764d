package domain

import "github.com/google/uuid"

// NewTaskID returns a random identifier for a background task, used to
// correlate log lines.
func NewTaskID() string {
	return uuid.NewString()
}
