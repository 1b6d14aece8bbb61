package models

import "time"

// Task is the example domain entity managed through the dashboard:
// a project row with a status and a budget, owned by exactly one user.
type Task struct {
	ID          int64
	OwnerID     int64
	Title       string
	Description string
	Status      string
	Budget      int64
	CreatedAt   time.Time
}
