package models

import "time"

// Task mirrors the task object returned by the API.
type Task struct {
	ID          int64     `json:"id"`
	OwnerID     int64     `json:"owner_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"`
	Budget      int64     `json:"budget"`
	CreatedAt   time.Time `json:"created_at"`
}
