// Package http provides the REST surface of the DashApp API: routing,
// bearer authentication, and JSON request/response handling.
package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/dmitrijs2005/dashapp/internal/server/models"
)

// Error bodies are `{"detail": "..."}`, mirroring what the dashboard client
// displays verbatim.
type detailResponse struct {
	Detail string `json:"detail"`
}

// Wire messages reused across handlers.
const (
	detailBadCredentials = "Incorrect email or password"
	detailInactiveUser   = "Inactive user"
	detailUserExists     = "The user with this username already exists in the system."
	detailEmailTaken     = "This email is already registered"
	detailInvalidToken   = "Could not validate credentials"
	detailTaskNotFound   = "Task not found"
	detailBadFileType    = "Invalid file type. Only jpg, jpeg, png, gif allowed."
	detailFileSaveFailed = "Could not save file"
	detailInternal       = "Internal server error"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, detailResponse{Detail: detail})
}

// userResponse is the public projection of a user row.
type userResponse struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Avatar   string `json:"avatar,omitempty"`
	IsActive bool   `json:"is_active"`
}

func toUserResponse(u *models.User) userResponse {
	return userResponse{
		ID:       u.ID,
		Email:    u.Email,
		Name:     u.Name,
		Avatar:   u.Avatar,
		IsActive: u.IsActive,
	}
}

type taskResponse struct {
	ID          int64     `json:"id"`
	OwnerID     int64     `json:"owner_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"`
	Budget      int64     `json:"budget"`
	CreatedAt   time.Time `json:"created_at"`
}

func toTaskResponse(t *models.Task) taskResponse {
	return taskResponse{
		ID:          t.ID,
		OwnerID:     t.OwnerID,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		Budget:      t.Budget,
		CreatedAt:   t.CreatedAt,
	}
}
