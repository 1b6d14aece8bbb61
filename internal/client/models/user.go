// Package models defines the client-side views of the API payloads.
package models

// User mirrors the user object returned by the API.
type User struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Avatar   string `json:"avatar,omitempty"`
	IsActive bool   `json:"is_active"`
}
