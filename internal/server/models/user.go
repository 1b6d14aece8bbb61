// Package models holds the server-side row types shared by repositories
// and services.
package models

// User is a registered account. HashedPassword never leaves the server.
type User struct {
	ID             int64
	Email          string
	Name           string
	Avatar         string
	HashedPassword string
	IsActive       bool
}
