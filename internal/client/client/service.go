// Package client implements the HTTP API client of the DashApp backend:
// bearer-token authentication, JSON and multipart encoding, and centralized
// error mapping.
package client

import (
	"context"
	"io"

	"github.com/dmitrijs2005/dashapp/internal/client/models"
)

// Service is the API surface consumed by the session manager and the
// task/profile services.
type Service interface {
	// LoginAccessToken exchanges credentials for an access token.
	LoginAccessToken(ctx context.Context, email, password string) (string, error)
	// Signup creates a new account and returns the created user.
	Signup(ctx context.Context, name, email, password string) (*models.User, error)

	GetMe(ctx context.Context) (*models.User, error)
	UpdateMe(ctx context.Context, name, email string) (*models.User, error)
	UploadAvatar(ctx context.Context, filename string, content io.Reader) (*models.User, error)

	ListTasks(ctx context.Context) ([]*models.Task, error)
	CreateTask(ctx context.Context, title, description, status string, budget int64) (*models.Task, error)
	UpdateTask(ctx context.Context, id int64, title, description, status string, budget int64) (*models.Task, error)
	DeleteTask(ctx context.Context, id int64) (*models.Task, error)
}
