package http

import (
	"context"
	"io"

	"github.com/dmitrijs2005/dashapp/internal/logging"
	"github.com/dmitrijs2005/dashapp/internal/server/models"
)

// UserProvider is the slice of the user service the handlers consume.
type UserProvider interface {
	Register(ctx context.Context, name, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (string, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	UpdateProfile(ctx context.Context, id int64, name, email string) (*models.User, error)
	SaveAvatar(ctx context.Context, id int64, filename, contentType string, body io.Reader) (*models.User, error)
}

// TaskProvider is the slice of the task service the handlers consume.
type TaskProvider interface {
	List(ctx context.Context, ownerID int64, skip, limit int) ([]*models.Task, error)
	Create(ctx context.Context, ownerID int64, title, description, status string, budget int64) (*models.Task, error)
	Update(ctx context.Context, ownerID, id int64, title, description, status string, budget int64) (*models.Task, error)
	Delete(ctx context.Context, ownerID, id int64) (*models.Task, error)
}

type Handler struct {
	users     UserProvider
	tasks     TaskProvider
	jwtSecret []byte
	uploadDir string
	logger    logging.Logger
}

func NewHandler(users UserProvider, tasks TaskProvider, jwtSecret []byte, uploadDir string, logger logging.Logger) *Handler {
	return &Handler{
		users:     users,
		tasks:     tasks,
		jwtSecret: jwtSecret,
		uploadDir: uploadDir,
		logger:    logger,
	}
}
