// Package tasks contains the task repository. Every query is scoped by
// owner id so one user can never see or touch another user's rows.
package tasks

import (
	"context"

	"github.com/dmitrijs2005/dashapp/internal/server/models"
)

type Repository interface {
	List(ctx context.Context, ownerID int64, skip, limit int) ([]*models.Task, error)
	Create(ctx context.Context, task *models.Task) (*models.Task, error)
	Get(ctx context.Context, ownerID, id int64) (*models.Task, error)
	Update(ctx context.Context, task *models.Task) (*models.Task, error)
	Delete(ctx context.Context, ownerID, id int64) (*models.Task, error)
}
