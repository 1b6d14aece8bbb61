package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/dashapp/internal/common"
	"github.com/dmitrijs2005/dashapp/internal/server/models"
	"github.com/dmitrijs2005/dashapp/internal/server/repositories/repomanager"
)

// TaskService implements owner-scoped task CRUD. All ids coming from the
// handler layer belong to the authenticated user; a row owned by someone
// else is indistinguishable from a missing one (common.ErrorNotFound).
type TaskService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewTaskService(db *sql.DB, m repomanager.RepositoryManager) *TaskService {
	return &TaskService{db: db, repomanager: m}
}

const defaultListLimit = 100

// List returns the owner's tasks ordered by id. Negative skip is treated
// as 0; a non-positive limit falls back to the default page size.
func (s *TaskService) List(ctx context.Context, ownerID int64, skip, limit int) ([]*models.Task, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	return s.repomanager.Tasks(s.db).List(ctx, ownerID, skip, limit)
}

// Create inserts a task for the owner. The status defaults to Pending when
// empty; an unknown status is rejected before touching the database.
func (s *TaskService) Create(ctx context.Context, ownerID int64, title, description, status string, budget int64) (*models.Task, error) {
	if status == "" {
		status = common.StatusPending
	}
	if !common.ValidTaskStatus(status) {
		return nil, common.ErrorValidation
	}

	task := &models.Task{
		OwnerID:     ownerID,
		Title:       title,
		Description: description,
		Status:      status,
		Budget:      budget,
	}
	return s.repomanager.Tasks(s.db).Create(ctx, task)
}

// Update overwrites the task's mutable fields.
func (s *TaskService) Update(ctx context.Context, ownerID, id int64, title, description, status string, budget int64) (*models.Task, error) {
	if status != "" && !common.ValidTaskStatus(status) {
		return nil, common.ErrorValidation
	}

	repo := s.repomanager.Tasks(s.db)

	task, err := repo.Get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if title != "" {
		task.Title = title
	}
	task.Description = description
	if status != "" {
		task.Status = status
	}
	task.Budget = budget

	return repo.Update(ctx, task)
}

// Delete removes the task and returns the deleted row.
func (s *TaskService) Delete(ctx context.Context, ownerID, id int64) (*models.Task, error) {
	return s.repomanager.Tasks(s.db).Delete(ctx, ownerID, id)
}
