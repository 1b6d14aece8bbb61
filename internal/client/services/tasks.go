// Package services holds the client-side application logic between the CLI
// and the API client: the cached task list with its search and status
// filter, profile updates, and UI preferences.
package services

import (
	"context"
	"strings"
	"sync"

	"github.com/dmitrijs2005/dashapp/internal/client/client"
	"github.com/dmitrijs2005/dashapp/internal/client/models"
	"github.com/dmitrijs2005/dashapp/internal/common"
)

// StatusFilterAll disables status filtering.
const StatusFilterAll = "All"

// TaskService keeps a local copy of the user's task list plus the current
// search term and status filter. Create and update re-fetch the whole list
// from the server; delete removes the row locally once the server confirms.
type TaskService struct {
	api client.Service

	mu           sync.RWMutex
	tasks        []*models.Task
	searchTerm   string
	statusFilter string
}

func NewTaskService(api client.Service) *TaskService {
	return &TaskService{api: api, statusFilter: StatusFilterAll}
}

// Load replaces the cached list with the server's. The cache is only
// overwritten on success, so a failed fetch keeps showing the last good
// list.
func (s *TaskService) Load(ctx context.Context) error {
	tasks, err := s.api.ListTasks(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.tasks = tasks
	s.mu.Unlock()
	return nil
}

// SetSearchTerm updates the title search. Matching is case-insensitive
// substring.
func (s *TaskService) SetSearchTerm(term string) {
	s.mu.Lock()
	s.searchTerm = term
	s.mu.Unlock()
}

// SetStatusFilter updates the status filter. Valid values are the task
// statuses plus StatusFilterAll.
func (s *TaskService) SetStatusFilter(status string) error {
	if status != StatusFilterAll && !common.ValidTaskStatus(status) {
		return common.ErrorValidation
	}

	s.mu.Lock()
	s.statusFilter = status
	s.mu.Unlock()
	return nil
}

// Filters returns the current search term and status filter.
func (s *TaskService) Filters() (searchTerm, statusFilter string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.searchTerm, s.statusFilter
}

// Visible applies both filters to the cached list: the title must contain
// the search term (case-insensitive) and the status must match the filter
// exactly, unless the filter is All. Both conditions apply together.
func (s *TaskService) Visible() []*models.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	term := strings.ToLower(s.searchTerm)

	out := make([]*models.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if term != "" && !strings.Contains(strings.ToLower(t.Title), term) {
			continue
		}
		if s.statusFilter != StatusFilterAll && t.Status != s.statusFilter {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Create sends the new task and re-fetches the list so the cache reflects
// the server's ordering and defaults.
func (s *TaskService) Create(ctx context.Context, title, description, status string, budget int64) error {
	if _, err := s.api.CreateTask(ctx, title, description, status, budget); err != nil {
		return err
	}
	return s.Load(ctx)
}

// Update sends the changed fields and re-fetches the list.
func (s *TaskService) Update(ctx context.Context, id int64, title, description, status string, budget int64) error {
	if _, err := s.api.UpdateTask(ctx, id, title, description, status, budget); err != nil {
		return err
	}
	return s.Load(ctx)
}

// Delete removes the task on the server and, on success, drops it from the
// cache without a re-fetch. A failed delete leaves the cache untouched.
func (s *TaskService) Delete(ctx context.Context, id int64) error {
	if _, err := s.api.DeleteTask(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	for i, t := range s.tasks {
		if t.ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			break
		}
	}
	s.mu.Unlock()
	return nil
}
