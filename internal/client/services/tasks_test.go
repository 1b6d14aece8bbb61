package services

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/dashapp/internal/client/models"
	"github.com/dmitrijs2005/dashapp/internal/common"
)

// fakeAPI serves tasks from a slice and counts list fetches.
type fakeAPI struct {
	tasks     []*models.Task
	nextID    int64
	listCalls int

	deleteErr error
	createErr error

	user        *models.User
	refreshUser *models.User
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{nextID: 1}
}

func (f *fakeAPI) LoginAccessToken(ctx context.Context, email, password string) (string, error) {
	return "tok", nil
}

func (f *fakeAPI) Signup(ctx context.Context, name, email, password string) (*models.User, error) {
	return f.user, nil
}

func (f *fakeAPI) GetMe(ctx context.Context) (*models.User, error) {
	return f.user, nil
}

func (f *fakeAPI) UpdateMe(ctx context.Context, name, email string) (*models.User, error) {
	f.user = &models.User{ID: 1, Name: name, Email: email}
	return f.user, nil
}

func (f *fakeAPI) UploadAvatar(ctx context.Context, filename string, content io.Reader) (*models.User, error) {
	return f.user, nil
}

func (f *fakeAPI) ListTasks(ctx context.Context) ([]*models.Task, error) {
	f.listCalls++
	out := make([]*models.Task, len(f.tasks))
	copy(out, f.tasks)
	return out, nil
}

func (f *fakeAPI) CreateTask(ctx context.Context, title, description, status string, budget int64) (*models.Task, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if status == "" {
		status = common.StatusPending
	}
	t := &models.Task{ID: f.nextID, Title: title, Description: description, Status: status, Budget: budget}
	f.nextID++
	f.tasks = append(f.tasks, t)
	return t, nil
}

func (f *fakeAPI) UpdateTask(ctx context.Context, id int64, title, description, status string, budget int64) (*models.Task, error) {
	for i, t := range f.tasks {
		if t.ID == id {
			f.tasks[i] = &models.Task{ID: id, Title: title, Description: description, Status: status, Budget: budget}
			return f.tasks[i], nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeAPI) DeleteTask(ctx context.Context, id int64) (*models.Task, error) {
	if f.deleteErr != nil {
		return nil, f.deleteErr
	}
	for i, t := range f.tasks {
		if t.ID == id {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return t, nil
		}
	}
	return nil, common.ErrorNotFound
}

func seedTaskService(t *testing.T) (*TaskService, *fakeAPI) {
	t.Helper()
	api := newFakeAPI()
	svc := NewTaskService(api)
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, "Alpha", "", common.StatusActive, 100))
	require.NoError(t, svc.Create(ctx, "Beta", "", common.StatusPending, 50))
	return svc, api
}

func titles(tasks []*models.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.Title)
	}
	return out
}

func TestVisible_NoFilters(t *testing.T) {
	svc, _ := seedTaskService(t)
	require.Equal(t, []string{"Alpha", "Beta"}, titles(svc.Visible()))
}

func TestVisible_SearchTerm(t *testing.T) {
	svc, _ := seedTaskService(t)

	svc.SetSearchTerm("al")
	require.Equal(t, []string{"Alpha"}, titles(svc.Visible()))
}

func TestVisible_StatusFilter(t *testing.T) {
	svc, _ := seedTaskService(t)

	require.NoError(t, svc.SetStatusFilter(common.StatusPending))
	require.Equal(t, []string{"Beta"}, titles(svc.Visible()))
}

func TestVisible_BothFiltersApply(t *testing.T) {
	svc, _ := seedTaskService(t)

	// "al" matches only Alpha, Pending matches only Beta: nothing passes both
	svc.SetSearchTerm("al")
	require.NoError(t, svc.SetStatusFilter(common.StatusPending))
	require.Empty(t, svc.Visible())
}

func TestVisible_SearchIsCaseInsensitive(t *testing.T) {
	svc, _ := seedTaskService(t)

	svc.SetSearchTerm("ALPHA")
	require.Equal(t, []string{"Alpha"}, titles(svc.Visible()))
}

func TestSetStatusFilter_RejectsUnknown(t *testing.T) {
	svc, _ := seedTaskService(t)
	require.ErrorIs(t, svc.SetStatusFilter("Done"), common.ErrorValidation)

	_, filter := svc.Filters()
	require.Equal(t, StatusFilterAll, filter)
}

func TestCreate_RefetchesList(t *testing.T) {
	svc, api := seedTaskService(t)
	before := api.listCalls

	require.NoError(t, svc.Create(context.Background(), "Gamma", "", "", 0))
	require.Equal(t, before+1, api.listCalls)
	require.Equal(t, []string{"Alpha", "Beta", "Gamma"}, titles(svc.Visible()))
}

func TestCreate_FailureLeavesCache(t *testing.T) {
	svc, api := seedTaskService(t)
	api.createErr = errors.New("boom")

	require.Error(t, svc.Create(context.Background(), "Gamma", "", "", 0))
	require.Equal(t, []string{"Alpha", "Beta"}, titles(svc.Visible()))
}

func TestUpdate_RefetchesList(t *testing.T) {
	svc, api := seedTaskService(t)
	before := api.listCalls

	require.NoError(t, svc.Update(context.Background(), 1, "Alpha v2", "", common.StatusCompleted, 250))
	require.Equal(t, before+1, api.listCalls)
	require.Equal(t, []string{"Alpha v2", "Beta"}, titles(svc.Visible()))
}

func TestDelete_RemovesLocallyWithoutRefetch(t *testing.T) {
	svc, api := seedTaskService(t)
	before := api.listCalls

	require.NoError(t, svc.Delete(context.Background(), 1))
	require.Equal(t, before, api.listCalls)
	require.Equal(t, []string{"Beta"}, titles(svc.Visible()))
}

func TestDelete_FailureLeavesCache(t *testing.T) {
	svc, api := seedTaskService(t)
	api.deleteErr = common.ErrorNotFound

	require.Error(t, svc.Delete(context.Background(), 1))
	require.Equal(t, []string{"Alpha", "Beta"}, titles(svc.Visible()))
}

func TestLoad_FailureKeepsLastGoodList(t *testing.T) {
	api := newFakeAPI()
	svc := NewTaskService(api)
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, "Alpha", "", common.StatusActive, 100))
	require.Equal(t, []string{"Alpha"}, titles(svc.Visible()))
}
