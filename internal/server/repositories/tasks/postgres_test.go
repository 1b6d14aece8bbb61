package tasks

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/dashapp/internal/common"
	"github.com/dmitrijs2005/dashapp/internal/server/models"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock
}

var taskCols = []string{"id", "owner_id", "title", "description", "status", "budget", "created_at"}

func TestList_ScopedByOwner(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Now()

	rows := sqlmock.NewRows(taskCols).
		AddRow(int64(1), int64(9), "Alpha", "", "Active", int64(100), now).
		AddRow(int64(2), int64(9), "Beta", "", "Pending", int64(50), now)
	mock.ExpectQuery(`SELECT id, owner_id, title, description, status, budget, created_at FROM tasks`).
		WithArgs(int64(9), 0, 100).
		WillReturnRows(rows)

	got, err := repo.List(context.Background(), 9, 0, 100)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "Alpha", got[0].Title)
	require.Equal(t, int64(50), got[1].Budget)
}

func TestCreate(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO tasks`).
		WithArgs(int64(9), "Alpha", "desc", "Active", int64(100)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(3), now))

	task, err := repo.Create(context.Background(), &models.Task{
		OwnerID: 9, Title: "Alpha", Description: "desc", Status: "Active", Budget: 100,
	})
	require.NoError(t, err)
	require.Equal(t, int64(3), task.ID)
}

func TestUpdate_NotFoundForOtherOwner(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(`UPDATE tasks SET`).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}))

	_, err := repo.Update(context.Background(), &models.Task{ID: 5, OwnerID: 1})
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestDelete_ReturnsDeletedRow(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Now()

	mock.ExpectQuery(`DELETE FROM tasks`).
		WithArgs(int64(5), int64(9)).
		WillReturnRows(sqlmock.NewRows(taskCols).
			AddRow(int64(5), int64(9), "Alpha", "", "Completed", int64(10), now))

	task, err := repo.Delete(context.Background(), 9, 5)
	require.NoError(t, err)
	require.Equal(t, "Completed", task.Status)
}

func TestDelete_NotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(`DELETE FROM tasks`).
		WillReturnRows(sqlmock.NewRows(taskCols))

	_, err := repo.Delete(context.Background(), 9, 404)
	require.ErrorIs(t, err, common.ErrorNotFound)
}
