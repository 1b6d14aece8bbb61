// Package repomanager vends repository implementations bound to a database
// handle and exposes a schema migration hook.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/dashapp/internal/dbx"
	"github.com/dmitrijs2005/dashapp/internal/server/repositories/tasks"
	"github.com/dmitrijs2005/dashapp/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Tasks(db dbx.DBTX) tasks.Repository
}
