// Package cli implements the interactive DashApp terminal client: a REPL
// whose available commands follow the session state.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"os"

	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/dashapp/internal/client/client"
	"github.com/dmitrijs2005/dashapp/internal/client/config"
	"github.com/dmitrijs2005/dashapp/internal/client/services"
	"github.com/dmitrijs2005/dashapp/internal/client/session"
	"github.com/dmitrijs2005/dashapp/internal/client/store"
)

type App struct {
	config  *config.Config
	db      *sql.DB
	session *session.Manager
	tasks   *services.TaskService
	profile *services.ProfileService
	theme   *services.ThemeService
	reader  *bufio.Reader
	out     io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	db, err := store.Open(ctx, c.DataFile)
	if err != nil {
		return nil, err
	}

	st := store.NewSQLiteStore(db)
	mgr := session.NewManager(st)

	api := client.NewHTTPClient(c.ServerEndpointURL, c.RequestTimeout, mgr.Token)
	mgr.SetService(api)

	return &App{
		config:  c,
		db:      db,
		session: mgr,
		tasks:   services.NewTaskService(api),
		profile: services.NewProfileService(api, mgr),
		theme:   services.NewThemeService(st),
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}, nil
}

func (a *App) state() session.State {
	return a.session.State()
}

// Run resolves the saved session and hands control to the REPL. The
// resolution happens before the first prompt, so no command ever observes
// the resolving state.
func (a *App) Run(ctx context.Context) error {
	defer a.db.Close()

	printlnFn("Checking saved session...")
	if err := a.session.Resolve(ctx); err != nil {
		return err
	}

	if a.state() == session.StateAuthenticated {
		if user := a.session.User(); user != nil {
			printlnFn("Welcome back,", user.Name)
		}
		if err := a.tasks.Load(ctx); err != nil {
			printlnFn("Could not load tasks:", err.Error())
		}
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, func() string { return string(a.state()) }, scanner)
	return nil
}
