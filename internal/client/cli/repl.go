package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/dashapp/internal/client/session"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	state() session.State
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	List(ctx context.Context) error
	AddTask(ctx context.Context) error
	EditTask(ctx context.Context) error
	DeleteTask(ctx context.Context) error
	Search(ctx context.Context) error
	Filter(ctx context.Context) error
	Profile(ctx context.Context) error
	EditProfile(ctx context.Context) error
	Avatar(ctx context.Context) error
	Theme(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the DashApp CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Which commands are available depends on the session state: before login
// only register, login, and theme work; after login the task and profile
// commands replace them. Commands that need the other state print a short
// notice instead of running.
//
// Any errors returned by command handlers are ignored here; handlers print
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("dash> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		loggedIn := a.state() == session.StateAuthenticated

		switch cmd {
		case "help":
			if loggedIn {
				printlnFn("Available commands: (l)ist, add, edit, del, search, filter, profile, editprofile, avatar, theme, logout, exit")
			} else {
				printlnFn("Available commands: register, login, theme, exit")
			}

		case "register":
			if loggedIn {
				printlnFn("Already logged in")
				continue
			}
			_ = a.Register(ctx)

		case "login":
			if loggedIn {
				printlnFn("Already logged in")
				continue
			}
			_ = a.Login(ctx)

		case "l", "list":
			if !requireLogin(loggedIn) {
				continue
			}
			_ = a.List(ctx)

		case "add":
			if !requireLogin(loggedIn) {
				continue
			}
			_ = a.AddTask(ctx)

		case "edit":
			if !requireLogin(loggedIn) {
				continue
			}
			_ = a.EditTask(ctx)

		case "del":
			if !requireLogin(loggedIn) {
				continue
			}
			_ = a.DeleteTask(ctx)

		case "search":
			if !requireLogin(loggedIn) {
				continue
			}
			_ = a.Search(ctx)

		case "filter":
			if !requireLogin(loggedIn) {
				continue
			}
			_ = a.Filter(ctx)

		case "profile":
			if !requireLogin(loggedIn) {
				continue
			}
			_ = a.Profile(ctx)

		case "editprofile":
			if !requireLogin(loggedIn) {
				continue
			}
			_ = a.EditProfile(ctx)

		case "avatar":
			if !requireLogin(loggedIn) {
				continue
			}
			_ = a.Avatar(ctx)

		case "theme":
			_ = a.Theme(ctx)

		case "logout":
			if !requireLogin(loggedIn) {
				continue
			}
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func requireLogin(loggedIn bool) bool {
	if !loggedIn {
		printlnFn("Please login first")
	}
	return loggedIn
}
