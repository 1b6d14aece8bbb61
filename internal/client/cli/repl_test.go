package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/dmitrijs2005/dashapp/internal/client/session"
)

type fakeExec struct {
	authState session.State

	calls []string
}

func (f *fakeExec) state() session.State { return f.authState }
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.authState = session.StateAuthenticated
	return nil
}
func (f *fakeExec) Register(ctx context.Context) error {
	f.calls = append(f.calls, "register")
	f.authState = session.StateAuthenticated
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.authState = session.StateUnauthenticated
	return nil
}
func (f *fakeExec) List(ctx context.Context) error { f.calls = append(f.calls, "list"); return nil }
func (f *fakeExec) AddTask(ctx context.Context) error {
	f.calls = append(f.calls, "add")
	return nil
}
func (f *fakeExec) EditTask(ctx context.Context) error {
	f.calls = append(f.calls, "edit")
	return nil
}
func (f *fakeExec) DeleteTask(ctx context.Context) error {
	f.calls = append(f.calls, "del")
	return nil
}
func (f *fakeExec) Search(ctx context.Context) error {
	f.calls = append(f.calls, "search")
	return nil
}
func (f *fakeExec) Filter(ctx context.Context) error {
	f.calls = append(f.calls, "filter")
	return nil
}
func (f *fakeExec) Profile(ctx context.Context) error {
	f.calls = append(f.calls, "profile")
	return nil
}
func (f *fakeExec) EditProfile(ctx context.Context) error {
	f.calls = append(f.calls, "editprofile")
	return nil
}
func (f *fakeExec) Avatar(ctx context.Context) error {
	f.calls = append(f.calls, "avatar")
	return nil
}
func (f *fakeExec) Theme(ctx context.Context) error {
	f.calls = append(f.calls, "theme")
	return nil
}

func muteOutput(t *testing.T) {
	t.Helper()
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })
}

func runLines(exec *fakeExec, lines ...string) {
	sc := bufio.NewScanner(strings.NewReader(strings.Join(lines, "\n")))
	runREPL(context.Background(), exec, func() string { return string(exec.authState) }, sc)
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	muteOutput(t)

	exec := &fakeExec{authState: session.StateUnauthenticated}
	runLines(exec,
		"help",
		"login",
		"help",
		"list",
		"add",
		"search",
		"filter",
		"profile",
		"foobar",
		"logout",
		"exit",
	)

	want := []string{"login", "list", "add", "search", "filter", "profile", "logout"}
	if len(exec.calls) != len(want) {
		t.Fatalf("calls mismatch: got %v, want %v", exec.calls, want)
	}
	for i, c := range exec.calls {
		if c != want[i] {
			t.Fatalf("calls mismatch at %d: got %v, want %v", i, exec.calls, want)
		}
	}
}

func TestRunREPL_TaskCommandsRequireLogin(t *testing.T) {
	muteOutput(t)

	exec := &fakeExec{authState: session.StateUnauthenticated}
	runLines(exec, "list", "add", "edit", "del", "logout", "exit")

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}

func TestRunREPL_AuthCommandsBlockedWhenLoggedIn(t *testing.T) {
	muteOutput(t)

	exec := &fakeExec{authState: session.StateAuthenticated}
	runLines(exec, "login", "register", "exit")

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}

func TestRunREPL_ThemeWorksInBothStates(t *testing.T) {
	muteOutput(t)

	exec := &fakeExec{authState: session.StateUnauthenticated}
	runLines(exec, "theme", "login", "theme", "quit")

	want := []string{"theme", "login", "theme"}
	if len(exec.calls) != len(want) {
		t.Fatalf("calls mismatch: got %v, want %v", exec.calls, want)
	}
}
