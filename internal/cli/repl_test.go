package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// stubExec records which commands the REPL dispatched.
type stubExec struct {
	loggedIn bool
	calls    []string
}

func (s *stubExec) record(name string) error {
	s.calls = append(s.calls, name)
	return nil
}

func (s *stubExec) isLoggedIn() bool { return s.loggedIn }

func (s *stubExec) Register(ctx context.Context) error { return s.record("register") }
func (s *stubExec) Login(ctx context.Context) error    { return s.record("login") }
func (s *stubExec) Add(ctx context.Context) error      { return s.record("add") }
func (s *stubExec) List(ctx context.Context) error     { return s.record("list") }
func (s *stubExec) Show(ctx context.Context) error     { return s.record("show") }
func (s *stubExec) Edit(ctx context.Context) error     { return s.record("edit") }
func (s *stubExec) Remove(ctx context.Context) error   { return s.record("remove") }
func (s *stubExec) Today(ctx context.Context) error    { return s.record("today") }
func (s *stubExec) Limit(ctx context.Context) error    { return s.record("limit") }
func (s *stubExec) Logout(ctx context.Context) error   { return s.record("logout") }

func runScript(t *testing.T, stub *stubExec, script string) []string {
	t.Helper()

	var output []string
	old := printlnFn
	printlnFn = func(a ...any) (int, error) {
		for _, v := range a {
			if s, ok := v.(string); ok {
				output = append(output, s)
			}
		}
		return 0, nil
	}
	defer func() { printlnFn = old }()

	reader := bufio.NewReader(strings.NewReader(script))
	runREPL(context.Background(), stub, func() string { return "test" }, reader)
	return output
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	stub := &stubExec{loggedIn: true}
	runScript(t, stub, "add\nlist\nl\ntoday\nlimit\nlogout\nexit\n")
	assert.Equal(t, []string{"add", "list", "list", "today", "limit", "logout"}, stub.calls)
}

func TestRunREPL_ExitsOnEOF(t *testing.T) {
	stub := &stubExec{}
	runScript(t, stub, "login\n")
	assert.Equal(t, []string{"login"}, stub.calls)
}

func TestRunREPL_UnknownCommand(t *testing.T) {
	stub := &stubExec{}
	out := runScript(t, stub, "frobnicate\nquit\n")
	assert.Empty(t, stub.calls)
	assert.Contains(t, out, "Unknown command:")
}

func TestRunREPL_HelpDependsOnLogin(t *testing.T) {
	out := runScript(t, &stubExec{loggedIn: false}, "help\nexit\n")
	assert.Contains(t, strings.Join(out, "\n"), "register, login")

	out = runScript(t, &stubExec{loggedIn: true}, "help\nexit\n")
	assert.Contains(t, strings.Join(out, "\n"), "today")
}

func TestRunREPL_SkipsBlankLines(t *testing.T) {
	stub := &stubExec{}
	runScript(t, stub, "\n   \nlogin\nexit\n")
	assert.Equal(t, []string{"login"}, stub.calls)
}
