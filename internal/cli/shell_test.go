package cli

import (
	"bufio"
	"context"
	"errors"
	"strings"
	"testing"
)

type fakeShell struct {
	unlocked bool
	calls    []string
	failOn   string
}

func (f *fakeShell) record(name string) error {
	f.calls = append(f.calls, name)
	if name == f.failOn {
		return errors.New("boom")
	}
	return nil
}

func (f *fakeShell) Unlocked() bool { return f.unlocked }
func (f *fakeShell) Unlock(ctx context.Context) error {
	f.unlocked = true
	return f.record("unlock")
}
func (f *fakeShell) Lock() {
	f.unlocked = false
	_ = f.record("lock")
}
func (f *fakeShell) Add(ctx context.Context, args []string) error  { return f.record("add") }
func (f *fakeShell) List(ctx context.Context, args []string) error { return f.record("list") }
func (f *fakeShell) Tags(ctx context.Context) error                { return f.record("tags") }
func (f *fakeShell) People(ctx context.Context) error              { return f.record("people") }
func (f *fakeShell) Highlight(ctx context.Context, args []string) error {
	return f.record("highlight")
}
func (f *fakeShell) Remove(ctx context.Context, args []string) error { return f.record("delete") }
func (f *fakeShell) IdeaStatus(ctx context.Context, args []string) error {
	return f.record("idea")
}

func runShellWith(t *testing.T, f *fakeShell, lines ...string) {
	t.Helper()
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	sc := bufio.NewScanner(strings.NewReader(strings.Join(lines, "\n")))
	runShell(context.Background(), f, sc)
}

func TestRunShell_DispatchOrder(t *testing.T) {
	f := &fakeShell{}
	runShellWith(t, f,
		"help",
		"unlock",
		"add journal hello",
		"list",
		"tags",
		"people",
		"highlight 1",
		"delete 1",
		"idea 2 done",
		"lock",
		"exit",
	)

	want := []string{"unlock", "add", "list", "tags", "people", "highlight", "delete", "idea", "lock"}
	if len(f.calls) != len(want) {
		t.Fatalf("calls = %+v, want %+v", f.calls, want)
	}
	for i := range want {
		if f.calls[i] != want[i] {
			t.Fatalf("call %d = %q, want %q (all: %+v)", i, f.calls[i], want[i], f.calls)
		}
	}
}

func TestRunShell_UnknownAndBlankLines(t *testing.T) {
	f := &fakeShell{}
	runShellWith(t, f, "", "   ", "frobnicate", "quit")
	if len(f.calls) != 0 {
		t.Fatalf("unexpected calls: %+v", f.calls)
	}
}

func TestRunShell_HandlerErrorIsNotFatal(t *testing.T) {
	f := &fakeShell{failOn: "add"}
	runShellWith(t, f, "add x", "list", "exit")

	want := []string{"add", "list"}
	if len(f.calls) != len(want) || f.calls[0] != "add" || f.calls[1] != "list" {
		t.Fatalf("calls = %+v, want %+v", f.calls, want)
	}
}

func TestRunShell_ExitsOnEOF(t *testing.T) {
	f := &fakeShell{}
	runShellWith(t, f, "list")
	if len(f.calls) != 1 {
		t.Fatalf("calls = %+v", f.calls)
	}
}
