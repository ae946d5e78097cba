package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/luismoralesarg/micro-log/internal/models"
	"github.com/luismoralesarg/micro-log/internal/services"
)

// printlnFn is a test seam for user-facing shell output.
var printlnFn = fmt.Println

// shellIface is the minimal command surface the shell loop needs. The real
// App satisfies it; tests provide a stub.
type shellIface interface {
	Unlocked() bool
	Unlock(ctx context.Context) error
	Lock()
	Add(ctx context.Context, args []string) error
	List(ctx context.Context, args []string) error
	Tags(ctx context.Context) error
	People(ctx context.Context) error
	Highlight(ctx context.Context, args []string) error
	Remove(ctx context.Context, args []string) error
	IdeaStatus(ctx context.Context, args []string) error
}

// runShell reads a line at a time, parses the first token as the command and
// dispatches to a. Handler errors are printed, not fatal; the loop exits on
// scanner EOF or on "exit"/"quit".
func runShell(ctx context.Context, a shellIface, scanner *bufio.Scanner) {
	for {
		status := "locked"
		if a.Unlocked() {
			status = "unlocked"
		}
		printlnFn(fmt.Sprintf("microlog (%s) > ", status))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var err error
		switch cmd {
		case "help":
			printlnFn("Available commands: add, list, tags, people, highlight, delete, idea, unlock, lock, exit")
		case "add":
			err = a.Add(ctx, args)
		case "list", "ls":
			err = a.List(ctx, args)
		case "tags":
			err = a.Tags(ctx)
		case "people":
			err = a.People(ctx)
		case "highlight":
			err = a.Highlight(ctx, args)
		case "delete", "rm":
			err = a.Remove(ctx, args)
		case "idea":
			err = a.IdeaStatus(ctx, args)
		case "unlock":
			err = a.Unlock(ctx)
		case "lock":
			a.Lock()
		case "exit", "quit":
			printlnFn("Bye!")
			return
		default:
			printlnFn("Unknown command: " + cmd)
		}
		if err != nil {
			printlnFn("error: " + err.Error())
		}
	}
}

// Unlocked reports whether the session currently holds a key.
func (a *App) Unlocked() bool { return a.session.Unlocked() }

// Unlock prompts for the passphrase and opens the session. After a shell
// lock/unlock cycle the cached document is reloaded from storage.
func (a *App) Unlock(ctx context.Context) error {
	if err := a.ensureUnlocked(ctx); err != nil {
		return err
	}
	if a.svc != nil {
		return a.svc.Reload(ctx)
	}
	return nil
}

// Lock drops the session key and clears the in-memory document. Pending
// writes are flushed first so the remote adapter never loses a slice to a
// discarded key.
func (a *App) Lock() {
	if a.svc != nil {
		_ = a.svc.Flush(context.Background())
		a.svc.Reset()
	}
	a.session.Lock()
}

// Add appends an entry: add [category] text...
func (a *App) Add(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: add [category] <text>")
	}
	c := models.CategoryJournal
	if parsed, err := models.ParseCategory(args[0]); err == nil && len(args) > 1 {
		c = parsed
		args = args[1:]
	}
	d := ""
	if c.Dated() {
		d = today()
	}

	svc, err := a.service(ctx)
	if err != nil {
		return err
	}
	_, err = svc.Append(ctx, c, d, strings.Join(args, " "))
	return err
}

// List prints a category: list [category]
func (a *App) List(ctx context.Context, args []string) error {
	c := models.CategoryJournal
	if len(args) > 0 {
		parsed, err := models.ParseCategory(args[0])
		if err != nil {
			return err
		}
		c = parsed
	}

	svc, err := a.service(ctx)
	if err != nil {
		return err
	}
	doc := svc.Document()

	switch c {
	case models.CategoryNotes:
		printEntries(doc.Notes)
	case models.CategoryIdeas:
		printIdeas(doc.Ideas)
	case models.CategoryWisdom:
		printEntries(doc.Wisdom)
	default:
		printDated(doc.DatedEntries(c), "")
	}
	return nil
}

func (a *App) extract(ctx context.Context, marker string) error {
	svc, err := a.service(ctx)
	if err != nil {
		return err
	}
	groups := services.ExtractItems(svc.Document().DatedEntries(models.CategoryJournal), marker)
	printGroups(groups, false)
	return nil
}

// Tags prints the #tag index.
func (a *App) Tags(ctx context.Context) error { return a.extract(ctx, services.TagMarker) }

// People prints the @mention index.
func (a *App) People(ctx context.Context) error { return a.extract(ctx, services.PersonMarker) }

func (a *App) locate(args []string) (int64, models.Category, string, error) {
	if len(args) == 0 {
		return 0, "", "", fmt.Errorf("missing entry id")
	}
	id, err := parseEntryID(args[0])
	if err != nil {
		return 0, "", "", err
	}
	c := models.CategoryJournal
	d := today()
	if len(args) > 1 {
		if c, err = models.ParseCategory(args[1]); err != nil {
			return 0, "", "", err
		}
		if !c.Dated() {
			d = ""
		}
	}
	if len(args) > 2 {
		d = args[2]
	}
	return id, c, d, nil
}

// Highlight toggles an entry: highlight <id> [category] [date]
func (a *App) Highlight(ctx context.Context, args []string) error {
	id, c, d, err := a.locate(args)
	if err != nil {
		return err
	}
	svc, err := a.service(ctx)
	if err != nil {
		return err
	}
	return svc.ToggleHighlight(ctx, id, d, c)
}

// Remove deletes an entry: delete <id> [category] [date]
func (a *App) Remove(ctx context.Context, args []string) error {
	id, c, d, err := a.locate(args)
	if err != nil {
		return err
	}
	svc, err := a.service(ctx)
	if err != nil {
		return err
	}
	return svc.Delete(ctx, id, d, c)
}

// IdeaStatus updates an idea: idea <id> <status>
func (a *App) IdeaStatus(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: idea <id> <new|in-progress|done>")
	}
	id, err := parseEntryID(args[0])
	if err != nil {
		return err
	}
	st, err := models.ParseIdeaStatus(args[1])
	if err != nil {
		return err
	}
	svc, err := a.service(ctx)
	if err != nil {
		return err
	}
	return svc.SetIdeaStatus(ctx, id, st)
}

func addShell(topLevel *cobra.Command, app func() *App) {
	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Interactive shell (type 'help' for commands)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runShell(cmd.Context(), app(), bufio.NewScanner(os.Stdin))
			return nil
		},
	}
	topLevel.AddCommand(cmd)
}
