package cli

import (
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/luismoralesarg/micro-log/internal/models"
	"github.com/luismoralesarg/micro-log/internal/services"
)

const highlightMark = "*"

func printTitle(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

func printEntries(entries []models.Entry) {
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Println(" none")
		return
	}

	hl := color.New(color.FgHiYellow)
	tbl := uitable.New()
	tbl.MaxColWidth = 80
	tbl.Wrap = true
	tbl.Separator = "  "

	for _, e := range entries {
		mark := ""
		if e.Highlight {
			mark = hl.Sprint(highlightMark)
		}
		tbl.AddRow(e.ID, e.Time, mark, e.Text)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

func printDated(byDate map[string][]models.Entry, date string) {
	if date != "" {
		printTitle(date)
		printEntries(byDate[date])
		return
	}

	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	for _, d := range dates {
		printTitle(d)
		printEntries(byDate[d])
	}
}

func ideaStatusColor(s models.IdeaStatus) *color.Color {
	switch s {
	case models.IdeaStatusInProgress:
		return color.New(color.FgYellow)
	case models.IdeaStatusDone:
		return color.New(color.FgGreen)
	default:
		return color.New(color.FgCyan)
	}
}

func printIdeas(ideas []models.Idea) {
	if len(ideas) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Println(" none")
		return
	}

	tbl := uitable.New()
	tbl.MaxColWidth = 80
	tbl.Wrap = true
	tbl.Separator = "  "

	for _, i := range ideas {
		tbl.AddRow(i.ID, ideaStatusColor(i.Status).Sprint(i.Status), i.Text)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

func printGroups(groups []services.TagGroup, showEntries bool) {
	if len(groups) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Println(" none")
		return
	}

	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Name"), bold.Sprint("Count"))
	for _, g := range groups {
		tbl.AddRow(g.Name, g.Count)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)

	if !showEntries {
		return
	}
	for _, g := range groups {
		printTitle(g.Name)
		faint := color.New(color.Faint)
		for _, occ := range g.Entries {
			_, _ = faint.Print(occ.Date + "  ")
			fmt.Println(occ.Entry.Text)
		}
	}
}
