package services

import (
	"regexp"
	"sort"

	"github.com/luismoralesarg/micro-log/internal/models"
)

// Markers for the two built-in secondary indexes.
const (
	TagMarker    = "#"
	PersonMarker = "@"
)

// TagOccurrence is one place a token appears: the entry plus its
// containing date.
type TagOccurrence struct {
	Entry models.Entry
	Date  string
}

// TagGroup aggregates every occurrence of one exact token.
type TagGroup struct {
	Name    string
	Count   int
	Entries []TagOccurrence
}

// ExtractItems scans the dated journal entries for tokens starting with
// marker followed by word characters or hyphens, case-sensitively, and
// groups them by exact token. Output is ordered by descending count, ties
// broken by first-seen order (dates ascending, then entry order).
//
// The marker is escaped before the pattern is built, so a configurable
// marker can never inject pattern syntax.
func ExtractItems(entries map[string][]models.Entry, marker string) []TagGroup {
	re := regexp.MustCompile(regexp.QuoteMeta(marker) + `[\w-]+`)

	dates := make([]string, 0, len(entries))
	for date := range entries {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	groups := make(map[string]*TagGroup)
	var order []string

	for _, date := range dates {
		for _, entry := range entries[date] {
			for _, token := range re.FindAllString(entry.Text, -1) {
				g, ok := groups[token]
				if !ok {
					g = &TagGroup{Name: token}
					groups[token] = g
					order = append(order, token)
				}
				g.Count++
				g.Entries = append(g.Entries, TagOccurrence{Entry: entry, Date: date})
			}
		}
	}

	out := make([]TagGroup, 0, len(order))
	for _, name := range order {
		out = append(out, *groups[name])
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}
