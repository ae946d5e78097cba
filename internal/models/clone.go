package models

// Clone returns a deep copy of the document. The model manager hands copies
// to persist tasks and readers so in-memory mutation never races a
// serialization in flight.
func (d *JournalDocument) Clone() *JournalDocument {
	out := &JournalDocument{
		Entries: make(map[string][]Entry, len(d.Entries)),
		Dreams:  make(map[string][]Entry, len(d.Dreams)),
		Notes:   append([]Entry{}, d.Notes...),
		Ideas:   append([]Idea{}, d.Ideas...),
		Wisdom:  append([]Entry{}, d.Wisdom...),
	}
	for date, entries := range d.Entries {
		out.Entries[date] = append([]Entry{}, entries...)
	}
	for date, entries := range d.Dreams {
		out.Dreams[date] = append([]Entry{}, entries...)
	}
	return out
}
