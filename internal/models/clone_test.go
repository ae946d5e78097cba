package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClone_IsDeep(t *testing.T) {
	d := EmptyDocument()
	d.Entries["2024-01-15"] = []Entry{{ID: 1, Text: "a", Time: "10:00"}}
	d.Notes = []Entry{{ID: 2, Text: "n", Time: "11:00"}}

	c := d.Clone()
	require.Equal(t, d, c)

	c.Entries["2024-01-15"][0].Highlight = true
	c.Entries["2024-01-16"] = []Entry{{ID: 3}}
	c.Notes = append(c.Notes, Entry{ID: 4})

	assert.False(t, d.Entries["2024-01-15"][0].Highlight)
	assert.NotContains(t, d.Entries, "2024-01-16")
	assert.Len(t, d.Notes, 1)
}

func TestClone_EmptyStaysNormalized(t *testing.T) {
	c := EmptyDocument().Clone()
	assert.NotNil(t, c.Entries)
	assert.NotNil(t, c.Notes)
	assert.Equal(t, EmptyDocument(), c)
}
