package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luismoralesarg/micro-log/internal/common"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in   string
		want Category
		err  error
	}{
		{"journal", CategoryJournal, nil},
		{"log", CategoryJournal, nil},
		{"dreams", CategoryDreams, nil},
		{"notes", CategoryNotes, nil},
		{"ideas", CategoryIdeas, nil},
		{"wisdom", CategoryWisdom, nil},
		{"quotes", CategoryWisdom, nil},
		{"bogus", "", common.ErrInvalidCategory},
		{"", "", common.ErrInvalidCategory},
	}
	for _, tc := range tests {
		got, err := ParseCategory(tc.in)
		if tc.err != nil {
			assert.ErrorIs(t, err, tc.err, tc.in)
			continue
		}
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got)
	}
}

func TestCategoryDated(t *testing.T) {
	assert.True(t, CategoryJournal.Dated())
	assert.True(t, CategoryDreams.Dated())
	assert.False(t, CategoryNotes.Dated())
	assert.False(t, CategoryIdeas.Dated())
	assert.False(t, CategoryWisdom.Dated())
}

func TestValidDate(t *testing.T) {
	assert.True(t, ValidDate("2024-01-15"))
	assert.False(t, ValidDate("2024-1-15"))
	assert.False(t, ValidDate("15/01/2024"))
	assert.False(t, ValidDate(""))
}

func TestParseIdeaStatus(t *testing.T) {
	for _, s := range []string{"new", "in-progress", "done"} {
		got, err := ParseIdeaStatus(s)
		require.NoError(t, err)
		assert.Equal(t, IdeaStatus(s), got)
	}
	_, err := ParseIdeaStatus("archived")
	assert.ErrorIs(t, err, common.ErrInvalidStatus)
}

func TestIdeaMarshalsFlat(t *testing.T) {
	i := Idea{Entry: Entry{ID: 42, Text: "build it", Time: "09:15"}, Status: IdeaStatusNew}
	b, err := json.Marshal(i)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":42,"text":"build it","highlight":false,"time":"09:15","status":"new"}`, string(b))
}

func TestEmptyDocumentShape(t *testing.T) {
	b, err := json.Marshal(EmptyDocument())
	require.NoError(t, err)
	assert.JSONEq(t, `{"entries":{},"dreams":{},"notes":[],"ideas":[],"wisdom":[]}`, string(b))
}

func TestNormalize(t *testing.T) {
	var d JournalDocument
	require.NoError(t, json.Unmarshal([]byte(`{}`), &d))
	d.Normalize()
	assert.NotNil(t, d.Entries)
	assert.NotNil(t, d.Dreams)
	assert.NotNil(t, d.Notes)
	assert.NotNil(t, d.Ideas)
	assert.NotNil(t, d.Wisdom)
}

func TestSliceKey(t *testing.T) {
	assert.Equal(t, "journal|2024-01-15", Slice{CategoryJournal, "2024-01-15"}.Key())
	assert.Equal(t, "notes", Slice{Category: CategoryNotes}.Key())
	assert.NotEqual(t,
		Slice{CategoryJournal, "2024-01-15"}.Key(),
		Slice{CategoryDreams, "2024-01-15"}.Key())
}
