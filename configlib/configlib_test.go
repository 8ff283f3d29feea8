package configlib

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	tables, err := Load()
	require.NoError(t, err)

	assert.Contains(t, tables.IgnoredTags, "DT")
	assert.Contains(t, tables.IgnoredTags, "PRP$")
	assert.Contains(t, tables.IgnoredTags, "``")
	assert.Contains(t, tables.IgnoredTags, "''")
	assert.Len(t, tables.IgnoredTags, 24)

	assert.ElementsMatch(t, []string{"NN", "NNS", "NNP", "NNPS", "FW"}, tables.Categories["noun"])
	assert.ElementsMatch(t, []string{"VB", "VBD", "VBG", "VBN", "VBP", "VBZ"}, tables.Categories["verb"])
	assert.ElementsMatch(t, []string{"JJ", "JJR", "JJS"}, tables.Categories["adjective"])
	assert.ElementsMatch(t, []string{"RB", "RBR", "RBS"}, tables.Categories["adverb"])

	assert.Contains(t, tables.IgnoredWords, "n't")
	assert.Contains(t, tables.IgnoredWords, "½")
	assert.Contains(t, tables.IgnoredWords, "sloth")
	assert.Equal(t, "'-", tables.StripPrefixes)
	assert.Equal(t, 2, tables.MinWordLength)

	var found bool
	for _, d := range tables.Tagset {
		if d.Tag == "UH" {
			found = true
			assert.True(t, strings.HasPrefix(d.Description, "interjection"))
		}
	}
	assert.True(t, found, "UH description missing")
}

func TestLoadFromKeepsTagCase(t *testing.T) {
	doc := `
ignoredTags: [DT]
categories:
  noun: [NN]
ignoredWords: [be]
`
	tables, err := LoadFrom(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, []string{"DT"}, tables.IgnoredTags)
	assert.Equal(t, []string{"NN"}, tables.Categories["noun"])
	assert.Equal(t, 2, tables.MinWordLength)
	assert.Equal(t, "'-", tables.StripPrefixes)
}

func TestLoadFromRejectsBadTables(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{
			name: "ignored and mapped",
			doc:  "ignoredTags: [NN]\ncategories:\n  noun: [NN]\n",
			want: "both ignored and mapped",
		},
		{
			name: "two categories",
			doc:  "categories:\n  noun: [NN]\n  verb: [NN]\n",
			want: "mapped to both",
		},
		{
			name: "unknown category",
			doc:  "categories:\n  pronoun: [PRP]\n",
			want: "unknown category",
		},
		{
			name: "negative length",
			doc:  "minWordLength: -1\n",
			want: "must not be negative",
		},
		{
			name: "broken yaml",
			doc:  "categories: [\n",
			want: "reading tables",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFrom(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
