package lemmalib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordfreq/taglib"
)

// fakeDict returns candidates from a fixed table; the first one is the
// default lemma. Unknown words are their own lemma.
type fakeDict struct {
	entries map[string][]string
	lookups int
}

func (d *fakeDict) Lemmas(word string) []string {
	d.lookups++
	if c, ok := d.entries[word]; ok {
		return c
	}
	return []string{word}
}

func (d *fakeDict) Lemma(word string) string {
	return d.Lemmas(word)[0]
}

func newFake() *fakeDict {
	return &fakeDict{entries: map[string][]string{
		"cats":    {"cat"},
		"sat":     {"sit", "sat"},
		"saw":     {"saw", "see"},
		"leaves":  {"leave", "leaf"},
		"glasses": {"glass", "glasses"},
		"better":  {"good", "well", "better"},
		"closer":  {"close", "closer"},
		"riding":  {"ride", "riding"},
		"early":   {"early", "earl"},
	}}
}

func TestLemmatizeByCategory(t *testing.T) {
	l := NewWithDictionary(newFake())

	tests := []struct {
		word string
		cat  taglib.Category
		want string
	}{
		{"cats", taglib.Noun, "cat"},
		{"sat", taglib.Verb, "sit"},
		{"leaves", taglib.Noun, "leaf"},
		{"leaves", taglib.Verb, "leave"},
		{"glasses", taglib.Noun, "glass"},
		{"closer", taglib.Adjective, "close"},
		{"riding", taglib.Verb, "ride"},
		{"better", taglib.Adjective, "better"},
		{"better", taglib.Verb, "good"},
		{"early", taglib.Adverb, "early"},
		{"zyzzyva", taglib.Noun, "zyzzyva"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, l.Lemmatize(tt.word, tt.cat), "%s/%s", tt.word, tt.cat)
	}
}

func TestLemmatizeMemoisesPerCategory(t *testing.T) {
	dict := newFake()
	l := NewWithDictionary(dict)

	assert.Equal(t, "leaf", l.Lemmatize("leaves", taglib.Noun))
	assert.Equal(t, "leaf", l.Lemmatize("leaves", taglib.Noun))
	assert.Equal(t, "leave", l.Lemmatize("leaves", taglib.Verb))
	assert.Equal(t, 2, dict.lookups)
}

func TestDetach(t *testing.T) {
	assert.Contains(t, detach("boxes", taglib.Verb), "box")
	assert.Contains(t, detach("churches", taglib.Noun), "church")
	assert.Contains(t, detach("women", taglib.Noun), "woman")
	assert.Empty(t, detach("quickly", taglib.Adverb))
	assert.Empty(t, detach("s", taglib.Noun))
}

func TestLemmatizeEnglishDictionary(t *testing.T) {
	l, err := New()
	require.NoError(t, err)

	tests := []struct {
		word string
		cat  taglib.Category
		want string
	}{
		{"meeting", taglib.Noun, "meeting"},
		{"running", taglib.Noun, "running"},
		{"meeting", taglib.Verb, "meet"},
		{"sat", taglib.Verb, "sit"},
		{"ran", taglib.Verb, "run"},
		{"cats", taglib.Noun, "cat"},
		{"mat", taglib.Noun, "mat"},
		{"better", taglib.Adjective, "better"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, l.Lemmatize(tt.word, tt.cat), "%s/%s", tt.word, tt.cat)
	}
}
