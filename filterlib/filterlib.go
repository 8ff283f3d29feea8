// Package filterlib decides whether a lemma is significant enough to count.
package filterlib

import (
	"wordfreq/configlib"
	"wordfreq/stringlib"
)

// Filter rejects stoplisted and too short words. It never changes after
// construction.
type Filter struct {
	stoplist      map[string]struct{}
	stripPrefixes string
	minLength     int
}

// New builds a Filter from the loaded tables.
func New(t *configlib.Tables) *Filter {
	f := &Filter{
		stoplist:      make(map[string]struct{}, len(t.IgnoredWords)),
		stripPrefixes: t.StripPrefixes,
		minLength:     t.MinWordLength,
	}
	for _, w := range t.IgnoredWords {
		f.stoplist[w] = struct{}{}
	}
	return f
}

// Accept strips leading apostrophes and hyphens from word and reports
// whether the result should be counted. The stripped word is returned.
func (f *Filter) Accept(word string) (string, bool) {
	word = stringlib.TrimLeading(word, f.stripPrefixes)
	if word == "" || stringlib.RuneLen(word) < f.minLength {
		return word, false
	}
	return word, !f.IsStopword(word)
}

// IsStopword reports whether word is on the stoplist as is.
func (f *Filter) IsStopword(word string) bool {
	_, stop := f.stoplist[word]
	return stop
}
