// Package lemmalib reduces a word to its dictionary form, taking the word's
// grammatical category into account when the dictionary offers several lemmas.
package lemmalib

import (
	"fmt"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
	"github.com/patrickmn/go-cache"

	"wordfreq/taglib"
)

// Dictionary is the subset of golem's lemmatizer the adapter relies on.
type Dictionary interface {
	Lemma(word string) string
	Lemmas(word string) []string
}

// Lemmatizer maps (lowercase word, category) to a lemma. Results are
// memoised for the lifetime of the value.
type Lemmatizer struct {
	dict Dictionary
	memo *cache.Cache
}

// New loads the English dictionary.
func New() (*Lemmatizer, error) {
	dict, err := golem.New(en.New())
	if err != nil {
		return nil, fmt.Errorf("loading english lemma dictionary: %w", err)
	}
	return NewWithDictionary(dict), nil
}

// NewWithDictionary wraps any Dictionary.
func NewWithDictionary(dict Dictionary) *Lemmatizer {
	return &Lemmatizer{
		dict: dict,
		memo: cache.New(cache.NoExpiration, 0),
	}
}

// Lemmatize returns the base form of word read as category c.
func (l *Lemmatizer) Lemmatize(word string, c taglib.Category) string {
	key := c.String() + ":" + word
	if v, found := l.memo.Get(key); found {
		return v.(string)
	}

	lemma := l.lemmatize(word, c)
	l.memo.Set(key, lemma, cache.NoExpiration)
	return lemma
}

func (l *Lemmatizer) lemmatize(word string, c taglib.Category) string {
	candidates := l.dict.Lemmas(word)
	if len(candidates) == 0 {
		return word
	}
	if len(candidates) == 1 {
		return candidates[0]
	}

	known := make(map[string]struct{}, len(candidates))
	for _, cand := range candidates {
		known[cand] = struct{}{}
	}
	for _, form := range detach(word, c) {
		if _, ok := known[form]; ok {
			return form
		}
	}
	// only verbs take the dictionary default over a known surface form
	if _, ok := known[word]; ok && c != taglib.Verb {
		return word
	}
	return l.dict.Lemma(word)
}
