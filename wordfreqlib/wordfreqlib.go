// Package wordfreqlib runs the whole word frequency pipeline over a text:
// tag, classify, lemmatize, filter, count.
package wordfreqlib

import (
	"io"
	"strings"

	"wordfreq/configlib"
	"wordfreq/filterlib"
	"wordfreq/freqlib"
	"wordfreq/reportlib"
	"wordfreq/taglib"
)

// Lemmatizer gives the base form of a lowercase word read as a category.
type Lemmatizer interface {
	Lemmatize(word string, c taglib.Category) string
}

// Analyzer holds the immutable parts shared by every run.
type Analyzer struct {
	tagger     taglib.Tagger
	lemmatizer Lemmatizer
	table      *taglib.Table
	tagset     taglib.Tagset
	filter     *filterlib.Filter
}

// New builds an Analyzer from the loaded tables and the NLP engines.
func New(tables *configlib.Tables, tagger taglib.Tagger, lemmatizer Lemmatizer) (*Analyzer, error) {
	table, err := taglib.NewTable(tables)
	if err != nil {
		return nil, err
	}
	return &Analyzer{
		tagger:     tagger,
		lemmatizer: lemmatizer,
		table:      table,
		tagset:     taglib.NewTagset(tables),
		filter:     filterlib.New(tables),
	}, nil
}

// Count tags text and returns the frequency table of significant lemmas.
// Unknown tags are reported to notices, once each.
func (a *Analyzer) Count(text string, notices io.Writer) (*freqlib.Table, error) {
	tokens, err := a.tagger.Tag(text)
	if err != nil {
		return nil, err
	}

	classifier := taglib.NewClassifier(a.table, a.tagset, notices)
	table := freqlib.New()

	for _, tok := range tokens {
		cl := classifier.Classify(tok.Tag)
		if cl.Action != taglib.ActionClassify {
			continue
		}

		lemma := a.lemmatizer.Lemmatize(strings.ToLower(tok.Word), cl.Category)
		word, ok := a.filter.Accept(lemma)
		if !ok {
			continue
		}
		table.Add(word)
	}

	return table, nil
}

// Run counts text and writes the report to out. Unknown tag notices go to
// out as well, ahead of the report.
func (a *Analyzer) Run(text string, out io.Writer, maxWords int) error {
	table, err := a.Count(text, out)
	if err != nil {
		return err
	}
	return reportlib.Write(out, table, maxWords)
}
