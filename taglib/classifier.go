package taglib

import (
	"fmt"
	"io"

	"wordfreq/configlib"
)

// Table is the immutable pair of tag lookups: an ignore-set and a
// category map. Lookups are exact and case sensitive.
type Table struct {
	ignored    map[string]struct{}
	categories map[string]Category
}

// NewTable builds a Table from loaded tables.
func NewTable(t *configlib.Tables) (*Table, error) {
	table := &Table{
		ignored:    make(map[string]struct{}, len(t.IgnoredTags)),
		categories: make(map[string]Category),
	}
	for _, tag := range t.IgnoredTags {
		table.ignored[tag] = struct{}{}
	}
	for name, tags := range t.Categories {
		c, ok := ParseCategory(name)
		if !ok {
			return nil, fmt.Errorf("unknown category %q", name)
		}
		for _, tag := range tags {
			if _, dup := table.ignored[tag]; dup {
				return nil, fmt.Errorf("tag %q is both ignored and mapped to %s", tag, name)
			}
			table.categories[tag] = c
		}
	}
	return table, nil
}

// Lookup classifies a tag without any side effect.
func (t *Table) Lookup(tag string) Classification {
	if _, ok := t.ignored[tag]; ok {
		return Classification{Action: ActionIgnore}
	}
	if c, ok := t.categories[tag]; ok {
		return Classification{Action: ActionClassify, Category: c}
	}
	return Classification{Action: ActionUnknown}
}

// Describer returns a human readable explanation of a tag.
type Describer interface {
	Describe(tag string) (string, bool)
}

// Classifier classifies tags for a single run. Each distinct unknown tag is
// reported once to out, together with its description.
type Classifier struct {
	table     *Table
	describer Describer
	out       io.Writer
	seen      map[string]struct{}
}

// NewClassifier starts a run with an empty seen-set.
func NewClassifier(table *Table, describer Describer, out io.Writer) *Classifier {
	return &Classifier{
		table:     table,
		describer: describer,
		out:       out,
		seen:      make(map[string]struct{}),
	}
}

// Classify looks tag up and reports it the first time it is unknown.
func (c *Classifier) Classify(tag string) Classification {
	cl := c.table.Lookup(tag)
	if cl.Action == ActionUnknown {
		c.reportUnknown(tag)
	}
	return cl
}

func (c *Classifier) reportUnknown(tag string) {
	if _, ok := c.seen[tag]; ok {
		return
	}
	c.seen[tag] = struct{}{}

	fmt.Fprintf(c.out, "Unknown tag discovered: %s\n", tag)
	desc, ok := "", false
	if c.describer != nil {
		desc, ok = c.describer.Describe(tag)
	}
	if !ok {
		desc = "no description available"
	}
	fmt.Fprintf(c.out, "%s: %s\n", tag, desc)
}
