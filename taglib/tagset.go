package taglib

import "wordfreq/configlib"

// Tagset describes Penn Treebank tags.
type Tagset map[string]string

// NewTagset indexes the tag descriptions of the loaded tables.
func NewTagset(t *configlib.Tables) Tagset {
	ts := make(Tagset, len(t.Tagset))
	for _, d := range t.Tagset {
		ts[d.Tag] = d.Description
	}
	return ts
}

// Describe implements Describer.
func (ts Tagset) Describe(tag string) (string, bool) {
	d, ok := ts[tag]
	return d, ok
}
