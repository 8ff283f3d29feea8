// Package reportlib renders a frequency table as a ranked report, one line
// per distinct count.
package reportlib

import (
	"fmt"
	"io"
	"strings"

	"wordfreq/freqlib"
)

// DefaultMaxWords is how many example lemmas a group line shows.
const DefaultMaxWords = 5

// Group holds the lemmas sharing one count, in sort order.
type Group struct {
	Count int
	Words []string
}

// Line is a rendered group with its shares of the accepted tokens.
type Line struct {
	Count           int
	Percentage      float64 // share of one word at this count
	TotalPercentage float64 // share of the whole group
	Shown           []string
	Others          int
}

// GroupByCount folds entries sorted by descending count into groups.
func GroupByCount(sorted []freqlib.KV) []Group {
	var groups []Group
	for _, kv := range sorted {
		if n := len(groups); n > 0 && groups[n-1].Count == kv.Value {
			groups[n-1].Words = append(groups[n-1].Words, kv.Key)
			continue
		}
		groups = append(groups, Group{Count: kv.Value, Words: []string{kv.Key}})
	}
	return groups
}

// Lines computes the report lines. It returns nil when total is zero.
func Lines(groups []Group, total, maxWords int) []Line {
	if total <= 0 {
		return nil
	}
	if maxWords < 0 {
		maxWords = 0
	}

	lines := make([]Line, 0, len(groups))
	for _, g := range groups {
		shown := g.Words
		if len(shown) > maxWords {
			shown = shown[:maxWords]
		}
		lines = append(lines, Line{
			Count:           g.Count,
			Percentage:      float64(g.Count) / float64(total) * 100,
			TotalPercentage: float64(g.Count*len(g.Words)) / float64(total) * 100,
			Shown:           shown,
			Others:          len(g.Words) - len(shown),
		})
	}
	return lines
}

// String renders the line the way Write prints it, without a newline.
func (l Line) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%5.2f%% - %5.2f%% - %4d - %s", l.Percentage, l.TotalPercentage, l.Count, strings.Join(l.Shown, ", "))
	if l.Others > 0 {
		if len(l.Shown) > 0 {
			sb.WriteString(" ")
		}
		fmt.Fprintf(&sb, "and %d others", l.Others)
	}
	return sb.String()
}

// Write prints the summary line followed by one line per count group,
// most frequent first.
func Write(w io.Writer, t *freqlib.Table, maxWords int) error {
	if _, err := fmt.Fprintf(w, "%d significant words found, %d unique\n", t.Total(), t.Unique()); err != nil {
		return err
	}

	for _, l := range Lines(GroupByCount(t.Sorted()), t.Total(), maxWords) {
		if _, err := fmt.Fprintln(w, l.String()); err != nil {
			return err
		}
	}
	return nil
}
