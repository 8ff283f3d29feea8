// Package configlib loads the static tables the pipeline works with: ignored
// tags, the tag to category map, the stoplist and the tag descriptions.
package configlib

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"

	"github.com/spf13/viper"

	"wordfreq/stringlib"
)

//go:embed tables.yaml
var defaultTables []byte

// Category names accepted under the categories key.
var categoryNames = []string{"noun", "verb", "adjective", "adverb"}

// TagDescription is one entry of the tagset key.
type TagDescription struct {
	Tag         string `mapstructure:"tag"`
	Description string `mapstructure:"description"`
}

// Tables holds every immutable table, built once at process start.
type Tables struct {
	IgnoredTags   []string
	Categories    map[string][]string // category name -> tags
	IgnoredWords  []string
	StripPrefixes string
	MinWordLength int
	Tagset        []TagDescription
}

// Load reads the tables compiled into the binary.
func Load() (*Tables, error) {
	return LoadFrom(bytes.NewReader(defaultTables))
}

// LoadFrom reads a YAML tables document.
func LoadFrom(r io.Reader) (*Tables, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetDefault("minWordLength", 2)
	v.SetDefault("stripPrefixes", "'-")
	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("reading tables: %w", err)
	}

	t := &Tables{
		IgnoredTags:   v.GetStringSlice("ignoredTags"),
		Categories:    v.GetStringMapStringSlice("categories"),
		IgnoredWords:  v.GetStringSlice("ignoredWords"),
		StripPrefixes: v.GetString("stripPrefixes"),
		MinWordLength: v.GetInt("minWordLength"),
	}
	if err := v.UnmarshalKey("tagset", &t.Tagset); err != nil {
		return nil, fmt.Errorf("reading tagset: %w", err)
	}
	for i := range t.Tagset {
		t.Tagset[i].Description = stringlib.FoldNewLines(t.Tagset[i].Description)
	}

	if err := t.validate(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Tables) validate() error {
	if t.MinWordLength < 0 {
		return fmt.Errorf("minWordLength must not be negative, got %d", t.MinWordLength)
	}

	ignored := make(map[string]struct{}, len(t.IgnoredTags))
	for _, tag := range t.IgnoredTags {
		ignored[tag] = struct{}{}
	}

	owner := make(map[string]string)
	for name, tags := range t.Categories {
		if !isCategoryName(name) {
			return fmt.Errorf("unknown category %q", name)
		}
		for _, tag := range tags {
			if _, ok := ignored[tag]; ok {
				return fmt.Errorf("tag %q is both ignored and mapped to %s", tag, name)
			}
			if prev, ok := owner[tag]; ok && prev != name {
				return fmt.Errorf("tag %q mapped to both %s and %s", tag, prev, name)
			}
			owner[tag] = name
		}
	}
	return nil
}

func isCategoryName(name string) bool {
	for _, n := range categoryNames {
		if n == name {
			return true
		}
	}
	return false
}
