package lemmalib

import (
	"strings"

	"wordfreq/taglib"
)

type rule struct {
	suffix, replace string
}

// Regular inflection endings per category, longest endings first.
var rules = map[taglib.Category][]rule{
	taglib.Noun: {
		{"ses", "s"}, {"ves", "f"}, {"xes", "x"}, {"zes", "z"},
		{"ches", "ch"}, {"shes", "sh"}, {"men", "man"}, {"ies", "y"}, {"s", ""},
	},
	taglib.Verb: {
		{"ies", "y"}, {"es", "e"}, {"es", ""}, {"ed", "e"}, {"ed", ""},
		{"ing", "e"}, {"ing", ""}, {"s", ""},
	},
	taglib.Adjective: {
		{"er", ""}, {"est", ""}, {"er", "e"}, {"est", "e"},
	},
}

// detach lists the forms word could be an inflection of, for category c.
func detach(word string, c taglib.Category) []string {
	var forms []string
	for _, r := range rules[c] {
		if !strings.HasSuffix(word, r.suffix) || len(word) <= len(r.suffix) {
			continue
		}
		forms = append(forms, strings.TrimSuffix(word, r.suffix)+r.replace)
	}
	return forms
}
