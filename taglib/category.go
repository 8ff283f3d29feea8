package taglib

// Category is the grammatical category a lemmatizer needs, using the
// single-letter codes of WordNet style lemmatizers.
type Category rune

const (
	Noun      Category = 'n'
	Verb      Category = 'v'
	Adjective Category = 'a'
	Adverb    Category = 'r'
)

// ParseCategory maps a category name from the tables to a Category.
func ParseCategory(name string) (Category, bool) {
	switch name {
	case "noun":
		return Noun, true
	case "verb":
		return Verb, true
	case "adjective":
		return Adjective, true
	case "adverb":
		return Adverb, true
	}
	return 0, false
}

func (c Category) String() string {
	switch c {
	case Noun:
		return "noun"
	case Verb:
		return "verb"
	case Adjective:
		return "adjective"
	case Adverb:
		return "adverb"
	}
	return "unknown"
}

// Action says what to do with a token carrying a given tag.
type Action int

const (
	ActionUnknown Action = iota
	ActionIgnore
	ActionClassify
)

// Classification is the outcome of classifying one tag.
type Classification struct {
	Action   Action
	Category Category // set when Action == ActionClassify
}
