// Package langlib guesses the language of the input so that non-English
// text can be flagged before the English-only tagger runs over it.
package langlib

import (
	"github.com/pemistahl/lingua-go"
)

// minLetters is the amount of text below which no guess is made.
const minLetters = 20

var candidates = []lingua.Language{
	lingua.English,
	lingua.French,
	lingua.German,
	lingua.Spanish,
	lingua.Italian,
	lingua.Portuguese,
	lingua.Dutch,
	lingua.Latin,
}

// Detector wraps a lingua detector restricted to a few European languages.
type Detector struct {
	detector lingua.LanguageDetector
}

// New builds the detector. Building loads language models; do it once.
func New() *Detector {
	return &Detector{
		detector: lingua.NewLanguageDetectorBuilder().
			FromLanguages(candidates...).
			Build(),
	}
}

// IsEnglish reports the detected language name and whether it is English.
// Short or undecidable text counts as English.
func (d *Detector) IsEnglish(text string) (string, bool) {
	if countLetters(text) < minLetters {
		return lingua.English.String(), true
	}
	lang, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return lingua.English.String(), true
	}
	return lang.String(), lang == lingua.English
}

func countLetters(text string) int {
	n := 0
	for _, r := range text {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r > 0x7f {
			n++
		}
	}
	return n
}
