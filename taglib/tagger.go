package taglib

import (
	"fmt"

	"github.com/jdkato/prose/v2"
)

// Token is a surface form with its part-of-speech tag.
type Token struct {
	Word string
	Tag  string
}

// Tagger turns raw text into tagged tokens, in text order.
type Tagger interface {
	Tag(text string) ([]Token, error)
}

// ProseTagger tokenizes and tags English text with prose's averaged
// perceptron model. Tags follow the Penn Treebank tagset.
type ProseTagger struct{}

// Tag implements Tagger.
func (ProseTagger) Tag(text string) ([]Token, error) {
	doc, err := prose.NewDocument(text,
		prose.WithExtraction(false),
		prose.WithSegmentation(false))
	if err != nil {
		return nil, fmt.Errorf("tagging text: %w", err)
	}

	ptoks := doc.Tokens()
	tokens := make([]Token, 0, len(ptoks))
	for _, tok := range ptoks {
		tokens = append(tokens, Token{Word: tok.Text, Tag: tok.Tag})
	}
	return tokens, nil
}
