// Package taglib tags text and decides, per part-of-speech tag, whether a
// token is ignored, counted under a grammatical category, or unknown.
package taglib
