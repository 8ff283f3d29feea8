// Package stringlib provides string functions beyond goLang primitives
package stringlib

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

/***************************************************************************************************************
****************************************************************************************************************
* String functions *********************************************************************************************
****************************************************************************************************************
****************************************************************************************************************/

var reNewLines = regexp.MustCompile(`\s*\n+\s*`)

// FoldNewLines joins the lines of a multi-line string with single spaces
func FoldNewLines(t string) string {
	return strings.TrimSpace(reNewLines.ReplaceAllString(t, " "))
}

// TrimLeading removes every leading rune found in cutset
func TrimLeading(s string, cutset string) string {
	if cutset == "" {
		return s
	}
	return strings.TrimLeft(s, cutset)
}

// RuneLen counts characters, not bytes
func RuneLen(s string) int {
	return utf8.RuneCountInString(s)
}
