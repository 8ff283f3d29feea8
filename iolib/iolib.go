// Package iolib provides I/O functions beyond goLang primitives
package iolib

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"jaytaylor.com/html2text"
)

/***************************************************************************************************************
****************************************************************************************************************
* I/O functions ************************************************************************************************
****************************************************************************************************************
****************************************************************************************************************/

// StdinName is the input path that stands for standard input
const StdinName = "-"

// File2string reads a whole file into a string, closing it before returning
func File2string(filename string) (string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return "", err
	}
	defer file.Close()

	return Reader2string(file)
}

// Reader2string drains r into a string
func Reader2string(r io.Reader) (string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}

	return string(b), nil
}

// IsHTML tells whether the file name looks like an HTML document
func IsHTML(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".html", ".htm":
		return true
	}
	return false
}

// ReadText loads the input named by filename as plain text. StdinName reads
// from stdin. HTML documents are converted to text.
func ReadText(filename string, stdin io.Reader) (string, error) {
	var (
		text string
		err  error
	)
	if filename == StdinName {
		text, err = Reader2string(stdin)
	} else {
		text, err = File2string(filename)
	}
	if err != nil {
		return "", fmt.Errorf("reading input %q: %w", filename, err)
	}

	if IsHTML(filename) {
		plain, err := html2text.FromString(text, html2text.Options{PrettyTables: false})
		if err != nil {
			return "", fmt.Errorf("converting %q to text: %w", filename, err)
		}
		text = plain
	}

	return text, nil
}
