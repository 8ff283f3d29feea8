// counts the significant words of a text and prints them grouped by frequency
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"wordfreq/configlib"
	"wordfreq/iolib"
	"wordfreq/langlib"
	"wordfreq/lemmalib"
	"wordfreq/reportlib"
	"wordfreq/taglib"
	"wordfreq/wordfreqlib"
)

func newApp(stdin io.Reader, stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "wordfreq",
		Usage:     "simple natural language word counter",
		ArgsUsage: "FILE",
		Reader:    stdin,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "maxwords",
				Value: reportlib.DefaultMaxWords,
				Usage: "example words shown per frequency group",
			},
		},
		Action: wordfreqAction,
	}
}

func wordfreqAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("expected exactly one input FILE (use - for stdin)", 2)
	}
	maxWords := c.Int("maxwords")
	if maxWords < 0 {
		return cli.Exit(fmt.Sprintf("--maxwords must not be negative, got %d", maxWords), 2)
	}

	logger := slog.New(slog.NewTextHandler(c.App.ErrWriter, &slog.HandlerOptions{Level: slog.LevelWarn}))

	// input errors surface before any NLP setup
	input := c.Args().First()
	text, err := iolib.ReadText(input, c.App.Reader)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	tables, err := configlib.Load()
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	if lang, ok := langlib.New().IsEnglish(text); !ok {
		logger.Warn("input does not look like English, tags and lemmas may be poor", "input", input, "language", lang)
	}

	lemmatizer, err := lemmalib.New()
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	analyzer, err := wordfreqlib.New(tables, taglib.ProseTagger{}, lemmatizer)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	if err := analyzer.Run(text, c.App.Writer, maxWords); err != nil {
		return cli.Exit(err.Error(), 1)
	}
	return nil
}

func main() {
	if err := newApp(os.Stdin, os.Stdout, os.Stderr).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
