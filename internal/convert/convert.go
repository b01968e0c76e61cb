// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert runs a single PDF-to-text conversion: it checks the input,
// extracts raw text, normalizes it, writes the output file and reports.
package convert

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/pdiddy/pdf2text/internal/extract"
	"github.com/pdiddy/pdf2text/internal/log"
	"github.com/pdiddy/pdf2text/internal/normalize"
	"github.com/pdiddy/pdf2text/pkg/types"
)

// Failure classes. Every error returned by Run wraps exactly one of them.
var (
	ErrInputNotFound = errors.New("does not exist")
	ErrExtraction    = errors.New("extracting text from PDF")
	ErrWrite         = errors.New("writing to output file")
)

// Recorder stores completed conversions.
type Recorder interface {
	Record(ctx context.Context, c *types.Conversion) error
}

// Options describes one conversion.
type Options struct {
	// InputPath is the PDF to read.
	InputPath string

	// OutputPath is the text file to write. Empty means OutputPath(InputPath, "").
	OutputPath string

	// Verbose prints progress lines in addition to the confirmation.
	Verbose bool

	// History, when set, receives a record of each successful conversion.
	History Recorder

	// Logger receives diagnostics. Nil discards them.
	Logger log.Logger
}

// CheckInput reports ErrInputNotFound when nothing exists at path.
func CheckInput(path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("input file '%s' %w", path, ErrInputNotFound)
	}
	return nil
}

// OutputPath returns output when it is set, and otherwise the input's stem
// with a .txt extension, relative to the current directory.
func OutputPath(input, output string) string {
	if output != "" {
		return output
	}
	return Stem(input) + ".txt"
}

// Stem returns the base name of path without its final extension. A name
// whose only dot is the leading one, such as ".report", is its own stem.
func Stem(path string) string {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" {
		return base
	}
	return stem
}

// Run converts opts.InputPath with ex and writes the wrapped text. Progress
// and the confirmation line are printed to w. No partial output is removed
// when a step fails.
func Run(ctx context.Context, ex extract.Extractor, opts Options, w io.Writer) (types.Conversion, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.Nop()
	}

	if err := CheckInput(opts.InputPath); err != nil {
		return types.Conversion{}, err
	}

	outPath := OutputPath(opts.InputPath, opts.OutputPath)

	if opts.Verbose {
		fmt.Fprintf(w, "Input file: %s\n", opts.InputPath)
		fmt.Fprintf(w, "Output file: %s\n", outPath)
		fmt.Fprintln(w, "Starting PDF text extraction...")
	}

	start := time.Now()
	raw, err := ex.Extract(ctx, opts.InputPath)
	if err != nil {
		return types.Conversion{}, fmt.Errorf("%w: %w", ErrExtraction, err)
	}
	logger.Debugf("%s backend extracted %s in %s", ex.Name(), opts.InputPath, time.Since(start))

	rawChars := utf8.RuneCountInString(raw)
	if opts.Verbose {
		fmt.Fprintf(w, "Successfully extracted %d characters\n", rawChars)
	}

	content := normalize.Clean(raw)
	if err := os.WriteFile(outPath, []byte(normalize.Wrap(content)), 0o644); err != nil {
		return types.Conversion{}, fmt.Errorf("%w: %w", ErrWrite, err)
	}

	conv := types.Conversion{
		InputPath:    opts.InputPath,
		OutputPath:   outPath,
		Backend:      types.ExtractionBackend(ex.Name()),
		RawChars:     rawChars,
		ContentChars: utf8.RuneCountInString(content),
		ConvertedAt:  time.Now(),
	}

	fmt.Fprintf(w, "✅ Successfully converted '%s' to '%s'\n", opts.InputPath, outPath)
	if opts.Verbose {
		fmt.Fprintln(w, "Text extraction complete!")
	}

	if opts.History != nil {
		if err := opts.History.Record(ctx, &conv); err != nil {
			logger.Warnf("conversion succeeded but was not added to history: %v", err)
		} else {
			logger.Debugf("recorded conversion %s", conv.ID)
		}
	}

	return conv, nil
}
