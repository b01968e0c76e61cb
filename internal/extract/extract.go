// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract turns a PDF file into raw text. The PDF decoding itself is
// done by third-party libraries or a container image; each one is wrapped
// behind the Extractor interface so the conversion pipeline does not depend
// on a particular backend.
package extract

import (
	"context"
	"fmt"

	"github.com/pdiddy/pdf2text/internal/container"
	"github.com/pdiddy/pdf2text/pkg/types"
)

// Extractor returns the text layer of a PDF file.
type Extractor interface {
	// Name identifies the backend in diagnostics and history records.
	Name() string

	// Extract reads the PDF at pdfPath and returns its raw text.
	Extract(ctx context.Context, pdfPath string) (string, error)
}

// New builds the extractor selected by cfg.Backend. The markitdown backend
// needs a working container runtime and a local copy of cfg.Image.
func New(ctx context.Context, cfg types.ExtractionConfig) (Extractor, error) {
	switch cfg.Backend {
	case types.BackendLedongthuc, "":
		return NewLedongthuc(), nil
	case types.BackendRSC:
		return NewRSC(), nil
	case types.BackendMarkitdown:
		rt, err := container.Detect(ctx)
		if err != nil {
			return nil, err
		}
		return NewMarkitdown(ctx, rt, cfg.Image)
	default:
		return nil, fmt.Errorf("unknown extraction backend %q", cfg.Backend)
	}
}

// recoverPanic converts a panic raised inside a PDF library into an error.
// Both PDF readers panic on some malformed inputs instead of returning errors.
func recoverPanic(pdfPath string, err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("malformed PDF %s: %v", pdfPath, r)
	}
}
