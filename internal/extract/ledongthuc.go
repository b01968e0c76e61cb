// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"context"
	"fmt"
	"io"

	"github.com/ledongthuc/pdf"

	"github.com/pdiddy/pdf2text/pkg/types"
)

// Ledongthuc extracts text with github.com/ledongthuc/pdf. It is the default
// backend.
type Ledongthuc struct{}

// NewLedongthuc returns the default extractor.
func NewLedongthuc() *Ledongthuc {
	return &Ledongthuc{}
}

func (l *Ledongthuc) Name() string { return string(types.BackendLedongthuc) }

// Extract reads the plain-text layer of every page in document order.
func (l *Ledongthuc) Extract(ctx context.Context, pdfPath string) (text string, err error) {
	defer recoverPanic(pdfPath, &err)

	f, r, err := pdf.Open(pdfPath)
	if err != nil {
		return "", fmt.Errorf("opening PDF %s: %w", pdfPath, err)
	}
	defer f.Close()

	if err := ctx.Err(); err != nil {
		return "", err
	}

	plain, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("reading text of %s: %w", pdfPath, err)
	}

	data, err := io.ReadAll(plain)
	if err != nil {
		return "", fmt.Errorf("reading text of %s: %w", pdfPath, err)
	}
	return string(data), nil
}
