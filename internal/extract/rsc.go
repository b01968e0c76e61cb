// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"context"
	"fmt"
	"os"
	"strings"

	"rsc.io/pdf"

	"github.com/pdiddy/pdf2text/pkg/types"
)

// RSC extracts text with rsc.io/pdf. Text runs are emitted in content-stream
// order; a change of baseline starts a new line and each page ends with a
// blank line.
type RSC struct{}

// NewRSC returns an extractor backed by rsc.io/pdf.
func NewRSC() *RSC {
	return &RSC{}
}

func (x *RSC) Name() string { return string(types.BackendRSC) }

func (x *RSC) Extract(ctx context.Context, pdfPath string) (text string, err error) {
	defer recoverPanic(pdfPath, &err)

	f, err := os.Open(pdfPath)
	if err != nil {
		return "", fmt.Errorf("opening PDF %s: %w", pdfPath, err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("opening PDF %s: %w", pdfPath, err)
	}

	r, err := pdf.NewReader(f, fi.Size())
	if err != nil {
		return "", fmt.Errorf("opening PDF %s: %w", pdfPath, err)
	}

	var b strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		writePage(&b, page.Content().Text)
		b.WriteString("\n\n")
	}
	return b.String(), nil
}

func writePage(b *strings.Builder, runs []pdf.Text) {
	for j, t := range runs {
		if j > 0 && t.Y != runs[j-1].Y {
			b.WriteByte('\n')
		}
		b.WriteString(t.S)
	}
}
