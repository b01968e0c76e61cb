// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package normalize cleans up raw text produced by PDF extraction and wraps it
// in the fixed header and footer expected by downstream consumers.
package normalize

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// Header precedes the content region in every output document.
	Header = "=== PDF TEXT EXTRACTION ===\n" +
		"This text was extracted from a PDF file for AI processing.\n" +
		"Some formatting and layout information may be lost.\n" +
		"=== CONTENT BEGINS ===\n\n"

	// Footer follows the content region in every output document.
	Footer = "\n\n=== CONTENT ENDS ===\n"
)

// Normalize cleans raw and wraps the result with Header and Footer. It accepts
// any input; empty input yields an empty content region.
func Normalize(raw string) string {
	return Wrap(Clean(raw))
}

// Clean rejoins layout lines and collapses every whitespace run to a single
// space. Paragraph breaks recorded while rejoining lines do not survive the
// final collapse, so the result never contains a newline.
func Clean(raw string) string {
	var b strings.Builder

	for _, line := range strings.Split(raw, "\n") {
		trimmed := strings.TrimSpace(line)
		out := b.String()

		if trimmed == "" {
			if out != "" && !strings.HasSuffix(out, "\n\n") {
				b.WriteByte('\n')
			}
			continue
		}

		if out != "" && !strings.HasSuffix(out, "\n") {
			last, _ := utf8.DecodeLastRuneInString(out)
			first, _ := utf8.DecodeRuneInString(trimmed)
			if isAlnum(last) && isAlnum(first) {
				b.WriteByte(' ')
			} else if !unicode.IsSpace(last) {
				b.WriteByte(' ')
			}
		}
		b.WriteString(trimmed)
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// Wrap surrounds content with Header and Footer.
func Wrap(content string) string {
	return Header + content + Footer
}

// ContentRegion returns the text between Header and Footer in doc. It reports
// false when doc is not a wrapped document.
func ContentRegion(doc string) (string, bool) {
	if !strings.HasPrefix(doc, Header) || !strings.HasSuffix(doc, Footer) {
		return "", false
	}
	if len(doc) < len(Header)+len(Footer) {
		return "", false
	}
	return doc[len(Header) : len(doc)-len(Footer)], true
}

func isAlnum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}
