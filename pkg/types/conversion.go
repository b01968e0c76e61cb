// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Conversion records one completed PDF-to-text run.
type Conversion struct {
	// ID is a random UUID assigned when the record is stored.
	ID string `json:"id" yaml:"id"`

	// InputPath is the PDF path as given on the command line.
	InputPath string `json:"input_path" yaml:"input_path"`

	// OutputPath is the text file that was written.
	OutputPath string `json:"output_path" yaml:"output_path"`

	// Backend names the extractor that produced the raw text.
	Backend ExtractionBackend `json:"backend" yaml:"backend"`

	// RawChars is the number of characters returned by the extractor.
	RawChars int `json:"raw_chars" yaml:"raw_chars"`

	// ContentChars is the number of characters in the normalized content region.
	ContentChars int `json:"content_chars" yaml:"content_chars"`

	// ConvertedAt is when the output file was written.
	ConvertedAt time.Time `json:"converted_at" yaml:"converted_at"`
}
