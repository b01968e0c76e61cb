// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-pdf/fpdf"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/pdf2text/internal/convert"
	"github.com/pdiddy/pdf2text/internal/normalize"
	"github.com/pdiddy/pdf2text/pkg/types"
)

// execute runs the CLI with args against freshly reset flags and viper state.
func execute(t *testing.T, args ...string) (stdout string, err error) {
	t.Helper()

	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	for _, c := range append([]*cobra.Command{rootCmd}, rootCmd.Commands()...) {
		c.Flags().VisitAll(reset)
		c.PersistentFlags().VisitAll(reset)
	}
	viper.Reset()
	bindFlags()

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err = rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func writeTestPDF(t *testing.T, dir, name string) string {
	t.Helper()

	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetFont("Helvetica", "", 12)
	doc.AddPage()
	doc.Cell(40, 10, "Quarterly results")
	doc.Ln(12)
	doc.Cell(40, 10, "improved")

	var buf bytes.Buffer
	require.NoError(t, doc.Output(&buf))
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}

func TestConvert_DefaultOutput(t *testing.T) {
	input := writeTestPDF(t, t.TempDir(), "summary.pdf")
	workDir := t.TempDir()
	origDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(workDir))
	t.Cleanup(func() { _ = os.Chdir(origDir) })

	stdout, err := execute(t, "-i", input)
	require.NoError(t, err)
	assert.Contains(t, stdout, "✅ Successfully converted '"+input+"' to 'summary.txt'")

	data, err := os.ReadFile(filepath.Join(workDir, "summary.txt"))
	require.NoError(t, err)
	region, ok := normalize.ContentRegion(string(data))
	require.True(t, ok)
	assert.Contains(t, region, "Quarterly")
	assert.NotContains(t, region, "\n")
}

func TestConvert_ExplicitOutputVerbose(t *testing.T) {
	dir := t.TempDir()
	input := writeTestPDF(t, dir, "summary.pdf")
	output := filepath.Join(dir, "summary-text.txt")

	stdout, err := execute(t, "--input", input, "--output", output, "--verbose", "--backend", "rsc")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Input file: "+input)
	assert.Contains(t, stdout, "Output file: "+output)
	assert.Contains(t, stdout, "Text extraction complete!")
	assert.FileExists(t, output)
}

func TestConvert_MissingInputFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.pdf")

	_, err := execute(t, "-i", missing)
	require.ErrorIs(t, err, convert.ErrInputNotFound)
	assert.Contains(t, err.Error(), missing)
}

func TestConvert_InputFlagRequired(t *testing.T) {
	_, err := execute(t)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `required flag(s) "input" not set`)
}

func TestConvert_InvalidBackend(t *testing.T) {
	input := writeTestPDF(t, t.TempDir(), "a.pdf")

	_, err := execute(t, "-i", input, "--backend", "pdfium")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestConvert_ExtractionFailure(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "fake.pdf")
	require.NoError(t, os.WriteFile(input, []byte("not a pdf"), 0o644))

	_, err := execute(t, "-i", input, "-o", filepath.Join(dir, "fake.txt"))
	require.ErrorIs(t, err, convert.ErrExtraction)
}

func TestConvert_MissingConfigFile(t *testing.T) {
	input := writeTestPDF(t, t.TempDir(), "a.pdf")

	_, err := execute(t, "-i", input, "--config", filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestConfigFileAndHistory(t *testing.T) {
	dir := t.TempDir()
	input := writeTestPDF(t, dir, "paper.pdf")
	dbPath := filepath.Join(dir, "state", "history.db")
	cfgPath := filepath.Join(dir, "pdf2text.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("backend: rsc\nhistory_db: "+dbPath+"\n"), 0o644))

	_, err := execute(t, "--config", cfgPath, "-i", input, "-o", filepath.Join(dir, "paper.txt"))
	require.NoError(t, err)
	assert.FileExists(t, dbPath)

	stdout, err := execute(t, "history", "--config", cfgPath, "--format", "json")
	require.NoError(t, err)

	var records []types.Conversion
	require.NoError(t, json.Unmarshal([]byte(stdout), &records))
	require.Len(t, records, 1)
	assert.Equal(t, types.BackendRSC, records[0].Backend)
	assert.Equal(t, input, records[0].InputPath)

	stdout, err = execute(t, "history", "--history-db", dbPath)
	require.NoError(t, err)
	assert.Contains(t, stdout, "CONVERTED AT")
	assert.Contains(t, stdout, "paper.pdf")
}

func TestHistory_NotConfigured(t *testing.T) {
	_, err := execute(t, "history")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no history database configured")
}

func TestHistory_Empty(t *testing.T) {
	stdout, err := execute(t, "history", "--history-db", filepath.Join(t.TempDir(), "h.db"))
	require.NoError(t, err)
	assert.Equal(t, "No conversions recorded.\n", stdout)
}

func TestVersion(t *testing.T) {
	stdout, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "pdf2text dev\n", stdout)
}
