// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pdf2text CLI. The root command
// converts one PDF into a plain-text file wrapped with a fixed header and
// footer; subcommands report the version and the optional conversion history.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pdf2text/internal/convert"
	"github.com/pdiddy/pdf2text/internal/extract"
	"github.com/pdiddy/pdf2text/internal/history"
	"github.com/pdiddy/pdf2text/internal/log"
	"github.com/pdiddy/pdf2text/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// configErr holds the failure to read an explicitly named config file until
// a command can report it.
var configErr error

// rootCmd converts a single PDF file.
var rootCmd = &cobra.Command{
	Use:   "pdf2text -i FILE [-o FILE] [-v]",
	Short: "Converts PDF files to text format for AI processing",
	Long: `pdf2text extracts the text layer of a PDF, joins lines broken by the page
layout, collapses whitespace and writes the result to a text file framed by a
short header and footer that tell downstream AI tooling where the content
came from.

Without --output the text is written to <input-stem>.txt in the current
directory.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return configErr
	},
	RunE: runConvert,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "YAML config file (keys: backend, image, verbose, history_db)")
	rootCmd.PersistentFlags().String("history-db", "", "SQLite file recording completed conversions (disabled when empty)")

	rootCmd.Flags().StringP("input", "i", "", "Input PDF file path")
	rootCmd.Flags().StringP("output", "o", "", "Output text file path (optional, defaults to input name with .txt extension)")
	rootCmd.Flags().BoolP("verbose", "v", false, "Enable verbose output")
	rootCmd.Flags().String("backend", string(types.BackendLedongthuc), "extraction backend: ledongthuc, rsc, or markitdown")
	rootCmd.Flags().String("image", types.DefaultImage, "container image used by the markitdown backend")
	_ = rootCmd.MarkFlagRequired("input")

	bindFlags()
}

// bindFlags makes flags the highest-priority source for their config keys.
func bindFlags() {
	_ = viper.BindPFlag("backend", rootCmd.Flags().Lookup("backend"))
	_ = viper.BindPFlag("image", rootCmd.Flags().Lookup("image"))
	_ = viper.BindPFlag("verbose", rootCmd.Flags().Lookup("verbose"))
	_ = viper.BindPFlag("history_db", rootCmd.PersistentFlags().Lookup("history-db"))
}

// initConfig reads the config file named by --config. No file is searched
// for and no environment variables are consulted.
func initConfig() {
	configErr = nil
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile == "" {
		return
	}
	viper.SetConfigFile(cfgFile)
	viper.SetConfigType("yaml")
	if err := viper.ReadInConfig(); err != nil {
		configErr = fmt.Errorf("reading config file %s: %w", cfgFile, err)
	}
}

// loadConfig merges defaults, the config file and flags, then validates the
// result.
func loadConfig() (types.ExtractionConfig, error) {
	cfg := types.DefaultExtractionConfig()
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding configuration: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	input, _ := cmd.Flags().GetString("input")
	output, _ := cmd.Flags().GetString("output")

	logger := log.New(cmd.ErrOrStderr(), cfg.Verbose)
	defer logger.Sync()

	if err := convert.CheckInput(input); err != nil {
		return err
	}

	ctx := cmd.Context()
	ex, err := extract.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("%w: %w", convert.ErrExtraction, err)
	}
	logger.Debugf("using %s extraction backend", ex.Name())

	opts := convert.Options{
		InputPath:  input,
		OutputPath: output,
		Verbose:    cfg.Verbose,
		Logger:     logger,
	}

	if cfg.HistoryDB != "" {
		store, err := history.Open(cfg.HistoryDB)
		if err != nil {
			logger.Warnf("history disabled: %v", err)
		} else {
			defer store.Close()
			opts.History = store
		}
	}

	_, err = convert.Run(ctx, ex, opts, cmd.OutOrStdout())
	return err
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
