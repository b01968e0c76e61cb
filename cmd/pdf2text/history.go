package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pdf2text/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List conversions recorded in the history database",
	Long: `History prints the most recent conversions recorded with --history-db
(or history_db in the config file), newest first. Use --format yaml or
--format json to export the records instead of printing a table.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath := viper.GetString("history_db")
		if dbPath == "" {
			return fmt.Errorf("no history database configured: pass --history-db or set history_db in the config file")
		}
		limit, _ := cmd.Flags().GetInt("limit")
		format, _ := cmd.Flags().GetString("format")

		store, err := history.Open(dbPath)
		if err != nil {
			return err
		}
		defer store.Close()

		if format != "text" {
			return store.Export(cmd.Context(), cmd.OutOrStdout(), history.Format(format), limit)
		}

		records, err := store.List(cmd.Context(), limit)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No conversions recorded.")
			return nil
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "CONVERTED AT\tBACKEND\tINPUT\tOUTPUT\tCHARS")
		for _, r := range records {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\n",
				r.ConvertedAt.Local().Format("2006-01-02 15:04:05"), r.Backend, r.InputPath, r.OutputPath, r.ContentChars)
		}
		return tw.Flush()
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "maximum number of conversions to show")
	historyCmd.Flags().String("format", "text", "output format: text, yaml, or json")

	rootCmd.AddCommand(historyCmd)
}
