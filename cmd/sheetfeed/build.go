package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"sheetfeed/config"
	"sheetfeed/feed"
	"sheetfeed/source"
)

func newBuildCommand() *cobra.Command {
	var out string
	var workbook string
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Fetches the translation and interpretation tables and writes the site's JSON feeds",
		Long: `Fetches the 'Translations' and 'Interpretation' tables from the configured
Google Sheets worksheet, normalizes them and writes translations.json and
interpretation.json to the output directory.

Remote runs are configured from the environment:
- SHEETFEED_SPREADSHEET_ID  the document ID from the spreadsheet URL
- SHEETFEED_CREDENTIALS     a service account JSON key
- SHEETFEED_OUTPUT_DIR      output directory (default 'data')

With --workbook the tables are read from a local .xlsx copy instead and no
credentials are required.`,
		Example: `
  # Publish from the configured spreadsheet
  sheetfeed build

  # Publish to a specific directory
  sheetfeed build --out ./site/data

  # Rebuild the feeds offline from an exported workbook
  sheetfeed build --workbook ./requests.xlsx --out ./site/data
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			src, outdir, err := resolveSource(ctx, workbook, out)
			if err != nil {
				return err
			}

			return feed.NewBuilder(src, outdir).Build(ctx)
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "Output directory. Defaults to SHEETFEED_OUTPUT_DIR, then 'data'")
	cmd.Flags().StringVar(&workbook, "workbook", "", "Path to a local .xlsx workbook to read instead of the remote spreadsheet")
	cmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "Time limit for the whole run")

	return cmd
}

// resolveSource picks the table fetcher for this run. Workbook runs need no
// configuration beyond the file path; remote runs fail fast on missing or
// malformed secrets before any fetch is attempted.
func resolveSource(ctx context.Context, workbook, out string) (source.Source, string, error) {
	if strings.TrimSpace(workbook) != "" {
		if out == "" {
			out = "data"
		}

		return source.NewWorkbookSource(workbook), out, nil
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, "", err
	}

	src, err := source.NewSheetsSource(ctx, cfg.SpreadsheetID, []byte(cfg.Credentials))
	if err != nil {
		return nil, "", fmt.Errorf("authentication/authorization error (%v)", err)
	}

	if out == "" {
		out = cfg.OutputDir
	}

	return src, out, nil
}
