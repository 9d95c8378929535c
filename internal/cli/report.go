//-------------------------------------------------------------------------
//
// pgEdge Shop Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pgEdge/pgedge-shopdata/internal/logging"
	"github.com/pgEdge/pgedge-shopdata/internal/report"
	"github.com/pgEdge/pgedge-shopdata/internal/store"
)

var reportQueries []string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Run the aggregate reports against the loaded database",
	Long: `Run the report queries against a database previously populated with
the 'load' command and print each result set to standard output.

Example:
  pgedge-shopdata report
  pgedge-shopdata report --query top_products_by_revenue`,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringSliceVar(&reportQueries, "query", nil,
		"run only the named queries (see 'pgedge-shopdata reports')")
}

func runReport(cmd *cobra.Command, args []string) error {
	if len(reportQueries) > 0 {
		cfg.Report.Queries = reportQueries
	}

	if err := cfg.ValidateReport(); err != nil {
		return err
	}

	queries, err := report.Select(cfg.Report.Queries)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	pool, err := store.Connect(ctx, cfg.Connection)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	log := logging.Stage("report")
	log.Debug().Int("queries", len(queries)).Msg("Running report")

	if err := report.NewRunner(pool).RunAll(ctx, cmd.OutOrStdout(), queries); err != nil {
		return err
	}

	log.Debug().Msg("Report complete")
	return nil
}
