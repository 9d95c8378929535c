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
	"github.com/pgEdge/pgedge-shopdata/internal/store"
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load the CSV files into PostgreSQL",
	Long: `Drop and recreate the shop tables and bulk load every CSV file from
the data directory. The load runs in a single transaction; if anything fails
the database is left as it was.

Example:
  pgedge-shopdata load --data-dir data --connection "postgres://..."`,
	RunE: runLoad,
}

func runLoad(cmd *cobra.Command, args []string) error {
	if err := cfg.ValidateLoad(); err != nil {
		return err
	}

	// Check the data directory before touching the database
	if err := store.CheckDataDir(cfg.DataDir); err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	log := logging.Stage("load")
	log.Info().
		Str("data_dir", cfg.DataDir).
		Msg("Loading dataset")

	pool, err := store.Connect(ctx, cfg.Connection)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	info, err := store.NewLoader(pool, cfg.DataDir).Load(ctx)
	if err != nil {
		return err
	}

	event := log.Info().Str("run_id", info.RunID)
	for _, t := range store.Tables {
		event = event.Int64(t.Name, info.RowCounts[t.Name])
	}
	event.Msg("Dataset load complete")

	return nil
}
