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
	"github.com/pgEdge/pgedge-shopdata/internal/shop"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check the CSV files for consistency",
	Long: `Read the CSV files from the data directory and check that they form a
consistent dataset: every reference resolves, order totals equal the sum of
their items, each order has exactly one payment, and shipments match order
status and timestamps.`,
	RunE: runVerify,
}

func runVerify(cmd *cobra.Command, args []string) error {
	if cfg.DataDir == "" {
		return fmt.Errorf("data_dir is required")
	}

	log := logging.Stage("verify")

	ds, err := shop.ReadDir(cfg.DataDir)
	if err != nil {
		return err
	}

	if err := ds.Validate(); err != nil {
		return fmt.Errorf("dataset in %s is inconsistent:\n%w", cfg.DataDir, err)
	}

	event := log.Info().Str("data_dir", cfg.DataDir)
	for _, t := range ds.Tables() {
		event = event.Int(t.Name, t.Len)
	}
	event.Msg("Dataset is consistent")

	return nil
}
