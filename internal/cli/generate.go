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
	"time"

	"github.com/spf13/cobra"

	"github.com/pgEdge/pgedge-shopdata/internal/datagen"
	"github.com/pgEdge/pgedge-shopdata/internal/logging"
	"github.com/pgEdge/pgedge-shopdata/internal/shop"
)

var (
	genCustomers        int
	genProducts         int
	genOrders           int
	genMaxItemsPerOrder int
	genSeed             uint64
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the shop dataset as CSV files",
	Long: `Generate customers, products, orders, order items, payments and
shipments and write one CSV file per table to the data directory. Existing
files are overwritten.

Example:
  pgedge-shopdata generate --data-dir data --orders 1000 --seed 42`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().IntVar(&genCustomers, "customers", 0,
		"number of customers (default: 120)")
	generateCmd.Flags().IntVar(&genProducts, "products", 0,
		"number of products (default: 60)")
	generateCmd.Flags().IntVar(&genOrders, "orders", 0,
		"number of orders (default: 300)")
	generateCmd.Flags().IntVar(&genMaxItemsPerOrder, "max-items-per-order", 0,
		"maximum distinct products per order (default: 5)")
	generateCmd.Flags().Uint64Var(&genSeed, "seed", 0,
		"random seed for reproducible output (0 = time based)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	// Override config with CLI flags
	if genCustomers > 0 {
		cfg.Generate.Customers = genCustomers
	}
	if genProducts > 0 {
		cfg.Generate.Products = genProducts
	}
	if genOrders > 0 {
		cfg.Generate.Orders = genOrders
	}
	if genMaxItemsPerOrder > 0 {
		cfg.Generate.MaxItemsPerOrder = genMaxItemsPerOrder
	}
	if genSeed > 0 {
		cfg.Generate.Seed = genSeed
	}

	if err := cfg.ValidateGenerate(); err != nil {
		return err
	}

	now := time.Now()
	seed := cfg.Generate.Seed
	if seed == 0 {
		seed = uint64(now.UnixNano())
	}

	log := logging.Stage("generate")
	log.Info().
		Uint64("seed", seed).
		Str("data_dir", cfg.DataDir).
		Msg("Generating dataset")

	gen := shop.NewGenerator(datagen.NewFakerWithSeed(seed), now)
	ds, err := gen.Generate(shop.Counts{
		Customers:        cfg.Generate.Customers,
		Products:         cfg.Generate.Products,
		Orders:           cfg.Generate.Orders,
		MaxItemsPerOrder: cfg.Generate.MaxItemsPerOrder,
	})
	if err != nil {
		return fmt.Errorf("failed to generate dataset: %w", err)
	}

	if err := ds.Validate(); err != nil {
		return fmt.Errorf("generated dataset is inconsistent: %w", err)
	}

	if err := shop.WriteDir(cfg.DataDir, ds); err != nil {
		return err
	}

	log.Info().
		Str("data_dir", cfg.DataDir).
		Msg("Dataset generation complete")

	return nil
}
