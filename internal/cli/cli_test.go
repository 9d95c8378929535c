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
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pgEdge/pgedge-shopdata/internal/shop"
	"github.com/pgEdge/pgedge-shopdata/internal/store"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append(args, "--log-level", "error"))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestGenerateThenVerify(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")

	_, err := execute(t, "generate", "--data-dir", dir, "--seed", "5",
		"--customers", "10", "--products", "8", "--orders", "25", "--max-items-per-order", "3")
	if err != nil {
		t.Fatalf("generate error = %v", err)
	}

	for _, table := range shop.TableNames {
		if _, err := os.Stat(filepath.Join(dir, shop.FileName(table))); err != nil {
			t.Errorf("missing %s: %v", table, err)
		}
	}

	if _, err := execute(t, "verify", "--data-dir", dir); err != nil {
		t.Fatalf("verify error = %v", err)
	}
}

func TestGenerateRejectsBadCounts(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	_, err := execute(t, "generate", "--data-dir", dir, "--products", "2", "--max-items-per-order", "4")
	if err == nil {
		t.Fatal("generate with more items per order than products should fail")
	}
	if _, statErr := os.Stat(dir); !os.IsNotExist(statErr) {
		t.Errorf("data dir should not be created on a rejected run")
	}
	// Reset for the following tests
	genProducts, genMaxItemsPerOrder = 0, 0
}

func TestVerifyMissingDir(t *testing.T) {
	_, err := execute(t, "verify", "--data-dir", filepath.Join(t.TempDir(), "nope"))
	if err == nil {
		t.Fatal("verify of a missing directory should fail")
	}
}

func TestLoadMissingDir(t *testing.T) {
	_, err := execute(t, "load", "--data-dir", filepath.Join(t.TempDir(), "nope"))
	if err == nil {
		t.Fatal("load of a missing directory should fail")
	}
	if !strings.Contains(err.Error(), store.ErrPrerequisiteMissing.Error()) {
		t.Errorf("load error = %v, want prerequisite missing", err)
	}
}

func TestReportUnknownQuery(t *testing.T) {
	_, err := execute(t, "report", "--query", "no_such_query")
	if err == nil || !strings.Contains(err.Error(), "no_such_query") {
		t.Fatalf("report error = %v, want unknown query", err)
	}
	reportQueries = nil
}

func TestReportsList(t *testing.T) {
	out, err := execute(t, "reports")
	if err != nil {
		t.Fatalf("reports error = %v", err)
	}
	for _, name := range []string{"orders_with_customers", "top_products_by_revenue",
		"customer_lifetime_value", "shipments_status"} {
		if !strings.Contains(out, name) {
			t.Errorf("reports output missing %s", name)
		}
	}
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version error = %v", err)
	}
	if !strings.HasPrefix(out, "pgedge-shopdata ") {
		t.Errorf("version output = %q", out)
	}
}
