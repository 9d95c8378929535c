//-------------------------------------------------------------------------
//
// pgEdge Shop Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package report runs the fixed set of aggregate queries against a loaded
// shop database and prints each result set as delimited text.
package report

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pgEdge/pgedge-shopdata/internal/logging"
	"github.com/pgEdge/pgedge-shopdata/internal/store"
)

// Separator joins columns in printed output.
const Separator = " | "

// Result is the outcome of one query.
type Result struct {
	Name    string
	Columns []string
	Rows    [][]any
}

// Runner executes report queries.
type Runner struct {
	db store.DB
}

// NewRunner creates a runner against db.
func NewRunner(db store.DB) *Runner {
	return &Runner{db: db}
}

// Run executes a single query and collects its rows.
func (r *Runner) Run(ctx context.Context, q Query) (*Result, error) {
	start := time.Now()

	rows, err := r.db.Query(ctx, q.SQL)
	if err != nil {
		return nil, fmt.Errorf("query %s failed: %w", q.Name, err)
	}
	defer rows.Close()

	res := &Result{Name: q.Name}
	for _, fd := range rows.FieldDescriptions() {
		res.Columns = append(res.Columns, fd.Name)
	}

	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("query %s: failed to read row: %w", q.Name, err)
		}
		res.Rows = append(res.Rows, values)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query %s failed: %w", q.Name, err)
	}

	logging.Debug().
		Str("query", q.Name).
		Int("rows", len(res.Rows)).
		Dur("duration", time.Since(start)).
		Msg("Report query complete")

	return res, nil
}

// RunAll executes queries in order, printing each result to w as soon as
// it is available. It fails with store.ErrPrerequisiteMissing when the
// database has not been loaded.
func (r *Runner) RunAll(ctx context.Context, w io.Writer, queries []Query) error {
	if err := store.RequireLoaded(ctx, r.db); err != nil {
		return err
	}

	for _, q := range queries {
		res, err := r.Run(ctx, q)
		if err != nil {
			return err
		}
		if err := Print(w, res); err != nil {
			return fmt.Errorf("failed to print %s: %w", q.Name, err)
		}
	}
	return nil
}

// Print writes one result set: a blank line and a title, then the header
// and rows with columns joined by Separator.
func Print(w io.Writer, res *Result) error {
	if _, err := fmt.Fprintf(w, "\n---- %s ----\n", res.Name); err != nil {
		return err
	}
	if len(res.Rows) == 0 {
		_, err := fmt.Fprintln(w, "No results.")
		return err
	}

	if _, err := fmt.Fprintln(w, strings.Join(res.Columns, Separator)); err != nil {
		return err
	}
	for _, row := range res.Rows {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = FormatValue(v)
		}
		if _, err := fmt.Fprintln(w, strings.Join(cells, Separator)); err != nil {
			return err
		}
	}
	return nil
}

// FormatValue renders one cell. SQL NULL prints as None.
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "None"
	case string:
		return x
	case []byte:
		return string(x)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}
