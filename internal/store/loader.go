//-------------------------------------------------------------------------
//
// pgEdge Shop Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/pgEdge/pgedge-shopdata/internal/datagen"
	"github.com/pgEdge/pgedge-shopdata/internal/logging"
	"github.com/pgEdge/pgedge-shopdata/internal/shop"
	"github.com/pgEdge/pgedge-shopdata/internal/tabular"
)

// Loader rebuilds the schema and bulk loads the CSV files of a data
// directory into it.
type Loader struct {
	db      DB
	dataDir string
	now     func() time.Time
}

// NewLoader creates a loader reading from dataDir.
func NewLoader(db DB, dataDir string) *Loader {
	return &Loader{
		db:      db,
		dataDir: dataDir,
		now:     time.Now,
	}
}

// tableData is one table's rows converted to column values.
type tableData struct {
	table Table
	rows  [][]any
}

// Load reads every CSV file, then drops and recreates the schema and copies
// the rows in dependency order, all in one transaction. A failure leaves
// the database as it was, so a failed load can simply be retried.
func (l *Loader) Load(ctx context.Context) (*LoadInfo, error) {
	if err := CheckDataDir(l.dataDir); err != nil {
		return nil, err
	}

	data := make([]tableData, 0, len(Tables))
	for _, t := range Tables {
		rows, err := ReadTable(l.dataDir, t)
		if err != nil {
			return nil, err
		}
		data = append(data, tableData{table: t, rows: rows})
	}

	info := &LoadInfo{
		RunID:     uuid.NewString(),
		DataDir:   l.dataDir,
		RowCounts: make(map[string]int64, len(Tables)),
	}

	tx, err := l.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	logging.Info().Msg("Recreating schema")
	if err := DropMetadata(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to drop metadata: %w", err)
	}
	if err := RecreateSchema(ctx, tx); err != nil {
		return nil, err
	}

	for _, d := range data {
		progress := datagen.NewProgressReporter("Loading", d.table.Name, int64(len(d.rows)), 0)
		n, err := tx.CopyFrom(ctx,
			pgx.Identifier{d.table.Name},
			d.table.ColumnNames(),
			pgx.CopyFromRows(d.rows),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", d.table.Name, err)
		}
		progress.Update(n)
		progress.Done()
		info.RowCounts[d.table.Name] = n
	}

	info.LoadedAt = l.now()
	if err := SaveMetadata(ctx, tx, *info); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit load: %w", err)
	}
	return info, nil
}

// CheckDataDir returns ErrPrerequisiteMissing if dir is not an existing
// directory.
func CheckDataDir(dir string) error {
	st, err := os.Stat(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: data directory %s does not exist; run 'pgedge-shopdata generate' first",
			ErrPrerequisiteMissing, dir)
	}
	if err != nil {
		return fmt.Errorf("failed to inspect data directory: %w", err)
	}
	if !st.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrPrerequisiteMissing, dir)
	}
	return nil
}

// ReadTable reads <dir>/<table>.csv and converts each row to the table's
// column values, in column order.
func ReadTable(dir string, t Table) ([][]any, error) {
	path := filepath.Join(dir, shop.FileName(t.Name))
	_, rows, err := tabular.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s is missing; run 'pgedge-shopdata generate' first",
			ErrPrerequisiteMissing, path)
	}
	if err != nil {
		return nil, err
	}

	values := make([][]any, 0, len(rows))
	for i, row := range rows {
		v, err := ConvertRow(t, row)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", path, i+1, err)
		}
		values = append(values, v)
	}
	return values, nil
}

// ConvertRow picks the table's columns out of row and parses integer and
// real columns.
func ConvertRow(t Table, row tabular.Row) ([]any, error) {
	values := make([]any, len(t.Columns))
	for i, col := range t.Columns {
		raw, err := row.Require(col.Name)
		if err != nil {
			return nil, err
		}

		switch col.Type {
		case Integer:
			v, err := strconv.ParseInt(raw, 10, 32)
			if err != nil {
				return nil, fmt.Errorf("%w: column %s: %v", tabular.ErrMalformedRecord, col.Name, err)
			}
			values[i] = int32(v)
		case Real:
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: column %s: %v", tabular.ErrMalformedRecord, col.Name, err)
			}
			values[i] = v
		default:
			values[i] = raw
		}
	}
	return values, nil
}
