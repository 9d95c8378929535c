//-------------------------------------------------------------------------
//
// pgEdge Shop Data Generator
//
// Portions copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package store

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/pgEdge/pgedge-shopdata/internal/logging"
	"github.com/pgEdge/pgedge-shopdata/pkg/version"
)

const metadataTable = "shopdata_metadata"

// recreateMetadataTableSQL replaces the metadata table; a load always
// starts a fresh record.
const recreateMetadataTableSQL = `
DROP TABLE IF EXISTS shopdata_metadata;
CREATE TABLE shopdata_metadata (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
)`

// LoadInfo describes a completed load.
type LoadInfo struct {
	RunID     string
	DataDir   string
	LoadedAt  time.Time
	RowCounts map[string]int64
}

// Metadata converts the load description to key/value pairs.
func (l LoadInfo) Metadata() map[string]string {
	m := map[string]string{
		"run_id":    l.RunID,
		"version":   version.Short(),
		"loaded_at": l.LoadedAt.UTC().Format(time.RFC3339),
		"data_dir":  l.DataDir,
	}
	for table, n := range l.RowCounts {
		m["rows_"+table] = strconv.FormatInt(n, 10)
	}
	return m
}

// SaveMetadata records a completed load. It is written in the load
// transaction, so its presence means the shop tables are populated.
func SaveMetadata(ctx context.Context, db Execer, info LoadInfo) error {
	if _, err := db.Exec(ctx, recreateMetadataTableSQL); err != nil {
		return fmt.Errorf("failed to create metadata table: %w", err)
	}

	for key, value := range info.Metadata() {
		_, err := db.Exec(ctx, `
            INSERT INTO shopdata_metadata (key, value) VALUES ($1, $2)
            ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
        `, key, value)
		if err != nil {
			return fmt.Errorf("failed to save metadata %s: %w", key, err)
		}
	}

	logging.Debug().
		Str("run_id", info.RunID).
		Str("data_dir", info.DataDir).
		Msg("Saved metadata")

	return nil
}

// GetAllMetadata retrieves all metadata as a map.
func GetAllMetadata(ctx context.Context, db DB) (map[string]string, error) {
	rows, err := db.Query(ctx, `SELECT key, value FROM shopdata_metadata`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	metadata := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		metadata[key] = value
	}

	return metadata, rows.Err()
}

// DropMetadata drops the metadata table.
func DropMetadata(ctx context.Context, db Execer) error {
	_, err := db.Exec(ctx, fmt.Sprintf("DROP TABLE IF EXISTS %s", metadataTable))
	return err
}

// MetadataExists checks if the metadata table exists.
func MetadataExists(ctx context.Context, db DB) (bool, error) {
	var exists bool
	err := db.QueryRow(ctx, `
        SELECT EXISTS (
            SELECT FROM information_schema.tables
            WHERE table_schema = current_schema() AND table_name = $1
        )
    `, metadataTable).Scan(&exists)
	return exists, err
}

// RequireLoaded returns ErrPrerequisiteMissing unless a load has completed
// against db.
func RequireLoaded(ctx context.Context, db DB) error {
	exists, err := MetadataExists(ctx, db)
	if err != nil {
		return fmt.Errorf("failed to check load metadata: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: database has not been loaded; run 'pgedge-shopdata load' first",
			ErrPrerequisiteMissing)
	}
	return nil
}
