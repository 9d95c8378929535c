//-------------------------------------------------------------------------
//
// pgEdge Shop Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package tabular reads and writes header-driven CSV files: UTF-8,
// comma-separated, one header row followed by one row per record.
package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
)

var (
	// ErrNoRecords is returned when asked to write an empty record
	// sequence; no header can be inferred from it.
	ErrNoRecords = errors.New("no records to write")

	// ErrMalformedRecord is returned for rows whose shape does not match
	// the header.
	ErrMalformedRecord = errors.New("malformed record")
)

// Record is one flat row. Every record written in one call must report the
// same header.
type Record interface {
	Header() []string
	Values() []string
}

// Row is a record read back from a file, keyed by header name.
type Row map[string]string

// Write writes the header of the first record followed by one row per
// record.
func Write[T Record](w io.Writer, records []T) error {
	if len(records) == 0 {
		return ErrNoRecords
	}

	header := records[0].Header()
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, rec := range records {
		if i > 0 && !slices.Equal(rec.Header(), header) {
			return fmt.Errorf("%w: record %d has a different header", ErrMalformedRecord, i+1)
		}
		values := rec.Values()
		if len(values) != len(header) {
			return fmt.Errorf("%w: record %d has %d values for %d columns",
				ErrMalformedRecord, i+1, len(values), len(header))
		}
		if err := cw.Write(values); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i+1, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteFile creates (or truncates) path and writes records to it.
func WriteFile[T Record](path string, records []T) error {
	if len(records) == 0 {
		return fmt.Errorf("%s: %w", path, ErrNoRecords)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := Write(f, records); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}

// Read parses a header row and the rows that follow it.
func Read(r io.Reader) ([]string, []Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil, fmt.Errorf("%w: missing header row", ErrMalformedRecord)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read header: %w", err)
	}

	var rows []Row
	for line := 2; ; line++ {
		values, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read line %d: %w", line, err)
		}
		if len(values) != len(header) {
			return nil, nil, fmt.Errorf("%w: line %d has %d fields, header has %d",
				ErrMalformedRecord, line, len(values), len(header))
		}

		row := make(Row, len(header))
		for i, name := range header {
			row[name] = values[i]
		}
		rows = append(rows, row)
	}

	return header, rows, nil
}

// ReadFile reads a CSV file written by WriteFile.
func ReadFile(path string) ([]string, []Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	header, rows, err := Read(f)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return header, rows, nil
}

// Require returns the value of column name, failing with
// ErrMalformedRecord if the row does not carry it.
func (r Row) Require(name string) (string, error) {
	v, ok := r[name]
	if !ok {
		return "", fmt.Errorf("%w: missing column %q", ErrMalformedRecord, name)
	}
	return v, nil
}
