//-------------------------------------------------------------------------
//
// pgEdge Shop Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package tabular

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pair struct {
	header []string
	values []string
}

func (p pair) Header() []string { return p.header }
func (p pair) Values() []string { return p.values }

func kv(id, name string) pair {
	return pair{header: []string{"id", "name"}, values: []string{id, name}}
}

func TestWriteHeaderFromFirstRecord(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, []pair{kv("1", "Ada"), kv("2", "Grace, Hopper")})
	require.NoError(t, err)

	assert.Equal(t, "id,name\n1,Ada\n2,\"Grace, Hopper\"\n", buf.String())
}

func TestWriteEmpty(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, []pair{})
	assert.ErrorIs(t, err, ErrNoRecords)
	assert.Empty(t, buf.String())
}

func TestWriteMismatchedShape(t *testing.T) {
	tests := []struct {
		name    string
		records []pair
	}{
		{
			name:    "different header",
			records: []pair{kv("1", "a"), {header: []string{"id", "title"}, values: []string{"2", "b"}}},
		},
		{
			name:    "short values",
			records: []pair{kv("1", "a"), {header: []string{"id", "name"}, values: []string{"2"}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Write(&bytes.Buffer{}, tt.records)
			assert.ErrorIs(t, err, ErrMalformedRecord)
		})
	}
}

func TestReadRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, []pair{kv("1", "Ada"), kv("2", "line\nbreak")}))

	header, rows, err := Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "name"}, header)
	require.Len(t, rows, 2)
	assert.Equal(t, Row{"id": "2", "name": "line\nbreak"}, rows[1])
}

func TestReadHeaderOnly(t *testing.T) {
	header, rows, err := Read(strings.NewReader("id,name\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "name"}, header)
	assert.Empty(t, rows)
}

func TestReadMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty input", ""},
		{"ragged row", "id,name\n1,Ada,extra\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Read(strings.NewReader(tt.input))
			assert.ErrorIs(t, err, ErrMalformedRecord)
		})
	}
}

func TestFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "people.csv")
	require.NoError(t, WriteFile(path, []pair{kv("7", "Lin")}))

	_, rows, err := ReadFile(path)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	v, err := rows[0].Require("name")
	require.NoError(t, err)
	assert.Equal(t, "Lin", v)

	_, err = rows[0].Require("email")
	assert.ErrorIs(t, err, ErrMalformedRecord)
}

func TestWriteFileEmptyCreatesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "none.csv")
	err := WriteFile(path, []pair(nil))
	assert.ErrorIs(t, err, ErrNoRecords)

	_, statErr := os.Stat(path)
	assert.True(t, errors.Is(statErr, os.ErrNotExist))
}

func TestReadFileMissing(t *testing.T) {
	_, _, err := ReadFile(filepath.Join(t.TempDir(), "missing.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
