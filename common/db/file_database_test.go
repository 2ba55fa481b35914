package db

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func newTestDB(t *testing.T) *FileDatabase {
	t.Helper()
	return NewFileDatabase(filepath.Join(t.TempDir(), "products.json"), slog.New(slog.DiscardHandler))
}

func TestReadMissingFile(t *testing.T) {
	db := newTestDB(t)
	var out []record
	err := db.Read(context.Background(), &out)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestWriteThenRead(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	in := []record{{ID: 1, Name: "Laptop Dell XPS"}, {ID: 2, Name: "Canon printer"}}

	require.NoError(t, db.Write(ctx, in))

	var out []record
	require.NoError(t, db.Read(ctx, &out))
	assert.Equal(t, in, out)

	// no temp files left behind
	entries, err := os.ReadDir(filepath.Dir(db.FilePath()))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestReadCorruptFile(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, os.WriteFile(db.FilePath(), []byte("{not json"), 0o644))

	var out []record
	err := db.Read(context.Background(), &out)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}
