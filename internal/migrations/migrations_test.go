package migrations

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFS_ContainsGooseMigrations(t *testing.T) {
	files, err := fs.Glob(FS, "sql/*.sql")
	require.NoError(t, err)
	require.Len(t, files, 2)

	for _, name := range files {
		b, err := fs.ReadFile(FS, name)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(b), "-- +goose Up"), name)
		assert.Contains(t, string(b), "-- +goose Down", name)
	}
}

func TestUp_PropagatesError(t *testing.T) {
	orig := upContext
	defer func() { upContext = orig }()

	var gotDir string
	upContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		gotDir = dir
		return errors.New("boom")
	}

	err := Up(context.Background(), nil)
	assert.ErrorContains(t, err, "boom")
	assert.Equal(t, "sql", gotDir)
}

func TestUp_OK(t *testing.T) {
	orig := upContext
	defer func() { upContext = orig }()

	upContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return nil
	}

	assert.NoError(t, Up(context.Background(), nil))
}
