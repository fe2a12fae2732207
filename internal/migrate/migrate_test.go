package migrate

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrations(t *testing.T) {
	names, err := fs.Glob(embedded, "sql/*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, names)

	for _, name := range names {
		b, err := fs.ReadFile(embedded, name)
		require.NoError(t, err)
		assert.Contains(t, string(b), "-- +goose Up", name)
		assert.Contains(t, string(b), "-- +goose Down", name)
	}
}
