package database

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveMigrationsDir(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "migrations"), 0o755))
	nested := filepath.Join(root, "test", "integration")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	tests := []struct {
		name        string
		workDir     string
		dir         string
		expected    string
		expectError bool
	}{
		{name: "current directory", workDir: root, dir: "migrations", expected: "migrations"},
		{name: "two levels up", workDir: nested, dir: "migrations", expected: filepath.Join("..", "..", "migrations")},
		{name: "absolute path", workDir: nested, dir: filepath.Join(root, "migrations"), expected: filepath.Join(root, "migrations")},
		{name: "missing", workDir: nested, dir: "schema", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Chdir(tt.workDir)

			path, err := resolveMigrationsDir(tt.dir)

			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, path)
		})
	}
}
