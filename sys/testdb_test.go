package sys

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// setupTestDB points the global DB at a fresh on-disk database for the
// duration of one test.
func setupTestDB(t *testing.T) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db") + "?_journal_mode=WAL&_timeout=5000"
	require.NoError(t, InitDatabase(context.Background(), path))
	t.Cleanup(CloseDatabase)
}
