package localdb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_AppliesMigrations(t *testing.T) {
	db, err := Open(context.Background(), "file:localdbtest?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	// the credentials table must exist and accept the two slots
	_, err = db.Exec(`INSERT INTO credentials (key, value) VALUES ('token', 'abc')`)
	require.NoError(t, err)

	var value []byte
	err = db.QueryRow(`SELECT value FROM credentials WHERE key = 'token'`).Scan(&value)
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), value)
}

func TestRunMigrations_Idempotent(t *testing.T) {
	db, err := Open(context.Background(), "file:localdbtest2?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, RunMigrations(context.Background(), db))
}
