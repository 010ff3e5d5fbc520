package credentials

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE credentials (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
`)
	require.NoError(t, err)
	return db
}

func TestGet_MissingKey_ReturnsNil(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))

	v, err := repo.Get(context.Background(), KeyToken)
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestSetGet_RoundTrip(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, KeyToken, []byte("abc")))
	v, err := repo.Get(ctx, KeyToken)
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), v)
}

func TestSet_OverwritesExistingSlot(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, KeyToken, []byte("first")))
	require.NoError(t, repo.Set(ctx, KeyToken, []byte("second")))

	v, err := repo.Get(ctx, KeyToken)
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), v)
}

func TestDelete_RemovesOnlyThatSlot(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, KeyToken, []byte("abc")))
	require.NoError(t, repo.Set(ctx, KeyUser, []byte(`{"id":"u1"}`)))
	require.NoError(t, repo.Delete(ctx, KeyToken))

	v, err := repo.Get(ctx, KeyToken)
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = repo.Get(ctx, KeyUser)
	require.NoError(t, err)
	assert.NotNil(t, v)
}

func TestClear_RemovesEverySlot(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, KeyToken, []byte("abc")))
	require.NoError(t, repo.Set(ctx, KeyUser, []byte(`{"id":"u1"}`)))
	require.NoError(t, repo.Clear(ctx))

	for _, key := range []string{KeyToken, KeyUser} {
		v, err := repo.Get(ctx, key)
		require.NoError(t, err)
		assert.Nil(t, v)
	}
}

func TestSaveSession_WritesBothSlots(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, repo.SaveSession(ctx, "abc", []byte(`{"id":"u1"}`)))

	token, err := repo.Get(ctx, KeyToken)
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), token)

	user, err := repo.Get(ctx, KeyUser)
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"id":"u1"}`), user)
}

func TestSaveSession_OverwritesPreviousSession(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, repo.SaveSession(ctx, "old", []byte(`{"id":"u1"}`)))
	require.NoError(t, repo.SaveSession(ctx, "new", []byte(`{"id":"u2"}`)))

	token, err := repo.Get(ctx, KeyToken)
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), token)
}

func TestTokens_EmptyWhenAbsent(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	ts := Tokens{Repo: repo}

	token, err := ts.Token(context.Background())
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestTokens_ReadsStoredToken(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()
	require.NoError(t, repo.Set(ctx, KeyToken, []byte("abc")))

	ts := Tokens{Repo: repo}
	token, err := ts.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "abc", token)
}
