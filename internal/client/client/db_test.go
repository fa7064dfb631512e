package client

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func TestInitDatabase_CreatesSessionSchema(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "client.db")

	db, err := InitDatabase(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`INSERT INTO session(key, value) VALUES('authToken', 'tok')`)
	assert.NoError(t, err)
}

func TestInitDatabase_Idempotent(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "client.db")
	ctx := context.Background()

	db, err := InitDatabase(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = InitDatabase(ctx, dsn)
	require.NoError(t, err)
	_ = db.Close()
}
