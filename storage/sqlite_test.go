package storage

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liangshaojie/portfolio/prefs"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestPreferenceStore_RoundTrip(t *testing.T) {
	store := NewPreferenceStore(newTestDB(t), "visitor-1")

	_, err := store.Get(prefs.KeyTheme)
	assert.ErrorIs(t, err, prefs.ErrNotFound)

	require.NoError(t, store.Set(prefs.KeyTheme, "dark"))
	require.NoError(t, store.Set(prefs.KeyTheme, "light"))
	require.NoError(t, store.Set(prefs.KeyLanguage, "en"))

	theme, err := store.Get(prefs.KeyTheme)
	require.NoError(t, err)
	assert.Equal(t, "light", theme)

	lang, err := store.Get(prefs.KeyLanguage)
	require.NoError(t, err)
	assert.Equal(t, "en", lang)
}

func TestPreferenceStore_OwnersAreIsolated(t *testing.T) {
	db := newTestDB(t)
	a := NewPreferenceStore(db, "a")
	b := NewPreferenceStore(db, "b")

	require.NoError(t, a.Set(prefs.KeyLanguage, "en"))

	_, err := b.Get(prefs.KeyLanguage)
	assert.ErrorIs(t, err, prefs.ErrNotFound)
}

func TestPreferenceStore_RejectsOtherKeys(t *testing.T) {
	store := NewPreferenceStore(newTestDB(t), "visitor-1")

	assert.ErrorIs(t, store.Set("email", "x@y.z"), prefs.ErrUnknownKey)
	_, err := store.Get("email")
	assert.ErrorIs(t, err, prefs.ErrUnknownKey)
}

func TestPreferenceStore_WorksWithRead(t *testing.T) {
	store := NewPreferenceStore(newTestDB(t), "visitor-1")
	require.NoError(t, store.Set(prefs.KeyTheme, "dark"))

	got, err := prefs.Read(store)
	require.NoError(t, err)
	assert.Equal(t, prefs.Dark, got.Theme)
	assert.Empty(t, got.Language)
}

func TestPrune(t *testing.T) {
	db := newTestDB(t)
	store := NewPreferenceStore(db, "visitor-1")
	require.NoError(t, store.Set(prefs.KeyTheme, "dark"))
	ctx := context.Background()

	n, err := Prune(ctx, db, time.Hour)
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = Prune(ctx, db, -time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, err = store.Get(prefs.KeyTheme)
	assert.ErrorIs(t, err, prefs.ErrNotFound)
}

func TestOpen_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "portfolio.db")
	db, err := Open(path)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, NewPreferenceStore(db, "v").Set(prefs.KeyLanguage, "zh"))
}
