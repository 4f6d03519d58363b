package contentstore

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func testDoc(id string, fetchedAt time.Time) *Document {
	return &Document{
		ArticleID: id,
		Symbol:    "AAPL",
		Market:    "US",
		Source:    "reuters",
		URL:       "https://example.com/" + id,
		Title:     "Quarterly results",
		Text:      "Apple reported quarterly results.",
		Provider:  "scraper",
		FetchedAt: fetchedAt,
	}
}

func TestSaveAndRead(t *testing.T) {
	store := newTestStore(t)
	fetchedAt := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)

	rel, err := store.Save(testDoc("a1", fetchedAt))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("AAPL", "2026-08-20", "a1.json"), rel)

	doc, err := store.Read(rel)
	require.NoError(t, err)
	assert.Equal(t, "a1", doc.ArticleID)
	assert.Equal(t, "Apple reported quarterly results.", doc.Text)
	assert.False(t, doc.Partial)
}

func TestSaveOverwritesExisting(t *testing.T) {
	store := newTestStore(t)
	fetchedAt := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)

	doc := testDoc("a1", fetchedAt)
	_, err := store.Save(doc)
	require.NoError(t, err)

	doc.Text = "updated body"
	rel, err := store.Save(doc)
	require.NoError(t, err)

	got, err := store.Read(rel)
	require.NoError(t, err)
	assert.Equal(t, "updated body", got.Text)
}

func TestSaveWithoutSymbolUsesUnassignedPartition(t *testing.T) {
	store := newTestStore(t)

	doc := testDoc("a2", time.Date(2026, 8, 21, 0, 0, 0, 0, time.UTC))
	doc.Symbol = ""
	rel, err := store.Save(doc)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("_unassigned", "2026-08-21", "a2.json"), rel)
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	store := newTestStore(t)
	rel, err := store.Save(testDoc("a1", time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, err)

	entries, err := os.ReadDir(filepath.Dir(filepath.Join(store.Root(), rel)))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "a1.json", entries[0].Name())
}

func TestReadMissing(t *testing.T) {
	store := newTestStore(t)
	_, err := store.Read(filepath.Join("AAPL", "2026-01-01", "nope.json"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReadRejectsEscapingPath(t *testing.T) {
	store := newTestStore(t)
	_, err := store.Read(filepath.Join("..", "..", "etc", "passwd"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestDeleteIsIdempotent(t *testing.T) {
	store := newTestStore(t)
	rel, err := store.Save(testDoc("a1", time.Now()))
	require.NoError(t, err)

	require.NoError(t, store.Delete(rel))
	require.NoError(t, store.Delete(rel))

	_, err = store.Read(rel)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSweepRemovesOldPartitions(t *testing.T) {
	store := newTestStore(t)

	old := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	recent := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)

	_, err := store.Save(testDoc("old-1", old))
	require.NoError(t, err)
	_, err = store.Save(testDoc("old-2", old))
	require.NoError(t, err)
	relRecent, err := store.Save(testDoc("new-1", recent))
	require.NoError(t, err)

	removed, err := store.Sweep(time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), nil)
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	_, err = store.Read(relRecent)
	assert.NoError(t, err)

	// The emptied date partition is gone.
	_, err = os.Stat(filepath.Join(store.Root(), "AAPL", "2026-07-01"))
	assert.True(t, os.IsNotExist(err))
}

func TestSweepKeepsFilesOwnedByLiveArticles(t *testing.T) {
	store := newTestStore(t)
	old := time.Date(2026, 6, 25, 0, 0, 0, 0, time.UTC)

	relLive, err := store.Save(testDoc("live-1", old))
	require.NoError(t, err)
	relDead, err := store.Save(testDoc("dead-1", old))
	require.NoError(t, err)

	var checked []string
	removed, err := store.Sweep(time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		func(ids []string) (map[string]bool, error) {
			checked = append(checked, ids...)
			return map[string]bool{"live-1": false, "dead-1": true}, nil
		})
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
	assert.ElementsMatch(t, []string{"live-1", "dead-1"}, checked)

	// The live article's file survives the age cutoff; the released one is
	// gone and the partition stays because it is not empty.
	_, err = store.Read(relLive)
	assert.NoError(t, err)
	_, err = store.Read(relDead)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSweepOwnerCheckFailureRemovesNothing(t *testing.T) {
	store := newTestStore(t)
	rel, err := store.Save(testDoc("a1", time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, err)

	removed, err := store.Sweep(time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		func([]string) (map[string]bool, error) {
			return nil, errors.New("db down")
		})
	require.NoError(t, err)
	assert.Zero(t, removed)

	_, err = store.Read(rel)
	assert.NoError(t, err)
}

func TestSweepPrunesEmptySymbolDirs(t *testing.T) {
	store := newTestStore(t)

	doc := testDoc("only", time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC))
	doc.Symbol = "TSLA"
	_, err := store.Save(doc)
	require.NoError(t, err)

	_, err = store.Sweep(time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), nil)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(store.Root(), "TSLA"))
	assert.True(t, os.IsNotExist(err))
}
