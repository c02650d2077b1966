package snapshot_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devjournal/internal/journal/adapters/snapshot"
	"devjournal/internal/journal/domain/entities"
)

var fixedNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func strPtr(s string) *string { return &s }

func sampleDataset() *entities.Dataset {
	created := time.Date(2024, 5, 10, 8, 30, 15, 0, time.UTC)
	updated := created.Add(90 * time.Minute)

	data := entities.NewDataset()
	data.Users["u1"] = &entities.User{
		ID:        "u1",
		Username:  "alice",
		Password:  "$2a$10$hash",
		Email:     strPtr("alice@example.com"),
		FirstName: strPtr("Alice"),
		CreatedAt: created,
		UpdatedAt: updated,
	}
	data.Insights["i1"] = &entities.Insight{
		ID:          "i1",
		Title:       "A",
		Excerpt:     "B",
		Content:     "C",
		Tags:        []string{"y", "x"},
		PublishedAt: created,
		UpdatedAt:   updated,
	}
	data.DiaryEntries["d1"] = &entities.DiaryEntry{
		ID:        "d1",
		Title:     "day one",
		Content:   "notes",
		Tags:      []string{},
		Date:      created,
		UpdatedAt: updated,
	}
	data.Tutorials["t1"] = &entities.Tutorial{
		ID:          "t1",
		Title:       "Go basics",
		Description: "intro",
		Content:     "package main",
		Language:    "go",
		Difficulty:  entities.DifficultyBeginner,
		Duration:    "30 min",
		PublishedAt: created,
		UpdatedAt:   updated,
	}
	return data
}

func TestFileStore_LoadMissingFile(t *testing.T) {
	store := snapshot.NewFileStore(filepath.Join(t.TempDir(), "data.json"))

	data := store.Load(context.Background())

	require.NotNil(t, data)
	assert.Empty(t, data.Users)
	assert.Empty(t, data.Insights)
	assert.Empty(t, data.DiaryEntries)
	assert.Empty(t, data.Tutorials)
	assert.NotNil(t, data.Tutorials)
}

func TestFileStore_LoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	data := snapshot.NewFileStore(path).Load(context.Background())

	require.NotNil(t, data)
	assert.Empty(t, data.Insights)
	assert.NotNil(t, data.Users)
}

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "data.json")
	store := snapshot.NewFileStore(path)
	ctx := context.Background()
	want := sampleDataset()

	require.NoError(t, store.Save(ctx, want))
	got := store.Load(ctx)

	assert.Equal(t, want, got)
}

func TestFileStore_SaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	store := snapshot.NewFileStore(path)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, sampleDataset()))
	require.NoError(t, store.Save(ctx, entities.NewDataset()))

	got := store.Load(ctx)
	assert.Empty(t, got.Users)
	assert.Empty(t, got.Tutorials)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestFileStore_FileLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, snapshot.NewFileStore(path).Save(context.Background(), sampleDataset()))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc map[string]map[string]map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))

	assert.Len(t, doc, 4)
	for _, key := range []string{"users", "insights", "diaryEntries", "tutorials"} {
		assert.Contains(t, doc, key)
	}

	user := doc["users"]["u1"]
	assert.Equal(t, "alice", user["username"])
	assert.Equal(t, "Alice", user["firstName"])
	assert.Nil(t, user["lastName"])
	assert.Contains(t, user, "profileImageUrl")
	assert.Equal(t, "2024-05-10T08:30:15.000Z", user["createdAt"])

	assert.Equal(t, []any{"y", "x"}, doc["insights"]["i1"]["tags"])
	assert.Equal(t, "2024-05-10T08:30:15.000Z", doc["diaryEntries"]["d1"]["date"])
	assert.Equal(t, "beginner", doc["tutorials"]["t1"]["difficulty"])
}

func TestFileStore_LoadDefaultsTimestamps(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	raw := `{
		"users": {},
		"insights": {
			"i1": {"id": "i1", "title": "A", "excerpt": "B", "content": "C", "tags": null,
			       "publishedAt": null, "updatedAt": "not a date"}
		},
		"diaryEntries": {
			"d1": {"id": "d1", "title": "T", "content": "C", "tags": ["a"], "date": "2024-01-02"}
		}
	}`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o600))

	data := snapshot.NewFileStore(path, snapshot.WithClock(fixedClock)).Load(context.Background())

	insight := data.Insights["i1"]
	require.NotNil(t, insight)
	assert.Equal(t, fixedNow, insight.PublishedAt)
	assert.Equal(t, fixedNow, insight.UpdatedAt)
	assert.Equal(t, []string{}, insight.Tags)

	entry := data.DiaryEntries["d1"]
	require.NotNil(t, entry)
	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), entry.Date)
	assert.Equal(t, fixedNow, entry.UpdatedAt)

	assert.NotNil(t, data.Tutorials)
	assert.Empty(t, data.Tutorials)
}

func TestFileStore_LoadUsesMapKeyAsID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	raw := `{"tutorials": {"t-key": {"title": "no id field", "difficulty": "advanced"}}}`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o600))

	data := snapshot.NewFileStore(path).Load(context.Background())

	tut := data.Tutorials["t-key"]
	require.NotNil(t, tut)
	assert.Equal(t, "t-key", tut.ID)
	assert.Equal(t, entities.DifficultyAdvanced, tut.Difficulty)
}

func TestFileStore_SaveFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	store := snapshot.NewFileStore(filepath.Join(blocker, "data.json"))
	err := store.Save(context.Background(), sampleDataset())

	require.Error(t, err)
	assert.ErrorIs(t, err, entities.ErrPersistence)
}
