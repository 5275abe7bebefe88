package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestRecordAndRecent(t *testing.T) {
	store, err := Open(":memory:")
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	base := time.Now().Add(-time.Hour).Truncate(time.Second)

	for i := 0; i < 3; i++ {
		run := Run{
			ID:          uuid.NewString(),
			StartedAt:   base.Add(time.Duration(i) * time.Minute),
			Duration:    42 * time.Second,
			Version:     "0.1.0",
			Outcome:     "success",
			Archive:     "demo-0.1.0.vsix",
			ArchiveSize: 1024,
			Commit:      "abc123",
			Dirty:       i == 2,
		}
		require.NoError(t, store.Record(ctx, run))
	}

	runs, err := store.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 3)

	// Newest first.
	require.True(t, runs[0].StartedAt.After(runs[1].StartedAt))
	require.True(t, runs[1].StartedAt.After(runs[2].StartedAt))
	require.True(t, runs[0].Dirty)
	require.Equal(t, 42*time.Second, runs[0].Duration)
	require.Equal(t, "demo-0.1.0.vsix", runs[0].Archive)
}

func TestRecentLimit(t *testing.T) {
	store, err := Open(":memory:")
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		require.NoError(t, store.Record(ctx, Run{
			ID:        uuid.NewString(),
			StartedAt: time.Now().Add(time.Duration(i) * time.Second),
			Version:   "0.1.0",
			Outcome:   "failed",
		}))
	}

	runs, err := store.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
}

func TestOpenCreatesParentDirectories(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), ".vsixbuilder", "history.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Record(context.Background(), Run{
		ID:        uuid.NewString(),
		StartedAt: time.Now(),
		Version:   "0.1.0",
		Outcome:   "success",
	}))

	// Reopen and read back.
	require.NoError(t, store.Close())
	reopened, err := Open(dbPath)
	require.NoError(t, err)
	defer reopened.Close()

	runs, err := reopened.Recent(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, runs, 1)
}
