package profile

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/jask/onboarded/internal/database"
	"github.com/jask/onboarded/internal/database/repository"
)

func newTestStore(t *testing.T) (*SQLStore, *sql.DB) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.db")
	require.NoError(t, database.RunMigrations(path))
	db, err := database.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, database.SeedDefaults(context.Background(), db))
	return NewSQLStore(db, nil), db
}

func ptr[T any](v T) *T { return &v }

func TestReadFreshStoreIsSignedOut(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)
	got, err := store.Read(context.Background())
	require.NoError(t, err)
	if diff := cmp.Diff(Profile{}, got); diff != "" {
		t.Fatalf("fresh profile mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteProfileRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, _ := newTestStore(t)
	require.NoError(t, store.WriteProfile(ctx, "Ann", 30, "Female"))

	got, err := store.Read(ctx)
	require.NoError(t, err)
	want := Profile{Name: ptr("Ann"), Age: ptr(30), Gender: ptr("Female"), SignedIn: true}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("profile mismatch (-want +got):\n%s", diff)
	}
}

func TestClearProfile(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, db := newTestStore(t)
	require.NoError(t, store.WriteProfile(ctx, "Bartholomew", 99, "Non-Binary"))
	require.NoError(t, store.ClearProfile(ctx))

	got, err := store.Read(ctx)
	require.NoError(t, err)
	if diff := cmp.Diff(Profile{}, got); diff != "" {
		t.Fatalf("cleared profile mismatch (-want +got):\n%s", diff)
	}

	rows, err := repository.NewSettingsRepo(db).List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, KeySignedIn, rows[0].Key)
	require.Equal(t, "false", rows[0].Value)
}

func TestClearProfileWhenAlreadySignedOut(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, _ := newTestStore(t)
	require.NoError(t, store.ClearProfile(ctx))
	got, err := store.Read(ctx)
	require.NoError(t, err)
	require.False(t, got.SignedIn)
}

func TestReadTreatsIncompleteSignedInAsSignedOut(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, db := newTestStore(t)
	repo := repository.NewSettingsRepo(db)
	require.NoError(t, repo.Set(ctx, KeySignedIn, "true"))
	require.NoError(t, repo.Set(ctx, KeyName, "Ann"))

	got, err := store.Read(ctx)
	require.NoError(t, err)
	require.False(t, got.SignedIn)
	require.Equal(t, "Ann", *got.Name)
	require.Nil(t, got.Age)
}

func TestReadIgnoresUnparsableValues(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, db := newTestStore(t)
	repo := repository.NewSettingsRepo(db)
	require.NoError(t, repo.Set(ctx, KeyAge, "thirty"))
	require.NoError(t, repo.Set(ctx, KeySignedIn, "yes please"))

	got, err := store.Read(ctx)
	require.NoError(t, err)
	require.Nil(t, got.Age)
	require.False(t, got.SignedIn)
}
