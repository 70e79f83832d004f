package database_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nazorathub/nazorat-hub/internal/entity"
	"github.com/nazorathub/nazorat-hub/internal/infra/database"
)

func newStore(t *testing.T) *database.Store {
	t.Helper()
	store, err := database.NewStore(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestCollectionRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)

	in := []entity.Lead{
		{ID: "L1", Name: "Aziza", Status: entity.LeadStatusNew},
		{ID: "L2", Name: "Bobur", Status: entity.LeadStatusCalled, AssignedTo: "op1"},
	}
	require.NoError(t, store.WriteCollection(ctx, database.KeyLeads, in))

	var out []entity.Lead
	require.NoError(t, store.ReadCollection(ctx, database.KeyLeads, &out))
	assert.Equal(t, in, out)
}

func TestUnwrittenCollectionReadsEmpty(t *testing.T) {
	var out []entity.User
	require.NoError(t, newStore(t).ReadCollection(context.Background(), database.KeyUsers, &out))
	assert.Empty(t, out)
}

func TestWriteCollectionReplaces(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)

	require.NoError(t, store.WriteCollection(ctx, database.KeyUsers, []entity.User{{ID: "u1"}, {ID: "u2"}}))
	require.NoError(t, store.WriteCollection(ctx, database.KeyUsers, []entity.User{{ID: "u3"}}))

	var out []entity.User
	require.NoError(t, store.ReadCollection(ctx, database.KeyUsers, &out))
	require.Len(t, out, 1)
	assert.Equal(t, "u3", out[0].ID)
}

func TestConfigRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)

	v, err := store.GetConfig(ctx, database.ConfigSupabaseURL)
	require.NoError(t, err)
	assert.Equal(t, "", v)

	require.NoError(t, store.SetConfig(ctx, database.ConfigSupabaseURL, "https://example.supabase.co"))
	require.NoError(t, store.SetConfig(ctx, database.ConfigSupabaseURL, "https://other.supabase.co"))

	v, err = store.GetConfig(ctx, database.ConfigSupabaseURL)
	require.NoError(t, err)
	assert.Equal(t, "https://other.supabase.co", v)
}
