package repository_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nazorathub/nazorat-hub/internal/entity"
	"github.com/nazorathub/nazorat-hub/internal/infra/database"
	"github.com/nazorathub/nazorat-hub/internal/infra/gateway"
	"github.com/nazorathub/nazorat-hub/internal/repository"
)

// offlineRepo builds a repository over a real cache with no remote, the
// configuration every property must hold under anyway.
func offlineRepo(t *testing.T) *repository.LeadRepository {
	t.Helper()
	store, err := database.NewStore(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return repository.NewLeadRepository(gateway.New(nil, store, zap.NewNop()))
}

func seed(t *testing.T, repo *repository.LeadRepository, names ...string) []entity.Lead {
	t.Helper()
	leads := make([]entity.Lead, 0, len(names))
	for _, n := range names {
		leads = append(leads, entity.Lead{Name: n, Phone: "+99890"})
	}
	require.NoError(t, repo.BulkAdd(context.Background(), leads, ""))
	all, err := repo.All(context.Background())
	require.NoError(t, err)
	return all
}

func TestBulkAddStampsRecords(t *testing.T) {
	repo := offlineRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.BulkAdd(ctx, []entity.Lead{{Name: "Aziza"}, {Name: "Bobur"}}, "op1"))

	assigned, err := repo.PoolForOperator(ctx, "op1")
	require.NoError(t, err)
	require.Len(t, assigned, 2)
	for _, l := range assigned {
		assert.NotEmpty(t, l.ID)
		assert.Equal(t, entity.LeadStatusNew, l.Status)
		assert.Equal(t, "op1", l.AssignedTo)
	}

	pool, err := repo.UnassignedPool(ctx)
	require.NoError(t, err)
	assert.Empty(t, pool)
}

func TestPoolExclusivity(t *testing.T) {
	repo := offlineRepo(t)
	ctx := context.Background()

	all := seed(t, repo, "A", "B", "C")

	// Assign B to op1, mark C called.
	b := all[1]
	b.AssignedTo = "op1"
	require.NoError(t, repo.Update(ctx, b))
	c := all[2]
	c.Status = entity.LeadStatusCalled
	require.NoError(t, repo.Update(ctx, c))

	pool, err := repo.UnassignedPool(ctx)
	require.NoError(t, err)
	require.Len(t, pool, 1)
	assert.Equal(t, all[0].ID, pool[0].ID)

	op1, err := repo.PoolForOperator(ctx, "op1")
	require.NoError(t, err)
	require.Len(t, op1, 1)
	assert.Equal(t, b.ID, op1[0].ID)

	// A lead never shows up in two operators' pools.
	op2, err := repo.PoolForOperator(ctx, "op2")
	require.NoError(t, err)
	assert.Empty(t, op2)
}

func TestCalledLeadNeverReturnsToAnyPool(t *testing.T) {
	repo := offlineRepo(t)
	ctx := context.Background()

	all := seed(t, repo, "A")
	lead := all[0]
	lead.AssignedTo = "op7"
	require.NoError(t, repo.Update(ctx, lead))
	lead.Status = entity.LeadStatusCalled
	require.NoError(t, repo.Update(ctx, lead))

	// AssignedTo was never cleared, yet the lead is out of every pool.
	op7, err := repo.PoolForOperator(ctx, "op7")
	require.NoError(t, err)
	assert.Empty(t, op7)

	pool, err := repo.UnassignedPool(ctx)
	require.NoError(t, err)
	assert.Empty(t, pool)
}

func TestPurgeByPredicate(t *testing.T) {
	repo := offlineRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.BulkAdd(ctx, []entity.Lead{{Name: "A"}, {Name: "B"}}, "op1"))
	require.NoError(t, repo.BulkAdd(ctx, []entity.Lead{{Name: "C"}}, ""))

	// Clear the operator's queue.
	require.NoError(t, repo.Purge(ctx, func(l entity.Lead) bool { return l.AssignedTo == "op1" }))

	all, err := repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "C", all[0].Name)

	// Clear the general pool.
	require.NoError(t, repo.Purge(ctx, func(l entity.Lead) bool { return l.AssignedTo == "" }))
	all, err = repo.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	// Nothing left to match: still a no-op, not an error.
	assert.NoError(t, repo.Purge(ctx, func(l entity.Lead) bool { return true }))
}

func TestPoolPreservesInsertionOrder(t *testing.T) {
	repo := offlineRepo(t)
	ctx := context.Background()

	seed(t, repo, "first", "second", "third")

	pool, err := repo.UnassignedPool(ctx)
	require.NoError(t, err)
	require.Len(t, pool, 3)
	assert.Equal(t, "first", pool[0].Name)
	assert.Equal(t, "second", pool[1].Name)
	assert.Equal(t, "third", pool[2].Name)
}
