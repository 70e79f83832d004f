package gateway

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/nazorathub/nazorat-hub/internal/entity"
	"github.com/nazorathub/nazorat-hub/internal/infra/database"
	"github.com/nazorathub/nazorat-hub/internal/infra/http/middleware"
	"github.com/nazorathub/nazorat-hub/internal/infra/integration/supabase"
)

// Source tells the caller where a read was served from.
type Source int

const (
	SourceRemote Source = iota
	SourceCache
)

func (s Source) String() string {
	if s == SourceRemote {
		return "remote"
	}
	return "cache"
}

// RemoteStore is the remote tabular service behind the gateway. Implemented
// by the supabase client; faked in tests.
type RemoteStore interface {
	SelectAll(ctx context.Context, table, order string, dest any) error
	Upsert(ctx context.Context, table string, payload any) error
	Insert(ctx context.Context, table string, payload any) error
	DeleteIn(ctx context.Context, table string, ids []string) error
}

// Gateway mediates between the remote store and the local cache.
//
// Reads go to the remote first and silently degrade to the cache on any
// remote error; the caller sees which happened via the returned Source, never
// via an error. Writes update the cache synchronously and then attempt the
// remote; a remote write failure is logged and swallowed, so in offline mode
// the cache is the source of truth.
type Gateway struct {
	mu     sync.RWMutex
	remote RemoteStore
	cache  *database.Store
	log    *zap.Logger
}

// New builds a gateway. remote may be nil, which is plain offline mode.
func New(remote RemoteStore, cache *database.Store, log *zap.Logger) *Gateway {
	return &Gateway{remote: remote, cache: cache, log: log}
}

// Connected reports whether a remote client exists. It reflects construction
// from the current config, not a live connectivity probe.
func (g *Gateway) Connected() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.remote != nil
}

// UpdateConfig persists new remote credentials and swaps the remote client in
// place. A client that cannot be constructed leaves the gateway offline.
func (g *Gateway) UpdateConfig(ctx context.Context, url, key string) error {
	if err := g.cache.SetConfig(ctx, database.ConfigSupabaseURL, url); err != nil {
		return err
	}
	if err := g.cache.SetConfig(ctx, database.ConfigSupabaseKey, key); err != nil {
		return err
	}

	client, err := supabase.NewClient(url, key)

	g.mu.Lock()
	if err != nil {
		g.remote = nil
	} else {
		g.remote = client
	}
	g.mu.Unlock()

	if err != nil {
		g.log.Warn("remote client not constructed, running in local mode", zap.Error(err))
	} else {
		g.log.Info("remote store reconfigured")
	}
	return nil
}

func (g *Gateway) remoteStore() RemoteStore {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.remote
}

// fetch implements the shared read path: remote first, cache on any failure.
func fetch[T any](ctx context.Context, g *Gateway, table, order, cacheKey string) ([]T, Source, error) {
	if remote := g.remoteStore(); remote != nil {
		var out []T
		if err := remote.SelectAll(ctx, table, order, &out); err == nil {
			if out == nil {
				out = []T{}
			}
			return out, SourceRemote, nil
		} else {
			g.log.Warn("remote fetch failed, serving local cache",
				zap.String("collection", table), zap.Error(err))
			middleware.RecordGatewayFallback(table)
		}
	}

	var cached []T
	if err := g.cache.ReadCollection(ctx, cacheKey, &cached); err != nil {
		return nil, SourceCache, err
	}
	return cached, SourceCache, nil
}

// remoteWrite attempts a fire-and-forget remote mutation. Failure is logged
// and counted, never returned.
func (g *Gateway) remoteWrite(op string, fn func(remote RemoteStore) error) {
	remote := g.remoteStore()
	if remote == nil {
		return
	}
	if err := fn(remote); err != nil {
		g.log.Warn("remote write failed, local cache retains the change",
			zap.String("op", op), zap.Error(err))
		middleware.RecordIntegrationError("supabase")
	}
}

// FetchUsers returns all staff records.
func (g *Gateway) FetchUsers(ctx context.Context) ([]entity.User, Source, error) {
	return fetch[entity.User](ctx, g, "users", "", database.KeyUsers)
}

// SaveUser upserts one user: cache first, then remote.
func (g *Gateway) SaveUser(ctx context.Context, u entity.User) error {
	var cached []entity.User
	if err := g.cache.ReadCollection(ctx, database.KeyUsers, &cached); err != nil {
		return err
	}
	updated := make([]entity.User, 0, len(cached)+1)
	for _, existing := range cached {
		if existing.ID != u.ID {
			updated = append(updated, existing)
		}
	}
	updated = append(updated, u)
	if err := g.cache.WriteCollection(ctx, database.KeyUsers, updated); err != nil {
		return err
	}

	g.remoteWrite("save_user", func(remote RemoteStore) error {
		return remote.Upsert(ctx, "users", u)
	})
	return nil
}

// DeleteUser removes a user. Leads still referencing the user via AssignedTo
// are left as-is; clearing the operator's queue is a separate admin action.
func (g *Gateway) DeleteUser(ctx context.Context, userID string) error {
	var cached []entity.User
	if err := g.cache.ReadCollection(ctx, database.KeyUsers, &cached); err != nil {
		return err
	}
	remaining := make([]entity.User, 0, len(cached))
	for _, u := range cached {
		if u.ID != userID {
			remaining = append(remaining, u)
		}
	}
	if err := g.cache.WriteCollection(ctx, database.KeyUsers, remaining); err != nil {
		return err
	}

	g.remoteWrite("delete_user", func(remote RemoteStore) error {
		return remote.DeleteIn(ctx, "users", []string{userID})
	})
	return nil
}

// FetchReports returns the ledger, newest first.
func (g *Gateway) FetchReports(ctx context.Context) ([]entity.Report, Source, error) {
	return fetch[entity.Report](ctx, g, "reports", "timestamp.desc", database.KeyReports)
}

// SaveReport appends one report. The cache keeps newest-first order to match
// the remote read ordering.
func (g *Gateway) SaveReport(ctx context.Context, r entity.Report) error {
	var cached []entity.Report
	if err := g.cache.ReadCollection(ctx, database.KeyReports, &cached); err != nil {
		return err
	}
	updated := append([]entity.Report{r}, cached...)
	if err := g.cache.WriteCollection(ctx, database.KeyReports, updated); err != nil {
		return err
	}

	g.remoteWrite("save_report", func(remote RemoteStore) error {
		return remote.Insert(ctx, "reports", r)
	})
	return nil
}

// FetchLeads returns all leads in the store's insertion order.
func (g *Gateway) FetchLeads(ctx context.Context) ([]entity.Lead, Source, error) {
	return fetch[entity.Lead](ctx, g, "leads", "", database.KeyLeads)
}

// SaveLeads upserts a batch of leads, mirroring to the cache like every other
// collection.
func (g *Gateway) SaveLeads(ctx context.Context, leads []entity.Lead) error {
	if len(leads) == 0 {
		return nil
	}
	var cached []entity.Lead
	if err := g.cache.ReadCollection(ctx, database.KeyLeads, &cached); err != nil {
		return err
	}
	byID := make(map[string]int, len(cached))
	for i, l := range cached {
		byID[l.ID] = i
	}
	for _, l := range leads {
		if i, ok := byID[l.ID]; ok {
			cached[i] = l
		} else {
			byID[l.ID] = len(cached)
			cached = append(cached, l)
		}
	}
	if err := g.cache.WriteCollection(ctx, database.KeyLeads, cached); err != nil {
		return err
	}

	g.remoteWrite("save_leads", func(remote RemoteStore) error {
		return remote.Upsert(ctx, "leads", leads)
	})
	return nil
}

// UpdateLead upserts a single lead.
func (g *Gateway) UpdateLead(ctx context.Context, l entity.Lead) error {
	return g.SaveLeads(ctx, []entity.Lead{l})
}

// DeleteLeads removes the given leads. Zero ids is a no-op, not an error.
func (g *Gateway) DeleteLeads(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}

	var cached []entity.Lead
	if err := g.cache.ReadCollection(ctx, database.KeyLeads, &cached); err != nil {
		return err
	}
	remaining := make([]entity.Lead, 0, len(cached))
	for _, l := range cached {
		if !drop[l.ID] {
			remaining = append(remaining, l)
		}
	}
	if err := g.cache.WriteCollection(ctx, database.KeyLeads, remaining); err != nil {
		return err
	}

	g.remoteWrite("delete_leads", func(remote RemoteStore) error {
		return remote.DeleteIn(ctx, "leads", ids)
	})
	return nil
}
