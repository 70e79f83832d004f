package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/nazorathub/nazorat-hub/internal/entity"
	"github.com/nazorathub/nazorat-hub/internal/infra/gateway"
)

// LeadRepository owns the lead set. Pool queries preserve the gateway's
// insertion order; no sorting is applied.
type LeadRepository struct {
	Gateway *gateway.Gateway
}

func NewLeadRepository(gw *gateway.Gateway) *LeadRepository {
	return &LeadRepository{Gateway: gw}
}

func (r *LeadRepository) All(ctx context.Context) ([]entity.Lead, error) {
	leads, _, err := r.Gateway.FetchLeads(ctx)
	return leads, err
}

// UnassignedPool returns the general pool: no operator and still uncalled.
func (r *LeadRepository) UnassignedPool(ctx context.Context) ([]entity.Lead, error) {
	return r.filtered(ctx, func(l entity.Lead) bool { return l.InPool() })
}

// PoolForOperator returns the operator's queue of uncalled leads.
func (r *LeadRepository) PoolForOperator(ctx context.Context, operatorID string) ([]entity.Lead, error) {
	return r.filtered(ctx, func(l entity.Lead) bool {
		return l.AssignedTo == operatorID && l.Status == entity.LeadStatusNew
	})
}

// BulkAdd stamps incoming records (generated id where missing, status new,
// assignedTo when a target operator is given) and persists the batch.
func (r *LeadRepository) BulkAdd(ctx context.Context, leads []entity.Lead, operatorID string) error {
	stamped := make([]entity.Lead, 0, len(leads))
	for _, l := range leads {
		if l.ID == "" {
			l.ID = uuid.New().String()
		}
		l.Status = entity.LeadStatusNew
		l.AssignedTo = operatorID
		stamped = append(stamped, l)
	}
	return r.Gateway.SaveLeads(ctx, stamped)
}

func (r *LeadRepository) Update(ctx context.Context, l entity.Lead) error {
	return r.Gateway.UpdateLead(ctx, l)
}

// Purge deletes every lead matching the predicate. Zero matches is a no-op.
func (r *LeadRepository) Purge(ctx context.Context, match func(entity.Lead) bool) error {
	leads, _, err := r.Gateway.FetchLeads(ctx)
	if err != nil {
		return err
	}
	var ids []string
	for _, l := range leads {
		if match(l) {
			ids = append(ids, l.ID)
		}
	}
	return r.Gateway.DeleteLeads(ctx, ids)
}

func (r *LeadRepository) filtered(ctx context.Context, keep func(entity.Lead) bool) ([]entity.Lead, error) {
	leads, _, err := r.Gateway.FetchLeads(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entity.Lead, 0, len(leads))
	for _, l := range leads {
		if keep(l) {
			out = append(out, l)
		}
	}
	return out, nil
}
