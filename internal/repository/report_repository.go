package repository

import (
	"context"

	"github.com/nazorathub/nazorat-hub/internal/entity"
	"github.com/nazorathub/nazorat-hub/internal/infra/gateway"
)

// ReportRepository is the append-only ledger of call outcomes.
type ReportRepository struct {
	Gateway *gateway.Gateway
}

func NewReportRepository(gw *gateway.Gateway) *ReportRepository {
	return &ReportRepository{Gateway: gw}
}

// All returns reports newest first.
func (r *ReportRepository) All(ctx context.Context) ([]entity.Report, error) {
	reports, _, err := r.Gateway.FetchReports(ctx)
	return reports, err
}

func (r *ReportRepository) Append(ctx context.Context, report entity.Report) error {
	return r.Gateway.SaveReport(ctx, report)
}
