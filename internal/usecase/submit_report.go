package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/nazorathub/nazorat-hub/internal/entity"
)

// SubmitReportUseCase appends a call report to the ledger and, when the
// report references a lead, transitions that lead new -> called. The
// transition is one-way; nothing in this subsystem ever sets a lead back to
// new.
type SubmitReportUseCase struct {
	Reports ReportRepositoryInterface
	Leads   LeadRepositoryInterface
}

func NewSubmitReportUseCase(reports ReportRepositoryInterface, leads LeadRepositoryInterface) *SubmitReportUseCase {
	return &SubmitReportUseCase{Reports: reports, Leads: leads}
}

func (uc *SubmitReportUseCase) Execute(ctx context.Context, report entity.Report) (*entity.Report, error) {
	if report.ID == "" {
		report.ID = uuid.New().String()
	}
	if report.Timestamp == "" {
		report.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}
	if report.Status == "" {
		report.Status = entity.ReportStatusPending
	}

	if err := uc.Reports.Append(ctx, report); err != nil {
		return nil, &TechnicalError{
			Code:    "REPORT_APPEND_FAILED",
			Message: "failed to append report: " + err.Error(),
		}
	}

	if report.LeadID != "" {
		if err := uc.markLeadCalled(ctx, report.LeadID); err != nil {
			return nil, &TechnicalError{
				Code:    "LEAD_TRANSITION_FAILED",
				Message: "report stored but lead status update failed: " + err.Error(),
			}
		}
	}

	return &report, nil
}

func (uc *SubmitReportUseCase) markLeadCalled(ctx context.Context, leadID string) error {
	leads, err := uc.Leads.All(ctx)
	if err != nil {
		return err
	}
	for _, l := range leads {
		if l.ID != leadID {
			continue
		}
		if l.Status == entity.LeadStatusCalled {
			return nil
		}
		l.Status = entity.LeadStatusCalled
		return uc.Leads.Update(ctx, l)
	}
	// Manually entered leads are reported without ever being persisted;
	// an unknown id is not an error.
	return nil
}
