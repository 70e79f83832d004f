package usecase

import (
	"context"
	"time"

	"github.com/nazorathub/nazorat-hub/internal/entity"
)

type BackupOutput struct {
	Users      []entity.User   `json:"users"`
	Reports    []entity.Report `json:"reports"`
	Leads      []entity.Lead   `json:"leads"`
	ExportDate string          `json:"exportDate"`
}

// BackupUseCase produces a point-in-time snapshot of all three collections.
type BackupUseCase struct {
	Users   UserRepositoryInterface
	Reports ReportRepositoryInterface
	Leads   LeadRepositoryInterface
}

func NewBackupUseCase(users UserRepositoryInterface, reports ReportRepositoryInterface, leads LeadRepositoryInterface) *BackupUseCase {
	return &BackupUseCase{Users: users, Reports: reports, Leads: leads}
}

func (uc *BackupUseCase) Execute(ctx context.Context) (*BackupOutput, error) {
	users, err := uc.Users.All(ctx)
	if err != nil {
		return nil, err
	}
	reports, err := uc.Reports.All(ctx)
	if err != nil {
		return nil, err
	}
	leads, err := uc.Leads.All(ctx)
	if err != nil {
		return nil, err
	}

	return &BackupOutput{
		Users:      users,
		Reports:    reports,
		Leads:      leads,
		ExportDate: time.Now().UTC().Format(time.RFC3339),
	}, nil
}
