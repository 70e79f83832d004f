package usecase

import (
	"context"

	"github.com/nazorathub/nazorat-hub/internal/entity"
)

// Placeholder for rows whose name column is blank, kept from the original
// deployment language.
const unknownName = "Noma'lum"

type ImportLeadsInput struct {
	// Rows are data rows of the uploaded sheet, header already stripped:
	// column 0 name, column 1 surname, column 2 phone.
	Rows       [][]string
	OperatorID string
}

type ImportLeadsOutput struct {
	Imported int `json:"imported"`
}

// ImportLeadsUseCase turns spreadsheet rows into new pool leads. Malformed
// rows are tolerated: a missing name gets a placeholder, a missing phone
// stays empty. No row is rejected.
type ImportLeadsUseCase struct {
	Leads LeadRepositoryInterface
}

func NewImportLeadsUseCase(leads LeadRepositoryInterface) *ImportLeadsUseCase {
	return &ImportLeadsUseCase{Leads: leads}
}

func (uc *ImportLeadsUseCase) Execute(ctx context.Context, input ImportLeadsInput) (*ImportLeadsOutput, error) {
	leads := make([]entity.Lead, 0, len(input.Rows))
	for _, row := range input.Rows {
		leads = append(leads, entity.Lead{
			Name:    column(row, 0, unknownName),
			Surname: column(row, 1, ""),
			Phone:   column(row, 2, ""),
		})
	}

	if err := uc.Leads.BulkAdd(ctx, leads, input.OperatorID); err != nil {
		return nil, &TechnicalError{
			Code:    "IMPORT_FAILED",
			Message: "failed to persist imported leads: " + err.Error(),
		}
	}
	return &ImportLeadsOutput{Imported: len(leads)}, nil
}

func column(row []string, i int, def string) string {
	if i < len(row) && row[i] != "" {
		return row[i]
	}
	return def
}
