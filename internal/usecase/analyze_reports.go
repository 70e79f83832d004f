package usecase

import (
	"context"

	"github.com/nazorathub/nazorat-hub/internal/entity"
)

// User-facing strings, kept in the deployment language like the rest of the
// operator-visible text.
const (
	noReportsMessage    = "Hisobotlar yo'q."
	analysisUnavailable = "AI xizmati hozircha mavjud emas."
)

type AnalyzeReportsOutput struct {
	Analysis string `json:"analysis"`
}

// AnalyzeReportsUseCase asks the AI collaborator for commentary over the
// given report set. Collaborator failure is absorbed into a fixed fallback
// string; this operation never errors.
type AnalyzeReportsUseCase struct {
	Analyzer ReportAnalyzer
}

func NewAnalyzeReportsUseCase(analyzer ReportAnalyzer) *AnalyzeReportsUseCase {
	return &AnalyzeReportsUseCase{Analyzer: analyzer}
}

func (uc *AnalyzeReportsUseCase) Execute(ctx context.Context, reports []entity.Report) *AnalyzeReportsOutput {
	if len(reports) == 0 {
		return &AnalyzeReportsOutput{Analysis: noReportsMessage}
	}
	if uc.Analyzer == nil {
		return &AnalyzeReportsOutput{Analysis: analysisUnavailable}
	}

	text, err := uc.Analyzer.Analyze(ctx, reports)
	if err != nil || text == "" {
		return &AnalyzeReportsOutput{Analysis: analysisUnavailable}
	}
	return &AnalyzeReportsOutput{Analysis: text}
}
