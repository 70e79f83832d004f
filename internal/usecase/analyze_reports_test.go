package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/nazorathub/nazorat-hub/internal/entity"
	"github.com/nazorathub/nazorat-hub/internal/usecase"
)

func TestAnalyzeReportsEmptySet(t *testing.T) {
	uc := usecase.NewAnalyzeReportsUseCase(new(MockAnalyzer))
	out := uc.Execute(context.Background(), nil)
	assert.Equal(t, "Hisobotlar yo'q.", out.Analysis)
}

func TestAnalyzeReportsPassesThroughCommentary(t *testing.T) {
	analyzer := new(MockAnalyzer)
	reports := []entity.Report{{ID: "r1", OperatorName: "Dilnoza", VisitStatus: entity.VisitWillCome}}
	analyzer.On("Analyze", mock.Anything, reports).Return("Yaxshi natija.", nil)

	uc := usecase.NewAnalyzeReportsUseCase(analyzer)
	out := uc.Execute(context.Background(), reports)
	assert.Equal(t, "Yaxshi natija.", out.Analysis)
}

func TestAnalyzeReportsFailureYieldsFixedFallback(t *testing.T) {
	analyzer := new(MockAnalyzer)
	reports := []entity.Report{{ID: "r1"}}
	analyzer.On("Analyze", mock.Anything, reports).Return("", errors.New("quota exceeded"))

	uc := usecase.NewAnalyzeReportsUseCase(analyzer)
	out := uc.Execute(context.Background(), reports)
	assert.Equal(t, "AI xizmati hozircha mavjud emas.", out.Analysis)
}

func TestAnalyzeReportsWithoutCollaborator(t *testing.T) {
	uc := usecase.NewAnalyzeReportsUseCase(nil)
	out := uc.Execute(context.Background(), []entity.Report{{ID: "r1"}})
	assert.Equal(t, "AI xizmati hozircha mavjud emas.", out.Analysis)
}
