package export

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"

	"github.com/andes-consulting/readiness-cli/internal/model"
)

func exportFixture() []model.DiagnosticResult {
	return []model.DiagnosticResult{
		{
			ID:        "diag-1",
			CreatedAt: time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC),
			Prospect: model.ProspectInfo{
				CompanyName:  "Banco Andino",
				Sector:       "🏦 Banca",
				ContactName:  "María Gómez",
				ContactEmail: "maria@bancoandino.co",
			},
			Responses: model.DiagnosticResponses{
				Motivations:     []string{model.MotivationCompetitors, model.MotivationSpecific},
				MainFrustration: model.FrustrationSlowService,
			},
			Score: model.DiagnosticScore{
				DigitalMaturity:     model.NewDigitalMaturity(10, 10, 10, 10),
				InvestmentCapacity:  model.NewInvestmentCapacity(15, 10, 5),
				CommercialViability: model.NewCommercialViability(10, 10, 10),
				Final:               100,
				Tier:                model.TierA,
				Confidence:          0.9,
			},
			Archetype: model.Archetype{
				ID:         model.ArchetypeTraditionalGiant,
				Name:       "🏦 Traditional Giant",
				Confidence: 0.7,
			},
			QuickWins:          []model.QuickWin{{Title: "Chatbot de Atención al Cliente"}},
			SuggestedService:   model.ServiceFullImplementation,
			SuggestedAmountMin: 25_000_000,
			SuggestedAmountMax: 45_000_000,
			MeetingPrep:        model.MeetingPrep{CloseProbability: 95},
		},
	}
}

func TestBuild_SheetsAndLayout(t *testing.T) {
	analytics := &model.DashboardData{
		TotalDiagnostics:       1,
		TierACount:             1,
		AverageScore:           100,
		AverageCloseProb:       95,
		EstimatedConversion:    100,
		EstimatedPipelineValue: 33_250_000,
	}

	file, err := Build(exportFixture(), analytics)
	require.NoError(t, err)
	require.Len(t, file.Sheets, 3)
	assert.Equal(t, "responses", file.Sheets[0].Name)
	assert.Equal(t, "scores", file.Sheets[1].Name)
	assert.Equal(t, "analytics", file.Sheets[2].Name)

	responses := file.Sheets[0]
	require.Len(t, responses.Rows, 2)
	require.Len(t, responses.Rows[0].Cells, len(responsesHeader))
	assert.Equal(t, "timestamp", responses.Rows[0].Cells[0].String())
	assert.Equal(t, "2025-03-14 10:30:00", responses.Rows[1].Cells[0].String())
	assert.Equal(t, "Banco Andino", responses.Rows[1].Cells[2].String())

	motivations := responses.Rows[1].Cells[11].String()
	assert.Contains(t, motivations, model.MotivationCompetitors)
	assert.Contains(t, motivations, model.MotivationSpecific)

	scores := file.Sheets[1]
	require.Len(t, scores.Rows, 2)
	require.Len(t, scores.Rows[0].Cells, len(scoresHeader))

	final, err := scores.Rows[1].Cells[11].Int()
	require.NoError(t, err)
	assert.Equal(t, 100, final)
	assert.Equal(t, "A", scores.Rows[1].Cells[12].String())
	assert.Equal(t, "traditional_giant", scores.Rows[1].Cells[27].String())
}

func TestBuild_AnalyticsSheetValues(t *testing.T) {
	file, err := Build(nil, &model.DashboardData{
		TotalDiagnostics:       2,
		TierACount:             1,
		TierCCount:             1,
		AverageScore:           50,
		AverageCloseProb:       60,
		EstimatedConversion:    50,
		EstimatedPipelineValue: 42_000_000,
	})
	require.NoError(t, err)

	analytics := file.Sheets[2]
	require.Len(t, analytics.Rows, 9)
	assert.Equal(t, "Métrica", analytics.Rows[0].Cells[0].String())
	assert.Equal(t, "Pipeline Value Estimado", analytics.Rows[7].Cells[0].String())
	assert.Equal(t, "$42000000 COP", analytics.Rows[7].Cells[1].String())
	assert.Equal(t, "50.0%", analytics.Rows[8].Cells[1].String())
}

func TestWrite_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.xlsx")
	require.NoError(t, Write(path, exportFixture(), nil))

	file, err := xlsx.OpenFile(path)
	require.NoError(t, err)
	require.Len(t, file.Sheets, 3)
	assert.Equal(t, "diag-1", file.Sheets[0].Rows[1].Cells[1].String())
}
