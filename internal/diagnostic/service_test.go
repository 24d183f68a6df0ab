package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andes-consulting/readiness-cli/internal/insight"
	"github.com/andes-consulting/readiness-cli/internal/model"
)

func idealResponses() model.DiagnosticResponses {
	return model.DiagnosticResponses{
		Motivations:            []string{model.MotivationCompetitors, model.MotivationSpecific},
		DecisionMaking:         "Basados en reportes automáticos de sistemas",
		CriticalProcesses:      "Están documentados y son iguales siempre",
		RepetitiveTasks:        "Menos del 20% del tiempo",
		InfoSharing:            "Sí, todo está en sistemas conectados",
		TechTeam:               "Sí, equipo completo (5+ personas)",
		ImplementationCapacity: "Tenemos presupuesto y podemos decidir",
		RecentInvestment:       "Sí, inversiones significativas (>$50M COP)",
		MainFrustration:        model.FrustrationSlowService,
		Urgency:                model.UrgencyImmediate,
		ApprovalProcess:        model.ApprovalSoleDecider,
		BudgetRange:            model.BudgetTop,
	}
}

func bankProspect() model.ProspectInfo {
	return model.ProspectInfo{
		CompanyName:   "Banco Andino",
		Sector:        "🏦 Banca",
		RevenueRange:  "Más de $10,000M COP",
		EmployeeRange: "Más de 500",
		ContactName:   "María Gómez",
		ContactEmail:  "maria@bancoandino.co",
		Role:          "Gerente General/CEO",
		City:          "Bogotá",
	}
}

func TestRun_IdealProspect(t *testing.T) {
	svc := NewService()
	result := svc.Run(bankProspect(), idealResponses())

	require.NotNil(t, result)
	assert.NotEmpty(t, result.ID)
	assert.False(t, result.CreatedAt.IsZero())

	assert.Equal(t, model.FinalScoreMax, result.Score.Final)
	assert.Equal(t, model.TierA, result.Score.Tier)
	assert.Equal(t, model.ServiceFullImplementation, result.SuggestedService)
	assert.Equal(t, int64(25_000_000), result.SuggestedAmountMin)
	assert.Equal(t, int64(45_000_000), result.SuggestedAmountMax)

	assert.Equal(t, insight.CloseProbabilityMax, result.MeetingPrep.CloseProbability)
	assert.NotEmpty(t, result.QuickWins)
	assert.LessOrEqual(t, len(result.QuickWins), insight.MaxQuickWins)
	assert.Empty(t, result.RedFlags)
}

func TestRun_LowIntentProspect(t *testing.T) {
	responses := model.DiagnosticResponses{
		Motivations:            []string{model.MotivationCuriosity},
		DecisionMaking:         "Basados en intuición y experiencia",
		CriticalProcesses:      model.ProcessesAdHoc,
		RepetitiveTasks:        model.RepetitiveNoIdea,
		InfoSharing:            "No, cada área tiene su propia información",
		TechTeam:               "No, contratamos externos cuando se necesita",
		ImplementationCapacity: "No hay presupuesto disponible",
		RecentInvestment:       model.InvestmentNone,
		MainFrustration:        "Otro",
		Urgency:                model.UrgencyBrowsing,
		ApprovalProcess:        model.ApprovalComplex,
		BudgetRange:            model.BudgetLow,
	}
	prospect := model.ProspectInfo{
		CompanyName:   "Tienda El Vecino",
		Sector:        "🛒 Retail",
		RevenueRange:  "Menos de $500M COP",
		EmployeeRange: "1-20",
	}

	svc := NewService()
	result := svc.Run(prospect, responses)

	assert.Equal(t, model.TierC, result.Score.Tier)
	assert.Less(t, result.Score.Final, model.TierBThreshold)
	assert.Equal(t, model.ServiceWorkshop, result.SuggestedService)

	// Budget and approval-complexity flags at minimum.
	require.GreaterOrEqual(t, len(result.RedFlags), 2)
}

func TestRun_Idempotent(t *testing.T) {
	svc := NewService()
	a := svc.Run(bankProspect(), idealResponses())
	b := svc.Run(bankProspect(), idealResponses())

	// IDs and timestamps differ per run; everything derived must not.
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, a.Score, b.Score)
	assert.Equal(t, a.Archetype, b.Archetype)
	assert.Equal(t, a.QuickWins, b.QuickWins)
	assert.Equal(t, a.RedFlags, b.RedFlags)
	assert.Equal(t, a.Insights, b.Insights)
	assert.Equal(t, a.MeetingPrep, b.MeetingPrep)
}

func TestSuggestedService_ByTier(t *testing.T) {
	svc, min, max := suggestedService(model.TierB)
	assert.Equal(t, model.ServiceDeepDiagnostic, svc)
	assert.Equal(t, int64(12_000_000), min)
	assert.Equal(t, int64(25_000_000), max)

	svc, min, max = suggestedService(model.TierC)
	assert.Equal(t, model.ServiceWorkshop, svc)
	assert.Equal(t, int64(0), min)
	assert.Equal(t, int64(5_000_000), max)
}
