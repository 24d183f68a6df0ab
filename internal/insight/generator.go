// Package insight derives recommendations from a scored, classified
// diagnostic: quick wins, red flags, strategic insights and the meeting
// preparation bundle. Every derivation is a pure function of its inputs.
package insight

import (
	"fmt"

	"github.com/andes-consulting/readiness-cli/internal/model"
)

// MaxQuickWins caps the recommendation list. Items are appended in fixed
// priority order (frustration template, then data, then integration) and
// later items are dropped once the cap is reached — never re-ranked.
const MaxQuickWins = 3

// Component thresholds that trigger the secondary and tertiary quick wins.
const (
	lowDataDrivenMax  = 5
	lowIntegrationMax = 5
)

// Sub-score thresholds for the category insights.
const (
	strongCapacityMin = 20
	lowMaturityMax    = 25
	weakViabilityMax  = 15
)

// Generator derives recommendations. Stateless; safe for concurrent use.
type Generator struct{}

// NewGenerator returns an insight generator.
func NewGenerator() *Generator { return &Generator{} }

// quickWinByFrustration maps the primary frustration to its recommended
// first intervention.
var quickWinByFrustration = map[string]model.QuickWin{
	model.FrustrationCantScale: {
		Title:              "Automatización de Proceso Administrativo",
		Description:        "Automatizar proceso de mayor volumen manual (pedidos, facturación, o reportes) para reducir 30-40% de carga administrativa",
		EstimatedImpact:    "Equivalente a 2-3 personas FTE",
		ImplementationTime: "60-90 días",
		ApproxInvestment:   "$15M-25M COP",
	},
	model.FrustrationSlowService: {
		Title:              "Chatbot de Atención al Cliente",
		Description:        "Implementar asistente virtual para resolver 60-70% de consultas frecuentes 24/7",
		EstimatedImpact:    "Reducción 50% tiempo de respuesta",
		ImplementationTime: "45-60 días",
		ApproxInvestment:   "$12M-20M COP",
	},
	model.FrustrationManualErrors: {
		Title:              "Validación Automática de Datos",
		Description:        "Sistema de validación y verificación automática en procesos críticos",
		EstimatedImpact:    "Reducción 80% errores operativos",
		ImplementationTime: "30-45 días",
		ApproxInvestment:   "$8M-15M COP",
	},
	model.FrustrationNoVisibility: {
		Title:              "Dashboard Gerencial en Tiempo Real",
		Description:        "Panel de control ejecutivo con KPIs críticos actualizados automáticamente",
		EstimatedImpact:    "Visibilidad inmediata de operación",
		ImplementationTime: "30-45 días",
		ApproxInvestment:   "$10M-18M COP",
	},
	model.FrustrationHighCosts: {
		Title:              "Optimización de Procesos con IA",
		Description:        "Identificar y automatizar los 3 procesos más costosos",
		EstimatedImpact:    "Reducción 15-25% costos operativos",
		ImplementationTime: "90-120 días",
		ApproxInvestment:   "$20M-35M COP",
	},
}

var dataFoundationsQuickWin = model.QuickWin{
	Title:              "Fundamentos de Business Intelligence",
	Description:        "Implementar BI básico para consolidar datos dispersos y generar reportes automáticos",
	EstimatedImpact:    "Base para decisiones data-driven",
	ImplementationTime: "60 días",
	ApproxInvestment:   "$8M-12M COP",
}

var systemsIntegrationQuickWin = model.QuickWin{
	Title:              "Integración de Sistemas Críticos",
	Description:        "Conectar los 2-3 sistemas más importantes vía APIs para eliminar trabajo manual",
	EstimatedImpact:    "Reducción 40% tiempo en transferencia de datos",
	ImplementationTime: "45-60 días",
	ApproxInvestment:   "$10M-15M COP",
}

// QuickWins returns up to MaxQuickWins recommendations for the prospect.
func (g *Generator) QuickWins(score model.DiagnosticScore, responses model.DiagnosticResponses, _ model.Archetype) []model.QuickWin {
	var wins []model.QuickWin

	if primary, ok := quickWinByFrustration[responses.MainFrustration]; ok {
		wins = append(wins, primary)
	}
	if score.DigitalMaturity.DataDrivenDecisions <= lowDataDrivenMax {
		wins = append(wins, dataFoundationsQuickWin)
	}
	if score.DigitalMaturity.IntegratedSystems <= lowIntegrationMax {
		wins = append(wins, systemsIntegrationQuickWin)
	}

	if len(wins) > MaxQuickWins {
		wins = wins[:MaxQuickWins]
	}
	return wins
}

// RedFlags returns the risk signals triggered by the responses. Checks are
// independent; each appends a fixed record in declaration order. No cap.
func (g *Generator) RedFlags(score model.DiagnosticScore, responses model.DiagnosticResponses, prospect model.ProspectInfo) []model.RedFlag {
	var flags []model.RedFlag

	if responses.ApprovalProcess == model.ApprovalComplex {
		flags = append(flags, model.RedFlag{
			Title:       "Proceso de Aprobación Complejo",
			Description: "Múltiples aprobadores pueden alargar el ciclo de ventas significativamente",
			Severity:    model.SeverityMedium,
			Mitigation:  "Identificar sponsor ejecutivo early, mapear stakeholders, preparar business case sólido",
		})
	}

	if responses.BudgetRange == model.BudgetLow || responses.BudgetRange == model.BudgetUnknown {
		flags = append(flags, model.RedFlag{
			Title:       "Presupuesto Indefinido",
			Description: "Sin presupuesto claro puede indicar falta de compromiso real",
			Severity:    model.SeverityHigh,
			Mitigation:  "Validar en primera reunión si hay budget aprobado o timeline de aprobación",
		})
	}

	if responses.CriticalProcesses == model.ProcessesPersonDependent ||
		responses.CriticalProcesses == model.ProcessesUndocumented {
		flags = append(flags, model.RedFlag{
			Title:       "Cultura Resistente al Cambio",
			Description: "Procesos dependientes de personas pueden indicar resistencia a estandarización",
			Severity:    model.SeverityMedium,
			Mitigation:  "Incluir módulo de change management, identificar champions internos, piloto pequeño primero",
		})
	}

	if len(responses.Motivations) == 1 &&
		responses.Motivations[0] == model.MotivationCuriosity &&
		responses.Urgency == model.UrgencyBrowsing {
		flags = append(flags, model.RedFlag{
			Title:       "Falta de Urgencia Real",
			Description: "Exploración sin problema específico raramente convierte",
			Severity:    model.SeverityHigh,
			Mitigation:  "Calificar rigurosamente, ofrecer contenido educativo en vez de consultoría, nutrir para futuro",
		})
	}

	return flags
}

// Insights returns at most one insight per category: a strength when
// investment capacity is solid, an opportunity when digital maturity is low,
// a risk when commercial viability is weak.
func (g *Generator) Insights(score model.DiagnosticScore, _ model.DiagnosticResponses, _ model.Archetype) []model.Insight {
	var insights []model.Insight

	if score.InvestmentCapacity.Total >= strongCapacityMin {
		insights = append(insights, model.Insight{
			Category:       model.CategoryStrength,
			Title:          "Capacidad de Inversión Sólida",
			Description:    fmt.Sprintf("Con score de %d/%d en capacidad de inversión, el prospecto tiene músculo financiero para proyectos significativos", score.InvestmentCapacity.Total, model.InvestmentCapacityMax),
			Recommendation: "Proponer solución robusta ($25K-45K) en vez de aproximación minimalista",
		})
	}

	if score.DigitalMaturity.Total <= lowMaturityMax {
		insights = append(insights, model.Insight{
			Category:       model.CategoryOpportunity,
			Title:          "Alto Potencial de Mejora Operativa",
			Description:    "Baja madurez digital significa múltiples oportunidades de quick wins y ROI alto",
			Recommendation: "Empezar con automatización de proceso más doloroso para demostrar valor rápido",
		})
	}

	if score.CommercialViability.Total <= weakViabilityMax {
		insights = append(insights, model.Insight{
			Category:       model.CategoryRisk,
			Title:          "Viabilidad Comercial Cuestionable",
			Description:    fmt.Sprintf("Score bajo (%d/%d) indica riesgo de que no cierre o ciclo muy largo", score.CommercialViability.Total, model.CommercialViabilityMax),
			Recommendation: "Calificar rigurosamente en primera llamada antes de invertir tiempo en propuesta",
		})
	}

	return insights
}
