// Package scoring maps questionnaire answers and firmographics to the three
// dimension sub-scores and the aggregate 0-100 readiness score.
//
// Each single-select field scores through a fixed option->points table. The
// answer space is small, fixed and ordinal, so a direct mapping is simpler
// and more auditable than a formula, and keeps scoring logic and questionnaire
// content independently versionable. An answer missing from its table scores
// zero and is reported in DiagnosticScore.Unrecognized; the intake layer
// decides whether that is a stale option or a genuinely worst answer.
package scoring

import (
	"github.com/andes-consulting/readiness-cli/internal/model"
)

// Motivation bonus adjustments, clamped into [0, model.MotivationBonusMax]
// after summation.
const (
	BonusCompetitivePressure = 2
	BonusSlowCostlyProcess   = 2
	BonusSpecificProblem     = 2
	BonusCostReduction       = 1
	BonusBoardMandate        = 1
	PenaltyCuriosityOnly     = 2
)

// Classification confidence adjustments, clamped into [0, 1].
const (
	ConfidenceBase            = 0.5
	ConfidenceFarFromBoundary = 0.2
	ConfidenceUnknownAnswer   = 0.1
	ConfidenceConsistency     = 0.1
	ConfidenceUrgentViability = 0.1
)

// Thresholds used by the confidence heuristic.
const (
	farHighScore          = 80
	farLowScore           = 30
	consistentMaturityMin = 30
	consistentCapacityMin = 20
	viableTotalMin        = 20
	urgentComponentMin    = 7
)

// Option->points tables, one per single-select field. Keys are verbatim
// questionnaire content and must stay in sync with the question catalogue.

var decisionPoints = map[string]int{
	"Basados en reportes automáticos de sistemas":       10,
	"Basados en reportes que alguien arma manualmente":  7,
	"Basados en Excel que alimentamos nosotros":         5,
	"Basados en intuición y experiencia":                3,
	"Basados en 'ir preguntando a cada área'":           1,
}

var processPoints = map[string]int{
	"Están documentados y son iguales siempre": 10,
	model.ProcessesPersonDependent:             5,
	model.ProcessesUndocumented:                3,
	model.ProcessesAdHoc:                       1,
}

// Repetitive-task ratio is inverted: less repetitive work means a more
// efficient operation.
var repetitivePoints = map[string]int{
	"Menos del 20% del tiempo": 10,
	"20-40% del tiempo":        7,
	"40-60% del tiempo":        4,
	"Más del 60% del tiempo":   2,
	model.RepetitiveNoIdea:     0,
}

var infoSharingPoints = map[string]int{
	"Sí, todo está en sistemas conectados":                    10,
	"Más o menos, hay que pedirse cosas por email/WhatsApp":   6,
	"No, cada área tiene su propia información":               3,
	"¿Qué información? (Cada uno tiene su Excel)":             1,
}

var investmentPoints = map[string]int{
	"Sí, inversiones significativas (>$50M COP)": 10,
	"Sí, inversiones moderadas ($10-50M COP)":    7,
	"Sí, inversiones pequeñas (<$10M COP)":       4,
	model.InvestmentNone:                         0,
}

var frustrationPoints = map[string]int{
	model.FrustrationCantScale:    10,
	model.FrustrationSlowService:  10,
	model.FrustrationManualErrors: 9,
	model.FrustrationNoVisibility: 8,
	model.FrustrationHighCosts:    9,
	"Otro":                        5,
}

var urgencyPoints = map[string]int{
	model.UrgencyImmediate: 10,
	model.UrgencyThisYear:  7,
	model.UrgencyExploring: 3,
	model.UrgencyBrowsing:  1,
}

var approvalPoints = map[string]int{
	model.ApprovalSoleDecider: 10,
	model.ApprovalPartners:    7,
	model.ApprovalBoard:       5,
	model.ApprovalComplex:     2,
}

var budgetPoints = map[string]int{
	model.BudgetTop:     15,
	model.BudgetHigh:    12,
	model.BudgetMid:     8,
	model.BudgetLow:     3,
	model.BudgetUnknown: 5,
}

// Company-size lookups. The contributed value is the max of the two: a large
// headcount with modest revenue still counts as large.
var revenueSizePoints = map[string]int{
	"Más de $10,000M COP":      5,
	"$2,000M - $10,000M COP":   4,
	"$500M - $2,000M COP":      3,
	"Menos de $500M COP":       1,
}

var employeeSizePoints = map[string]int{
	"Más de 500": 5,
	"201-500":    4,
	"51-200":     3,
	"21-50":      2,
	"1-20":       1,
}

// Engine computes diagnostic scores. It is stateless and safe for concurrent
// use; all tables are read-only.
type Engine struct{}

// NewEngine returns a scoring engine.
func NewEngine() *Engine { return &Engine{} }

// lookup resolves an answer against its field table. Misses score zero and
// record the field name in unrecognized.
func lookup(table map[string]int, field, answer string, unrecognized *[]string) int {
	pts, ok := table[answer]
	if !ok {
		*unrecognized = append(*unrecognized, field)
		return 0
	}
	return pts
}

// DigitalMaturity scores the digital-maturity dimension (0-40).
func (e *Engine) DigitalMaturity(r model.DiagnosticResponses, unrecognized *[]string) model.DigitalMaturity {
	return model.NewDigitalMaturity(
		lookup(decisionPoints, "toma_decisiones", r.DecisionMaking, unrecognized),
		lookup(processPoints, "procesos_criticos", r.CriticalProcesses, unrecognized),
		lookup(infoSharingPoints, "compartir_informacion", r.InfoSharing, unrecognized),
		lookup(repetitivePoints, "tareas_repetitivas", r.RepetitiveTasks, unrecognized),
	)
}

// InvestmentCapacity scores the investment-capacity dimension (0-30).
func (e *Engine) InvestmentCapacity(r model.DiagnosticResponses, p model.ProspectInfo, unrecognized *[]string) model.InvestmentCapacity {
	budget := lookup(budgetPoints, "presupuesto_rango", r.BudgetRange, unrecognized)
	history := lookup(investmentPoints, "inversion_reciente", r.RecentInvestment, unrecognized)

	sizeRev := lookup(revenueSizePoints, "facturacion_rango", p.RevenueRange, unrecognized)
	sizeEmp := lookup(employeeSizePoints, "empleados_rango", p.EmployeeRange, unrecognized)
	size := sizeRev
	if sizeEmp > size {
		size = sizeEmp
	}

	return model.NewInvestmentCapacity(budget, history, size)
}

// CommercialViability scores the commercial-viability dimension (0-30).
func (e *Engine) CommercialViability(r model.DiagnosticResponses, unrecognized *[]string) model.CommercialViability {
	return model.NewCommercialViability(
		lookup(frustrationPoints, "frustracion_principal", r.MainFrustration, unrecognized),
		lookup(urgencyPoints, "urgencia", r.Urgency, unrecognized),
		lookup(approvalPoints, "proceso_aprobacion", r.ApprovalProcess, unrecognized),
	)
}

// MotivationBonus returns the motivation bonus in [0, 5]. High-intent tags add
// points, sole generic curiosity subtracts, and the sum is clamped so the
// bonus can never go negative or exceed the cap.
func (e *Engine) MotivationBonus(motivations []string) int {
	bonus := 0

	for _, m := range motivations {
		switch m {
		case model.MotivationCompetitors:
			bonus += BonusCompetitivePressure
		case model.MotivationSlowProcess:
			bonus += BonusSlowCostlyProcess
		case model.MotivationSpecific:
			bonus += BonusSpecificProblem
		case model.MotivationReduceCosts:
			bonus += BonusCostReduction
		case model.MotivationBoardMandate:
			// Neutral-positive: someone else holds the urgency.
			bonus += BonusBoardMandate
		}
	}

	if len(motivations) == 1 && motivations[0] == model.MotivationCuriosity {
		bonus -= PenaltyCuriosityOnly
	}

	if bonus < 0 {
		bonus = 0
	}
	if bonus > model.MotivationBonusMax {
		bonus = model.MotivationBonusMax
	}
	return bonus
}

// Confidence estimates how trustworthy the classification is, in [0, 1].
// Consistent answers raise it; "don't know" style answers lower it.
func (e *Engine) Confidence(score model.DiagnosticScore, r model.DiagnosticResponses) float64 {
	confidence := ConfidenceBase

	if score.Final >= farHighScore || score.Final <= farLowScore {
		confidence += ConfidenceFarFromBoundary
	}

	if r.RepetitiveTasks == model.RepetitiveNoIdea {
		confidence -= ConfidenceUnknownAnswer
	}
	if r.BudgetRange == model.BudgetUnknown {
		confidence -= ConfidenceUnknownAnswer
	}

	if score.DigitalMaturity.Total >= consistentMaturityMin &&
		score.InvestmentCapacity.Total >= consistentCapacityMin {
		confidence += ConfidenceConsistency
	}

	if score.CommercialViability.Total >= viableTotalMin &&
		score.CommercialViability.RealUrgency >= urgentComponentMin {
		confidence += ConfidenceUrgentViability
	}

	if confidence < 0 {
		confidence = 0
	}
	if confidence > 1 {
		confidence = 1
	}
	return confidence
}

// CalculateFullScore computes the complete diagnostic score: the three
// dimension sub-scores, the motivation bonus, the bonus-adjusted final score
// and tier, and the classification confidence.
func (e *Engine) CalculateFullScore(r model.DiagnosticResponses, p model.ProspectInfo) model.DiagnosticScore {
	var unrecognized []string

	maturity := e.DigitalMaturity(r, &unrecognized)
	capacity := e.InvestmentCapacity(r, p, &unrecognized)
	viability := e.CommercialViability(r, &unrecognized)

	bonus := e.MotivationBonus(r.Motivations)

	score := model.NewDiagnosticScore(maturity, capacity, viability, bonus)
	score.Unrecognized = unrecognized
	score.Confidence = e.Confidence(score, r)

	return score
}
