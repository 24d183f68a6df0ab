package model

// Dimension maximums for the three scored axes.
const (
	DigitalMaturityMax     = 40
	InvestmentCapacityMax  = 30
	CommercialViabilityMax = 30
	FinalScoreMax          = 100
	MotivationBonusMax     = 5
)

// DigitalMaturity scores how digitized the prospect's operation is.
// Four components, each 0-10. Total is derived, never set directly.
type DigitalMaturity struct {
	DataDrivenDecisions   int `json:"decisiones_basadas_datos"`
	StandardizedProcesses int `json:"procesos_estandarizados"`
	IntegratedSystems     int `json:"sistemas_integrados"`
	OperationalEfficiency int `json:"eficiencia_operativa"`
	Total                 int `json:"score_total"`
}

// NewDigitalMaturity builds the sub-score with its total recomputed.
func NewDigitalMaturity(decisions, processes, systems, efficiency int) DigitalMaturity {
	return DigitalMaturity{
		DataDrivenDecisions:   decisions,
		StandardizedProcesses: processes,
		IntegratedSystems:     systems,
		OperationalEfficiency: efficiency,
		Total:                 decisions + processes + systems + efficiency,
	}
}

// InvestmentCapacity scores the prospect's ability to fund a project.
// Components: budget 0-15, investment history 0-10, company size 0-5.
type InvestmentCapacity struct {
	AvailableBudget   int `json:"presupuesto_disponible"`
	InvestmentHistory int `json:"historial_inversion"`
	CompanySize       int `json:"tamano_empresa"`
	Total             int `json:"score_total"`
}

// NewInvestmentCapacity builds the sub-score with its total recomputed.
func NewInvestmentCapacity(budget, history, size int) InvestmentCapacity {
	return InvestmentCapacity{
		AvailableBudget:   budget,
		InvestmentHistory: history,
		CompanySize:       size,
		Total:             budget + history + size,
	}
}

// CommercialViability scores how likely the deal is to close.
// Three components, each 0-10.
type CommercialViability struct {
	ClearProblem  int `json:"problema_claro"`
	RealUrgency   int `json:"urgencia_real"`
	DecisionPower int `json:"poder_decision"`
	Total         int `json:"score_total"`
}

// NewCommercialViability builds the sub-score with its total recomputed.
func NewCommercialViability(problem, urgency, decision int) CommercialViability {
	return CommercialViability{
		ClearProblem:  problem,
		RealUrgency:   urgency,
		DecisionPower: decision,
		Total:         problem + urgency + decision,
	}
}

// DiagnosticScore aggregates the three dimension sub-scores, the bonus-adjusted
// final score, the derived tier, and a classification confidence in [0,1].
// Unrecognized lists response fields whose answers were not found in the
// scoring tables; they scored zero but are surfaced so the intake layer can
// warn instead of silently conflating "worst answer" with "stale option".
type DiagnosticScore struct {
	DigitalMaturity     DigitalMaturity     `json:"madurez_digital"`
	InvestmentCapacity  InvestmentCapacity  `json:"capacidad_inversion"`
	CommercialViability CommercialViability `json:"viabilidad_comercial"`
	Final               int                 `json:"score_final"`
	Tier                Tier                `json:"tier"`
	Confidence          float64             `json:"confianza_clasificacion"`
	Unrecognized        []string            `json:"unrecognized_answers,omitempty"`
}

// NewDiagnosticScore derives the final score and tier from the sub-scores and
// the motivation bonus. The bonus is assumed already clamped to [0,5]; the
// final score is capped at 100. Confidence is filled in by the engine after
// construction since it depends on the raw responses as well.
func NewDiagnosticScore(m DigitalMaturity, c InvestmentCapacity, v CommercialViability, bonus int) DiagnosticScore {
	final := m.Total + c.Total + v.Total + bonus
	if final > FinalScoreMax {
		final = FinalScoreMax
	}
	return DiagnosticScore{
		DigitalMaturity:     m,
		InvestmentCapacity:  c,
		CommercialViability: v,
		Final:               final,
		Tier:                TierFor(final),
	}
}
