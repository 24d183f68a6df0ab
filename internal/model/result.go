package model

import "time"

// Suggested services by tier, with COP amount ranges.
const (
	ServiceFullImplementation = "Implementación Completa"
	ServiceDeepDiagnostic     = "Diagnóstico Profundo + Roadmap"
	ServiceWorkshop           = "Workshop Educativo"
)

// DiagnosticResult ties everything produced by a single diagnostic run
// together. Constructed once and treated as immutable; it is the unit handed
// to the persistence and notification layers.
type DiagnosticResult struct {
	ID        string    `json:"diagnostic_id"`
	CreatedAt time.Time `json:"created_at"`

	Prospect  ProspectInfo        `json:"prospect_info"`
	Responses DiagnosticResponses `json:"responses"`
	Score     DiagnosticScore     `json:"score"`
	Archetype Archetype           `json:"arquetipo"`

	QuickWins []QuickWin `json:"quick_wins"`
	RedFlags  []RedFlag  `json:"red_flags"`
	Insights  []Insight  `json:"insights"`

	SuggestedService   string `json:"servicio_sugerido"`
	SuggestedAmountMin int64  `json:"monto_sugerido_min"`
	SuggestedAmountMax int64  `json:"monto_sugerido_max"`

	MeetingPrep MeetingPrep `json:"reunion_prep"`
}

// DashboardData holds aggregate stats over stored diagnostics.
type DashboardData struct {
	TotalDiagnostics       int            `json:"total_diagnosticos"`
	TierACount             int            `json:"tier_a_count"`
	TierBCount             int            `json:"tier_b_count"`
	TierCCount             int            `json:"tier_c_count"`
	ArchetypeDistribution  map[string]int `json:"arquetipos_distribucion"`
	SectorDistribution     map[string]int `json:"sectores_distribucion"`
	AverageScore           float64        `json:"score_promedio"`
	AverageCloseProb       float64        `json:"probabilidad_cierre_promedio"`
	EstimatedConversion    float64        `json:"conversion_rate_estimada"`
	EstimatedPipelineValue int64          `json:"pipeline_value_estimado"`
}
