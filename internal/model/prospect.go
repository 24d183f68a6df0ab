// Package model defines the data types shared across the diagnostic pipeline.
package model

// Tier is the coarse priority bucket derived from the final score.
type Tier string

const (
	TierA Tier = "A" // ideal client (70-100)
	TierB Tier = "B" // nurture (40-69)
	TierC Tier = "C" // deprioritize (0-39)
)

// TierFor returns the tier for a final score. Thresholds are applied after
// the motivation bonus, never before.
func TierFor(scoreFinal int) Tier {
	switch {
	case scoreFinal >= TierAThreshold:
		return TierA
	case scoreFinal >= TierBThreshold:
		return TierB
	default:
		return TierC
	}
}

// Tier thresholds on the 0-100 final score.
const (
	TierAThreshold = 70
	TierBThreshold = 40
)

// ProspectInfo holds company identity and firmographics collected by the
// intake form. Immutable once constructed; the engine never mutates it.
type ProspectInfo struct {
	CompanyName   string `json:"nombre_empresa"`
	Sector        string `json:"sector"`
	RevenueRange  string `json:"facturacion_rango"`
	EmployeeRange string `json:"empleados_rango"`
	ContactName   string `json:"contacto_nombre"`
	ContactEmail  string `json:"contacto_email"`
	ContactPhone  string `json:"contacto_telefono,omitempty"`
	Role          string `json:"cargo"`
	City          string `json:"ciudad"`
}

// DiagnosticResponses holds the questionnaire answer set: one multi-select
// motivation field plus eleven single-select categorical fields. Values must
// come from the questionnaire catalogue; anything else scores zero.
type DiagnosticResponses struct {
	Motivations []string `json:"motivacion"`

	DecisionMaking         string `json:"toma_decisiones"`
	CriticalProcesses      string `json:"procesos_criticos"`
	RepetitiveTasks        string `json:"tareas_repetitivas"`
	InfoSharing            string `json:"compartir_informacion"`
	TechTeam               string `json:"equipo_tecnico"`
	ImplementationCapacity string `json:"capacidad_implementacion"`
	RecentInvestment       string `json:"inversion_reciente"`
	MainFrustration        string `json:"frustracion_principal"`

	// FrustrationDetail carries the free text entered when the prospect picks
	// "Otro" as their main frustration. Never scored; kept for the sales team.
	FrustrationDetail string `json:"frustracion_detalle,omitempty"`

	Urgency         string `json:"urgencia"`
	ApprovalProcess string `json:"proceso_aprobacion"`
	BudgetRange     string `json:"presupuesto_rango"`
}
