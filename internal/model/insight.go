package model

// Red flag severities.
const (
	SeverityLow    = "baja"
	SeverityMedium = "media"
	SeverityHigh   = "alta"
)

// Insight categories.
const (
	CategoryStrength    = "fortaleza"
	CategoryOpportunity = "oportunidad"
	CategoryRisk        = "riesgo"
)

// QuickWin is a short-horizon recommended intervention.
type QuickWin struct {
	Title              string `json:"titulo"`
	Description        string `json:"descripcion"`
	EstimatedImpact    string `json:"impacto_estimado"`
	ImplementationTime string `json:"tiempo_implementacion"`
	ApproxInvestment   string `json:"inversion_aproximada"`
}

// RedFlag is a risk signal suggesting low deal viability or sales friction.
type RedFlag struct {
	Title       string `json:"titulo"`
	Description string `json:"descripcion"`
	Severity    string `json:"severidad"`
	Mitigation  string `json:"mitigacion"`
}

// Insight is a category-tagged strategic observation.
type Insight struct {
	Category       string `json:"categoria"`
	Title          string `json:"titulo"`
	Description    string `json:"descripcion"`
	Recommendation string `json:"recomendacion"`
}

// MeetingPrep is the preparation bundle handed to the salesperson ahead of
// the follow-up call.
type MeetingPrep struct {
	Research         []string          `json:"investigacion_previa"`
	Materials        []string          `json:"materiales_llevar"`
	KeyQuestions     []string          `json:"preguntas_clave"`
	LikelyObjections map[string]string `json:"objeciones_probables"`
	KeyInsight       string            `json:"insight_clave"`
	CloseProbability int               `json:"probabilidad_cierre"`
}
