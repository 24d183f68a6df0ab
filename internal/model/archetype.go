package model

// ArchetypeID is the stable identifier of a behavioral archetype.
type ArchetypeID string

const (
	ArchetypeTraditionalGiant  ArchetypeID = "traditional_giant"
	ArchetypeAmbitiousScaler   ArchetypeID = "ambitious_scaler"
	ArchetypeDigitalBeginner   ArchetypeID = "digital_beginner"
	ArchetypeInnovationTheater ArchetypeID = "innovation_theater"
	ArchetypeDistressedFighter ArchetypeID = "distressed_fighter"
	ArchetypeTireKicker        ArchetypeID = "tire_kicker"
)

// Archetype is the selected behavioral profile. The descriptive lists come
// verbatim from the catalogue; Confidence is the winning compatibility value.
type Archetype struct {
	ID                  ArchetypeID `json:"tipo"`
	Name                string      `json:"nombre"`
	Description         string      `json:"descripcion"`
	TypicalFrustrations []string    `json:"frustraciones_tipicas"`
	Motivators          []string    `json:"motivadores"`
	ExpectedObjections  []string    `json:"objeciones_esperadas"`
	SalesApproach       []string    `json:"enfoque_comercial"`
	IdealEntryPoint     string      `json:"punto_entrada_ideal"`
	ExpansionPotential  string      `json:"potencial_expansion"`
	Confidence          float64     `json:"confianza"`
}
