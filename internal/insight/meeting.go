package insight

import (
	"fmt"

	"github.com/andes-consulting/readiness-cli/internal/model"
)

// Close probability is additive from a fixed base, then capped.
const (
	closeProbabilityBase        = 30
	closeProbabilityTierA       = 40
	closeProbabilityTierB       = 20
	closeProbabilityUrgent      = 20
	closeProbabilityThisYear    = 10
	closeProbabilitySoleDecider = 10

	// CloseProbabilityMax is the highest reachable close estimate; even a
	// perfect diagnostic never claims more.
	CloseProbabilityMax = 95
)

// Objections are answered from a fixed playbook; anything unmapped falls back
// to the generic listen-validate-evidence response.
var objectionResponses = map[string]string{
	"¿Cuánto tiempo toma?":           "Piloto funcional en 90 días, resultados visibles en 45 días",
	"¿Cuánto riesgo tiene esto?":     "Implementación gradual con validación en cada hito",
	"¿Ya está probado en el sector?": "[Mostrar caso de éxito comparable]",
	"¿Podemos hacerlo más barato?":   "El costo real está en NO hacerlo - [cuantificar costo de inacción]",
}

const genericObjectionResponse = "Escuchar, validar preocupación, dar evidencia"

// maxPreparedObjections limits the prep bundle to the archetype's strongest
// expected objections.
const maxPreparedObjections = 3

// MeetingPrep assembles the preparation bundle for the follow-up call.
func (g *Generator) MeetingPrep(score model.DiagnosticScore, responses model.DiagnosticResponses, arch model.Archetype, prospect model.ProspectInfo) model.MeetingPrep {
	research := []string{
		fmt.Sprintf("Buscar '%s' en Google/LinkedIn", prospect.CompanyName),
		fmt.Sprintf("Identificar competidores principales en sector %s", prospect.Sector),
		"Revisar presencia digital (website, redes sociales)",
		"Buscar noticias recientes sobre la empresa",
	}

	materials := []string{
		fmt.Sprintf("Caso de éxito: %s", arch.IdealEntryPoint),
		"Demo relevante según frustración principal",
		"One-pager: ROI estimado",
		"Propuesta preliminar con rangos de pricing",
	}

	objections := make(map[string]string, maxPreparedObjections)
	expected := arch.ExpectedObjections
	if len(expected) > maxPreparedObjections {
		expected = expected[:maxPreparedObjections]
	}
	for _, obj := range expected {
		resp, ok := objectionResponses[obj]
		if !ok {
			resp = genericObjectionResponse
		}
		objections[obj] = resp
	}

	return model.MeetingPrep{
		Research:         research,
		Materials:        materials,
		KeyQuestions:     keyQuestions(arch, responses),
		LikelyObjections: objections,
		KeyInsight:       keyInsight(arch, responses),
		CloseProbability: closeProbability(score, responses),
	}
}

// keyQuestions builds the base question list plus archetype-specific probes.
// Only two archetypes have bespoke questions; the rest use the base list.
func keyQuestions(arch model.Archetype, responses model.DiagnosticResponses) []string {
	questions := []string{
		fmt.Sprintf("¿Cuál es el proceso/área que más le duele hoy? (validar '%s')", responses.MainFrustration),
		"¿Ha intentado resolver esto antes? ¿Qué pasó?",
		"Si pudiera resolver esto en los próximos 90 días, ¿qué impacto tendría en el negocio?",
	}

	switch arch.ID {
	case model.ArchetypeTraditionalGiant:
		questions = append(questions,
			"¿Qué sistemas legacy críticos tenemos que considerar?",
			"¿Cuál es el proceso de aprobación para proyectos de este tipo?",
		)
	case model.ArchetypeAmbitiousScaler:
		questions = append(questions,
			"¿Cuánto están creciendo mes a mes?",
			"¿Qué proceso les está limitando más el crecimiento?",
		)
	}

	return questions
}

// keyInsight returns the one-line angle for the salesperson. Three archetypes
// have bespoke text; the rest reference the stated frustration.
func keyInsight(arch model.Archetype, responses model.DiagnosticResponses) string {
	switch arch.ID {
	case model.ArchetypeAmbitiousScaler:
		return "Este cliente está en punto de inflexión: creciendo rápido pero operación no escala. Tu ángulo: 'No contrates más gente, automatiza lo que ya tienes.'"
	case model.ArchetypeTraditionalGiant:
		return "Cliente tradicional amenazado por competidores ágiles. Tu ángulo: 'Moderniza sin romper lo que funciona.'"
	case model.ArchetypeDistressedFighter:
		return "Cliente bajo presión extrema. Tu ángulo: 'ROI medible en 90 días o menos.'"
	default:
		return fmt.Sprintf("Enfocarse en resolver el problema específico: %s", responses.MainFrustration)
	}
}

// closeProbability estimates the close chance in [0, CloseProbabilityMax].
func closeProbability(score model.DiagnosticScore, responses model.DiagnosticResponses) int {
	prob := closeProbabilityBase

	switch score.Tier {
	case model.TierA:
		prob += closeProbabilityTierA
	case model.TierB:
		prob += closeProbabilityTierB
	}

	switch responses.Urgency {
	case model.UrgencyImmediate:
		prob += closeProbabilityUrgent
	case model.UrgencyThisYear:
		prob += closeProbabilityThisYear
	}

	if responses.ApprovalProcess == model.ApprovalSoleDecider {
		prob += closeProbabilitySoleDecider
	}

	if prob > CloseProbabilityMax {
		prob = CloseProbabilityMax
	}
	return prob
}
