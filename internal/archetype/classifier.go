package archetype

import "github.com/andes-consulting/readiness-cli/internal/model"

// Classifier selects the best-fit archetype for a scored prospect. It is
// stateless; the catalogue and rule table are package-level and read-only,
// so a single Classifier is safe for concurrent use.
type Classifier struct{}

// NewClassifier returns a classifier backed by the shared catalogue.
func NewClassifier() *Classifier { return &Classifier{} }

// Classify evaluates every archetype's rule set and returns the one with the
// highest compatibility; that value becomes the archetype's confidence.
// Exactly one archetype is always selected — there is no "no match" outcome,
// low confidence alone signals uncertainty. Ties resolve to the archetype
// listed first in the catalogue's priority order.
func (c *Classifier) Classify(score model.DiagnosticScore, responses model.DiagnosticResponses, prospect model.ProspectInfo) model.Archetype {
	in := Input{Score: score, Responses: responses, Prospect: prospect}

	best := catalogue[0]
	bestScore := compatibility(rulesByArchetype[best.ID], in)

	for _, def := range catalogue[1:] {
		if s := compatibility(rulesByArchetype[def.ID], in); s > bestScore {
			best = def
			bestScore = s
		}
	}

	return model.Archetype{
		ID:                  best.ID,
		Name:                best.Name,
		Description:         best.Description,
		TypicalFrustrations: best.Frustrations,
		Motivators:          best.Motivators,
		ExpectedObjections:  best.Objections,
		SalesApproach:       best.Approach,
		IdealEntryPoint:     best.EntryPoint,
		ExpansionPotential:  best.Potential,
		Confidence:          bestScore,
	}
}

// Compatibility exposes a single archetype's compatibility value, mainly for
// inspection and tests.
func (c *Classifier) Compatibility(id model.ArchetypeID, score model.DiagnosticScore, responses model.DiagnosticResponses, prospect model.ProspectInfo) float64 {
	return compatibility(rulesByArchetype[id], Input{Score: score, Responses: responses, Prospect: prospect})
}
