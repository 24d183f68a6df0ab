package archetype

import (
	"github.com/andes-consulting/readiness-cli/internal/model"
)

// Input bundles everything a compatibility rule may examine.
type Input struct {
	Score     model.DiagnosticScore
	Responses model.DiagnosticResponses
	Prospect  model.ProspectInfo
}

// rule is one weighted boolean check. An archetype's compatibility is the sum
// of the weights of its matching rules, clamped to [0, 1]. Keeping each
// archetype's criteria as data makes the rule set independently testable and
// tunable without touching the scorer.
type rule struct {
	name   string
	weight float64
	match  func(in Input) bool
}

func sectorIn(sectors ...string) func(Input) bool {
	return func(in Input) bool {
		for _, s := range sectors {
			if in.Prospect.Sector == s {
				return true
			}
		}
		return false
	}
}

func revenueIn(ranges ...string) func(Input) bool {
	return func(in Input) bool {
		for _, r := range ranges {
			if in.Prospect.RevenueRange == r {
				return true
			}
		}
		return false
	}
}

func motivatedBy(tag string) func(Input) bool {
	return func(in Input) bool {
		for _, m := range in.Responses.Motivations {
			if m == tag {
				return true
			}
		}
		return false
	}
}

func soleMotivation(tag string) func(Input) bool {
	return func(in Input) bool {
		return len(in.Responses.Motivations) == 1 && in.Responses.Motivations[0] == tag
	}
}

func frustrationIn(options ...string) func(Input) bool {
	return func(in Input) bool {
		for _, o := range options {
			if in.Responses.MainFrustration == o {
				return true
			}
		}
		return false
	}
}

func urgencyIn(options ...string) func(Input) bool {
	return func(in Input) bool {
		for _, o := range options {
			if in.Responses.Urgency == o {
				return true
			}
		}
		return false
	}
}

// rulesByArchetype holds the compatibility rule set for each archetype.
// Weights follow the strongest-signal-first principle: exact matches on the
// primary frustration or urgency carry the largest single increments.
var rulesByArchetype = map[model.ArchetypeID][]rule{
	model.ArchetypeTraditionalGiant: {
		{"sector banca/seguros", 0.3, sectorIn("🏦 Banca", "🛡️ Seguros")},
		{"facturación grande", 0.2, revenueIn("$2,000M - $10,000M COP", "Más de $10,000M COP")},
		{"madurez media (sistemas sin integrar)", 0.2, func(in Input) bool {
			t := in.Score.DigitalMaturity.Total
			return t >= 20 && t <= 30
		}},
		{"presión competitiva", 0.2, motivatedBy(model.MotivationCompetitors)},
		{"tiene presupuesto", 0.1, func(in Input) bool {
			return in.Score.InvestmentCapacity.Total >= 20
		}},
	},
	model.ArchetypeAmbitiousScaler: {
		{"sector en crecimiento", 0.3, sectorIn("🛒 Retail", "💼 Servicios Profesionales", "🚚 Logística/Transporte")},
		{"facturación mediana-grande", 0.2, revenueIn("$500M - $2,000M COP", "$2,000M - $10,000M COP")},
		{"frustración de escalabilidad", 0.3, frustrationIn(model.FrustrationCantScale)},
		{"invirtió recientemente", 0.1, func(in Input) bool {
			return in.Score.InvestmentCapacity.InvestmentHistory > 0
		}},
		{"urgencia media-alta", 0.1, func(in Input) bool {
			return in.Score.CommercialViability.RealUrgency >= 7
		}},
	},
	model.ArchetypeDigitalBeginner: {
		{"madurez digital baja", 0.4, func(in Input) bool {
			return in.Score.DigitalMaturity.Total <= 20
		}},
		{"sin inversión previa", 0.2, func(in Input) bool {
			return in.Responses.RecentInvestment == model.InvestmentNone
		}},
		{"procesos no documentados", 0.2, func(in Input) bool {
			return in.Responses.CriticalProcesses == model.ProcessesUndocumented ||
				in.Responses.CriticalProcesses == model.ProcessesAdHoc
		}},
		{"sector tradicional", 0.2, sectorIn("🏭 Manufactura", "🏛️ Gobierno", "🏗️ Construcción")},
	},
	model.ArchetypeInnovationTheater: {
		{"solo curiosidad", 0.4, soleMotivation(model.MotivationCuriosity)},
		{"sin urgencia", 0.3, urgencyIn(model.UrgencyExploring, model.UrgencyBrowsing)},
		{"sin presupuesto claro", 0.2, func(in Input) bool {
			return in.Responses.BudgetRange == model.BudgetUnknown
		}},
		{"viabilidad comercial baja", 0.1, func(in Input) bool {
			return in.Score.CommercialViability.Total <= 15
		}},
	},
	model.ArchetypeDistressedFighter: {
		{"urgencia inmediata", 0.3, urgencyIn(model.UrgencyImmediate)},
		{"frustración de competitividad", 0.2, frustrationIn(model.FrustrationSlowService, model.FrustrationHighCosts)},
		{"presión competitiva", 0.3, motivatedBy(model.MotivationCompetitors)},
		{"capacidad de inversión", 0.2, func(in Input) bool {
			return in.Score.InvestmentCapacity.Total >= 15
		}},
	},
	model.ArchetypeTireKicker: {
		{"score total muy bajo", 0.4, func(in Input) bool {
			return in.Score.Final < 30
		}},
		{"sin presupuesto", 0.2, func(in Input) bool {
			return in.Responses.BudgetRange == model.BudgetLow
		}},
		{"no es decisor", 0.2, func(in Input) bool {
			return in.Responses.ApprovalProcess == model.ApprovalComplex
		}},
		{"empresa muy pequeña", 0.2, func(in Input) bool {
			return in.Prospect.RevenueRange == "Menos de $500M COP" &&
				in.Prospect.EmployeeRange == "1-20"
		}},
	},
}

// compatibility sums the weights of the matching rules, clamped to [0, 1].
// The six rule sets are not mutually normalized: two archetypes can both
// score high, and only the numeric ordering decides the winner.
func compatibility(rules []rule, in Input) float64 {
	var points float64
	for _, r := range rules {
		if r.match(in) {
			points += r.weight
		}
	}
	if points > 1.0 {
		points = 1.0
	}
	return points
}
