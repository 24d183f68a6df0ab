package intake

import "github.com/andes-consulting/readiness-cli/internal/model"

// Question types understood by the frontend.
const (
	TypeRadio       = "radio"
	TypeMultiSelect = "multi-select"
)

// Question describes one questionnaire entry as served to the frontend.
type Question struct {
	ID       string   `json:"id"`
	Text     string   `json:"text"`
	Type     string   `json:"type"`
	Options  []string `json:"options"`
	Helper   string   `json:"helper,omitempty"`
	HasOther bool     `json:"has_other,omitempty"`
	Required bool     `json:"required"`
}

// Option lists must stay in sync with the scoring tables; an option added
// here without a table entry scores zero and is flagged unrecognized.
var catalogue = []Question{
	{
		ID:   "Q4",
		Text: "¿Qué lo trae aquí hoy? (puede seleccionar varias opciones)",
		Type: TypeMultiSelect,
		Options: []string{
			model.MotivationCompetitors,
			model.MotivationSlowProcess,
			model.MotivationReduceCosts,
			model.MotivationSpecific,
			model.MotivationCuriosity,
			model.MotivationBoardMandate,
		},
		Required: true,
	},
	{
		ID:   "Q5",
		Text: "¿Cómo toman las decisiones importantes del negocio?",
		Type: TypeRadio,
		Options: []string{
			"Basados en reportes automáticos de sistemas",
			"Basados en reportes que alguien arma manualmente",
			"Basados en Excel que alimentamos nosotros",
			"Basados en intuición y experiencia",
			"Basados en 'ir preguntando a cada área'",
		},
		Required: true,
	},
	{
		ID:   "Q6",
		Text: "¿Cómo describiría sus procesos críticos?",
		Type: TypeRadio,
		Options: []string{
			"Están documentados y son iguales siempre",
			model.ProcessesPersonDependent,
			model.ProcessesUndocumented,
			model.ProcessesAdHoc,
		},
		Required: true,
	},
	{
		ID:     "Q7",
		Text:   "¿Cuánto tiempo dedica su equipo a tareas repetitivas?",
		Type:   TypeRadio,
		Helper: "Copiar datos entre sistemas, armar reportes, responder lo mismo una y otra vez",
		Options: []string{
			"Menos del 20% del tiempo",
			"20-40% del tiempo",
			"40-60% del tiempo",
			"Más del 60% del tiempo",
			model.RepetitiveNoIdea,
		},
		Required: true,
	},
	{
		ID:   "Q8",
		Text: "¿Cómo comparten información entre áreas?",
		Type: TypeRadio,
		Options: []string{
			"Sí, todo está en sistemas conectados",
			"Más o menos, hay que pedirse cosas por email/WhatsApp",
			"No, cada área tiene su propia información",
			"¿Qué información? (Cada uno tiene su Excel)",
		},
		Required: true,
	},
	{
		ID:   "Q9",
		Text: "¿Cuentan con equipo de tecnología propio?",
		Type: TypeRadio,
		Options: []string{
			"Sí, equipo completo (5+ personas)",
			"Sí, pequeño (1-4 personas)",
			"No, contratamos externos cuando se necesita",
			"No, yo mismo/mi contador/mi sobrino nos ayuda",
		},
		Required: true,
	},
	{
		ID:   "Q10",
		Text: "Si encontráramos una oportunidad de alto impacto, ¿qué tan rápido podrían implementarla?",
		Type: TypeRadio,
		Options: []string{
			"Tenemos presupuesto y podemos decidir",
			"Tendríamos que aprobar presupuesto (1-3 meses)",
			"Tendríamos que planificarlo para próximo año",
			"No hay presupuesto disponible",
		},
		Required: true,
	},
	{
		ID:   "Q11",
		Text: "¿Han invertido en tecnología en los últimos 2 años?",
		Type: TypeRadio,
		Options: []string{
			"Sí, inversiones significativas (>$50M COP)",
			"Sí, inversiones moderadas ($10-50M COP)",
			"Sí, inversiones pequeñas (<$10M COP)",
			model.InvestmentNone,
		},
		Required: true,
	},
	{
		ID:   "Q12",
		Text: "¿Cuál es su mayor frustración operativa hoy?",
		Type: TypeRadio,
		Options: []string{
			model.FrustrationCantScale,
			model.FrustrationSlowService,
			model.FrustrationManualErrors,
			model.FrustrationNoVisibility,
			model.FrustrationHighCosts,
		},
		HasOther: true,
		Required: true,
	},
	{
		ID:   "Q13",
		Text: "¿Qué tan urgente es resolver esto para usted?",
		Type: TypeRadio,
		Options: []string{
			model.UrgencyImmediate,
			model.UrgencyThisYear,
			model.UrgencyExploring,
			model.UrgencyBrowsing,
		},
		Required: true,
	},
	{
		ID:   "Q14",
		Text: "¿Quién más participa en una decisión de inversión como esta?",
		Type: TypeRadio,
		Options: []string{
			model.ApprovalSoleDecider,
			model.ApprovalPartners,
			model.ApprovalBoard,
			model.ApprovalComplex,
		},
		Required: true,
	},
	{
		ID:   "Q15",
		Text: "¿Qué rango de presupuesto tienen contemplado para este tipo de proyecto?",
		Type: TypeRadio,
		Options: []string{
			model.BudgetTop,
			model.BudgetHigh,
			model.BudgetMid,
			model.BudgetLow,
			model.BudgetUnknown,
		},
		Required: true,
	},
}

// Catalogue returns the questionnaire in presentation order.
func Catalogue() []Question {
	out := make([]Question, len(catalogue))
	copy(out, catalogue)
	return out
}
