package model

// Questionnaire option strings referenced by more than one package. These are
// verbatim questionnaire content and must stay in sync with the external
// question catalogue; the engines tolerate unknown strings by scoring zero.
const (
	// Motivation tags (multi-select).
	MotivationCompetitors  = "Mis competidores están usando IA y me están dejando atrás"
	MotivationSlowProcess  = "Tengo procesos lentos y costosos que creo que la IA podría mejorar"
	MotivationReduceCosts  = "Quiero reducir costos operativos"
	MotivationSpecific     = "Tengo un problema específico que resolver"
	MotivationCuriosity    = "Curiosidad / exploración general"
	MotivationBoardMandate = "Me mandaron a explorar esto (junta directiva/socios)"

	// Urgency levels.
	UrgencyImmediate = "Muy urgente, necesito resolver ya (próximos 3 meses)"
	UrgencyThisYear  = "Importante, quiero avanzar este año"
	UrgencyExploring = "Exploración, sin apuro"
	UrgencyBrowsing  = "Solo estoy mirando opciones"

	// Approval process.
	ApprovalSoleDecider = "Nadie, yo decido"
	ApprovalPartners    = "Mi socio(s)"
	ApprovalBoard       = "Junta directiva"
	ApprovalComplex     = "Varias personas (complejo)"

	// Budget brackets.
	BudgetTop     = "Más de $60M COP"
	BudgetHigh    = "$30M - $60M COP"
	BudgetMid     = "$10M - $30M COP"
	BudgetLow     = "Menos de $10M COP"
	BudgetUnknown = "Prefiero no decirlo / No lo sé aún"

	// "Don't know" answer for the repetitive-task ratio question.
	RepetitiveNoIdea = "No tengo idea"

	// Frustrations referenced outside the scoring tables.
	FrustrationCantScale    = "No puedo escalar sin contratar más gente"
	FrustrationSlowService  = "Perdemos clientes por servicio lento"
	FrustrationManualErrors = "Cometemos muchos errores manuales"
	FrustrationNoVisibility = "No sé qué está pasando en tiempo real"
	FrustrationHighCosts    = "Los costos operativos están muy altos"

	// Recent investment answers referenced by the classifier.
	InvestmentNone = "No, seguimos con lo mismo de siempre"

	// Critical process answers referenced by the classifier and red flags.
	ProcessesPersonDependent = "Dependen de quién los ejecute"
	ProcessesUndocumented    = "Funcionan pero nadie sabe exactamente cómo"
	ProcessesAdHoc           = "Cambian constantemente según la situación"
)

// Sector catalogue (single source for intake and classifier rules).
var Sectors = []string{
	"🏦 Banca",
	"🛡️ Seguros",
	"🛒 Retail",
	"🏭 Manufactura",
	"💼 Servicios Profesionales",
	"🏥 Salud",
	"📚 Educación",
	"🏛️ Gobierno",
	"🚚 Logística/Transporte",
	"🏗️ Construcción",
	"Otro",
}

// Revenue brackets (annual, COP).
var RevenueRanges = []string{
	"Menos de $500M COP",
	"$500M - $2,000M COP",
	"$2,000M - $10,000M COP",
	"Más de $10,000M COP",
}

// Headcount brackets.
var EmployeeRanges = []string{
	"1-20",
	"21-50",
	"51-200",
	"201-500",
	"Más de 500",
}
