// Package archetype classifies a scored prospect into one of six fixed
// behavioral archetypes used to tailor the sales approach.
package archetype

import "github.com/andes-consulting/readiness-cli/internal/model"

// Definition is one entry of the archetype catalogue: the descriptive content
// copied verbatim onto the selected model.Archetype.
type Definition struct {
	ID           model.ArchetypeID
	Name         string
	Description  string
	Frustrations []string
	Motivators   []string
	Objections   []string
	Approach     []string
	EntryPoint   string
	Potential    string
}

// catalogue is the read-only archetype table, shared by every Classifier.
// Order matters: it is the documented tie-break priority — when two
// archetypes score equally, the one listed first wins.
var catalogue = []Definition{
	{
		ID:          model.ArchetypeTraditionalGiant,
		Name:        "🏦 Traditional Giant",
		Description: "Empresa grande tradicional con sistemas legacy, bajo presión competitiva",
		Frustrations: []string{
			"Todo demora semanas en implementarse",
			"Sistemas no hablan entre sí",
			"Perdemos clientes por servicio lento",
			"Competidores más ágiles nos están ganando",
		},
		Motivators: []string{
			"Sobrevivencia competitiva",
			"Mandato de junta directiva",
			"Presión regulatoria",
			"Amenaza de fintechs/startups",
		},
		Objections: []string{
			"¿Cuánto riesgo tiene esto?",
			"¿Ya está probado en el sector?",
			"¿Cuánto tiempo toma?",
			"¿Qué pasa con nuestros sistemas actuales?",
		},
		Approach: []string{
			"Mostrar casos de éxito en su sector",
			"Cuantificar ROI específicamente",
			"Implementación gradual y de bajo riesgo",
			"Énfasis en seguridad y compliance",
			"Integración con sistemas legacy",
		},
		EntryPoint: "Automatización de procesos back-office críticos",
		Potential:  "$$$",
	},
	{
		ID:          model.ArchetypeAmbitiousScaler,
		Name:        "📈 Ambitious Scaler",
		Description: "Empresa en crecimiento que no logra escalar operaciones",
		Frustrations: []string{
			"No puedo crecer sin contratar más gente",
			"Los márgenes se están reduciendo con el crecimiento",
			"Procesos manuales nos limitan",
			"Cometemos errores por ir muy rápido",
		},
		Motivators: []string{
			"Alcanzar objetivos de crecimiento",
			"Mantener márgenes rentables",
			"Superar al líder del mercado",
			"Prepararse para ronda de inversión",
		},
		Objections: []string{
			"¿Puedo implementar esto rápido?",
			"¿Funcionará con mi crecimiento acelerado?",
			"¿Cuánto tiempo de mi equipo necesita?",
			"¿Y si cambian mis necesidades?",
		},
		Approach: []string{
			"Velocidad de implementación",
			"Automatización de procesos que frenan crecimiento",
			"Quick wins visibles en 60-90 días",
			"Arquitectura escalable",
			"ROI en reducción de contrataciones",
		},
		EntryPoint: "Automatización de operaciones core (pedidos, inventario, atención)",
		Potential:  "$$",
	},
	{
		ID:          model.ArchetypeDigitalBeginner,
		Name:        "🐣 Digital Beginner",
		Description: "Empresa tradicional con procesos manuales, iniciando transformación",
		Frustrations: []string{
			"Todo es manual y lento",
			"No tenemos visibilidad de la operación",
			"Dependemos de personas clave",
			"Cometemos muchos errores",
		},
		Motivators: []string{
			"Modernización necesaria",
			"Cambio generacional en liderazgo",
			"Presión de clientes por mejores servicios",
			"Reducción de costos operativos",
		},
		Objections: []string{
			"¿Mi equipo podrá adaptarse?",
			"¿No es muy costoso?",
			"¿Realmente necesitamos IA?",
			"¿Por dónde empezamos?",
		},
		Approach: []string{
			"Educación en transformación digital primero",
			"Empezar con digitalización básica",
			"Cambio cultural y gestión del cambio",
			"Hitos pequeños y frecuentes",
			"Capacitación intensiva del equipo",
		},
		EntryPoint: "Digitalización de procesos críticos + BI básico",
		Potential:  "$",
	},
	{
		ID:          model.ArchetypeInnovationTheater,
		Name:        "🎭 Innovation Theater",
		Description: "Buscan 'hacer IA' sin problema claro, riesgo alto",
		Frustrations: []string{
			"Tenemos que innovar",
			"Todos hablan de IA",
			"No queremos quedarnos atrás",
			"La competencia ya tiene IA",
		},
		Motivators: []string{
			"Presión de stakeholders",
			"FOMO (Fear of Missing Out)",
			"Marketing / relaciones públicas",
			"Experimentación sin ROI claro",
		},
		Objections: []string{
			"¿Podemos hacerlo más barato?",
			"¿Qué pueden hacer otras consultoras?",
			"¿Incluye el desarrollo completo?",
			"¿No podemos solo hacer un piloto?",
		},
		Approach: []string{
			"Calificar muy bien antes de invertir tiempo",
			"Alinear expectativas con realidad",
			"Definir problema específico primero",
			"Propuesta educativa (workshop) en vez de proyecto",
			"Evitar compromisos de largo plazo",
		},
		EntryPoint: "Diagnóstico $12K para validar si hay caso de negocio real",
		Potential:  "⚠️",
	},
	{
		ID:          model.ArchetypeDistressedFighter,
		Name:        "⚔️ Distressed Fighter",
		Description: "Bajo presión competitiva extrema, necesita ROI inmediato",
		Frustrations: []string{
			"Estamos perdiendo participación de mercado",
			"Los competidores son más eficientes",
			"Nuestros costos son muy altos",
			"Clientes se están yendo",
		},
		Motivators: []string{
			"Sobrevivencia",
			"Recuperar competitividad",
			"Reducción drástica de costos",
			"Retener clientes clave",
		},
		Objections: []string{
			"¿Cuánto tiempo tarda en dar resultados?",
			"¿El ROI es garantizado?",
			"¿Podemos pagar en hitos?",
			"¿Qué pasa si no funciona?",
		},
		Approach: []string{
			"ROI medible y rápido (90 días)",
			"Enfoque en reducción de costos inmediata",
			"Quick wins antes que transformación",
			"Modelo de pago por resultados si es posible",
			"Evaluar viabilidad financiera del cliente",
		},
		EntryPoint: "Automatización de proceso más costoso",
		Potential:  "$$",
	},
	{
		ID:          model.ArchetypeTireKicker,
		Name:        "🚫 Tire Kicker",
		Description: "Solo cotizando, sin presupuesto ni urgencia real",
		Frustrations: []string{
			"Curiosidad general",
			"Tarea asignada por jefe",
			"Comparando opciones sin compromiso",
			"Estudiante/investigador disfrazado",
		},
		Motivators: []string{
			"Cumplir con tarea asignada",
			"Educación personal",
			"Benchmark de mercado",
			"Posible futuro (sin timeline)",
		},
		Objections: []string{
			"Todo objeción es válida",
			"No hay urgencia real",
			"Probablemente no llegue a contratar",
		},
		Approach: []string{
			"NO invertir tiempo en reuniones 1-on-1",
			"Respuesta automatizada con recursos",
			"Invitar a webinar/workshop grupal",
			"Nutrir para largo plazo (newsletter)",
		},
		EntryPoint: "Ninguno - Descalificar cortésmente",
		Potential:  "🚫",
	},
}

// Catalogue returns the archetype definitions in priority order.
func Catalogue() []Definition {
	return catalogue
}

// Lookup returns the definition for an archetype ID, or false when unknown.
func Lookup(id model.ArchetypeID) (Definition, bool) {
	for _, d := range catalogue {
		if d.ID == id {
			return d, true
		}
	}
	return Definition{}, false
}
