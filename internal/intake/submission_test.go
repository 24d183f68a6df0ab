package intake

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andes-consulting/readiness-cli/internal/model"
)

func validSubmission() Submission {
	return Submission{
		CompanyName:   "Logística Andina",
		Sector:        "🚚 Logística/Transporte",
		RevenueRange:  "$2,000M - $10,000M COP",
		EmployeeRange: "51-200",
		ContactName:   "Carlos Ruiz",
		ContactEmail:  "carlos@logandina.co",
		Role:          "Gerente de Operaciones",
		City:          "Medellín",

		Motivations:            []string{model.MotivationSpecific},
		DecisionMaking:         "Basados en Excel que alimentamos nosotros",
		CriticalProcesses:      model.ProcessesPersonDependent,
		RepetitiveTasks:        "40-60% del tiempo",
		InfoSharing:            "Más o menos, hay que pedirse cosas por email/WhatsApp",
		TechTeam:               "Sí, pequeño (1-4 personas)",
		ImplementationCapacity: "Tendríamos que aprobar presupuesto (1-3 meses)",
		RecentInvestment:       "Sí, inversiones moderadas ($10-50M COP)",
		MainFrustration:        model.FrustrationNoVisibility,
		Urgency:                model.UrgencyThisYear,
		ApprovalProcess:        model.ApprovalPartners,
		BudgetRange:            model.BudgetMid,
	}
}

func TestValidate_OK(t *testing.T) {
	sub := validSubmission()
	require.NoError(t, sub.Validate())
}

func TestValidate_MissingFields(t *testing.T) {
	sub := validSubmission()
	sub.CompanyName = ""
	sub.Urgency = "  "
	sub.Motivations = nil

	err := sub.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nombre_empresa")
	assert.Contains(t, err.Error(), "Q13")
	assert.Contains(t, err.Error(), "Q4")
}

func TestValidate_BadEmail(t *testing.T) {
	sub := validSubmission()
	sub.ContactEmail = "not-an-email"

	err := sub.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "contact email")
}

func TestResponses_OtherFrustrationKeepsSelection(t *testing.T) {
	sub := validSubmission()
	sub.MainFrustration = "Otro"
	sub.OtherFrustration = "  Los proveedores nunca confirman a tiempo "

	r := sub.Responses()
	assert.Equal(t, "Otro", r.MainFrustration)
	assert.Equal(t, "Los proveedores nunca confirman a tiempo", r.FrustrationDetail)
}

func TestResponses_DetailOnlyForOther(t *testing.T) {
	sub := validSubmission()
	sub.OtherFrustration = "texto suelto"

	r := sub.Responses()
	assert.Equal(t, model.FrustrationNoVisibility, r.MainFrustration)
	assert.Empty(t, r.FrustrationDetail)
}

func TestProspect_TrimsContactFields(t *testing.T) {
	sub := validSubmission()
	sub.CompanyName = " Logística Andina "
	sub.ContactEmail = " carlos@logandina.co "

	p := sub.Prospect()
	assert.Equal(t, "Logística Andina", p.CompanyName)
	assert.Equal(t, "carlos@logandina.co", p.ContactEmail)
}

func TestLoad_JSONAndYAML(t *testing.T) {
	dir := t.TempDir()

	jsonBody := `{
		"nombre_empresa": "Logística Andina",
		"sector": "🚚 Logística/Transporte",
		"facturacion_rango": "$2,000M - $10,000M COP",
		"empleados_rango": "51-200",
		"contacto_nombre": "Carlos Ruiz",
		"contacto_email": "carlos@logandina.co",
		"cargo": "Gerente de Operaciones",
		"ciudad": "Medellín",
		"Q4": ["Tengo un problema específico que resolver"],
		"Q5": "Basados en Excel que alimentamos nosotros",
		"Q6": "Dependen de quién los ejecute",
		"Q7": "40-60% del tiempo",
		"Q8": "Más o menos, hay que pedirse cosas por email/WhatsApp",
		"Q9": "Sí, pequeño (1-4 personas)",
		"Q10": "Tendríamos que aprobar presupuesto (1-3 meses)",
		"Q11": "Sí, inversiones moderadas ($10-50M COP)",
		"Q12": "No sé qué está pasando en tiempo real",
		"Q13": "Importante, quiero avanzar este año",
		"Q14": "Mi socio(s)",
		"Q15": "$10M - $30M COP"
	}`
	jsonPath := filepath.Join(dir, "sub.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(jsonBody), 0o644))

	fromJSON, err := Load(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, "Logística Andina", fromJSON.CompanyName)
	assert.Equal(t, model.UrgencyThisYear, fromJSON.Urgency)

	yamlBody := `nombre_empresa: Logística Andina
sector: "🚚 Logística/Transporte"
facturacion_rango: "$2,000M - $10,000M COP"
empleados_rango: 51-200
contacto_nombre: Carlos Ruiz
contacto_email: carlos@logandina.co
cargo: Gerente de Operaciones
ciudad: Medellín
Q4:
  - Tengo un problema específico que resolver
Q5: Basados en Excel que alimentamos nosotros
Q6: Dependen de quién los ejecute
Q7: 40-60% del tiempo
Q8: Más o menos, hay que pedirse cosas por email/WhatsApp
Q9: Sí, pequeño (1-4 personas)
Q10: Tendríamos que aprobar presupuesto (1-3 meses)
Q11: Sí, inversiones moderadas ($10-50M COP)
Q12: No sé qué está pasando en tiempo real
Q13: Importante, quiero avanzar este año
Q14: Mi socio(s)
Q15: $10M - $30M COP
`
	yamlPath := filepath.Join(dir, "sub.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(yamlBody), 0o644))

	fromYAML, err := Load(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, fromJSON.Responses(), fromYAML.Responses())
}

func TestLoad_RejectsUnknownExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported submission format")
}

func TestCatalogue_ShapeAndSync(t *testing.T) {
	qs := Catalogue()
	require.Len(t, qs, 12)

	assert.Equal(t, "Q4", qs[0].ID)
	assert.Equal(t, TypeMultiSelect, qs[0].Type)

	var frustration Question
	for _, q := range qs {
		if q.ID == "Q12" {
			frustration = q
		}
		assert.True(t, q.Required)
		assert.NotEmpty(t, q.Options)
	}
	assert.True(t, frustration.HasOther)
	assert.NotContains(t, frustration.Options, "Otro")
}
