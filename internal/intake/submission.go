// Package intake decodes questionnaire submissions into the diagnostic data
// model. It owns completeness validation; the scoring engine downstream never
// rejects input.
package intake

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/andes-consulting/readiness-cli/internal/model"
)

// otherOption is the escape hatch on questions that accept free text.
const otherOption = "Otro"

// Submission is the wire shape of one questionnaire submission: firmographics
// plus the answers keyed by question ID.
type Submission struct {
	CompanyName   string `json:"nombre_empresa" yaml:"nombre_empresa"`
	Sector        string `json:"sector" yaml:"sector"`
	RevenueRange  string `json:"facturacion_rango" yaml:"facturacion_rango"`
	EmployeeRange string `json:"empleados_rango" yaml:"empleados_rango"`
	ContactName   string `json:"contacto_nombre" yaml:"contacto_nombre"`
	ContactEmail  string `json:"contacto_email" yaml:"contacto_email"`
	ContactPhone  string `json:"contacto_telefono,omitempty" yaml:"contacto_telefono,omitempty"`
	Role          string `json:"cargo" yaml:"cargo"`
	City          string `json:"ciudad" yaml:"ciudad"`

	Motivations            []string `json:"Q4" yaml:"Q4"`
	DecisionMaking         string   `json:"Q5" yaml:"Q5"`
	CriticalProcesses      string   `json:"Q6" yaml:"Q6"`
	RepetitiveTasks        string   `json:"Q7" yaml:"Q7"`
	InfoSharing            string   `json:"Q8" yaml:"Q8"`
	TechTeam               string   `json:"Q9" yaml:"Q9"`
	ImplementationCapacity string   `json:"Q10" yaml:"Q10"`
	RecentInvestment       string   `json:"Q11" yaml:"Q11"`
	MainFrustration        string   `json:"Q12" yaml:"Q12"`
	OtherFrustration       string   `json:"Q12_otro,omitempty" yaml:"Q12_otro,omitempty"`
	Urgency                string   `json:"Q13" yaml:"Q13"`
	ApprovalProcess        string   `json:"Q14" yaml:"Q14"`
	BudgetRange            string   `json:"Q15" yaml:"Q15"`
}

// Validate checks that every required field is present. Phone and the "Otro"
// free text are optional; everything else is mandatory.
func (s *Submission) Validate() error {
	var missing []string

	required := []struct {
		name  string
		value string
	}{
		{"nombre_empresa", s.CompanyName},
		{"sector", s.Sector},
		{"facturacion_rango", s.RevenueRange},
		{"empleados_rango", s.EmployeeRange},
		{"contacto_nombre", s.ContactName},
		{"contacto_email", s.ContactEmail},
		{"cargo", s.Role},
		{"ciudad", s.City},
		{"Q5", s.DecisionMaking},
		{"Q6", s.CriticalProcesses},
		{"Q7", s.RepetitiveTasks},
		{"Q8", s.InfoSharing},
		{"Q9", s.TechTeam},
		{"Q10", s.ImplementationCapacity},
		{"Q11", s.RecentInvestment},
		{"Q12", s.MainFrustration},
		{"Q13", s.Urgency},
		{"Q14", s.ApprovalProcess},
		{"Q15", s.BudgetRange},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}

	if len(s.Motivations) == 0 {
		missing = append(missing, "Q4")
	}

	if len(missing) > 0 {
		return eris.New(fmt.Sprintf("intake: missing required fields: %s", strings.Join(missing, ", ")))
	}

	if _, err := mail.ParseAddress(s.ContactEmail); err != nil {
		return eris.Wrap(err, "intake: invalid contact email")
	}

	return nil
}

// Prospect maps the firmographic fields.
func (s *Submission) Prospect() model.ProspectInfo {
	return model.ProspectInfo{
		CompanyName:   strings.TrimSpace(s.CompanyName),
		Sector:        s.Sector,
		RevenueRange:  s.RevenueRange,
		EmployeeRange: s.EmployeeRange,
		ContactName:   strings.TrimSpace(s.ContactName),
		ContactEmail:  strings.TrimSpace(s.ContactEmail),
		ContactPhone:  strings.TrimSpace(s.ContactPhone),
		Role:          s.Role,
		City:          strings.TrimSpace(s.City),
	}
}

// Responses maps the questionnaire answers. When the prospect picks "Otro" as
// their main frustration the selection stays "Otro" so scoring remains stable,
// and the free text is carried separately for the sales team.
func (s *Submission) Responses() model.DiagnosticResponses {
	r := model.DiagnosticResponses{
		Motivations:            s.Motivations,
		DecisionMaking:         s.DecisionMaking,
		CriticalProcesses:      s.CriticalProcesses,
		RepetitiveTasks:        s.RepetitiveTasks,
		InfoSharing:            s.InfoSharing,
		TechTeam:               s.TechTeam,
		ImplementationCapacity: s.ImplementationCapacity,
		RecentInvestment:       s.RecentInvestment,
		MainFrustration:        s.MainFrustration,
		Urgency:                s.Urgency,
		ApprovalProcess:        s.ApprovalProcess,
		BudgetRange:            s.BudgetRange,
	}
	if s.MainFrustration == otherOption {
		r.FrustrationDetail = strings.TrimSpace(s.OtherFrustration)
	}
	return r
}
