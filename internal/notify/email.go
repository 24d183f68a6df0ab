package notify

import (
	"context"
	"fmt"

	"github.com/rotisserie/eris"

	"github.com/andes-consulting/readiness-cli/internal/model"
)

// Tier-specific subjects.
const (
	subjectTierA = "✅ Resultados de su diagnóstico AI - Oportunidades identificadas"
	subjectTierB = "📊 Resultados de su diagnóstico AI"
	subjectTierC = "📚 Recursos para iniciar su transformación digital"
)

// Sender composes and sends the confirmation email for a finished diagnostic.
type Sender struct {
	mailer    Mailer
	fromName  string
	fromEmail string
}

// NewSender wires a mailer with the configured sender identity.
func NewSender(mailer Mailer, fromName, fromEmail string) *Sender {
	return &Sender{mailer: mailer, fromName: fromName, fromEmail: fromEmail}
}

// SendConfirmation emails the prospect their tier-specific summary. Returns
// the provider message ID on success.
func (s *Sender) SendConfirmation(ctx context.Context, result *model.DiagnosticResult) (string, error) {
	if result.Prospect.ContactEmail == "" {
		return "", eris.New("notify: result has no contact email")
	}

	subject, body := content(result)

	resp, err := s.mailer.Send(ctx, Email{
		From:    fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail),
		To:      []string{result.Prospect.ContactEmail},
		Subject: subject,
		HTML:    body,
	})
	if err != nil {
		return "", eris.Wrapf(err, "notify: send confirmation for diagnostic %s", result.ID)
	}
	return resp.ID, nil
}

func content(result *model.DiagnosticResult) (subject, body string) {
	switch result.Score.Tier {
	case model.TierA:
		return subjectTierA, tierABody(result)
	case model.TierB:
		return subjectTierB, tierBBody(result)
	default:
		return subjectTierC, tierCBody(result)
	}
}

func tierABody(result *model.DiagnosticResult) string {
	winTitle := "Automatización de procesos críticos"
	winImpact := "Reducción significativa de costos"
	if len(result.QuickWins) > 0 {
		winTitle = result.QuickWins[0].Title
		winImpact = result.QuickWins[0].EstimatedImpact
	}

	return fmt.Sprintf(`<html>
<body style="font-family: Arial, sans-serif; color: #333;">
	<h2>Hola %s,</h2>
	<p>Gracias por completar el diagnóstico AI Readiness para <strong>%s</strong>.</p>
	<p>Tengo excelentes noticias: <strong>su empresa está en una posición favorable para implementar IA
	que genere impacto real en los próximos 6 meses.</strong></p>
	<h3>🎯 Oportunidades Identificadas</h3>
	<ol>
		<li><strong>%s</strong><br/>Impacto: %s</li>
		<li>Dashboard de inteligencia operativa en tiempo real</li>
	</ol>
	<h3>📞 Próximos Pasos</h3>
	<p>Lo contactaré en las próximas <strong>48 horas</strong> para agendar una reunión de 45 minutos
	con casos reales, ROI estimado para %s y un plan de implementación en 90 días.</p>
</body>
</html>`,
		result.Prospect.ContactName,
		result.Prospect.CompanyName,
		winTitle, winImpact,
		result.Prospect.CompanyName,
	)
}

func tierBBody(result *model.DiagnosticResult) string {
	return fmt.Sprintf(`<html>
<body style="font-family: Arial, sans-serif; color: #333;">
	<h2>Hola %s,</h2>
	<p>Gracias por completar el diagnóstico AI Readiness para <strong>%s</strong>.</p>
	<p>He analizado su situación y veo <strong>oportunidades interesantes</strong> para mejorar
	la eficiencia operativa con IA.</p>
	<h3>📋 Recomendación</h3>
	<ol>
		<li>Un diagnóstico profundo de procesos</li>
		<li>Identificación de quick wins de bajo riesgo</li>
		<li>Roadmap de implementación gradual</li>
	</ol>
	<p>Este enfoque nos permite validar el ROI antes de inversiones mayores.
	¿Le gustaría que conversemos sobre esto?</p>
</body>
</html>`,
		result.Prospect.ContactName,
		result.Prospect.CompanyName,
	)
}

func tierCBody(result *model.DiagnosticResult) string {
	return fmt.Sprintf(`<html>
<body style="font-family: Arial, sans-serif; color: #333;">
	<h2>Hola %s,</h2>
	<p>Gracias por completar el diagnóstico AI Readiness.</p>
	<p>Basado en su situación actual, le recomiendo <strong>primero fortalecer
	las bases digitales</strong> antes de implementar IA.</p>
	<h3>📚 Recursos Útiles</h3>
	<ul>
		<li>E-book: "Preparando su empresa para IA"</li>
		<li>Checklist: Fundamentos de transformación digital</li>
		<li>Casos de estudio de empresas en fase inicial</li>
	</ul>
	<p>También lo invito a nuestros <strong>workshops grupales mensuales</strong>.
	Cuando esté listo para avanzar, estaré encantado de ayudarle.</p>
</body>
</html>`,
		result.Prospect.ContactName,
	)
}
