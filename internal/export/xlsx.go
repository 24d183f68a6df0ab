// Package export writes stored diagnostics to XLSX workbooks with the same
// worksheet layout the sales team's spreadsheet uses: raw responses, scores
// and an analytics summary.
package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/andes-consulting/readiness-cli/internal/model"
)

const timestampLayout = "2006-01-02 15:04:05"

var responsesHeader = []string{
	"timestamp", "diagnostic_id", "nombre_empresa", "sector",
	"facturacion", "empleados", "contacto_nombre", "contacto_email",
	"contacto_telefono", "cargo", "ciudad",
	"motivacion", "toma_decisiones", "procesos_criticos",
	"tareas_repetitivas", "compartir_informacion", "equipo_tecnico",
	"capacidad_implementacion", "inversion_reciente", "frustracion_principal",
	"urgencia", "proceso_aprobacion", "presupuesto_rango",
}

var scoresHeader = []string{
	"timestamp", "diagnostic_id", "nombre_empresa", "sector",
	"contacto_nombre", "contacto_email", "contacto_telefono",
	"cargo", "ciudad", "facturacion", "empleados",
	"score_final", "tier", "confianza_clasificacion",
	"madurez_digital_total", "madurez_decisiones", "madurez_procesos",
	"madurez_integracion", "madurez_eficiencia",
	"capacidad_inversion_total", "capacidad_presupuesto",
	"capacidad_historial", "capacidad_tamano",
	"viabilidad_total", "viabilidad_problema", "viabilidad_urgencia",
	"viabilidad_decision",
	"arquetipo_tipo", "arquetipo_nombre", "arquetipo_confianza",
	"servicio_sugerido", "monto_min", "monto_max",
	"probabilidad_cierre", "quick_wins_count", "red_flags_count",
}

// Write builds the workbook and saves it at path.
func Write(path string, results []model.DiagnosticResult, analytics *model.DashboardData) error {
	file, err := Build(results, analytics)
	if err != nil {
		return err
	}
	return eris.Wrap(file.Save(path), "export: save workbook")
}

// Build assembles the workbook in memory.
func Build(results []model.DiagnosticResult, analytics *model.DashboardData) (*xlsx.File, error) {
	file := xlsx.NewFile()

	if err := addResponsesSheet(file, results); err != nil {
		return nil, err
	}
	if err := addScoresSheet(file, results); err != nil {
		return nil, err
	}
	if err := addAnalyticsSheet(file, analytics); err != nil {
		return nil, err
	}
	return file, nil
}

func addResponsesSheet(file *xlsx.File, results []model.DiagnosticResult) error {
	sheet, err := file.AddSheet("responses")
	if err != nil {
		return eris.Wrap(err, "export: add responses sheet")
	}
	writeRow(sheet, toCells(responsesHeader))

	for i := range results {
		r := &results[i]
		writeRow(sheet, []any{
			r.CreatedAt.Format(timestampLayout),
			r.ID,
			r.Prospect.CompanyName,
			r.Prospect.Sector,
			r.Prospect.RevenueRange,
			r.Prospect.EmployeeRange,
			r.Prospect.ContactName,
			r.Prospect.ContactEmail,
			r.Prospect.ContactPhone,
			r.Prospect.Role,
			r.Prospect.City,
			strings.Join(r.Responses.Motivations, ", "),
			r.Responses.DecisionMaking,
			r.Responses.CriticalProcesses,
			r.Responses.RepetitiveTasks,
			r.Responses.InfoSharing,
			r.Responses.TechTeam,
			r.Responses.ImplementationCapacity,
			r.Responses.RecentInvestment,
			r.Responses.MainFrustration,
			r.Responses.Urgency,
			r.Responses.ApprovalProcess,
			r.Responses.BudgetRange,
		})
	}
	return nil
}

func addScoresSheet(file *xlsx.File, results []model.DiagnosticResult) error {
	sheet, err := file.AddSheet("scores")
	if err != nil {
		return eris.Wrap(err, "export: add scores sheet")
	}
	writeRow(sheet, toCells(scoresHeader))

	for i := range results {
		r := &results[i]
		writeRow(sheet, []any{
			r.CreatedAt.Format(timestampLayout),
			r.ID,
			r.Prospect.CompanyName,
			r.Prospect.Sector,
			r.Prospect.ContactName,
			r.Prospect.ContactEmail,
			r.Prospect.ContactPhone,
			r.Prospect.Role,
			r.Prospect.City,
			r.Prospect.RevenueRange,
			r.Prospect.EmployeeRange,
			r.Score.Final,
			string(r.Score.Tier),
			r.Score.Confidence,
			r.Score.DigitalMaturity.Total,
			r.Score.DigitalMaturity.DataDrivenDecisions,
			r.Score.DigitalMaturity.StandardizedProcesses,
			r.Score.DigitalMaturity.IntegratedSystems,
			r.Score.DigitalMaturity.OperationalEfficiency,
			r.Score.InvestmentCapacity.Total,
			r.Score.InvestmentCapacity.AvailableBudget,
			r.Score.InvestmentCapacity.InvestmentHistory,
			r.Score.InvestmentCapacity.CompanySize,
			r.Score.CommercialViability.Total,
			r.Score.CommercialViability.ClearProblem,
			r.Score.CommercialViability.RealUrgency,
			r.Score.CommercialViability.DecisionPower,
			string(r.Archetype.ID),
			r.Archetype.Name,
			r.Archetype.Confidence,
			r.SuggestedService,
			r.SuggestedAmountMin,
			r.SuggestedAmountMax,
			r.MeetingPrep.CloseProbability,
			len(r.QuickWins),
			len(r.RedFlags),
		})
	}
	return nil
}

func addAnalyticsSheet(file *xlsx.File, data *model.DashboardData) error {
	sheet, err := file.AddSheet("analytics")
	if err != nil {
		return eris.Wrap(err, "export: add analytics sheet")
	}
	writeRow(sheet, []any{"Métrica", "Valor", "Última Actualización"})

	if data == nil {
		return nil
	}

	writeRow(sheet, []any{"Total Diagnósticos", data.TotalDiagnostics, time.Now().UTC().Format(timestampLayout)})
	writeRow(sheet, []any{"Tier A", data.TierACount, ""})
	writeRow(sheet, []any{"Tier B", data.TierBCount, ""})
	writeRow(sheet, []any{"Tier C", data.TierCCount, ""})
	writeRow(sheet, []any{"Score Promedio", fmt.Sprintf("%.1f", data.AverageScore), ""})
	writeRow(sheet, []any{"Prob. Cierre Promedio", fmt.Sprintf("%.1f%%", data.AverageCloseProb), ""})
	writeRow(sheet, []any{"Pipeline Value Estimado", fmt.Sprintf("$%d COP", data.EstimatedPipelineValue), ""})
	writeRow(sheet, []any{"Conversion Rate (Tier A)", fmt.Sprintf("%.1f%%", data.EstimatedConversion), ""})
	return nil
}

func writeRow(sheet *xlsx.Sheet, values []any) {
	row := sheet.AddRow()
	for _, v := range values {
		cell := row.AddCell()
		switch val := v.(type) {
		case string:
			cell.SetString(val)
		case int:
			cell.SetInt(val)
		case int64:
			cell.SetInt64(val)
		case float64:
			cell.SetFloat(val)
		default:
			cell.Value = fmt.Sprint(val)
		}
	}
}

func toCells(header []string) []any {
	out := make([]any, len(header))
	for i, h := range header {
		out[i] = h
	}
	return out
}
