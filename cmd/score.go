package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/andes-consulting/readiness-cli/internal/diagnostic"
	"github.com/andes-consulting/readiness-cli/internal/intake"
	"github.com/andes-consulting/readiness-cli/internal/model"
)

var (
	scoreFormat string
	scoreSave   bool
)

var scoreCmd = &cobra.Command{
	Use:   "score <submission-file>",
	Short: "Score a single questionnaire submission",
	Long: `Scores one intake file (JSON or YAML) and prints the diagnostic result.

Examples:
  # Human-readable summary
  readiness-cli score prospecto.json

  # Full result as JSON
  readiness-cli score prospecto.yaml --format json

  # Score and persist to the configured store
  readiness-cli score prospecto.json --save`,
	Args: cobra.ExactArgs(1),
	RunE: runScore,
}

func init() {
	scoreCmd.Flags().StringVar(&scoreFormat, "format", "table", "output format: table or json")
	scoreCmd.Flags().BoolVar(&scoreSave, "save", false, "persist the result to the store")
	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sub, err := intake.Load(args[0])
	if err != nil {
		return err
	}

	svc := diagnostic.NewService()
	result := svc.Run(sub.Prospect(), sub.Responses())

	if scoreSave {
		s, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.SaveDiagnostic(ctx, result); err != nil {
			return err
		}
		zap.L().Info("diagnostic saved", zap.String("diagnostic_id", result.ID))
	}

	switch scoreFormat {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return eris.Wrap(enc.Encode(result), "score: encode result")
	case "table":
		printResult(result)
		return nil
	default:
		return eris.Errorf("unknown format %q (want table or json)", scoreFormat)
	}
}

func printResult(result *model.DiagnosticResult) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintf(w, "Empresa:\t%s (%s)\n", result.Prospect.CompanyName, result.Prospect.Sector)
	fmt.Fprintf(w, "Score Final:\t%d/100 (Tier %s)\n", result.Score.Final, result.Score.Tier)
	fmt.Fprintf(w, "  Madurez Digital:\t%d/%d\n", result.Score.DigitalMaturity.Total, model.DigitalMaturityMax)
	fmt.Fprintf(w, "  Capacidad de Inversión:\t%d/%d\n", result.Score.InvestmentCapacity.Total, model.InvestmentCapacityMax)
	fmt.Fprintf(w, "  Viabilidad Comercial:\t%d/%d\n", result.Score.CommercialViability.Total, model.CommercialViabilityMax)
	fmt.Fprintf(w, "Arquetipo:\t%s (confianza %.0f%%)\n", result.Archetype.Name, result.Archetype.Confidence*100)
	fmt.Fprintf(w, "Servicio Sugerido:\t%s ($%d - $%d COP)\n", result.SuggestedService, result.SuggestedAmountMin, result.SuggestedAmountMax)
	fmt.Fprintf(w, "Probabilidad de Cierre:\t%d%%\n", result.MeetingPrep.CloseProbability)

	if len(result.QuickWins) > 0 {
		fmt.Fprintln(w, "\nQuick Wins:")
		for _, qw := range result.QuickWins {
			fmt.Fprintf(w, "  - %s\t%s\n", qw.Title, qw.EstimatedImpact)
		}
	}
	if len(result.RedFlags) > 0 {
		fmt.Fprintln(w, "\nRed Flags:")
		for _, rf := range result.RedFlags {
			fmt.Fprintf(w, "  - [%s] %s\n", strings.ToUpper(rf.Severity), rf.Title)
		}
	}
}
