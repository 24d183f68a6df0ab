package main

import (
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/andes-consulting/readiness-cli/internal/model"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show aggregate funnel metrics from stored diagnostics",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		s, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer s.Close()

		data, err := s.Analytics(ctx)
		if err != nil {
			return err
		}

		printDashboard(data)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

func printDashboard(data *model.DashboardData) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintf(w, "Total Diagnósticos:\t%d\n", data.TotalDiagnostics)
	fmt.Fprintf(w, "Tier A (Ideal):\t%d\n", data.TierACount)
	fmt.Fprintf(w, "Tier B (Nutrir):\t%d\n", data.TierBCount)
	fmt.Fprintf(w, "Tier C (Despriorizar):\t%d\n", data.TierCCount)
	fmt.Fprintf(w, "Score Promedio:\t%.1f\n", data.AverageScore)
	fmt.Fprintf(w, "Prob. Cierre Promedio:\t%.1f%%\n", data.AverageCloseProb)
	fmt.Fprintf(w, "Conversion Rate (Tier A):\t%.1f%%\n", data.EstimatedConversion)
	fmt.Fprintf(w, "Pipeline Estimado:\t$%d COP\n", data.EstimatedPipelineValue)

	if len(data.ArchetypeDistribution) > 0 {
		fmt.Fprintln(w, "\nArquetipos:")
		for _, k := range sortedKeys(data.ArchetypeDistribution) {
			fmt.Fprintf(w, "  %s:\t%d\n", k, data.ArchetypeDistribution[k])
		}
	}
	if len(data.SectorDistribution) > 0 {
		fmt.Fprintln(w, "\nSectores:")
		for _, k := range sortedKeys(data.SectorDistribution) {
			fmt.Fprintf(w, "  %s:\t%d\n", k, data.SectorDistribution[k])
		}
	}
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
