package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/andes-consulting/readiness-cli/internal/export"
	"github.com/andes-consulting/readiness-cli/internal/model"
	"github.com/andes-consulting/readiness-cli/internal/store"
)

var (
	exportOutput string
	exportTier   string
	exportLimit  int
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export stored diagnostics to an XLSX workbook",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		s, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer s.Close()

		results, err := s.ListDiagnostics(ctx, store.Filter{
			Tier:  model.Tier(exportTier),
			Limit: exportLimit,
		})
		if err != nil {
			return err
		}

		analytics, err := s.Analytics(ctx)
		if err != nil {
			return err
		}

		if err := export.Write(exportOutput, results, analytics); err != nil {
			return err
		}

		zap.L().Info("export complete",
			zap.String("output", exportOutput),
			zap.Int("diagnostics", len(results)),
		)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportOutput, "output", "diagnostics.xlsx", "output workbook path")
	exportCmd.Flags().StringVar(&exportTier, "tier", "", "only export one tier (A, B or C)")
	exportCmd.Flags().IntVar(&exportLimit, "limit", 0, "max diagnostics to export (0=default cap)")
	rootCmd.AddCommand(exportCmd)
}
