package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/andes-consulting/readiness-cli/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "readiness-cli",
	Short: "AI-readiness lead qualification engine",
	Long:  "Scores prospect questionnaires on digital maturity, investment capacity and commercial viability, classifies the buyer archetype and generates sales insights.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
