package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fincompass/fincompass-backend/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "fincompass",
	Short: "Household financial snapshot engine",
	Long:  "Normalizes self-reported household survey records and derives ratios, grades, tax estimates, the DESIRE maturity stage, and a prioritized action plan.",
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
