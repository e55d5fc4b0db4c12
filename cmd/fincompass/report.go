package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fincompass/fincompass-backend/internal/adapter/renderer"
	"github.com/fincompass/fincompass-backend/internal/usecase/snapshot"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Compute a snapshot and print the text report",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		store, err := openStore(ctx, cfg.Store)
		if err != nil {
			return err
		}
		defer store.Close()

		pol, err := loadPolicy()
		if err != nil {
			return err
		}

		snap := snapshot.NewService(store, pol).Compute(ctx)
		fmt.Print(renderer.Report(snap))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
}
