package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fincompass/fincompass-backend/internal/scheduler"
	"github.com/fincompass/fincompass-backend/internal/usecase/snapshot"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Recompute the snapshot on the configured schedule",
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

		service := snapshot.NewService(store, pol)
		watcher := scheduler.NewWatcher(ctx, service, nil)
		if err := watcher.Register(cfg.Watch.Cron); err != nil {
			return err
		}

		watcher.RunNow()
		watcher.Start()
		defer watcher.Stop()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
		sig := <-sigCh
		zap.L().Info("watch stopped", zap.String("signal", sig.String()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
