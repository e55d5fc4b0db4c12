package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fincompass/fincompass-backend/internal/adapter/httpapi"
	"github.com/fincompass/fincompass-backend/internal/usecase/snapshot"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the dashboard HTTP API",
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
		api := httpapi.NewServer(service)

		server := &fasthttp.Server{Handler: api.Handler}
		addr := fmt.Sprintf(":%d", cfg.Server.Port)

		errCh := make(chan error, 1)
		go func() {
			zap.L().Info("http server listening", zap.String("addr", addr))
			errCh <- server.ListenAndServe(addr)
		}()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

		select {
		case err := <-errCh:
			return err
		case sig := <-sigCh:
			zap.L().Info("shutting down", zap.String("signal", sig.String()))
			return server.Shutdown()
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
