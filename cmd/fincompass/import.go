package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fincompass/fincompass-backend/internal/domain"
)

var importKey string

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a raw survey record from a JSON file",
	Long:  "Stores the file contents under the given record key. The content is stored as-is; the loader tolerates malformed records by treating them as absent.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		switch importKey {
		case domain.KeyBasicFinal, domain.KeyBasicDraft, domain.KeyDesign:
		default:
			return fmt.Errorf("unknown record key %q", importKey)
		}

		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		store, err := openStore(ctx, cfg.Store)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Put(ctx, importKey, data); err != nil {
			return err
		}

		zap.L().Info("record imported",
			zap.String("key", importKey),
			zap.String("file", args[0]),
			zap.Int("bytes", len(data)),
		)
		return nil
	},
}

func init() {
	importCmd.Flags().StringVar(&importKey, "key", domain.KeyBasicFinal, "record key to store under")
	rootCmd.AddCommand(importCmd)
}
