// Package loader reads the raw survey records from the external key-value
// store. Records are independently optional; any read or parse failure is
// treated the same as an absent record, so loading never fails.
package loader

import (
	"context"
	"errors"

	json "github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/fincompass/fincompass-backend/internal/domain"
)

// Load returns the best-effort (basic, design) record pair. The basic record
// resolves final-before-draft: the draft variant is only consulted when the
// final one is absent or unparseable. A nil map means no usable record.
func Load(ctx context.Context, records domain.RecordReader) (basic, design map[string]any) {
	basic = readRecord(ctx, records, domain.KeyBasicFinal)
	if basic == nil {
		basic = readRecord(ctx, records, domain.KeyBasicDraft)
	}
	design = readRecord(ctx, records, domain.KeyDesign)
	return basic, design
}

func readRecord(ctx context.Context, records domain.RecordReader, key string) map[string]any {
	data, err := records.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrRecordNotFound) {
			zap.L().Debug("loader: read failed", zap.String("key", key), zap.Error(err))
		}
		return nil
	}

	var record map[string]any
	if err := json.Unmarshal(data, &record); err != nil {
		// Malformed content is handled identically to absence.
		zap.L().Debug("loader: malformed record", zap.String("key", key), zap.Error(err))
		return nil
	}
	return record
}
