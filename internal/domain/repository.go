package domain

import (
	"context"
	"errors"
)

// ErrRecordNotFound is returned by RecordReader.Get when no record exists
// under the requested key.
var ErrRecordNotFound = errors.New("record not found")

// Storage keys for the raw survey records. The basic profile has a
// final/draft variant pair; each design record covers every design domain in
// one document.
const (
	KeyBasicFinal = "plan:basic:final"
	KeyBasicDraft = "plan:basic:draft"
	KeyDesign     = "plan:design"
)

// RecordReader is the read port onto the external key-value record store.
// The loader is the only component allowed to use it; everything downstream
// of normalization flows by value.
type RecordReader interface {
	// Get retrieves the raw record stored under key.
	// Returns ErrRecordNotFound when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
}

// RecordWriter is the write port used by the ingestion surfaces (seed and
// import). The computation core never writes.
type RecordWriter interface {
	// Put stores value under key, replacing any previous record.
	Put(ctx context.Context, key string, value []byte) error
}
