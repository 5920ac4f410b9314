package providers

import (
	"context"
)

// SnapshotProvider is the persistence boundary of the record store. The
// whole state is serialized and overwritten as one blob on every mutation;
// the clinic logo lives in its own slot, written independently of the
// snapshot. Implementations must treat an absent snapshot as (nil, nil).
//
// The interface is deliberately narrow so a journaled implementation could
// replace the overwrite-on-write model without touching ledger logic.
type SnapshotProvider interface {
	// Load returns the stored snapshot blob, or (nil, nil) when absent
	Load(ctx context.Context) ([]byte, error)

	// Save overwrites the stored snapshot blob
	Save(ctx context.Context, data []byte) error

	// LoadLogo returns the base64 clinic logo, or "" when absent
	LoadLogo(ctx context.Context) (string, error)

	// SaveLogo overwrites the base64 clinic logo
	SaveLogo(ctx context.Context, logo string) error
}
