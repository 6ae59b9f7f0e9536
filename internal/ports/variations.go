package ports

import (
	"context"

	"github.com/alexisbeaulieu97/swatchbook/internal/variation"
)

// VariationSource supplies the style variations offered by a theme and the
// slug of the one currently active. Implementations must honour context
// cancellation and wrap transport failures in errors.FetchError.
type VariationSource interface {
	FetchVariations(ctx context.Context) ([]variation.Variation, error)
	// FetchCurrent returns "" when no variation is active.
	FetchCurrent(ctx context.Context) (string, error)
}

// ApplyResult is what a sink reports back after persisting a variation.
type ApplyResult struct {
	Success bool
	Message string
	// Reference identifies the persisted record when the sink has one
	// (for example a post ID on a remote site).
	Reference string
}

// ApplySink persists a chosen variation as the active user style. The full
// raw config of the variation is sent, not only the decoded subset.
type ApplySink interface {
	Apply(ctx context.Context, v variation.Variation) (ApplyResult, error)
}
