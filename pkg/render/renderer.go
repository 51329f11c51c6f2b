package render

import (
	"context"

	"github.com/stormkeep/sheetgen/pkg/spell"
)

// Renderer converts a spell view-model snapshot into a byte representation
// (HTML for the vanilla renderer, JSON for the TUI renderer). Rendering is a
// synchronous, idempotent pass: identical inputs produce identical bytes.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, vm spell.ViewModel, options RenderOptions) ([]byte, error)
}
