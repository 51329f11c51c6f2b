// Package sheetgen renders item-editor sheets for virtual-tabletop hosts. A
// host supplies a read-only spell view-model plus its lookup tables; sheetgen
// produces a tabbed editor form (HTML by default, terminal prompts via the
// TUI renderer) and decodes user submissions back into discrete field-path
// edit events the host applies to persisted data.
package sheetgen

import (
	"context"
	"io/fs"

	"github.com/stormkeep/sheetgen/pkg/orchestrator"
	"github.com/stormkeep/sheetgen/pkg/render"
	"github.com/stormkeep/sheetgen/pkg/renderers/vanilla"
	"github.com/stormkeep/sheetgen/pkg/spell"
)

// RenderOptions describes per-request data renderers can use: lookup tables,
// the editable flag, initial tab, translator wiring and theme config.
type RenderOptions = render.RenderOptions

// ViewModel aliases the spell view-model for convenience at the root.
type ViewModel = spell.ViewModel

// Lookups aliases the host lookup bundle.
type Lookups = spell.Lookups

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module as the main entry point for hosts.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// RenderHTML renders a spell sheet with the default vanilla renderer. It is
// the simplest entry point for callers that just want HTML output.
func RenderHTML(ctx context.Context, vm spell.ViewModel, opts render.RenderOptions, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Render(ctx, orchestrator.Request{
		ViewModel:     vm,
		RenderOptions: opts,
	})
}

// EmbeddedTemplates exposes the built-in vanilla control templates so callers
// can reuse or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return vanilla.TemplatesFS()
}

// AssetsFS exposes the embedded stylesheet and tab runtime so hosts can serve
// them over HTTP:
//
//	mux.Handle("/assets/",
//	  http.StripPrefix("/assets/",
//	    http.FileServerFS(sheetgen.AssetsFS()),
//	  ),
//	)
func AssetsFS() fs.FS {
	return vanilla.AssetsFS()
}
