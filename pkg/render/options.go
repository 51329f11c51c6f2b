package render

import (
	"context"

	"github.com/stormkeep/sheetgen/pkg/spell"
)

// Tab identifies one of the sheet's mutually exclusive panels.
type Tab string

const (
	TabDescription Tab = "description"
	TabDetails     Tab = "details"
	TabEffects     Tab = "effects"
)

// Tabs returns the panel order used by the sheet chrome.
func Tabs() []Tab {
	return []Tab{TabDescription, TabDetails, TabEffects}
}

// Valid reports whether the tab names a real panel.
func (t Tab) Valid() bool {
	switch t {
	case TabDescription, TabDetails, TabEffects:
		return true
	default:
		return false
	}
}

// Panel renders a delegated sub-view (description body, activation, action,
// active-effects) into a sheet slot. Panels receive the same view-model as
// the sheet and report edits through the same field-path channel; the sheet
// only positions their markup.
type Panel func(ctx context.Context, vm spell.ViewModel, options RenderOptions) (string, error)

// RenderOptions carry per-request data renderers use to customise output
// without mutating the view-model.
type RenderOptions struct {
	// Lookups supplies the host's enum tables. Passed explicitly rather than
	// read from any ambient configuration.
	Lookups spell.Lookups

	// Editable gates the trait-selector affordances. Toggling it changes
	// exactly those four links and nothing else in the markup.
	Editable bool

	// ActiveTab selects the initially visible panel. Zero value falls back
	// to TabDescription; tab switching afterwards is pure client-side
	// visibility toggling and never re-renders or emits edits.
	ActiveTab Tab

	// Locale and Translator resolve the sheet's own chrome labels. Lookup
	// table values arrive pre-localized from the host.
	Locale     string
	Translator Translator

	// OnMissing is invoked when a translation cannot be resolved. Nil means
	// fall back silently to the label key.
	OnMissing MissingTranslationHandler

	// Errors surfaces host-side validation feedback keyed by field path. The
	// sheet renders the messages inline; producing them is the host's job.
	Errors map[string][]string

	// Theme carries a resolved theme selection, when the host uses one.
	Theme *ThemeConfig
}

// Active returns the effective initial tab.
func (o RenderOptions) Active() Tab {
	if o.ActiveTab.Valid() {
		return o.ActiveTab
	}
	return TabDescription
}
