package vanilla

import (
	"strings"

	"github.com/stormkeep/sheetgen/pkg/render"
)

// controlID derives the DOM id for a field path ("mana.cost" -> "sg-mana-cost").
func controlID(path string) string {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return ""
	}
	return "sg-" + strings.ReplaceAll(trimmed, ".", "-")
}

// label resolves a chrome label through the configured translator, degrading
// to the fallback then the key.
func label(options render.RenderOptions, key, fallback string) string {
	return render.Translate(options.Locale, key, fallback, options.Translator, options.OnMissing)
}

// partialFor returns a theme template override for a control key, or the
// built-in default.
func partialFor(options render.RenderOptions, key, builtin string) string {
	if options.Theme == nil || len(options.Theme.Partials) == 0 {
		return builtin
	}
	if candidate := strings.TrimSpace(options.Theme.Partials[key]); candidate != "" {
		return candidate
	}
	return builtin
}

func indent(builder *strings.Builder, markup string) {
	for _, line := range strings.Split(markup, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		builder.WriteString("    ")
		builder.WriteString(line)
		builder.WriteByte('\n')
	}
}
