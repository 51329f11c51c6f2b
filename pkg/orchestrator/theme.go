package orchestrator

import (
	"fmt"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/stormkeep/sheetgen/pkg/render"
)

// defaultThemePartials maps control partial keys to the embedded vanilla
// templates. Manifest template entries override these per key.
func defaultThemePartials() map[string]string {
	return map[string]string{
		"sheet.input":    "templates/controls/input.tmpl",
		"sheet.checkbox": "templates/controls/checkbox.tmpl",
		"sheet.select":   "templates/controls/select.tmpl",
		"sheet.textarea": "templates/controls/textarea.tmpl",
		"sheet.chips":    "templates/controls/chips.tmpl",
	}
}

func resolveTheme(selector theme.ThemeSelector, name, variant string) (*render.ThemeConfig, error) {
	selection, err := selector.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: select theme %q: %w", name, err)
	}
	if selection == nil || selection.Manifest == nil {
		return nil, nil
	}

	manifest := selection.Manifest

	tokens := cloneMap(manifest.Tokens)
	partials := mergeMaps(defaultThemePartials(), manifest.Templates)
	assets := cloneMap(manifest.Assets.Files)
	prefix := manifest.Assets.Prefix

	if v, ok := manifest.Variants[selection.Variant]; ok {
		tokens = mergeMaps(tokens, v.Tokens)
		partials = mergeMaps(partials, v.Templates)
		assets = mergeMaps(assets, v.Assets.Files)
		if v.Assets.Prefix != "" {
			prefix = v.Assets.Prefix
		}
	}

	cfg := &render.ThemeConfig{
		Theme:    selection.Theme,
		Variant:  selection.Variant,
		Tokens:   tokens,
		CSSVars:  render.CSSVarsFromTokens(tokens),
		Partials: partials,
	}

	if len(assets) > 0 {
		cfg.AssetURL = assetResolver(prefix, assets)
	}
	return cfg, nil
}

func assetResolver(prefix string, files map[string]string) func(string) string {
	return func(key string) string {
		file, ok := files[key]
		if !ok || file == "" {
			return ""
		}
		if prefix == "" {
			return file
		}
		return strings.TrimSuffix(prefix, "/") + "/" + strings.TrimPrefix(file, "/")
	}
}

func cloneMap(src map[string]string) map[string]string {
	if len(src) == 0 {
		return nil
	}
	out := make(map[string]string, len(src))
	for key, value := range src {
		out[key] = value
	}
	return out
}

func mergeMaps(base, overrides map[string]string) map[string]string {
	if len(base) == 0 && len(overrides) == 0 {
		return nil
	}
	out := make(map[string]string, len(base)+len(overrides))
	for key, value := range base {
		out[key] = value
	}
	for key, value := range overrides {
		out[key] = value
	}
	return out
}
