package render

import "sort"

// ThemeConfig is the renderer-facing projection of a resolved theme
// selection. The orchestrator builds it from a go-theme manifest; renderers
// only consume the flattened maps.
type ThemeConfig struct {
	Theme   string
	Variant string

	// Tokens are raw design tokens from the manifest, variant overrides
	// already applied.
	Tokens map[string]string

	// CSSVars are tokens rewritten as CSS custom properties ("--brand").
	CSSVars map[string]string

	// Partials maps control template keys ("sheet.input") to template names
	// that override the embedded defaults.
	Partials map[string]string

	// AssetURL resolves a logical asset key to a servable URL. Nil when the
	// theme ships no assets.
	AssetURL func(key string) string
}

// CSSVarNames returns the sorted custom-property names, for deterministic
// style emission.
func (t *ThemeConfig) CSSVarNames() []string {
	if t == nil || len(t.CSSVars) == 0 {
		return nil
	}
	names := make([]string, 0, len(t.CSSVars))
	for name := range t.CSSVars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CSSVarsFromTokens rewrites design tokens as CSS custom properties.
func CSSVarsFromTokens(tokens map[string]string) map[string]string {
	if len(tokens) == 0 {
		return nil
	}
	out := make(map[string]string, len(tokens))
	for name, value := range tokens {
		out["--"+name] = value
	}
	return out
}
