package render

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTabValid(t *testing.T) {
	for _, tab := range Tabs() {
		if !tab.Valid() {
			t.Fatalf("tab %q should be valid", tab)
		}
	}
	if Tab("summary").Valid() {
		t.Fatal("unknown tab should be invalid")
	}
	if Tab("").Valid() {
		t.Fatal("zero tab should be invalid")
	}
}

func TestActiveDefaultsToDescription(t *testing.T) {
	if got := (RenderOptions{}).Active(); got != TabDescription {
		t.Fatalf("Active() = %q, want description", got)
	}
	if got := (RenderOptions{ActiveTab: TabEffects}).Active(); got != TabEffects {
		t.Fatalf("Active() = %q, want effects", got)
	}
	if got := (RenderOptions{ActiveTab: Tab("bogus")}).Active(); got != TabDescription {
		t.Fatalf("Active() = %q, invalid tabs fall back to description", got)
	}
}

func TestTabsOrder(t *testing.T) {
	want := []Tab{TabDescription, TabDetails, TabEffects}
	if diff := cmp.Diff(want, Tabs()); diff != "" {
		t.Fatalf("tab order (-want +got):\n%s", diff)
	}
}

func TestCSSVarsFromTokens(t *testing.T) {
	got := CSSVarsFromTokens(map[string]string{
		"brand":   "#7c3aed",
		"surface": "#1e1e2e",
	})
	want := map[string]string{
		"--brand":   "#7c3aed",
		"--surface": "#1e1e2e",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("css vars (-want +got):\n%s", diff)
	}

	if CSSVarsFromTokens(nil) != nil {
		t.Fatal("nil tokens should yield nil vars")
	}
}

func TestThemeConfigCSSVarNames(t *testing.T) {
	theme := &ThemeConfig{CSSVars: map[string]string{
		"--surface": "#111",
		"--brand":   "#222",
	}}
	want := []string{"--brand", "--surface"}
	if diff := cmp.Diff(want, theme.CSSVarNames()); diff != "" {
		t.Fatalf("var names (-want +got):\n%s", diff)
	}

	var nilTheme *ThemeConfig
	if nilTheme.CSSVarNames() != nil {
		t.Fatal("nil theme should yield nil names")
	}
}
