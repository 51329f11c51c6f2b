package vanilla_test

import (
	"strings"
	"testing"

	"github.com/stormkeep/sheetgen/pkg/render"
	"github.com/stormkeep/sheetgen/pkg/renderers/vanilla"
	"github.com/stormkeep/sheetgen/pkg/testsupport"
)

// Renders the fixture spell end to end through the exported API, the way a
// host would.
func TestRenderContract(t *testing.T) {
	vm := testsupport.MustLoadViewModel(t, "testdata/spell.json")
	lookups := testsupport.MustLoadLookups(t, "testdata/lookups.yaml")

	renderer, err := vanilla.New(vanilla.WithDefaultStyles())
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	options := render.RenderOptions{Lookups: lookups, Editable: true}
	first, err := renderer.Render(testsupport.Context(), vm, options)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	markup := string(first)
	for _, want := range []string{
		`<form class="sheetgen-sheet"`,
		`value="Emberlash"`,
		`<span class="sheetgen-level-badge">2nd Circle</span>`,
		`name="mana.concentration.value" value="1 + @level"`,
		`data-key="fire">Fire</li>`,
		`name="materials.supply" value="3"`,
		`<p>A whip of living flame scours the target.</p>`,
	} {
		if !strings.Contains(markup, want) {
			t.Errorf("markup missing %q", want)
		}
	}

	second, err := renderer.Render(testsupport.Context(), vm, options)
	if err != nil {
		t.Fatalf("second render: %v", err)
	}
	if diff := testsupport.CompareGolden(markup, string(second)); diff != "" {
		t.Fatalf("renders differ (-first +second):\n%s", diff)
	}
}
