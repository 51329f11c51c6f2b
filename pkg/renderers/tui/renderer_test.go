package tui

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stormkeep/sheetgen/pkg/edits"
	"github.com/stormkeep/sheetgen/pkg/render"
	"github.com/stormkeep/sheetgen/pkg/spell"
	"github.com/stormkeep/sheetgen/pkg/testsupport"
)

// acceptDriver answers every prompt with its default, recording what was
// asked. It stands in for a user who walks the session without changing
// anything.
type acceptDriver struct {
	inputs       []InputConfig
	selects      []SelectConfig
	multiSelects []SelectConfig

	failAfter int // abort once this many prompts have been answered; 0 means never
	answered  int
}

func (d *acceptDriver) step() error {
	d.answered++
	if d.failAfter > 0 && d.answered >= d.failAfter {
		return ErrAborted
	}
	return nil
}

func (d *acceptDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	d.inputs = append(d.inputs, cfg)
	if err := d.step(); err != nil {
		return "", err
	}
	return cfg.Default, nil
}

func (d *acceptDriver) Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error) {
	if err := d.step(); err != nil {
		return false, err
	}
	return cfg.Default, nil
}

func (d *acceptDriver) Select(ctx context.Context, cfg SelectConfig) (int, error) {
	d.selects = append(d.selects, cfg)
	if err := d.step(); err != nil {
		return 0, err
	}
	return cfg.DefaultIndex, nil
}

func (d *acceptDriver) MultiSelect(ctx context.Context, cfg SelectConfig) ([]int, error) {
	d.multiSelects = append(d.multiSelects, cfg)
	if err := d.step(); err != nil {
		return nil, err
	}
	return cfg.Defaults, nil
}

func (d *acceptDriver) TextArea(ctx context.Context, cfg TextAreaConfig) (string, error) {
	if err := d.step(); err != nil {
		return "", err
	}
	return cfg.Default, nil
}

func (d *acceptDriver) Info(ctx context.Context, msg string) error { return nil }

func testLookups() spell.Lookups {
	return spell.Lookups{
		Levels:           map[int]string{0: "Cantrip", 3: "3rd level"},
		TimePeriods:      map[string]string{"minute": "Minute", "round": "Round"},
		Schools:          map[string]string{"evocation": "Evocation", "illusion": "Illusion"},
		Elements:         map[string]string{"fire": "Fire", "frost": "Frost"},
		Tags:             map[string]string{"damage": "Damage"},
		Classes:          map[string]string{"wizard": "Wizard"},
		PreparationModes: map[string]string{"prepared": "Prepared"},
		ScalingModes:     map[string]string{"higherLevel": "Higher Spell Slots", "none": "None"},
	}
}

func testSpell() spell.ViewModel {
	supply := 3
	cost := 25.5
	return spell.ViewModel{
		Name:       "Emberlash",
		SourceText: "Player's Handbook",
		Level:      3,
		Schools:    []string{"evocation"},
		Elements:   []string{"fire", "frost"},
		Tags:       []string{"damage"},
		Classes:    []string{"wizard"},
		Elemental:  true,
		Mana: spell.Mana{
			Cost:          20,
			Concentration: &spell.Concentration{Value: "1 + level", Units: "minute"},
		},
		Components: map[string]bool{
			spell.ComponentVerbal:   true,
			spell.ComponentMaterial: true,
		},
		Materials: spell.Materials{
			Text:     "a whip of braided cinders",
			Supply:   &supply,
			Cost:     &cost,
			Consumed: true,
		},
		Preparation: spell.Preparation{Prepared: true, Mode: "prepared"},
		Scaling:     spell.Scaling{Mode: "higherLevel", Formula: "1d8"},
	}
}

func renderBatch(t *testing.T, driver PromptDriver, vm spell.ViewModel, options render.RenderOptions) []edits.Event {
	t.Helper()
	renderer, err := New(WithDriver(driver))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	payload, err := renderer.Render(context.Background(), vm, options)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	var batch []edits.Event
	if err := json.Unmarshal(payload, &batch); err != nil {
		t.Fatalf("decode batch: %v", err)
	}
	return batch
}

func TestRenderFullSession(t *testing.T) {
	driver := &acceptDriver{}
	batch := renderBatch(t, driver, testSpell(), render.RenderOptions{
		Lookups:  testLookups(),
		Editable: true,
	})

	// Accepting every default round-trips the snapshot. JSON decoding gives
	// float64 numbers and []any slices.
	want := []edits.Event{
		{Path: "name", Value: "Emberlash"},
		{Path: "sourceText", Value: "Player's Handbook"},
		{Path: "level", Value: float64(3)},
		{Path: "mana.cost", Value: float64(20)},
		{Path: "mana.concentration.value", Value: "1 + level"},
		{Path: "mana.concentration.units", Value: "minute"},
		{Path: "components.verbal", Value: true},
		{Path: "components.somatic", Value: false},
		{Path: "components.material", Value: true},
		{Path: "components.focus", Value: false},
		{Path: "components.ritual", Value: false},
		{Path: "materials.text", Value: "a whip of braided cinders"},
		{Path: "materials.supply", Value: float64(3)},
		{Path: "materials.cost", Value: 25.5},
		{Path: "materials.consumed", Value: true},
		{Path: "preparation.prepared", Value: true},
		{Path: "preparation.mode", Value: "prepared"},
		{Path: "scaling.mode", Value: "higherLevel"},
		{Path: "scaling.formula", Value: "1d8"},
		{Path: "school", Value: []any{"evocation"}},
		{Path: "elements", Value: []any{"fire", "frost"}},
		{Path: "tags", Value: []any{"damage"}},
		{Path: "classes", Value: []any{"wizard"}},
	}
	if diff := cmp.Diff(want, batch); diff != "" {
		t.Fatalf("batch mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderSessionGolden(t *testing.T) {
	renderer, err := New(WithDriver(&acceptDriver{}))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	payload, err := renderer.Render(testsupport.Context(), testSpell(), render.RenderOptions{
		Lookups:  testLookups(),
		Editable: true,
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	goldenPath := filepath.Join("testdata", "session.golden.json")
	if testsupport.WriteMaybeGolden(t, goldenPath, payload) {
		return
	}
	want := testsupport.MustReadGoldenString(t, goldenPath)
	if diff := testsupport.CompareGolden(want, string(payload)); diff != "" {
		t.Fatalf("session batch mismatch (-golden +got):\n%s", diff)
	}
}

func TestRenderHiddenSectionsSkipPrompts(t *testing.T) {
	vm := testSpell()
	vm.Mana.Concentration = nil
	vm.Materials = spell.Materials{}
	vm.Elemental = false

	batch := renderBatch(t, &acceptDriver{}, vm, render.RenderOptions{
		Lookups:  testLookups(),
		Editable: false,
	})

	for _, event := range batch {
		switch event.Path {
		case "mana.concentration.value", "mana.concentration.units",
			"materials.supply", "materials.cost", "materials.consumed",
			"school", "elements", "tags", "classes":
			t.Errorf("unexpected event for hidden section: %s", event.Path)
		}
	}
}

func TestRenderEmptyNumericStaysNull(t *testing.T) {
	vm := testSpell()
	vm.Materials.Supply = nil
	vm.Materials.Cost = nil

	batch := renderBatch(t, &acceptDriver{}, vm, render.RenderOptions{Lookups: testLookups()})

	found := 0
	for _, event := range batch {
		if event.Path == "materials.supply" || event.Path == "materials.cost" {
			found++
			if event.Value != nil {
				t.Errorf("%s = %v, want null", event.Path, event.Value)
			}
		}
	}
	if found != 2 {
		t.Fatalf("expected explicit null events for supply and cost, saw %d", found)
	}
}

func TestRenderUnknownKeysStaySelectable(t *testing.T) {
	vm := testSpell()
	vm.Schools = []string{"evocation", "chronurgy"}
	vm.Preparation.Mode = "wildshape"

	driver := &acceptDriver{}
	batch := renderBatch(t, driver, vm, render.RenderOptions{
		Lookups:  testLookups(),
		Editable: true,
	})

	var schools any
	for _, event := range batch {
		if event.Path == "school" {
			schools = event.Value
		}
	}
	if diff := cmp.Diff([]any{"evocation", "chronurgy"}, schools); diff != "" {
		t.Fatalf("unknown school key dropped (-want +got):\n%s", diff)
	}

	// The unknown preparation mode is appended to the select options so the
	// current value is still choosable.
	var prepSelect *SelectConfig
	for i := range driver.selects {
		if driver.selects[i].Message == "Preparation mode" {
			prepSelect = &driver.selects[i]
		}
	}
	if prepSelect == nil {
		t.Fatal("preparation mode prompt missing")
	}
	if prepSelect.DefaultIndex < 0 || prepSelect.Options[prepSelect.DefaultIndex] != "wildshape" {
		t.Fatalf("unknown mode should default-select its own key, got %v", prepSelect)
	}
}

func TestRenderAborted(t *testing.T) {
	renderer, err := New(WithDriver(&acceptDriver{failAfter: 5}))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	payload, err := renderer.Render(context.Background(), testSpell(), render.RenderOptions{Lookups: testLookups()})
	if err != ErrAborted {
		t.Fatalf("err = %v, want ErrAborted", err)
	}
	if payload != nil {
		t.Fatal("aborted session must not leak a partial batch")
	}
}

func TestRenderCanceledContext(t *testing.T) {
	renderer, err := New(WithDriver(&acceptDriver{}))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := renderer.Render(ctx, testSpell(), render.RenderOptions{}); err == nil {
		t.Fatal("expected error for canceled context")
	}
}

func TestRendererIdentity(t *testing.T) {
	renderer, err := New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	if renderer.Name() != "tui" {
		t.Fatalf("Name() = %q", renderer.Name())
	}
	if renderer.ContentType() != "application/json" {
		t.Fatalf("ContentType() = %q", renderer.ContentType())
	}
}

func TestIndexHelpers(t *testing.T) {
	options := []string{"a", "b", "c"}

	if got := indexOf(options, "b"); got != 1 {
		t.Fatalf("indexOf = %d", got)
	}
	if got := indexOf(options, "z"); got != -1 {
		t.Fatalf("indexOf missing = %d", got)
	}
	if diff := cmp.Diff([]int{0, 2}, indicesOf(options, []string{"c", "a"})); diff != "" {
		t.Fatalf("indicesOf (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"a", "c"}, defaultsFromIndices(options, []int{0, 2, 9})); diff != "" {
		t.Fatalf("defaultsFromIndices (-want +got):\n%s", diff)
	}
}
