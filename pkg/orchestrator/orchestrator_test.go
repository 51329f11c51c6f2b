package orchestrator

import (
	"context"
	"errors"
	"strings"
	"testing"

	theme "github.com/goliatone/go-theme"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/stormkeep/sheetgen/pkg/render"
	"github.com/stormkeep/sheetgen/pkg/spell"
)

type captureRenderer struct {
	name    string
	options render.RenderOptions
	err     error
}

func (r *captureRenderer) Name() string {
	if r.name != "" {
		return r.name
	}
	return "capture"
}

func (r *captureRenderer) ContentType() string {
	return "text/plain"
}

func (r *captureRenderer) Render(_ context.Context, vm spell.ViewModel, opts render.RenderOptions) ([]byte, error) {
	r.options = opts
	if r.err != nil {
		return nil, r.err
	}
	return []byte(vm.Name), nil
}

type selectorCall struct {
	name    string
	variant string
}

type stubThemeSelector struct {
	selection *theme.Selection
	err       error
	calls     []selectorCall
}

func (s *stubThemeSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	s.calls = append(s.calls, selectorCall{name: name, variant: variant})
	return s.selection, s.err
}

func TestRenderUsesNamedRenderer(t *testing.T) {
	renderer := &captureRenderer{}
	registry := render.NewRegistry()
	registry.MustRegister(renderer)

	orch := New(WithRegistry(registry))

	out, err := orch.Render(context.Background(), Request{
		ViewModel: spell.ViewModel{Name: "Emberlash"},
		Renderer:  "capture",
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if string(out) != "Emberlash" {
		t.Fatalf("output = %q", out)
	}
}

func TestRenderFallsBackToDefault(t *testing.T) {
	renderer := &captureRenderer{}
	registry := render.NewRegistry()
	registry.MustRegister(renderer)

	orch := New(WithRegistry(registry), WithDefaultRenderer("capture"))

	if _, err := orch.Render(context.Background(), Request{ViewModel: spell.ViewModel{Name: "x"}}); err != nil {
		t.Fatalf("render with default: %v", err)
	}
}

func TestRenderUnknownRenderer(t *testing.T) {
	registry := render.NewRegistry()
	registry.MustRegister(&captureRenderer{})

	orch := New(WithRegistry(registry))

	_, err := orch.Render(context.Background(), Request{Renderer: "ghost"})
	if err == nil {
		t.Fatal("expected error for unknown renderer")
	}
	if !strings.Contains(err.Error(), `renderer "ghost"`) {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRenderMissingDefaultUsesFirstRegistered(t *testing.T) {
	renderer := &captureRenderer{name: "only"}
	registry := render.NewRegistry()
	registry.MustRegister(renderer)

	// The configured default ("vanilla") is absent; an empty request renderer
	// falls back to the sole registered one rather than failing.
	orch := New(WithRegistry(registry))

	out, err := orch.Render(context.Background(), Request{ViewModel: spell.ViewModel{Name: "x"}})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if string(out) != "x" {
		t.Fatalf("output = %q", out)
	}
}

func TestRenderDefaultsRegisterVanilla(t *testing.T) {
	orch := New()

	out, err := orch.Render(context.Background(), Request{
		ViewModel: spell.ViewModel{Name: "Emberlash"},
	})
	if err != nil {
		t.Fatalf("render with built-in defaults: %v", err)
	}
	if !strings.Contains(string(out), "sheetgen-sheet") {
		t.Fatal("default renderer should be the vanilla HTML sheet")
	}
}

func TestRenderPropagatesRendererError(t *testing.T) {
	failure := errors.New("boom")
	registry := render.NewRegistry()
	registry.MustRegister(&captureRenderer{err: failure})

	orch := New(WithRegistry(registry))

	_, err := orch.Render(context.Background(), Request{Renderer: "capture"})
	if !errors.Is(err, failure) {
		t.Fatalf("err = %v, want wrapped renderer failure", err)
	}
}

func TestRenderPassesThemeConfigToRenderer(t *testing.T) {
	manifest := &theme.Manifest{
		Name:    "acme",
		Version: "1.0.0",
		Tokens: map[string]string{
			"brand": "#123456",
		},
		Templates: map[string]string{
			"sheet.input": "themes/acme/input.tmpl",
		},
		Assets: theme.Assets{
			Prefix: "/assets/themes/acme",
			Files: map[string]string{
				"vanilla.stylesheet": "theme.css",
			},
		},
		Variants: map[string]theme.Variant{
			"dark": {
				Tokens: map[string]string{
					"brand": "#654321",
				},
				Templates: map[string]string{
					"sheet.checkbox": "themes/acme/dark/checkbox.tmpl",
				},
			},
		},
	}
	selector := &stubThemeSelector{selection: &theme.Selection{
		Theme:    "acme",
		Variant:  "dark",
		Manifest: manifest,
	}}

	renderer := &captureRenderer{}
	registry := render.NewRegistry()
	registry.MustRegister(renderer)

	orch := New(
		WithRegistry(registry),
		WithDefaultRenderer(renderer.Name()),
		WithThemeSelector(selector),
	)

	_, err := orch.Render(context.Background(), Request{
		ThemeName:    "acme",
		ThemeVariant: "dark",
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if len(selector.calls) != 1 {
		t.Fatalf("expected selector called once, got %d", len(selector.calls))
	}
	if selector.calls[0].name != "acme" || selector.calls[0].variant != "dark" {
		t.Fatalf("unexpected selector args: %+v", selector.calls[0])
	}

	cfg := renderer.options.Theme
	if cfg == nil {
		t.Fatal("expected theme config passed to renderer")
	}
	if cfg.Theme != "acme" || cfg.Variant != "dark" {
		t.Fatalf("selection mismatch: %s/%s", cfg.Theme, cfg.Variant)
	}
	if cfg.Partials["sheet.input"] != "themes/acme/input.tmpl" {
		t.Fatalf("base template override missing, got %s", cfg.Partials["sheet.input"])
	}
	if cfg.Partials["sheet.checkbox"] != "themes/acme/dark/checkbox.tmpl" {
		t.Fatalf("variant template override missing, got %s", cfg.Partials["sheet.checkbox"])
	}
	if cfg.Partials["sheet.textarea"] != defaultThemePartials()["sheet.textarea"] {
		t.Fatalf("fallback partial not applied, got %s", cfg.Partials["sheet.textarea"])
	}
	if cfg.Tokens["brand"] != "#654321" {
		t.Fatalf("variant token override missing, got %s", cfg.Tokens["brand"])
	}
	if cfg.CSSVars["--brand"] != "#654321" {
		t.Fatalf("css vars not derived from tokens, got %s", cfg.CSSVars["--brand"])
	}
	if cfg.AssetURL == nil {
		t.Fatal("expected AssetURL resolver present")
	}
	if got := cfg.AssetURL("vanilla.stylesheet"); got != "/assets/themes/acme/theme.css" {
		t.Fatalf("unexpected stylesheet asset url: %s", got)
	}
	if got := cfg.AssetURL("ghost"); got != "" {
		t.Fatalf("unknown asset keys resolve empty, got %s", got)
	}
}

func TestRenderExplicitThemeSkipsSelector(t *testing.T) {
	selector := &stubThemeSelector{}
	renderer := &captureRenderer{}
	registry := render.NewRegistry()
	registry.MustRegister(renderer)

	orch := New(
		WithRegistry(registry),
		WithDefaultRenderer(renderer.Name()),
		WithThemeSelector(selector),
	)

	explicit := &render.ThemeConfig{Theme: "inline"}
	_, err := orch.Render(context.Background(), Request{
		RenderOptions: render.RenderOptions{Theme: explicit},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if len(selector.calls) != 0 {
		t.Fatal("selector should not run when the request carries a theme")
	}
	if renderer.options.Theme != explicit {
		t.Fatal("explicit theme config should pass through untouched")
	}
}

func TestRenderThemeSelectorError(t *testing.T) {
	selector := &stubThemeSelector{err: errors.New("no such theme")}
	renderer := &captureRenderer{}
	registry := render.NewRegistry()
	registry.MustRegister(renderer)

	orch := New(
		WithRegistry(registry),
		WithDefaultRenderer(renderer.Name()),
		WithThemeSelector(selector),
	)

	_, err := orch.Render(context.Background(), Request{ThemeName: "missing"})
	if err == nil {
		t.Fatal("expected selector failure to surface")
	}
	if !strings.Contains(err.Error(), `select theme "missing"`) {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRenderWithTracerProvider(t *testing.T) {
	renderer := &captureRenderer{}
	registry := render.NewRegistry()
	registry.MustRegister(renderer)

	orch := New(
		WithRegistry(registry),
		WithDefaultRenderer(renderer.Name()),
		WithTracerProvider(noop.NewTracerProvider()),
	)

	if _, err := orch.Render(context.Background(), Request{ViewModel: spell.ViewModel{Name: "x"}}); err != nil {
		t.Fatalf("render: %v", err)
	}
}

func TestRenderCanceledContext(t *testing.T) {
	orch := New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := orch.Render(ctx, Request{}); err == nil {
		t.Fatal("expected error for canceled context")
	}
}
