package vanilla

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/stormkeep/sheetgen/pkg/render"
	rendertemplate "github.com/stormkeep/sheetgen/pkg/render/template"
	gotemplate "github.com/stormkeep/sheetgen/pkg/render/template/gotemplate"
	"github.com/stormkeep/sheetgen/pkg/spell"
	"github.com/stormkeep/sheetgen/pkg/visibility"
)

// Panel slot names for the delegated sub-views.
const (
	PanelDescription = "description"
	PanelActivation  = "activation"
	PanelAction      = "action"
	PanelEffects     = "effects"
)

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	panels           map[string]render.Panel
	stylesheets      []string
	defaultStyles    bool
	withoutRuntime   bool
}

// WithTemplatesFS supplies an alternate control template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads control templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithPanel overrides a delegated panel slot. Panels receive the same
// view-model as the sheet and report edits through the same field-path
// naming, so the host's edit channel stays uniform.
func WithPanel(name string, panel render.Panel) Option {
	return func(cfg *config) {
		name = strings.TrimSpace(name)
		if name == "" || panel == nil {
			return
		}
		if cfg.panels == nil {
			cfg.panels = make(map[string]render.Panel)
		}
		cfg.panels[name] = panel
	}
}

// WithDefaultStyles inlines the embedded stylesheet into rendered output.
func WithDefaultStyles() Option {
	return func(cfg *config) {
		cfg.defaultStyles = true
	}
}

// WithStylesheet links an external stylesheet in rendered output.
func WithStylesheet(href string) Option {
	return func(cfg *config) {
		href = strings.TrimSpace(href)
		if href == "" {
			return
		}
		cfg.stylesheets = append(cfg.stylesheets, href)
	}
}

// WithoutRuntime drops the inline tab-switching script for hosts that wire
// their own tab handling.
func WithoutRuntime() Option {
	return func(cfg *config) {
		cfg.withoutRuntime = true
	}
}

// Renderer produces the tabbed spell sheet as HTML.
type Renderer struct {
	controls       *controls
	panels         map[string]render.Panel
	stylesheets    []string
	defaultStyles  bool
	withoutRuntime bool
}

// New constructs the vanilla renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	templates := cfg.templateRenderer
	if templates == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("vanilla: configure template renderer: %w", err)
		}
		templates = engine
	}

	return &Renderer{
		controls:       &controls{templates: templates},
		panels:         cfg.panels,
		stylesheets:    cfg.stylesheets,
		defaultStyles:  cfg.defaultStyles,
		withoutRuntime: cfg.withoutRuntime,
	}, nil
}

func (r *Renderer) Name() string {
	return "vanilla"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render produces the sheet markup for one view-model snapshot. The pass is
// synchronous and idempotent: the same snapshot and options yield identical
// bytes. Missing optional sub-fields omit their sections; they are never an
// error.
func (r *Renderer) Render(ctx context.Context, vm spell.ViewModel, options render.RenderOptions) ([]byte, error) {
	if r.controls == nil || r.controls.templates == nil {
		return nil, fmt.Errorf("vanilla: template renderer is nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sections := visibility.Sections(vm, options.Editable)
	markup, err := r.buildSheet(ctx, vm, options, sections)
	if err != nil {
		return nil, fmt.Errorf("vanilla: render sheet: %w", err)
	}
	return []byte(markup), nil
}

func (r *Renderer) panel(ctx context.Context, name string, vm spell.ViewModel, options render.RenderOptions) (string, error) {
	if panel, ok := r.panels[name]; ok {
		out, err := panel(ctx, vm, options)
		if err != nil {
			return "", fmt.Errorf("vanilla: render panel %q: %w", name, err)
		}
		return out, nil
	}
	// Placeholder container the host hydrates with its own sub-view.
	return `<div class="sheetgen-panel-slot" data-panel="` + name + `"></div>`, nil
}
