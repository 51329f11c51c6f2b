package orchestrator

import (
	"context"
	"errors"
	"fmt"

	theme "github.com/goliatone/go-theme"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/stormkeep/sheetgen/pkg/render"
	"github.com/stormkeep/sheetgen/pkg/renderers/vanilla"
	"github.com/stormkeep/sheetgen/pkg/spell"
)

const defaultRendererName = "vanilla"

const tracerName = "github.com/stormkeep/sheetgen/pkg/orchestrator"

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithThemeSelector passes a go-theme selector so requests can resolve named
// themes into renderer-facing theme config.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(o *Orchestrator) {
		o.themeSelector = selector
	}
}

// WithTracerProvider overrides the tracer provider used for render spans.
// The global provider is used by default.
func WithTracerProvider(provider trace.TracerProvider) Option {
	return func(o *Orchestrator) {
		if provider != nil {
			o.tracer = provider.Tracer(tracerName)
		}
	}
}

// Orchestrator coordinates a render request: theme resolution, renderer
// lookup, and the render pass itself. It applies sensible defaults (vanilla
// renderer, global tracer) while remaining open to dependency injection.
type Orchestrator struct {
	registry        *render.Registry
	defaultRenderer string
	themeSelector   theme.ThemeSelector
	tracer          trace.Tracer
	initialiseErr   error
	defaultsApplied bool
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations so callers
// can start with a single constructor call.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes the inputs required to render a sheet.
type Request struct {
	// ViewModel is the snapshot to render. The orchestrator never mutates it.
	ViewModel spell.ViewModel

	// Renderer names the renderer to use. If empty, the orchestrator falls
	// back to the configured default renderer.
	Renderer string

	// ThemeName and ThemeVariant select a theme when a selector is
	// configured. Empty values mean the selector's defaults.
	ThemeName    string
	ThemeVariant string

	// RenderOptions carries per-request data such as lookups, the editable
	// flag, the initial tab, and translator wiring.
	RenderOptions render.RenderOptions
}

// Render executes theme resolution and the renderer pass, returning the
// rendered bytes (HTML for the default vanilla renderer). Each call is a
// discrete synchronous pass over the snapshot; there is nothing to cancel
// beyond the supplied context.
func (o *Orchestrator) Render(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := o.initialiseErr; err != nil {
		return nil, err
	}
	if !o.defaultsApplied {
		o.applyDefaults()
		if err := o.initialiseErr; err != nil {
			return nil, err
		}
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}

	ctx, span := o.tracer.Start(ctx, "sheetgen.render", trace.WithAttributes(
		attribute.String("sheetgen.renderer", renderer.Name()),
		attribute.String("sheetgen.tab", string(req.RenderOptions.Active())),
		attribute.Bool("sheetgen.editable", req.RenderOptions.Editable),
	))
	defer span.End()

	options := req.RenderOptions
	if options.Theme == nil && o.themeSelector != nil {
		cfg, err := resolveTheme(o.themeSelector, req.ThemeName, req.ThemeVariant)
		if err != nil {
			span.RecordError(err)
			return nil, err
		}
		options.Theme = cfg
	}

	output, err := renderer.Render(ctx, req.ViewModel, options)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}

	span.SetAttributes(attribute.Int("sheetgen.output_bytes", len(output)))
	return output, nil
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}

	renderer, err := o.registry.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", names[0], err)
	}
	return renderer, nil
}

func (o *Orchestrator) applyDefaults() {
	if o.defaultsApplied {
		return
	}

	if o.registry == nil {
		o.registry = render.NewRegistry()
		renderer, err := vanilla.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
		} else {
			o.registry.MustRegister(renderer)
		}
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}
	if o.tracer == nil {
		o.tracer = otel.Tracer(tracerName)
	}

	o.defaultsApplied = true
}
