// Package template defines the renderer-agnostic template seam. Renderers
// depend on this interface so hosts can swap the engine without touching
// sheet logic.
package template

import "io"

// TemplateRenderer mirrors the github.com/goliatone/go-template engine
// contract. Render accepts either a template name or inline template content;
// RenderTemplate always resolves a named template from the configured source.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data any) error
}
