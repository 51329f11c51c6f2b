package vanilla

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/stormkeep/sheetgen/pkg/edits"
	"github.com/stormkeep/sheetgen/pkg/render"
	rendertemplate "github.com/stormkeep/sheetgen/pkg/render/template"
	"github.com/stormkeep/sheetgen/pkg/spell"
)

const controlTemplatePrefix = "templates/controls/"

// controls renders leaf form controls through the template engine. Control
// name attributes carry the dotted field path verbatim; the host decodes
// submissions with the matching edits.FieldSet.
type controls struct {
	templates rendertemplate.TemplateRenderer
}

func (c *controls) input(options render.RenderOptions, path, inputType, value, placeholder string, kind edits.Kind) (string, error) {
	payload := map[string]any{
		"type":        inputType,
		"id":          controlID(path),
		"name":        path,
		"value":       value,
		"placeholder": placeholder,
		"kind":        string(kind),
	}
	if kind == edits.KindNumber {
		payload["step"] = "any"
	}
	return c.renderControl(options, "sheet.input", "input", payload)
}

func (c *controls) checkbox(options render.RenderOptions, path string, checked bool, boxLabel string) (string, error) {
	payload := map[string]any{
		"id":      controlID(path),
		"name":    path,
		"checked": checked,
		"label":   boxLabel,
	}
	return c.renderControl(options, "sheet.checkbox", "checkbox", payload)
}

// selectBox renders a select over deterministic options. A selected value
// missing from the table still renders, as a trailing unlabeled option, so
// unrecognized keys survive a round-trip instead of being dropped.
func (c *controls) selectBox(options render.RenderOptions, path, value string, opts []spell.Option, kind edits.Kind, blank bool) (string, error) {
	found := value == ""
	converted := make([]any, 0, len(opts)+1)
	for _, opt := range opts {
		if opt.Key == value {
			found = true
		}
		converted = append(converted, map[string]any{"key": opt.Key, "label": opt.Label})
	}
	if !found {
		converted = append(converted, map[string]any{"key": value, "label": ""})
	}

	payload := map[string]any{
		"id":      controlID(path),
		"name":    path,
		"value":   value,
		"options": converted,
		"kind":    string(kind),
		"blank":   blank,
	}
	return c.renderControl(options, "sheet.select", "select", payload)
}

func (c *controls) textarea(options render.RenderOptions, path, value string, rows int) (string, error) {
	if rows <= 0 {
		rows = 3
	}
	// Stringified so the JSON-roundtrip template context cannot reformat it
	// as a float.
	payload := map[string]any{
		"id":    controlID(path),
		"name":  path,
		"value": value,
		"rows":  strconv.Itoa(rows),
	}
	return c.renderControl(options, "sheet.textarea", "textarea", payload)
}

// chips renders a trait as an unordered chip list, one chip per selected key
// in view-model order. Keys absent from the lookup table keep their chip with
// an empty label. The trailing selector affordance appears only when the
// sheet is editable.
func (c *controls) chips(options render.RenderOptions, trait, path string, keys []string, table map[string]string, editable bool) (string, error) {
	converted := make([]any, 0, len(keys))
	for _, key := range keys {
		converted = append(converted, map[string]any{
			"key":   key,
			"label": spell.Label(table, key),
		})
	}
	payload := map[string]any{
		"trait":     trait,
		"path":      path,
		"chips":     converted,
		"editable":  editable,
		"editLabel": label(options, "sheet.trait.edit", "Edit"),
	}
	return c.renderControl(options, "sheet.chips", "chips", payload)
}

func (c *controls) renderControl(options render.RenderOptions, partialKey, builtin string, payload map[string]any) (string, error) {
	name := partialFor(options, partialKey, controlTemplatePrefix+builtin+".tmpl")
	rendered, err := c.templates.RenderTemplate(name, payload)
	if err != nil {
		return "", fmt.Errorf("render control %q: %w", builtin, err)
	}
	return rendered, nil
}

// field wraps a control in standard chrome: label, control, inline errors.
func field(options render.RenderOptions, path, labelKey, fallback, control string) string {
	var builder strings.Builder
	builder.Grow(len(control) + 192)

	builder.WriteString(`<div class="sheetgen-field" data-path="`)
	builder.WriteString(html.EscapeString(path))
	builder.WriteString("\">\n")

	if text := label(options, labelKey, fallback); text != "" {
		builder.WriteString(`    <label for="`)
		builder.WriteString(html.EscapeString(controlID(path)))
		builder.WriteString(`">`)
		builder.WriteString(html.EscapeString(text))
		builder.WriteString("</label>\n")
	}

	indent(&builder, control)

	for _, message := range options.Errors[path] {
		if strings.TrimSpace(message) == "" {
			continue
		}
		builder.WriteString(`    <small class="sheetgen-error">`)
		builder.WriteString(html.EscapeString(message))
		builder.WriteString("</small>\n")
	}

	builder.WriteString("</div>\n")
	return builder.String()
}
