package vanilla

import (
	"context"
	"html"
	"strconv"
	"strings"

	"github.com/stormkeep/sheetgen/pkg/edits"
	"github.com/stormkeep/sheetgen/pkg/render"
	"github.com/stormkeep/sheetgen/pkg/spell"
	"github.com/stormkeep/sheetgen/pkg/visibility"
)

func (r *Renderer) buildSheet(ctx context.Context, vm spell.ViewModel, options render.RenderOptions, sections visibility.SectionSet) (string, error) {
	var b strings.Builder
	b.Grow(8 * 1024)

	b.WriteString(`<form class="sheetgen-sheet" data-item-type="spell" autocomplete="off">` + "\n")

	r.writeAssets(&b, options)

	if err := r.writeHeader(&b, vm, options); err != nil {
		return "", err
	}
	r.writeTabNav(&b, options)

	if err := r.writeDescriptionPanel(ctx, &b, vm, options); err != nil {
		return "", err
	}
	if err := r.writeDetailsPanel(ctx, &b, vm, options, sections); err != nil {
		return "", err
	}
	if err := r.writeEffectsPanel(ctx, &b, vm, options); err != nil {
		return "", err
	}

	if !r.withoutRuntime {
		if script := runtimeScript(); script != "" {
			b.WriteString("<script>\n")
			b.WriteString(script)
			b.WriteString("</script>\n")
		}
	}

	b.WriteString("</form>\n")
	return b.String(), nil
}

func (r *Renderer) writeAssets(b *strings.Builder, options render.RenderOptions) {
	for _, href := range r.stylesheets {
		b.WriteString(`<link rel="stylesheet" href="`)
		b.WriteString(html.EscapeString(href))
		b.WriteString("\" />\n")
	}
	if r.defaultStyles {
		if css := defaultStylesheet(); css != "" {
			b.WriteString("<style>\n")
			b.WriteString(css)
			b.WriteString("</style>\n")
		}
	}
	if theme := options.Theme; theme != nil && len(theme.CSSVars) > 0 {
		b.WriteString("<style>\n.sheetgen-sheet {\n")
		for _, name := range theme.CSSVarNames() {
			b.WriteString("  ")
			b.WriteString(name)
			b.WriteString(": ")
			b.WriteString(theme.CSSVars[name])
			b.WriteString(";\n")
		}
		b.WriteString("}\n</style>\n")
	}
}

func (r *Renderer) writeHeader(b *strings.Builder, vm spell.ViewModel, options render.RenderOptions) error {
	b.WriteString(`<header class="sheetgen-header">` + "\n")

	if vm.Image != "" {
		b.WriteString(`    <img src="`)
		b.WriteString(html.EscapeString(vm.Image))
		b.WriteString(`" alt="`)
		b.WriteString(html.EscapeString(vm.Name))
		b.WriteString("\" />\n")
	}

	nameInput, err := r.controls.input(options, "name", "text", vm.Name, label(options, "sheet.spell.name", "Name"), edits.KindText)
	if err != nil {
		return err
	}
	indent(b, nameInput)

	sourceInput, err := r.controls.input(options, "sourceText", "text", vm.SourceText, label(options, "sheet.spell.source", "Source"), edits.KindText)
	if err != nil {
		return err
	}
	indent(b, sourceInput)

	if lvl := options.Lookups.LevelLabel(vm.Level); lvl != "" {
		b.WriteString(`    <span class="sheetgen-level-badge">`)
		b.WriteString(html.EscapeString(lvl))
		b.WriteString("</span>\n")
	}

	b.WriteString("</header>\n")
	return nil
}

func (r *Renderer) writeTabNav(b *strings.Builder, options render.RenderOptions) {
	active := options.Active()

	b.WriteString(`<nav class="sheetgen-tabs">` + "\n")
	for _, tab := range render.Tabs() {
		classes := "sheetgen-tab"
		if tab == active {
			classes += " is-active"
		}
		b.WriteString(`    <button type="button" class="`)
		b.WriteString(classes)
		b.WriteString(`" data-tab="`)
		b.WriteString(string(tab))
		b.WriteString(`">`)
		b.WriteString(html.EscapeString(tabLabel(options, tab)))
		b.WriteString("</button>\n")
	}
	b.WriteString("</nav>\n")
}

func tabLabel(options render.RenderOptions, tab render.Tab) string {
	switch tab {
	case render.TabDetails:
		return label(options, "sheet.tab.details", "Details")
	case render.TabEffects:
		return label(options, "sheet.tab.effects", "Effects")
	default:
		return label(options, "sheet.tab.description", "Description")
	}
}

func openPanel(b *strings.Builder, options render.RenderOptions, tab render.Tab) {
	classes := "sheetgen-panel"
	if tab == options.Active() {
		classes += " is-active"
	}
	b.WriteString(`<section class="`)
	b.WriteString(classes)
	b.WriteString(`" data-tab="`)
	b.WriteString(string(tab))
	b.WriteString("\">\n")
}

func (r *Renderer) writeDescriptionPanel(ctx context.Context, b *strings.Builder, vm spell.ViewModel, options render.RenderOptions) error {
	openPanel(b, options, render.TabDescription)

	if _, overridden := r.panels[PanelDescription]; overridden {
		markup, err := r.panel(ctx, PanelDescription, vm, options)
		if err != nil {
			return err
		}
		indent(b, markup)
	} else if body := sanitizeRichText(vm.Description); body != "" {
		b.WriteString(`    <div class="sheetgen-description">`)
		b.WriteString(body)
		b.WriteString("</div>\n")
	}

	b.WriteString("</section>\n")
	return nil
}

func (r *Renderer) writeEffectsPanel(ctx context.Context, b *strings.Builder, vm spell.ViewModel, options render.RenderOptions) error {
	openPanel(b, options, render.TabEffects)

	markup, err := r.panel(ctx, PanelEffects, vm, options)
	if err != nil {
		return err
	}
	indent(b, markup)

	b.WriteString("</section>\n")
	return nil
}

func formatInt(n int) string {
	return strconv.Itoa(n)
}

func formatIntPtr(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}

func formatFloatPtr(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}
