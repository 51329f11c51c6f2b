package vanilla

import (
	"context"
	"html"
	"strings"

	"github.com/stormkeep/sheetgen/pkg/edits"
	"github.com/stormkeep/sheetgen/pkg/render"
	"github.com/stormkeep/sheetgen/pkg/spell"
	"github.com/stormkeep/sheetgen/pkg/visibility"
)

func (r *Renderer) writeDetailsPanel(ctx context.Context, b *strings.Builder, vm spell.ViewModel, options render.RenderOptions, sections visibility.SectionSet) error {
	openPanel(b, options, render.TabDetails)

	if err := r.writeCastingSection(b, vm, options, sections); err != nil {
		return err
	}
	if err := r.writeComponentsSection(b, vm, options); err != nil {
		return err
	}
	if err := r.writeMaterialsSection(b, vm, options, sections); err != nil {
		return err
	}
	if err := r.writePreparationSection(b, vm, options); err != nil {
		return err
	}
	if err := r.writeScalingSection(b, vm, options); err != nil {
		return err
	}
	if err := r.writeTraitsSection(b, vm, options, sections); err != nil {
		return err
	}

	for _, slot := range []string{PanelActivation, PanelAction} {
		markup, err := r.panel(ctx, slot, vm, options)
		if err != nil {
			return err
		}
		indent(b, markup)
	}

	b.WriteString("</section>\n")
	return nil
}

func openSection(b *strings.Builder, name, legend string) {
	b.WriteString(`<fieldset class="sheetgen-section" data-section="`)
	b.WriteString(name)
	b.WriteString("\">\n")
	if legend != "" {
		b.WriteString("    <legend>")
		b.WriteString(html.EscapeString(legend))
		b.WriteString("</legend>\n")
	}
}

func (r *Renderer) writeCastingSection(b *strings.Builder, vm spell.ViewModel, options render.RenderOptions, sections visibility.SectionSet) error {
	openSection(b, "casting", label(options, "sheet.section.casting", "Casting"))

	levelSelect, err := r.controls.selectBox(options, "level", formatInt(vm.Level), options.Lookups.LevelOptions(), edits.KindInteger, false)
	if err != nil {
		return err
	}
	b.WriteString(field(options, "level", "sheet.spell.level", "Level", levelSelect))

	costInput, err := r.controls.input(options, "mana.cost", "number", formatInt(vm.Mana.Cost), "", edits.KindInteger)
	if err != nil {
		return err
	}
	b.WriteString(field(options, "mana.cost", "sheet.spell.manaCost", "Mana Cost", costInput))

	// Concentration block renders iff the view-model carries one; absence is
	// an omitted section, never an error.
	if sections.Concentration {
		con := vm.Mana.Concentration

		valueInput, err := r.controls.input(options, "mana.concentration.value", "text", con.Value, "", edits.KindFormula)
		if err != nil {
			return err
		}
		b.WriteString(field(options, "mana.concentration.value", "sheet.spell.concentration", "Concentration", valueInput))

		unitsSelect, err := r.controls.selectBox(options, "mana.concentration.units", con.Units, spell.Options(options.Lookups.TimePeriods), edits.KindText, true)
		if err != nil {
			return err
		}
		b.WriteString(field(options, "mana.concentration.units", "sheet.spell.concentrationUnits", "Time Period", unitsSelect))
	}

	b.WriteString("</fieldset>\n")
	return nil
}

func (r *Renderer) writeComponentsSection(b *strings.Builder, vm spell.ViewModel, options render.RenderOptions) error {
	openSection(b, "components", label(options, "sheet.section.components", "Components"))

	for _, key := range spell.ComponentKeys() {
		path := edits.JoinPath("components", key)
		box, err := r.controls.checkbox(options, path, vm.Component(key), componentLabel(options, key))
		if err != nil {
			return err
		}
		indent(b, box)
	}

	b.WriteString("</fieldset>\n")
	return nil
}

func componentLabel(options render.RenderOptions, key string) string {
	fallbacks := map[string]string{
		spell.ComponentVerbal:   "Verbal",
		spell.ComponentSomatic:  "Somatic",
		spell.ComponentMaterial: "Material",
		spell.ComponentFocus:    "Focus",
		spell.ComponentRitual:   "Ritual",
	}
	return label(options, "sheet.component."+key, fallbacks[key])
}

func (r *Renderer) writeMaterialsSection(b *strings.Builder, vm spell.ViewModel, options render.RenderOptions, sections visibility.SectionSet) error {
	openSection(b, "materials", label(options, "sheet.section.materials", "Materials"))

	text, err := r.controls.textarea(options, "materials.text", vm.Materials.Text, 2)
	if err != nil {
		return err
	}
	b.WriteString(field(options, "materials.text", "sheet.spell.materials", "Material Components", text))

	// Supply, cost and consumed only render once material text exists. Cost
	// keeps empty distinct from zero: an empty input decodes to null, so "no
	// cost" never collapses into "costs 0".
	if sections.MaterialConsumption {
		supply, err := r.controls.input(options, "materials.supply", "number", formatIntPtr(vm.Materials.Supply), "", edits.KindInteger)
		if err != nil {
			return err
		}
		b.WriteString(field(options, "materials.supply", "sheet.spell.materialSupply", "Supply", supply))

		cost, err := r.controls.input(options, "materials.cost", "number", formatFloatPtr(vm.Materials.Cost), "", edits.KindNumber)
		if err != nil {
			return err
		}
		b.WriteString(field(options, "materials.cost", "sheet.spell.materialCost", "Cost (GP)", cost))

		consumed, err := r.controls.checkbox(options, "materials.consumed", vm.Materials.Consumed, label(options, "sheet.spell.materialConsumed", "Consumed"))
		if err != nil {
			return err
		}
		indent(b, consumed)
	}

	b.WriteString("</fieldset>\n")
	return nil
}

func (r *Renderer) writePreparationSection(b *strings.Builder, vm spell.ViewModel, options render.RenderOptions) error {
	openSection(b, "preparation", label(options, "sheet.section.preparation", "Preparation"))

	prepared, err := r.controls.checkbox(options, "preparation.prepared", vm.Preparation.Prepared, label(options, "sheet.spell.prepared", "Prepared"))
	if err != nil {
		return err
	}
	indent(b, prepared)

	mode, err := r.controls.selectBox(options, "preparation.mode", vm.Preparation.Mode, spell.Options(options.Lookups.PreparationModes), edits.KindText, true)
	if err != nil {
		return err
	}
	b.WriteString(field(options, "preparation.mode", "sheet.spell.preparationMode", "Preparation Mode", mode))

	b.WriteString("</fieldset>\n")
	return nil
}

func (r *Renderer) writeScalingSection(b *strings.Builder, vm spell.ViewModel, options render.RenderOptions) error {
	openSection(b, "scaling", label(options, "sheet.section.scaling", "Scaling"))

	mode, err := r.controls.selectBox(options, "scaling.mode", vm.Scaling.Mode, spell.Options(options.Lookups.ScalingModes), edits.KindText, true)
	if err != nil {
		return err
	}
	b.WriteString(field(options, "scaling.mode", "sheet.spell.scalingMode", "Scaling Mode", mode))

	formula, err := r.controls.input(options, "scaling.formula", "text", vm.Scaling.Formula, "", edits.KindFormula)
	if err != nil {
		return err
	}
	b.WriteString(field(options, "scaling.formula", "sheet.spell.scalingFormula", "Scaling Formula", formula))

	b.WriteString("</fieldset>\n")
	return nil
}

func (r *Renderer) writeTraitsSection(b *strings.Builder, vm spell.ViewModel, options render.RenderOptions, sections visibility.SectionSet) error {
	openSection(b, "traits", label(options, "sheet.section.traits", "Traits"))

	type trait struct {
		name     string
		path     string
		labelKey string
		fallback string
		keys     []string
		table    map[string]string
		visible  bool
	}

	traits := []trait{
		{"school", "school", "sheet.spell.school", "School", vm.Schools, options.Lookups.Schools, true},
		{"element", "elements", "sheet.spell.elements", "Elements", vm.Elements, options.Lookups.Elements, sections.Elemental},
		{"tag", "tags", "sheet.spell.tags", "Tags", vm.Tags, options.Lookups.Tags, true},
		{"class", "classes", "sheet.spell.classes", "Classes", vm.Classes, options.Lookups.Classes, true},
	}

	for _, t := range traits {
		if !t.visible {
			continue
		}
		b.WriteString(`    <div class="sheetgen-trait" data-trait="`)
		b.WriteString(t.name)
		b.WriteString("\">\n")
		b.WriteString(`        <span class="sheetgen-trait-header">`)
		b.WriteString(html.EscapeString(label(options, t.labelKey, t.fallback)))
		b.WriteString("</span>\n")

		chips, err := r.controls.chips(options, t.name, t.path, t.keys, t.table, sections.TraitEditors)
		if err != nil {
			return err
		}
		for _, line := range strings.Split(chips, "\n") {
			if strings.TrimSpace(line) == "" {
				continue
			}
			b.WriteString("        ")
			b.WriteString(line)
			b.WriteByte('\n')
		}
		b.WriteString("    </div>\n")
	}

	b.WriteString("</fieldset>\n")
	return nil
}
