package edits

import "github.com/stormkeep/sheetgen/pkg/spell"

// SpellSheet returns the field set for the spell editor's Details tab in
// render order. Hosts use this to decode posted sheet submissions into event
// batches that line up with the rendered controls.
func SpellSheet() FieldSet {
	fields := FieldSet{
		{Path: "name", Kind: KindText},
		{Path: "sourceText", Kind: KindText},
		{Path: "level", Kind: KindInteger},
		{Path: "mana.cost", Kind: KindInteger},
		{Path: "mana.concentration.value", Kind: KindFormula},
		{Path: "mana.concentration.units", Kind: KindText},
	}
	for _, key := range spell.ComponentKeys() {
		fields = append(fields, Field{Path: JoinPath("components", key), Kind: KindCheckbox})
	}
	fields = append(fields,
		Field{Path: "materials.text", Kind: KindText},
		Field{Path: "materials.supply", Kind: KindInteger},
		Field{Path: "materials.cost", Kind: KindNumber},
		Field{Path: "materials.consumed", Kind: KindCheckbox},
		Field{Path: "preparation.prepared", Kind: KindCheckbox},
		Field{Path: "preparation.mode", Kind: KindText},
		Field{Path: "scaling.mode", Kind: KindText},
		Field{Path: "scaling.formula", Kind: KindFormula},
	)
	return fields
}
