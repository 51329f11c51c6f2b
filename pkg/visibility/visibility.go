// Package visibility maps view-model flags to section visibility. Rules are
// pure functions of the view-model snapshot so a render pass is deterministic
// and sections toggle without imperative branching in renderers.
package visibility

import (
	"strings"

	"github.com/stormkeep/sheetgen/pkg/spell"
)

// Section identifies a conditionally rendered block of the sheet.
type Section string

const (
	// SectionConcentration is the concentration mana block.
	SectionConcentration Section = "concentration"
	// SectionElemental is the elements trait block.
	SectionElemental Section = "elemental"
	// SectionMaterialConsumption is the supply/cost/consumed sub-block.
	SectionMaterialConsumption Section = "materialConsumption"
	// SectionTraitEditors covers the four trait-selector affordances
	// (schools, elements, tags, classes). They appear and disappear in
	// lockstep with the editable flag.
	SectionTraitEditors Section = "traitEditors"
)

// Rule decides whether a section renders for a given snapshot.
type Rule func(vm spell.ViewModel, editable bool) bool

// Rules returns the fixed rule table. Exposed so renderers and tests iterate
// the same predicates rather than re-deriving them.
func Rules() map[Section]Rule {
	return map[Section]Rule{
		SectionConcentration: func(vm spell.ViewModel, _ bool) bool {
			return vm.HasConcentration()
		},
		SectionElemental: func(vm spell.ViewModel, _ bool) bool {
			return vm.Elemental
		},
		SectionMaterialConsumption: func(vm spell.ViewModel, _ bool) bool {
			return strings.TrimSpace(vm.Materials.Text) != ""
		},
		SectionTraitEditors: func(_ spell.ViewModel, editable bool) bool {
			return editable
		},
	}
}

// SectionSet is the resolved visibility for one render pass.
type SectionSet struct {
	Concentration       bool
	Elemental           bool
	MaterialConsumption bool
	TraitEditors        bool
}

// Visible reports a single section's state.
func (s SectionSet) Visible(section Section) bool {
	switch section {
	case SectionConcentration:
		return s.Concentration
	case SectionElemental:
		return s.Elemental
	case SectionMaterialConsumption:
		return s.MaterialConsumption
	case SectionTraitEditors:
		return s.TraitEditors
	default:
		return false
	}
}

// Sections evaluates every rule against a snapshot.
func Sections(vm spell.ViewModel, editable bool) SectionSet {
	rules := Rules()
	return SectionSet{
		Concentration:       rules[SectionConcentration](vm, editable),
		Elemental:           rules[SectionElemental](vm, editable),
		MaterialConsumption: rules[SectionMaterialConsumption](vm, editable),
		TraitEditors:        rules[SectionTraitEditors](vm, editable),
	}
}
