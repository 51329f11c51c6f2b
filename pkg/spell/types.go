package spell

// Component keys for the fixed casting-component checklist. Renderers iterate
// ComponentKeys so checkbox order stays stable across renders.
const (
	ComponentVerbal   = "verbal"
	ComponentSomatic  = "somatic"
	ComponentMaterial = "material"
	ComponentFocus    = "focus"
	ComponentRitual   = "ritual"
)

// ComponentKeys returns the canonical component ordering used by renderers.
func ComponentKeys() []string {
	return []string{
		ComponentVerbal,
		ComponentSomatic,
		ComponentMaterial,
		ComponentFocus,
		ComponentRitual,
	}
}

// Concentration describes a concentration requirement. A nil pointer on Mana
// means the spell has no concentration and the section is omitted entirely.
type Concentration struct {
	// Value is a formula string. Syntax is the host formula evaluator's
	// concern at usage time; the sheet treats it as opaque text.
	Value string `json:"value"`
	// Units is a time-period enum key (Lookups.TimePeriods). Optional.
	Units string `json:"units,omitempty"`
}

// Mana captures casting cost.
type Mana struct {
	Cost          int            `json:"cost"`
	Concentration *Concentration `json:"concentration,omitempty"`
}

// Materials captures material component details. Supply and Cost use pointers
// so "unset" stays distinguishable from zero; the consumption sub-block is
// only rendered when Text is non-empty.
type Materials struct {
	Text     string   `json:"text"`
	Supply   *int     `json:"supply,omitempty"`
	Cost     *float64 `json:"cost,omitempty"`
	Consumed bool     `json:"consumed"`
}

// Preparation captures the prepared flag plus the preparation mode enum key.
type Preparation struct {
	Prepared bool   `json:"prepared"`
	Mode     string `json:"mode,omitempty"`
}

// Scaling captures how the spell scales with higher casts.
type Scaling struct {
	Mode    string `json:"mode,omitempty"`
	Formula string `json:"formula,omitempty"`
}

// ViewModel is the read-only snapshot a host hands to renderers. Enum-key
// fields (Level, Schools, Elements, Tags, Classes and the mode fields) are
// resolved against Lookups at render time; keys missing from their table
// render unlabeled rather than failing.
type ViewModel struct {
	Name       string `json:"name"`
	Image      string `json:"image,omitempty"`
	SourceText string `json:"sourceText,omitempty"`

	// Description is rich text shown on the Description tab. It is sanitized
	// by the renderer before inclusion in markup.
	Description string `json:"description,omitempty"`

	// Level indexes Lookups.Levels.
	Level int `json:"level"`

	// Ordered enum-key sets. Order is preserved verbatim in rendered chip
	// lists so unrecognized data round-trips without reshuffling.
	Schools  []string `json:"school,omitempty"`
	Elements []string `json:"elements,omitempty"`
	Tags     []string `json:"tags,omitempty"`
	Classes  []string `json:"classes,omitempty"`

	// Elemental gates the elements block.
	Elemental bool `json:"isElemental,omitempty"`

	Mana        Mana            `json:"mana"`
	Components  map[string]bool `json:"components,omitempty"`
	Materials   Materials       `json:"materials"`
	Preparation Preparation     `json:"preparation"`
	Scaling     Scaling         `json:"scaling"`
}

// HasConcentration reports whether the concentration mana block renders.
func (vm ViewModel) HasConcentration() bool {
	return vm.Mana.Concentration != nil
}

// Component reports the checkbox state for a component key. Missing keys are
// unchecked.
func (vm ViewModel) Component(key string) bool {
	if vm.Components == nil {
		return false
	}
	return vm.Components[key]
}
