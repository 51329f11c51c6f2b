package spell

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

type lookupsDocument struct {
	Levels           map[int]string    `yaml:"levels"`
	TimePeriods      map[string]string `yaml:"timePeriods"`
	Schools          map[string]string `yaml:"schools"`
	Elements         map[string]string `yaml:"elements"`
	Tags             map[string]string `yaml:"tags"`
	Classes          map[string]string `yaml:"classes"`
	PreparationModes map[string]string `yaml:"preparationModes"`
	ScalingModes     map[string]string `yaml:"scalingModes"`
}

// ParseLookups decodes a YAML lookup bundle. Missing tables stay nil; label
// resolution treats nil tables as all-unknown, so a partial document is
// usable.
func ParseLookups(data []byte) (Lookups, error) {
	var doc lookupsDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Lookups{}, fmt.Errorf("spell: parse lookups: %w", err)
	}
	return Lookups{
		Levels:           doc.Levels,
		TimePeriods:      doc.TimePeriods,
		Schools:          doc.Schools,
		Elements:         doc.Elements,
		Tags:             doc.Tags,
		Classes:          doc.Classes,
		PreparationModes: doc.PreparationModes,
		ScalingModes:     doc.ScalingModes,
	}, nil
}

// ReadLookups decodes a YAML lookup bundle from a reader.
func ReadLookups(r io.Reader) (Lookups, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Lookups{}, fmt.Errorf("spell: read lookups: %w", err)
	}
	return ParseLookups(data)
}
