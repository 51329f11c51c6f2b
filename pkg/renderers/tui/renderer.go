package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/stormkeep/sheetgen/pkg/edits"
	"github.com/stormkeep/sheetgen/pkg/render"
	"github.com/stormkeep/sheetgen/pkg/spell"
	"github.com/stormkeep/sheetgen/pkg/visibility"
)

// Option customises the TUI renderer.
type Option func(*Renderer)

// WithDriver swaps the prompt driver, typically for tests.
func WithDriver(driver PromptDriver) Option {
	return func(r *Renderer) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// Renderer walks the spell sheet as a terminal prompt session and emits the
// collected values as a JSON edit batch. It honours the same conditional
// sections and edit contract as the HTML renderer; only the surface differs.
type Renderer struct {
	driver PromptDriver
}

// New constructs a TUI renderer with the survey-backed driver by default.
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{driver: newSurveyDriver()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	if r.driver == nil {
		return nil, errors.New("tui: prompt driver is nil")
	}
	return r, nil
}

func (r *Renderer) Name() string {
	return "tui"
}

func (r *Renderer) ContentType() string {
	return "application/json"
}

// Render prompts through every visible section and returns the edit batch as
// JSON. Aborting the session returns ErrAborted with no partial batch.
func (r *Renderer) Render(ctx context.Context, vm spell.ViewModel, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.driver == nil {
		return nil, errors.New("tui: prompt driver is nil")
	}

	session := &session{driver: r.driver, options: options}
	sections := visibility.Sections(vm, options.Editable)

	if err := session.walk(ctx, vm, sections); err != nil {
		return nil, err
	}

	payload, err := json.Marshal(session.events)
	if err != nil {
		return nil, fmt.Errorf("tui: encode edit batch: %w", err)
	}
	return payload, nil
}

type session struct {
	driver  PromptDriver
	options render.RenderOptions
	events  []edits.Event
}

func (s *session) emit(path string, value any) {
	s.events = append(s.events, edits.Event{Path: path, Value: value})
}

func (s *session) walk(ctx context.Context, vm spell.ViewModel, sections visibility.SectionSet) error {
	if err := s.textField(ctx, "name", "Name", vm.Name); err != nil {
		return err
	}
	if err := s.textField(ctx, "sourceText", "Source", vm.SourceText); err != nil {
		return err
	}
	if err := s.levelField(ctx, vm.Level); err != nil {
		return err
	}
	if err := s.intField(ctx, "mana.cost", "Mana cost", strconv.Itoa(vm.Mana.Cost)); err != nil {
		return err
	}

	if sections.Concentration {
		con := vm.Mana.Concentration
		if err := s.textField(ctx, "mana.concentration.value", "Concentration formula", con.Value); err != nil {
			return err
		}
		if err := s.selectField(ctx, "mana.concentration.units", "Concentration time period", con.Units, spell.Options(s.options.Lookups.TimePeriods)); err != nil {
			return err
		}
	}

	for _, key := range spell.ComponentKeys() {
		checked, err := s.driver.Confirm(ctx, ConfirmConfig{
			Message: "Component: " + key,
			Default: vm.Component(key),
		})
		if err != nil {
			return err
		}
		s.emit(edits.JoinPath("components", key), checked)
	}

	text, err := s.driver.TextArea(ctx, TextAreaConfig{Message: "Material components", Default: vm.Materials.Text})
	if err != nil {
		return err
	}
	s.emit("materials.text", text)

	// Consumption prompts follow the same rule as the HTML sheet: they only
	// appear once material text exists on the snapshot being edited.
	if sections.MaterialConsumption {
		if err := s.intField(ctx, "materials.supply", "Material supply", formatIntPtr(vm.Materials.Supply)); err != nil {
			return err
		}
		if err := s.numberField(ctx, "materials.cost", "Material cost (GP)", formatFloatPtr(vm.Materials.Cost)); err != nil {
			return err
		}
		consumed, err := s.driver.Confirm(ctx, ConfirmConfig{Message: "Consumed on cast", Default: vm.Materials.Consumed})
		if err != nil {
			return err
		}
		s.emit("materials.consumed", consumed)
	}

	prepared, err := s.driver.Confirm(ctx, ConfirmConfig{Message: "Prepared", Default: vm.Preparation.Prepared})
	if err != nil {
		return err
	}
	s.emit("preparation.prepared", prepared)

	if err := s.selectField(ctx, "preparation.mode", "Preparation mode", vm.Preparation.Mode, spell.Options(s.options.Lookups.PreparationModes)); err != nil {
		return err
	}
	if err := s.selectField(ctx, "scaling.mode", "Scaling mode", vm.Scaling.Mode, spell.Options(s.options.Lookups.ScalingModes)); err != nil {
		return err
	}
	if err := s.textField(ctx, "scaling.formula", "Scaling formula", vm.Scaling.Formula); err != nil {
		return err
	}

	if sections.TraitEditors {
		if err := s.traitField(ctx, "school", "Schools", vm.Schools, s.options.Lookups.Schools); err != nil {
			return err
		}
		if sections.Elemental {
			if err := s.traitField(ctx, "elements", "Elements", vm.Elements, s.options.Lookups.Elements); err != nil {
				return err
			}
		}
		if err := s.traitField(ctx, "tags", "Tags", vm.Tags, s.options.Lookups.Tags); err != nil {
			return err
		}
		if err := s.traitField(ctx, "classes", "Classes", vm.Classes, s.options.Lookups.Classes); err != nil {
			return err
		}
	}

	return nil
}

func (s *session) textField(ctx context.Context, path, message, current string) error {
	out, err := s.driver.Input(ctx, InputConfig{Message: message, Default: current})
	if err != nil {
		return err
	}
	s.emit(path, out)
	return nil
}

func (s *session) intField(ctx context.Context, path, message, current string) error {
	out, err := s.driver.Input(ctx, InputConfig{
		Message:   message,
		Default:   current,
		Validator: validateInteger,
	})
	if err != nil {
		return err
	}
	event := edits.DecodeField(edits.KindInteger, path, out)
	s.emit(event.Path, event.Value)
	return nil
}

func (s *session) numberField(ctx context.Context, path, message, current string) error {
	out, err := s.driver.Input(ctx, InputConfig{
		Message:   message,
		Default:   current,
		Validator: validateNumber,
	})
	if err != nil {
		return err
	}
	event := edits.DecodeField(edits.KindNumber, path, out)
	s.emit(event.Path, event.Value)
	return nil
}

func (s *session) levelField(ctx context.Context, current int) error {
	opts := s.options.Lookups.LevelOptions()
	keys, labels := optionLists(opts, strconv.Itoa(current))

	idx, err := s.driver.Select(ctx, SelectConfig{
		Message:      "Spell level",
		Options:      labels,
		DefaultIndex: indexOf(keys, strconv.Itoa(current)),
	})
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(keys) {
		return nil
	}
	event := edits.DecodeField(edits.KindInteger, "level", keys[idx])
	s.emit(event.Path, event.Value)
	return nil
}

func (s *session) selectField(ctx context.Context, path, message, current string, opts []spell.Option) error {
	keys, labels := optionLists(opts, current)

	idx, err := s.driver.Select(ctx, SelectConfig{
		Message:      message,
		Options:      labels,
		DefaultIndex: indexOf(keys, current),
	})
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(keys) {
		return nil
	}
	s.emit(path, keys[idx])
	return nil
}

func (s *session) traitField(ctx context.Context, path, message string, current []string, table map[string]string) error {
	opts := spell.Options(table)
	keys := make([]string, 0, len(opts))
	labels := make([]string, 0, len(opts))
	for _, opt := range opts {
		keys = append(keys, opt.Key)
		labels = append(labels, displayLabel(opt))
	}
	// Keys missing from the lookup stay selectable so unrecognized data is
	// not silently dropped by a round-trip.
	for _, key := range current {
		if indexOf(keys, key) < 0 {
			keys = append(keys, key)
			labels = append(labels, key)
		}
	}

	defaults := make([]int, 0, len(current))
	for _, key := range current {
		if idx := indexOf(keys, key); idx >= 0 {
			defaults = append(defaults, idx)
		}
	}

	picked, err := s.driver.MultiSelect(ctx, SelectConfig{
		Message:  message,
		Options:  labels,
		Defaults: defaults,
	})
	if err != nil {
		return err
	}

	selected := make([]string, 0, len(picked))
	for _, idx := range picked {
		if idx >= 0 && idx < len(keys) {
			selected = append(selected, keys[idx])
		}
	}
	s.emit(path, selected)
	return nil
}

func optionLists(opts []spell.Option, current string) (keys, labels []string) {
	keys = make([]string, 0, len(opts)+1)
	labels = make([]string, 0, len(opts)+1)
	for _, opt := range opts {
		keys = append(keys, opt.Key)
		labels = append(labels, displayLabel(opt))
	}
	if current != "" && indexOf(keys, current) < 0 {
		keys = append(keys, current)
		labels = append(labels, current)
	}
	return keys, labels
}

func displayLabel(opt spell.Option) string {
	if strings.TrimSpace(opt.Label) != "" {
		return opt.Label
	}
	return opt.Key
}

func validateInteger(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64); err != nil {
		return errors.New("enter a whole number or leave empty")
	}
	return nil
}

func validateNumber(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err != nil {
		return errors.New("enter a number or leave empty")
	}
	return nil
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
