package edits

import (
	"net/url"
	"strconv"
	"strings"
)

// Kind classifies a control for decode purposes.
type Kind string

const (
	// KindText decodes to the raw string, verbatim.
	KindText Kind = "text"
	// KindFormula is text whose syntax is validated by the host's formula
	// evaluator at usage time, never here.
	KindFormula Kind = "formula"
	// KindInteger decodes to int64, or nil when empty or malformed.
	KindInteger Kind = "integer"
	// KindNumber decodes to float64, or nil when empty or malformed.
	KindNumber Kind = "number"
	// KindCheckbox decodes to bool. Absent or empty submissions are false.
	KindCheckbox Kind = "checkbox"
)

// Field declares one decodable control: its dotted path and decode kind.
type Field struct {
	Path string
	Kind Kind
}

// FieldSet is an ordered list of decodable controls. DecodeForm emits events
// in FieldSet order so batches are deterministic.
type FieldSet []Field

// DecodeField turns a raw control value into a typed event.
//
// Numeric kinds map the empty string to a nil value, not zero: an empty cost
// input means "no cost", which the host must be able to tell apart from a
// cost of zero. Malformed numeric input also coerces to nil; semantic
// rejection is the host's job and no error surfaces here.
func DecodeField(kind Kind, path, raw string) Event {
	switch kind {
	case KindCheckbox:
		return Event{Path: path, Value: decodeCheckbox(raw)}
	case KindInteger:
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			return Event{Path: path, Value: nil}
		}
		n, err := strconv.ParseInt(trimmed, 10, 64)
		if err != nil {
			return Event{Path: path, Value: nil}
		}
		return Event{Path: path, Value: n}
	case KindNumber:
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			return Event{Path: path, Value: nil}
		}
		f, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return Event{Path: path, Value: nil}
		}
		return Event{Path: path, Value: f}
	default:
		return Event{Path: path, Value: raw}
	}
}

// DecodeForm maps a whole submission into an event batch. Only declared
// fields produce events; unknown form names are skipped. Checkbox fields
// always produce an event because browsers omit unchecked boxes from the
// payload entirely.
func DecodeForm(values url.Values, fields FieldSet) []Event {
	if len(fields) == 0 {
		return nil
	}

	out := make([]Event, 0, len(fields))
	for _, field := range fields {
		if field.Path == "" {
			continue
		}
		raw, present := formValue(values, field.Path)
		if !present && field.Kind != KindCheckbox {
			continue
		}
		out = append(out, DecodeField(field.Kind, field.Path, raw))
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func decodeCheckbox(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "on", "true", "1", "checked":
		return true
	default:
		return false
	}
}

func formValue(values url.Values, name string) (string, bool) {
	if values == nil {
		return "", false
	}
	vs, ok := values[name]
	if !ok || len(vs) == 0 {
		return "", false
	}
	return vs[0], true
}
