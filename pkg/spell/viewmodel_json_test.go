package spell

import (
	"strings"
	"testing"
)

func TestParseViewModel(t *testing.T) {
	doc := `{
		"name": "Emberlash",
		"level": 2,
		"isElemental": true,
		"elements": ["fire"],
		"mana": {"cost": 4, "concentration": {"value": "1 + @level", "units": "round"}},
		"materials": {"text": "charred willow", "supply": 3, "consumed": true},
		"hostExtension": {"ignored": true}
	}`
	vm, err := ParseViewModel([]byte(doc))
	if err != nil {
		t.Fatalf("ParseViewModel: %v", err)
	}

	if vm.Name != "Emberlash" || vm.Level != 2 {
		t.Fatalf("header fields not decoded: %+v", vm)
	}
	if !vm.Elemental || len(vm.Elements) != 1 {
		t.Fatalf("elements not decoded: %+v", vm)
	}
	if vm.Mana.Concentration == nil || vm.Mana.Concentration.Units != "round" {
		t.Fatalf("concentration not decoded: %+v", vm.Mana)
	}
	if vm.Materials.Supply == nil || *vm.Materials.Supply != 3 {
		t.Fatalf("supply not decoded: %+v", vm.Materials)
	}
	// Absent pointer fields stay nil, not zero.
	if vm.Materials.Cost != nil {
		t.Fatalf("cost should be nil, got %v", *vm.Materials.Cost)
	}
}

func TestParseViewModelMalformed(t *testing.T) {
	_, err := ParseViewModel([]byte(`{"level": "three"}`))
	if err == nil {
		t.Fatal("expected error for malformed document")
	}
	if !strings.Contains(err.Error(), "parse view model") {
		t.Fatalf("error %q should mention parse view model", err)
	}
}

func TestReadViewModel(t *testing.T) {
	vm, err := ReadViewModel(strings.NewReader(`{"name": "Glimmer"}`))
	if err != nil {
		t.Fatalf("ReadViewModel: %v", err)
	}
	if vm.Name != "Glimmer" {
		t.Fatalf("name = %q", vm.Name)
	}
}
