package service

import (
	"errors"
	"testing"

	"lpcgen/api/model"
)

func TestPlanRejectsUnknownBodyType(t *testing.T) {
	_, err := PlanLayers(&model.CharacterConfig{
		BodyType:   "elf",
		Animations: []string{"idle"},
	})
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if vErr.Field != "bodyType" || vErr.Value != "elf" {
		t.Fatalf("unexpected error detail: %+v", vErr)
	}
	if len(vErr.Valid) != 6 {
		t.Fatalf("expected the six valid body types, got %v", vErr.Valid)
	}
}

func TestPlanRejectsEmptyAnimations(t *testing.T) {
	_, err := PlanLayers(&model.CharacterConfig{BodyType: "male"})
	var vErr *ValidationError
	if !errors.As(err, &vErr) || vErr.Field != "animations" {
		t.Fatalf("expected animations validation error, got %v", err)
	}
}

func TestPlanRejectsUnknownAnimation(t *testing.T) {
	_, err := PlanLayers(&model.CharacterConfig{
		BodyType:   "male",
		Animations: []string{"walk", "moonwalk"},
	})
	var vErr *ValidationError
	if !errors.As(err, &vErr) || vErr.Value != "moonwalk" {
		t.Fatalf("expected error naming moonwalk, got %v", err)
	}
}

func TestPlanOrdersByDepth(t *testing.T) {
	layers, err := PlanLayers(&model.CharacterConfig{
		BodyType:  "male",
		BodyColor: "light",
		Equipment: map[string]model.EquipmentSelection{
			"helmet": {Variant: "leather_cap"},
			"hair":   {Variant: "short_brown"},
			"weapon": {Variant: "sword"},
		},
		Animations: []string{"walk"},
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"body", "hair", "weapon", "helmet"}
	if len(layers) != len(want) {
		t.Fatalf("expected %d layers, got %d", len(want), len(layers))
	}
	for i, typ := range want {
		if layers[i].Type != typ {
			t.Fatalf("layer %d = %s, want %s", i, layers[i].Type, typ)
		}
		if len(layers[i].Animations) == 0 {
			t.Fatalf("layer %s has empty animations", layers[i].Type)
		}
	}
}

func TestPlanUnknownTypesDrawFirstDeterministically(t *testing.T) {
	cfg := &model.CharacterConfig{
		BodyType: "male",
		Equipment: map[string]model.EquipmentSelection{
			"glow": {Variant: "faint"},
			"aura": {Variant: "blue"},
		},
		Animations: []string{"idle"},
	}
	for i := 0; i < 10; i++ {
		layers, err := PlanLayers(cfg)
		if err != nil {
			t.Fatal(err)
		}
		// depth 0 entries precede the body and tie-break in sorted key order
		if layers[0].Type != "aura" || layers[1].Type != "glow" || layers[2].Type != "body" {
			t.Fatalf("run %d: unexpected order %s %s %s", i, layers[0].Type, layers[1].Type, layers[2].Type)
		}
		if layers[0].ZDepth != 0 || layers[2].ZDepth != 10 {
			t.Fatalf("unexpected depths %d %d", layers[0].ZDepth, layers[2].ZDepth)
		}
	}
}
