package model

import "testing"

func TestSheetDimensionsAreFixed(t *testing.T) {
	if SheetWidth != 832 {
		t.Fatalf("SheetWidth = %d, want 832", SheetWidth)
	}
	if SheetHeight != 3456 {
		t.Fatalf("SheetHeight = %d, want 3456", SheetHeight)
	}
}

func TestAnimationTableFitsSheet(t *testing.T) {
	maxRow := 0
	seen := map[string]bool{}
	for _, a := range Animations {
		if a.FrameCount <= 0 {
			t.Fatalf("animation %s has non-positive frame count", a.Name)
		}
		if a.FrameCount > SheetColumns {
			t.Fatalf("animation %s frame count %d exceeds sheet columns", a.Name, a.FrameCount)
		}
		if a.RowIndex < 0 {
			t.Fatalf("animation %s has negative row index", a.Name)
		}
		if seen[a.Name] {
			t.Fatalf("duplicate animation name %s", a.Name)
		}
		seen[a.Name] = true
		if end := a.RowIndex + a.FrameCount; end > maxRow {
			maxRow = end
		}
	}
	if maxRow != SheetRows {
		t.Fatalf("animation rows cover %d, sheet reserves %d", maxRow, SheetRows)
	}
}

func TestAnimationRowsDoNotOverlap(t *testing.T) {
	for i, a := range Animations {
		for _, b := range Animations[i+1:] {
			aEnd := a.RowIndex + a.FrameCount
			bEnd := b.RowIndex + b.FrameCount
			if a.RowIndex < bEnd && b.RowIndex < aEnd {
				t.Fatalf("animations %s and %s overlap rows", a.Name, b.Name)
			}
		}
	}
}

func TestBodyTypeDir(t *testing.T) {
	cases := map[string]string{
		"male":     "adult",
		"female":   "adult",
		"muscular": "adult",
		"pregnant": "adult",
		"teen":     "teen",
		"child":    "child",
		"elf":      "adult", // unmapped values default to adult
	}
	for bodyType, want := range cases {
		if got := BodyTypeDir(bodyType); got != want {
			t.Fatalf("BodyTypeDir(%s) = %s, want %s", bodyType, got, want)
		}
	}
}

func TestEquipmentSelectionUnmarshal(t *testing.T) {
	var sel EquipmentSelection
	if err := sel.UnmarshalJSON([]byte(`"sword"`)); err != nil {
		t.Fatal(err)
	}
	if sel.Variant != "sword" || sel.Subvariant != "" {
		t.Fatalf("unexpected selection from string form: %+v", sel)
	}

	if err := sel.UnmarshalJSON([]byte(`{"variant":"leather","subvariant":"plate"}`)); err != nil {
		t.Fatal(err)
	}
	if sel.Variant != "leather" || sel.Subvariant != "plate" {
		t.Fatalf("unexpected selection from object form: %+v", sel)
	}
}
