package service

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	mycache "lpcgen/api/cache"
	"lpcgen/api/model"
)

func writeCreditsFile(t *testing.T, dir, content string) string {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, creditsFileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCollectCreditsMergesEntriesForSameFile(t *testing.T) {
	root := t.TempDir()
	writeCreditsFile(t, filepath.Join(root, "hair", "short"),
		`[{"file":"shared_base","authors":["Redshrike"],"licenses":["CC-BY-SA 3.0"],"urls":["https://opengameart.org/a"]}]`)
	writeCreditsFile(t, filepath.Join(root, "armor", "plate"),
		`[{"file":"shared_base","authors":["wulax"],"licenses":["CC-BY-SA 3.0"],"urls":["https://opengameart.org/b"]}]`)

	layers := []model.LayerItem{
		{Type: "hair", ZDepth: 20, Animations: []string{"idle"}},
		{Type: "armor", ZDepth: 60, Animations: []string{"idle"}},
	}
	paths := LayerPaths{
		"hair":  {"idle": filepath.Join(root, "hair", "short", "idle.png")},
		"armor": {"idle": filepath.Join(root, "armor", "plate", "idle.png")},
	}

	credits := CollectCredits(root, layers, paths, []string{"idle"})
	if len(credits) != 1 {
		t.Fatalf("expected one merged credit, got %v", credits)
	}
	if !reflect.DeepEqual(credits[0].Authors, []string{"Redshrike", "wulax"}) {
		t.Fatalf("unexpected merged authors: %v", credits[0].Authors)
	}
	if len(credits[0].Licenses) != 1 {
		t.Fatalf("duplicate license not merged: %v", credits[0].Licenses)
	}
}

func TestCollectCreditsDoesNotMutateCachedEntries(t *testing.T) {
	root := t.TempDir()
	hairPath := writeCreditsFile(t, filepath.Join(root, "hair", "short"),
		`[{"file":"shared_base","authors":["Redshrike"],"licenses":["CC-BY-SA 3.0"],"urls":["https://opengameart.org/a"]}]`)
	writeCreditsFile(t, filepath.Join(root, "armor", "plate"),
		`[{"file":"shared_base","authors":["wulax"],"licenses":["CC-BY-SA 3.0"],"urls":["https://opengameart.org/b"]}]`)

	// seed the cache with slices that have spare capacity: a merge writing
	// into shared backing storage would land in the extra cells
	authors := make([]string, 1, 4)
	authors[0] = "Redshrike"
	seeded := []model.Credit{{
		File:     "shared_base",
		Authors:  authors,
		Licenses: []string{"CC-BY-SA 3.0"},
		URLs:     []string{"https://opengameart.org/a"},
	}}
	mycache.SetCredits(hairPath, seeded, 1)

	layers := []model.LayerItem{
		{Type: "hair", ZDepth: 20, Animations: []string{"idle"}},
		{Type: "armor", ZDepth: 60, Animations: []string{"idle"}},
	}
	paths := LayerPaths{
		"hair":  {"idle": filepath.Join(root, "hair", "short", "idle.png")},
		"armor": {"idle": filepath.Join(root, "armor", "plate", "idle.png")},
	}

	first := CollectCredits(root, layers, paths, []string{"idle"})
	if len(first) != 1 || len(first[0].Authors) != 2 {
		t.Fatalf("unexpected merged credits: %v", first)
	}

	ext := authors[:cap(authors)]
	for _, spare := range ext[1:] {
		if len(spare) > 0 {
			t.Fatalf("merge wrote %q into cache-shared backing storage", spare)
		}
	}
	if cached, ok := mycache.GetCredits(hairPath); ok {
		if len(cached[0].Authors) != 1 || cached[0].Authors[0] != "Redshrike" {
			t.Fatalf("cached entry mutated: %v", cached[0].Authors)
		}
	}

	second := CollectCredits(root, layers, paths, []string{"idle"})
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated collection diverged: %v vs %v", first, second)
	}
}
