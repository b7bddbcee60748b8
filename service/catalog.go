package service

import (
	"os"
	"path/filepath"
	"sort"

	"lpcgen/api/log"
	"lpcgen/api/model"
)

// Role directories live inside variant/subvariant directories and never name
// a selectable subvariant.
var reservedDirs = map[string]bool{
	"adult":    true,
	"teen":     true,
	"child":    true,
	universal:  true,
	background: true,
	foreground: true,
}

// CatalogService enumerates the selectable equipment tree by directory
// introspection. It holds no state beyond the root path, so concurrent
// queries are safe and every call reflects the current disk content.
type CatalogService struct {
	Root string
}

func NewCatalogService(root string) *CatalogService {
	return &CatalogService{Root: root}
}

func (s *CatalogService) ListOptions() (*model.Options, error) {
	entries, err := os.ReadDir(s.Root)
	if err != nil {
		return nil, &CatalogError{Path: s.Root, Err: err}
	}

	types := make([]string, 0, len(entries))
	variants := make(map[string]map[string][]string, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() || entry.Name() == bodyType {
			continue
		}
		types = append(types, entry.Name())
		variants[entry.Name()] = s.listVariants(filepath.Join(s.Root, entry.Name()))
	}
	sort.Strings(types)

	return &model.Options{
		BodyTypes:  model.BodyTypes,
		Animations: model.AnimationNames(),
		Equipment: model.EquipmentOptions{
			Types:    types,
			Variants: variants,
		},
	}, nil
}

// listVariants degrades an unreadable directory to an empty entry so one bad
// subtree never fails the whole catalog.
func (s *CatalogService) listVariants(typeDir string) map[string][]string {
	out := map[string][]string{}
	entries, err := os.ReadDir(typeDir)
	if err != nil {
		log.Warn("catalog: skip unreadable type dir ", typeDir, ": ", err)
		return out
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		out[entry.Name()] = s.listSubvariants(filepath.Join(typeDir, entry.Name()))
	}
	return out
}

func (s *CatalogService) listSubvariants(variantDir string) []string {
	subvariants := []string{}
	entries, err := os.ReadDir(variantDir)
	if err != nil {
		log.Warn("catalog: skip unreadable variant dir ", variantDir, ": ", err)
		return subvariants
	}
	for _, entry := range entries {
		if !entry.IsDir() || reservedDirs[entry.Name()] {
			continue
		}
		subvariants = append(subvariants, entry.Name())
	}
	sort.Strings(subvariants)
	return subvariants
}
