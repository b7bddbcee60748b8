package service

import (
	"encoding/json"
	"os"
	"path/filepath"

	mycache "lpcgen/api/cache"
	"lpcgen/api/log"
	"lpcgen/api/model"
	"lpcgen/api/utils"
)

const creditsFileName = "credits.json"

// CollectCredits gathers attribution for every source sheet that contributed
// to one composite. Layers are walked in draw order and animations in request
// order, so the result order is stable for identical inputs. A sheet without
// a credits file simply contributes nothing.
func CollectCredits(root string, layers []model.LayerItem, paths LayerPaths, animations []string) []model.Credit {
	credits := make([]model.Credit, 0)
	index := map[string]int{}
	seenFiles := map[string]bool{}
	for _, layer := range layers {
		for _, anim := range animations {
			imgPath := paths[layer.Type][anim]
			if len(imgPath) == 0 {
				continue
			}
			creditsPath := nearestCreditsFile(root, imgPath)
			if len(creditsPath) == 0 || seenFiles[creditsPath] {
				continue
			}
			seenFiles[creditsPath] = true
			for _, entry := range loadCreditsFile(root, creditsPath) {
				if at, ok := index[entry.File]; ok {
					credits[at].Authors = utils.AppendUnique(credits[at].Authors, entry.Authors...)
					credits[at].Licenses = utils.AppendUnique(credits[at].Licenses, entry.Licenses...)
					credits[at].URLs = utils.AppendUnique(credits[at].URLs, entry.URLs...)
					continue
				}
				index[entry.File] = len(credits)
				// copy the cached entry's slices: merging must never write
				// into storage shared with other requests
				credits = append(credits, model.Credit{
					File:     entry.File,
					Authors:  append([]string(nil), entry.Authors...),
					Licenses: append([]string(nil), entry.Licenses...),
					URLs:     append([]string(nil), entry.URLs...),
				})
			}
		}
	}
	return credits
}

// nearestCreditsFile walks from the sheet's directory up to (not including)
// the asset root and returns the first credits.json found.
func nearestCreditsFile(root, imgPath string) string {
	root = filepath.Clean(root)
	dir := filepath.Dir(imgPath)
	for dir != root && len(dir) > 1 {
		candidate := filepath.Join(dir, creditsFileName)
		if fileExists(candidate) {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}

// loadCreditsFile parses one credits.json, caching the result process-wide.
// Parse results are immutable metadata so sharing them across requests is
// safe, unlike decoded sprite sheets.
func loadCreditsFile(root, path string) []model.Credit {
	if cached, ok := mycache.GetCredits(path); ok {
		return cached
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		log.Warn("credits: read ", path, ": ", err)
		return nil
	}
	var entries []model.Credit
	if err := json.Unmarshal(raw, &entries); err != nil {
		log.Warn("credits: parse ", path, ": ", err)
		return nil
	}
	for i := range entries {
		if len(entries[i].File) == 0 {
			if rel, err := filepath.Rel(root, filepath.Dir(path)); err == nil {
				entries[i].File = rel
			}
		}
	}
	mycache.SetCredits(path, entries, int64(len(raw)))
	return entries
}
