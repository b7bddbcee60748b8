package service

import (
	"os"
	"path/filepath"
)

const (
	imageExt = ".png"

	bodyType   = "body"
	bodiesDir  = "bodies"
	universal  = "universal"
	background = "background"
	foreground = "foreground"
)

// Resolver maps a logical layer selection to the first existing file among a
// fixed, ordered set of directory conventions. The existence probe is a
// plain func so tests can run against a fabricated tree without touching
// the filesystem.
type Resolver struct {
	Root   string
	Exists func(path string) bool
}

func NewResolver(root string) *Resolver {
	return &Resolver{Root: root, Exists: fileExists}
}

func fileExists(path string) bool {
	st, err := os.Stat(path)
	return err == nil && !st.IsDir()
}

// ResolveBody handles the distinguished body layer: a single conventional
// location keyed by body type, no fallback chain.
func (r *Resolver) ResolveBody(bodyTypeName, frameKey string) (string, error) {
	path := filepath.Join(r.Root, bodyType, bodiesDir, bodyTypeName, frameKey+imageExt)
	if r.Exists(path) {
		return path, nil
	}
	return "", &AssetError{LayerType: bodyType, Err: ErrAssetNotFound}
}

// Resolve tries the candidate conventions in precedence order and returns
// the first existing path.
func (r *Resolver) Resolve(layerType, variant, subvariant, bodyTypeDir, frameKey string) (string, error) {
	for _, path := range r.candidates(layerType, variant, subvariant, bodyTypeDir, frameKey+imageExt) {
		if r.Exists(path) {
			return path, nil
		}
	}
	return "", &AssetError{LayerType: layerType, Err: ErrAssetNotFound}
}

// Precedence: body-type dir, universal, background, foreground, flat; a
// subvariant selection additionally falls back to the variant's body-type
// dir as a last resort.
func (r *Resolver) candidates(layerType, variant, subvariant, bodyTypeDir, file string) []string {
	base := filepath.Join(r.Root, layerType, variant)
	if len(subvariant) > 0 {
		sub := filepath.Join(base, subvariant)
		return []string{
			filepath.Join(sub, bodyTypeDir, file),
			filepath.Join(sub, universal, file),
			filepath.Join(sub, background, file),
			filepath.Join(sub, foreground, file),
			filepath.Join(sub, file),
			filepath.Join(base, bodyTypeDir, file),
		}
	}
	return []string{
		filepath.Join(base, bodyTypeDir, file),
		filepath.Join(base, universal, file),
		filepath.Join(base, background, file),
		filepath.Join(base, foreground, file),
		filepath.Join(base, file),
	}
}
