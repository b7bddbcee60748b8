package service

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"sync"

	"lpcgen/api/model"
)

// LayerImages holds one decoded source sheet per (layer type, animation)
// pair from a single generation call. Never shared across calls.
type LayerImages map[string]map[string]image.Image

// LayerPaths records where each sheet was resolved from, for credit lookup.
type LayerPaths map[string]map[string]string

// LoadImages resolves and decodes every layer's source sheet concurrently.
// The first failure wins; remaining loads finish on their own and are
// discarded. All loads are bounded by ctx.
func LoadImages(ctx context.Context, r *Resolver, layers []model.LayerItem) (LayerImages, LayerPaths, error) {
	images := LayerImages{}
	paths := LayerPaths{}
	for _, layer := range layers {
		images[layer.Type] = map[string]image.Image{}
		paths[layer.Type] = map[string]string{}
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	for _, layer := range layers {
		for _, anim := range layer.Animations {
			wg.Add(1)
			go func(item model.LayerItem, anim string) {
				defer wg.Done()
				if ctx.Err() != nil {
					return
				}
				path, img, err := loadOne(r, item, anim)
				mu.Lock()
				defer mu.Unlock()
				if err != nil {
					if firstErr == nil {
						firstErr = err
					}
					return
				}
				images[item.Type][anim] = img
				paths[item.Type][anim] = path
			}(layer, anim)
		}
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		return nil, nil, ctx.Err()
	}

	if firstErr != nil {
		return nil, nil, firstErr
	}
	return images, paths, nil
}

func loadOne(r *Resolver, item model.LayerItem, frameKey string) (string, image.Image, error) {
	var (
		path string
		err  error
	)
	if item.Type == bodyType {
		path, err = r.ResolveBody(item.BodyType, frameKey)
	} else {
		path, err = r.Resolve(item.Type, item.Variant, item.Subvariant, model.BodyTypeDir(item.BodyType), frameKey)
	}
	if err != nil {
		return "", nil, err
	}
	img, err := decodePNG(path)
	if err != nil {
		return "", nil, &AssetError{LayerType: item.Type, Err: err}
	}
	return path, img, nil
}

func decodePNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}
