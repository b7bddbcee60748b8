package service

import (
	"context"

	"lpcgen/api/log"
	"lpcgen/api/model"
)

// SpriteService orchestrates one spritesheet generation: plan, concurrent
// load, compose, encode. It is stateless; every surface and cache of decoded
// images lives inside a single Generate call.
type SpriteService struct {
	root     string
	resolver *Resolver
	catalog  *CatalogService
}

func NewSpriteService(root string) *SpriteService {
	return &SpriteService{
		root:     root,
		resolver: NewResolver(root),
		catalog:  NewCatalogService(root),
	}
}

type GenerateResult struct {
	Image    []byte
	Metadata model.SheetMetadata
}

func (s *SpriteService) Generate(ctx context.Context, cfg *model.CharacterConfig) (*GenerateResult, error) {
	layers, err := PlanLayers(cfg)
	if err != nil {
		return nil, err
	}

	images, paths, err := LoadImages(ctx, s.resolver, layers)
	if err != nil {
		return nil, err
	}

	sheet := Compose(layers, images, cfg.Animations)
	encoded, err := EncodePNG(sheet)
	if err != nil {
		return nil, err
	}

	credits := CollectCredits(s.root, layers, paths, cfg.Animations)
	log.Debug("generated sheet: layers=", len(layers), " animations=", len(cfg.Animations), " bytes=", len(encoded))

	return &GenerateResult{
		Image: encoded,
		Metadata: model.SheetMetadata{
			Width:      model.SheetWidth,
			Height:     model.SheetHeight,
			FrameSize:  model.FrameSize,
			Animations: cfg.Animations,
			Credits:    credits,
		},
	}, nil
}

func (s *SpriteService) Options() (*model.Options, error) {
	return s.catalog.ListOptions()
}
