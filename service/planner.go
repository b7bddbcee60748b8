package service

import (
	"sort"

	"lpcgen/api/model"
)

// PlanLayers validates a character config and turns it into the finalized
// draw list: body first, one layer per equipment entry, stable-sorted
// ascending by depth so equal depths keep insertion order.
func PlanLayers(cfg *model.CharacterConfig) ([]model.LayerItem, error) {
	if !model.IsBodyType(cfg.BodyType) {
		return nil, &ValidationError{Field: "bodyType", Value: cfg.BodyType, Valid: model.BodyTypes}
	}
	if len(cfg.Animations) == 0 {
		return nil, &ValidationError{Field: "animations", Valid: model.AnimationNames()}
	}
	for _, name := range cfg.Animations {
		if _, ok := model.AnimationByName(name); !ok {
			return nil, &ValidationError{Field: "animations", Value: name, Valid: model.AnimationNames()}
		}
	}

	layers := make([]model.LayerItem, 0, 1+len(cfg.Equipment))
	layers = append(layers, model.LayerItem{
		Type:       bodyType,
		Variant:    cfg.BodyColor,
		BodyType:   cfg.BodyType,
		ZDepth:     model.LayerDepth(bodyType),
		Animations: cfg.Animations,
	})

	// Map iteration order is random; insert equipment in sorted key order so
	// the draw list (and tie-breaking) is reproducible across calls.
	equipTypes := make([]string, 0, len(cfg.Equipment))
	for equipType := range cfg.Equipment {
		equipTypes = append(equipTypes, equipType)
	}
	sort.Strings(equipTypes)
	for _, equipType := range equipTypes {
		sel := cfg.Equipment[equipType]
		layers = append(layers, model.LayerItem{
			Type:       equipType,
			Variant:    sel.Variant,
			Subvariant: sel.Subvariant,
			BodyType:   cfg.BodyType,
			ZDepth:     model.LayerDepth(equipType),
			Animations: cfg.Animations,
		})
	}

	sort.SliceStable(layers, func(i, j int) bool {
		return layers[i].ZDepth < layers[j].ZDepth
	})
	return layers, nil
}
