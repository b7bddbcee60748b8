package sprite

import "lpcgen/api/model"

type GenerateReq struct {
	BodyType   string                              `json:"bodyType"`
	BodyColor  string                              `json:"bodyColor"`
	Equipment  map[string]model.EquipmentSelection `json:"equipment"`
	Animations []string                            `json:"animations"`
}

func (r *GenerateReq) toConfig() *model.CharacterConfig {
	return &model.CharacterConfig{
		BodyType:   r.BodyType,
		BodyColor:  r.BodyColor,
		Equipment:  r.Equipment,
		Animations: r.Animations,
	}
}
