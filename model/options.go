package model

type EquipmentOptions struct {
	Types    []string                       `json:"types"`
	Variants map[string]map[string][]string `json:"variants"`
}

// Options is the catalog of legal selections. Body types and animations come
// from the static tables; equipment reflects the asset tree on disk.
type Options struct {
	BodyTypes  []string         `json:"bodyTypes"`
	Animations []string         `json:"animations"`
	Equipment  EquipmentOptions `json:"equipment"`
}
