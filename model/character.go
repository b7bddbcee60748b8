package model

import "encoding/json"

const (
	BODY_TYPE_MALE     = "male"
	BODY_TYPE_FEMALE   = "female"
	BODY_TYPE_TEEN     = "teen"
	BODY_TYPE_CHILD    = "child"
	BODY_TYPE_MUSCULAR = "muscular"
	BODY_TYPE_PREGNANT = "pregnant"
)

var BodyTypes = []string{
	BODY_TYPE_MALE,
	BODY_TYPE_FEMALE,
	BODY_TYPE_TEEN,
	BODY_TYPE_CHILD,
	BODY_TYPE_MUSCULAR,
	BODY_TYPE_PREGNANT,
}

func IsBodyType(v string) bool {
	for _, bt := range BodyTypes {
		if bt == v {
			return true
		}
	}
	return false
}

var bodyTypeDirs = map[string]string{
	BODY_TYPE_TEEN:  "teen",
	BODY_TYPE_CHILD: "child",
}

// BodyTypeDir maps a body type to its asset directory. Adults share one
// directory; unmapped values fall back to it as well.
func BodyTypeDir(bodyType string) string {
	if dir, ok := bodyTypeDirs[bodyType]; ok {
		return dir
	}
	return "adult"
}

var layerDepths = map[string]int{
	"body":   10,
	"hair":   20,
	"eyes":   30,
	"mouth":  40,
	"beard":  50,
	"armor":  60,
	"weapon": 70,
	"shield": 80,
	"helmet": 90,
	"boots":  100,
}

// LayerDepth returns the fixed back-to-front depth for a layer type.
// Types outside the table draw first (depth 0).
func LayerDepth(layerType string) int {
	return layerDepths[layerType]
}

// EquipmentSelection accepts either a plain variant string or a
// {variant, subvariant} object on the wire.
type EquipmentSelection struct {
	Variant    string `json:"variant"`
	Subvariant string `json:"subvariant,omitempty"`
}

func (s *EquipmentSelection) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var variant string
		if err := json.Unmarshal(b, &variant); err != nil {
			return err
		}
		s.Variant = variant
		s.Subvariant = ""
		return nil
	}
	type plain EquipmentSelection
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*s = EquipmentSelection(p)
	return nil
}

type CharacterConfig struct {
	BodyType   string                        `json:"bodyType"`
	BodyColor  string                        `json:"bodyColor"`
	Equipment  map[string]EquipmentSelection `json:"equipment"`
	Animations []string                      `json:"animations"`
}

// LayerItem is one planned draw entry. Owned by a single generation call and
// never mutated once the draw list is sorted.
type LayerItem struct {
	Type       string
	Variant    string
	Subvariant string
	BodyType   string
	ZDepth     int
	Animations []string
}

type Credit struct {
	File     string   `json:"file"`
	Authors  []string `json:"authors"`
	Licenses []string `json:"licenses"`
	URLs     []string `json:"urls"`
}

type SheetMetadata struct {
	Width      int      `json:"width"`
	Height     int      `json:"height"`
	FrameSize  int      `json:"frameSize"`
	Animations []string `json:"animations"`
	Credits    []Credit `json:"credits"`
}
