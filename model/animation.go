package model

// Frame grid constants. Every source sheet is authored on the same 64px
// cell grid, so the destination size never depends on the request.
const (
	FrameSize    = 64
	SheetColumns = 13
	SheetRows    = 54

	SheetWidth  = SheetColumns * FrameSize // 832
	SheetHeight = SheetRows * FrameSize    // 3456
)

type AnimationDescriptor struct {
	Name       string `json:"name"`
	FrameCount int    `json:"frameCount"`
	RowIndex   int    `json:"rowIndex"`
}

// Animations is the fixed process-wide table. Row indexes are spaced so each
// animation's reserved row block never overlaps the next one.
var Animations = []AnimationDescriptor{
	{Name: "idle", FrameCount: 2, RowIndex: 0},
	{Name: "walk", FrameCount: 8, RowIndex: 2},
	{Name: "run", FrameCount: 8, RowIndex: 10},
	{Name: "slash", FrameCount: 6, RowIndex: 18},
	{Name: "thrust", FrameCount: 8, RowIndex: 24},
	{Name: "shoot", FrameCount: 8, RowIndex: 32},
	{Name: "cast", FrameCount: 7, RowIndex: 40},
	{Name: "hurt", FrameCount: 6, RowIndex: 47},
	{Name: "jump", FrameCount: 1, RowIndex: 53},
}

var animationIndex = map[string]AnimationDescriptor{}

func init() {
	for _, a := range Animations {
		animationIndex[a.Name] = a
	}
}

func AnimationByName(name string) (AnimationDescriptor, bool) {
	a, ok := animationIndex[name]
	return a, ok
}

func AnimationNames() []string {
	names := make([]string, 0, len(Animations))
	for _, a := range Animations {
		names = append(names, a.Name)
	}
	return names
}
