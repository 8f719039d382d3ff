package config

import "fmt"

// Preset is a fixed board size and mine count.
type Preset struct {
	Name   string
	Width  int
	Height int
	Mines  int
}

var (
	Beginner     = Preset{Name: "beginner", Width: 9, Height: 9, Mines: 10}
	Intermediate = Preset{Name: "intermediate", Width: 16, Height: 16, Mines: 40}
	Expert       = Preset{Name: "expert", Width: 30, Height: 16, Mines: 99}
)

// Presets lists the difficulties from easiest to hardest.
func Presets() []Preset {
	return []Preset{Beginner, Intermediate, Expert}
}

func PresetByName(name string) (Preset, error) {
	for _, p := range Presets() {
		if p.Name == name {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("unknown difficulty %q", name)
}
