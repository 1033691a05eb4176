package searcher

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

const DefaultExploration = 0.07

// Preset pairs an exploration constant with an iteration budget.
type Preset struct {
	Name        string
	Exploration float64
	Iterations  int
}

var Presets = map[string]Preset{
	"original": {Name: "original", Exploration: DefaultExploration, Iterations: 2000},
	"classic":  {Name: "classic", Exploration: math.Sqrt2, Iterations: 1000},
}

func LookupPreset(name string) (Preset, error) {
	p, ok := Presets[strings.ToLower(name)]
	if !ok {
		return Preset{}, fmt.Errorf("unknown preset %q (available: %s)", name, strings.Join(PresetNames(), ", "))
	}
	return p, nil
}

func PresetNames() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
