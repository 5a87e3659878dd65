package config

import (
	"sort"

	"github.com/san-kum/nestframe/internal/pattern"
)

var Presets = map[string]pattern.Dimensions{
	"default": {Width: 20, Height: 20, Padding: 4},
	"banner":  {Width: 120, Height: 40, Padding: 4},
	"dense":   {Width: 40, Height: 40, Padding: 4},
	"wide":    {Width: 80, Height: 24, Padding: 6},
	"square":  {Width: 60, Height: 60, Padding: 8},
}

func GetPreset(name string) (pattern.Dimensions, bool) {
	d, ok := Presets[name]
	return d, ok
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
