package config

import "sort"

var Presets = map[string]*Config{
	"arraylist": {
		Label: "ArrayList-go", Structure: "arraylist", InitialCapacity: 20,
		Repetitions: 30, InsertValue: 10,
	},
	"queue": {
		Label: "Queue-go", Structure: "queue", InitialCapacity: 20,
		Repetitions: 30, InsertValue: 999,
	},
	"quick": {
		Label: "ArrayList-go-quick", Structure: "arraylist", InitialCapacity: 20,
		Repetitions: 5, InsertValue: 10,
	},
}

// GetPreset returns a full config with the preset applied over the defaults.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Label = p.Label
	cfg.Structure = p.Structure
	cfg.InitialCapacity = p.InitialCapacity
	cfg.Repetitions = p.Repetitions
	cfg.InsertValue = p.InsertValue
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
