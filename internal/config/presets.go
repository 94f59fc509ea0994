package config

import "sort"

// Presets mirror the play sizes of the original teaching page: a quick
// demo, a classroom batch, and a run large enough to show convergence.
var Presets = map[string]*Config{
	"quick": {
		Strategy: "switch", Trials: 100, Workers: 1,
	},
	"classroom": {
		Strategy: "switch", Trials: 1000, Workers: 1,
	},
	"convergence": {
		Strategy: "switch", Trials: 100000, Workers: 4,
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
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
