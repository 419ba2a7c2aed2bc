package config

// Presets are named starting configurations selectable with --preset.
var Presets = map[string]*Config{
	"gentle": presetWith(func(c *Config) {
		c.Substeps = 2
		c.Physics.Gravity = 4.0
	}),
	"chaos": presetWith(func(c *Config) {
		c.Pendulums = 5
		c.TrailCapacity = 200
	}),
	"heavy-bob": presetWith(func(c *Config) {
		c.Physics.Mass2 = 5.0
		c.Substeps = 8
	}),
	"asymmetric": presetWith(func(c *Config) {
		c.Physics.Length1 = 1.5
		c.Physics.Length2 = 0.6
		c.Physics.Mass1 = 2.0
	}),
	"moon": presetWith(func(c *Config) {
		c.Physics.Gravity = 1.62
	}),
}

func presetWith(mutate func(*Config)) *Config {
	c := DefaultConfig()
	mutate(c)
	return c
}

// GetPreset returns a copy-safe preset by name, or nil if unknown.
func GetPreset(name string) *Config {
	return Presets[name]
}

// ListPresets returns the available preset names.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
