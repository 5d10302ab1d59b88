package app

import "flag"

// Config represents the command-line parameters for the application.
type Config struct {
	Width    int
	Height   int
	Scale    int
	TPS      int
	Seed     int64
	HUDWidth int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Width: 400, Height: 300, Scale: 2, TPS: 60, Seed: 1337, HUDWidth: 230}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "canvas width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "canvas height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation steps per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "parameter panel width in pixels (0 hides it)")
}
