package app

import (
	"flag"
	"strconv"
	"strings"

	"continent/internal/core"
	"continent/internal/gen/continent"

	"github.com/pkg/errors"
)

// Config represents the command-line parameters shared by the binaries.
type Config struct {
	Width  int
	Height int
	Scale  int
	TPS    int
	Seed   int64
	Noise  string
	RNG    string

	// HUDWidth is the width of the parameter panel; 0 hides it.
	HUDWidth int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	def := continent.DefaultConfig()
	return &Config{
		Width:    def.Width,
		Height:   def.Height,
		Scale:    3,
		TPS:      30,
		Seed:     def.Seed,
		Noise:    def.Noise,
		RNG:      def.RNG,
		HUDWidth: 280,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "map width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "map height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "generation seed")
	fs.StringVar(&c.Noise, "noise", c.Noise, "noise backend: "+strings.Join(core.NoiseNames(), ", "))
	fs.StringVar(&c.RNG, "rng", c.RNG, "random stream: pcg or lcg")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "parameter panel width in pixels (0 hides it)")
}

// Continent builds the generator configuration with default tunables.
func (c *Config) Continent() continent.Config {
	cfg := continent.DefaultConfig()
	cfg.Width = c.Width
	cfg.Height = c.Height
	cfg.Seed = c.Seed
	cfg.Noise = c.Noise
	cfg.RNG = c.RNG
	return cfg
}

// Overrides collects repeatable key=value flags.
type Overrides []string

func (o *Overrides) String() string {
	return strings.Join(*o, ",")
}

// Set appends one key=value pair.
func (o *Overrides) Set(value string) error {
	if !strings.Contains(value, "=") {
		return errors.Errorf("override %q is not key=value", value)
	}
	*o = append(*o, value)
	return nil
}

// Map returns the pairs with later duplicates winning. Flags bound by Bind
// (w, h, seed, rng, noise) are included so FromMap-style helpers see them.
func (o Overrides) Map(c *Config) map[string]string {
	kv := map[string]string{
		"w":     strconv.Itoa(c.Width),
		"h":     strconv.Itoa(c.Height),
		"seed":  strconv.FormatInt(c.Seed, 10),
		"rng":   c.RNG,
		"noise": c.Noise,
	}
	for _, pair := range o {
		key, value, _ := strings.Cut(pair, "=")
		kv[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return kv
}
