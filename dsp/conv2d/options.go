package conv2d

import "github.com/cwbudde/algo-imgconv/dsp/raster"

// Config defines pipeline settings.
type Config struct {
	// Overflow selects how out-of-range samples become bytes in the merged raster.
	Overflow raster.Overflow

	// Parallel runs the three channel convolutions concurrently.
	Parallel bool
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns wrap-around byte coercion and parallel channels.
func DefaultConfig() Config {
	return Config{
		Overflow: raster.OverflowWrap,
		Parallel: true,
	}
}

// WithOverflow sets the byte coercion mode used by the merge stage.
// Unknown modes are ignored.
func WithOverflow(mode raster.Overflow) Option {
	return func(cfg *Config) {
		if mode == raster.OverflowWrap || mode == raster.OverflowClamp {
			cfg.Overflow = mode
		}
	}
}

// WithParallel enables or disables concurrent channel convolution.
func WithParallel(parallel bool) Option {
	return func(cfg *Config) {
		cfg.Parallel = parallel
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
