package engine

// ============================================================================
// ENGINE OPTIONS — Functional options for Recommend()
// ============================================================================

// Option configures recommendation thresholds via functional options.
type Option func(*config)

type config struct {
	ROASTarget           float64 // mean ROAS above this is healthy
	ConversionRateTarget float64 // mean conversion rate above this is respectable
}

// WithROASTarget overrides the healthy-ROAS threshold (default 5x).
// The comparison stays strict: a mean of exactly the target is not healthy.
func WithROASTarget(target float64) Option {
	return func(c *config) { c.ROASTarget = target }
}

// WithConversionTarget overrides the respectable conversion-rate threshold
// (default 3%). Strict comparison, same as the ROAS target.
func WithConversionTarget(target float64) Option {
	return func(c *config) { c.ConversionRateTarget = target }
}

func applyOptions(opts []Option) *config {
	cfg := &config{
		ROASTarget:           5,
		ConversionRateTarget: 3,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
