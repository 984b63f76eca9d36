package labelgen

import "go.uber.org/zap"

// Option is a functional option for configuring a Generator via New.
type Option func(*config)

type config struct {
	logger     *zap.Logger
	fontFamily string
}

// WithLogger sets the logger used for skipped elements and clipped text.
// The default is a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithFontFamily sets the default font family used when a text element
// names no font, or names one outside the built-in set. The family must be
// one of the built-in core families (Helvetica, Times, Courier, or an
// alias of them); anything else is ignored and the default Helvetica
// remains, keeping a styling mistake from failing whole documents.
func WithFontFamily(family string) Option {
	return func(c *config) {
		if resolved, ok := coreFamily(family); ok {
			c.fontFamily = resolved
		}
	}
}

// New creates a Generator. A Generator holds no per-render state; one
// instance can serve independent Generate calls concurrently.
//
// Example:
//
//	gen := labelgen.New(
//	    labelgen.WithLogger(logger),
//	)
func New(opts ...Option) *Generator {
	cfg := &config{
		logger:     zap.NewNop(),
		fontFamily: "Helvetica",
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return &Generator{
		log:        cfg.logger,
		fontFamily: cfg.fontFamily,
	}
}
