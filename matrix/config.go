package matrix

import "sync/atomic"

// Config controls advisory logging for oversized products. Generation is
// never limited or rejected; the threshold only gates a debug log so suites
// that accidentally explode their case count can spot it.
type Config struct {
	// WarnThreshold is the combination count at or above which Combine logs
	// an advisory. Zero means the default; negative disables the advisory.
	WarnThreshold int `yaml:"warn_threshold" mapstructure:"warn_threshold"`
}

// ApplyDefaults applies default values to matrix configuration.
func (c *Config) ApplyDefaults() {
	if c.WarnThreshold == 0 {
		c.WarnThreshold = 1 << 16
	}
}

var warnAt atomic.Int64

func init() {
	var cfg Config
	cfg.ApplyDefaults()
	warnAt.Store(int64(cfg.WarnThreshold))
}

// Configure applies matrix configuration. Safe to call concurrently with
// generation.
func Configure(cfg Config) {
	cfg.ApplyDefaults()
	warnAt.Store(int64(cfg.WarnThreshold))
}

func warnThreshold() int {
	return int(warnAt.Load())
}
