package config

import (
	"github.com/kbukum/testkit/logger"
	"github.com/kbukum/testkit/matrix"
)

// Config is the root testkit configuration.
type Config struct {
	Logging logger.Config `yaml:"logging" mapstructure:"logging"`
	Matrix  matrix.Config `yaml:"matrix" mapstructure:"matrix"`
}

// ApplyDefaults applies default values to all sections.
func (c *Config) ApplyDefaults() {
	c.Logging.ApplyDefaults()
	c.Matrix.ApplyDefaults()
}

// Init applies the configuration: the logging section to the global logger
// and the matrix section to the generator.
func Init(cfg *Config) {
	logger.Init(cfg.Logging)
	matrix.Configure(cfg.Matrix)
}
