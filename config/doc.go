// Package config loads and validates testkit configuration.
//
// It uses Viper to layer an optional testkit.yml file under
// TESTKIT_-prefixed environment variables (e.g. TESTKIT_LOGGING_LEVEL), with
// .env files loaded via godotenv. Loaded configuration is validated with
// struct tags before use.
//
//	cfg, err := config.Load()
//	if err != nil { ... }
//	config.Init(cfg)
//
// Init applies the logging section to the global logger and the matrix
// section to the generator's advisory threshold. Everything works without
// any configuration present; Load then returns defaults.
package config
