// Package config provides type-safe environment variable loading with
// per-type caching.
//
// A .env file in the working directory is loaded once on first use; parsing
// is delegated to the caarlos0/env library.
//
//	type APIConfig struct {
//		BaseURL string        `env:"FLASHLINGO_API_URL" envDefault:"https://api.flashlingo.app"`
//		Timeout time.Duration `env:"FLASHLINGO_TIMEOUT" envDefault:"15s"`
//	}
//
//	var cfg APIConfig
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
// Each configuration type is parsed only once per process; later Load calls
// for the same type return the cached value.
package config
