// Package config loads typed configuration from environment variables with
// per-type caching.
//
// A .env file, when present, is loaded once on first use; parsing is done by
// caarlos0/env. Each struct type is parsed only once per process — later
// loads of the same type get the cached value, so every component sees one
// consistent configuration.
//
//	type ServerConfig struct {
//		Addr string `env:"ADDR" envDefault:":8000"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg); err != nil {
//		...
//	}
package config
