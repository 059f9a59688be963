// Package config provides a type-safe, generic and cached way to load
// configuration from environment variables, e.g. the domain policy settings
// applications layer on top of address validation.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11` to
// deliver a convenient API that:
//
//   - Loads values from the default `.env` in the working directory, or from
//     explicitly named files via LoadEnv, where later files take precedence.
//   - Parses the environment into any Go struct using field tags.
//   - Caches each successfully loaded configuration type so it is parsed only
//     once for the lifetime of the process.
//   - Exposes MustLoad and MustLoadEnv, which panic on failure, for
//     configuration the process cannot start without.
//
// # Architecture
//
// Internally the package keeps a singleton cache storing parsed struct copies
// keyed by their fully-qualified type name. Each key also holds a `sync.Once`
// guaranteeing the parsing work runs at most once per configuration type even
// when accessed from multiple goroutines concurrently. The exported helpers
// interact with the cache through a `sync.RWMutex`; low-level parsing is
// delegated to `env.Parse`.
//
// # Usage
//
// Describe the configuration as a struct with `env` tags:
//
//	type PolicyConfig struct {
//	    AllowedDomains []string `env:"EMAIL_ALLOWED_DOMAINS" envSeparator:","`
//	    BlockedDomains []string `env:"EMAIL_BLOCKED_DOMAINS" envSeparator:","`
//	}
//
// Then populate it:
//
//	var cfg PolicyConfig
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// Subsequent calls to `config.Load(&cfg)` are served from the in-memory cache
// without re-parsing.
//
// # Error Handling
//
// The package defines sentinel errors that can be compared with `errors.Is`:
//
//   - `ErrParsingConfig`   – failed to parse env vars into the struct.
//   - `ErrEnvFileLoad`     – named .env file could not be read.
//   - `ErrConfigNotLoaded` – a previous parse failure left nothing cached.
//   - `ErrNilPointer`      – nil pointer passed to `Load`/`MustLoad`.
//
// # Testing Helpers
//
// Use `ResetCache()` to clear the global cache between tests that mutate the
// process environment, or `ForceReloadConfig(&cfg)` to re-parse a single
// configuration type in place.
package config
