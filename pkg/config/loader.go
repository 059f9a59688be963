package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// cache stores one parsed configuration value per concrete type, so every
// caller sees the same configuration regardless of load order.
type cache struct {
	mu     sync.RWMutex
	values map[string]any
	onces  map[string]*sync.Once
}

var (
	store = &cache{
		values: make(map[string]any),
		onces:  make(map[string]*sync.Once),
	}

	defaultEnvOnce sync.Once
)

// Load parses environment variables into v based on its `env` field tags,
// reading a .env file from the working directory first if one exists. Each
// configuration type is parsed once per process; later calls for the same
// type receive the cached value.
//
// Example:
//
//	type PolicyConfig struct {
//		AllowedDomains []string `env:"EMAIL_ALLOWED_DOMAINS" envSeparator:","`
//		BlockedDomains []string `env:"EMAIL_BLOCKED_DOMAINS" envSeparator:","`
//	}
//
//	var cfg PolicyConfig
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
func Load[T any](v *T) error {
	defaultEnvOnce.Do(func() {
		// A missing .env file is fine, the process environment still applies.
		_ = godotenv.Load()
	})

	return parseCached(v)
}

// MustLoad works like Load but panics when loading fails. Use it for
// configuration the process cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// LoadEnv loads environment variables from the named .env files before any
// config parsing happens. Values from later files take precedence over
// earlier files and over pre-existing process variables. With no arguments
// it loads the default .env from the working directory, tolerating its
// absence; named files must exist.
func LoadEnv(filenames ...string) error {
	if len(filenames) == 0 {
		_ = godotenv.Load()
		return nil
	}

	if err := godotenv.Overload(filenames...); err != nil {
		return errors.Join(ErrEnvFileLoad, err)
	}

	return nil
}

// MustLoadEnv works like LoadEnv but panics when a named file cannot be read.
func MustLoadEnv(filenames ...string) {
	if err := LoadEnv(filenames...); err != nil {
		panic(fmt.Sprintf("failed to load env files: %v", err))
	}
}

// ForceReloadConfig discards the cached value for v's type and parses the
// environment again. Use it after the process environment changes, e.g. in
// tests.
func ForceReloadConfig[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	name := typeName[T]()

	store.mu.Lock()
	delete(store.values, name)
	delete(store.onces, name)
	store.mu.Unlock()

	return parseCached(v)
}

// ResetCache clears every cached configuration value so the next Load parses
// the environment again. Intended for tests that mutate the environment
// between loads.
func ResetCache() {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.values = make(map[string]any)
	store.onces = make(map[string]*sync.Once)
}

func parseCached[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	name := typeName[T]()

	store.mu.RLock()
	if cached, ok := store.values[name]; ok {
		*v = cached.(T)
		store.mu.RUnlock()
		return nil
	}
	store.mu.RUnlock()

	store.mu.Lock()
	once, ok := store.onces[name]
	if !ok {
		once = new(sync.Once)
		store.onces[name] = once
	}
	store.mu.Unlock()

	var parseErr error
	once.Do(func() {
		if err := env.Parse(v); err != nil {
			parseErr = errors.Join(ErrParsingConfig, err)
			return
		}

		store.mu.Lock()
		store.values[name] = *v // store a copy so callers cannot mutate the cache
		store.mu.Unlock()
	})
	if parseErr != nil {
		return parseErr
	}

	store.mu.RLock()
	defer store.mu.RUnlock()
	if cached, ok := store.values[name]; ok {
		*v = cached.(T)
		return nil
	}

	// The once ran earlier and failed, so nothing is cached for this type.
	return ErrConfigNotLoaded
}

// typeName returns a stable string identifier for T.
func typeName[T any]() string {
	if t := reflect.TypeOf(*new(T)); t != nil {
		return t.String()
	}
	return fmt.Sprintf("%T", *new(T))
}
