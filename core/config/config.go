package config

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	cache   sync.Map // reflect.Type -> parsed config value
	dotenv  sync.Once
	cacheMu sync.Mutex
)

// Load parses environment variables into cfg. The first call for a given
// type reads the environment (after a one-time .env autoload); later calls
// for the same type return the cached value.
func Load[T any](cfg *T) error {
	dotenv.Do(func() {
		// Missing .env files are expected outside local development.
		_ = godotenv.Load()
	})

	typ := reflect.TypeOf(*cfg)
	if cached, ok := cache.Load(typ); ok {
		*cfg = cached.(T)
		return nil
	}

	cacheMu.Lock()
	defer cacheMu.Unlock()

	if cached, ok := cache.Load(typ); ok {
		*cfg = cached.(T)
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("config: parse %s: %w", typ.String(), err)
	}

	cache.Store(typ, *cfg)
	return nil
}

// MustLoad is Load that panics on failure. Useful at application startup.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
