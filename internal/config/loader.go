// Package config loads environment configuration into structs.
//
// A .env file in the working directory is loaded once on first use. Each
// config type is parsed once and cached; use ForceReload after changing the
// environment.
package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	ErrParsingConfig = errors.New("failed to parse environment variables into config")
	ErrNilPointer    = errors.New("nil pointer provided to config loader")
)

var (
	mu    sync.RWMutex
	cache = map[string]any{}

	defaultEnvLoaded sync.Once
)

// Load parses environment variables into v, using the cached value when this
// type has been loaded before.
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	defaultEnvLoaded.Do(func() {
		// A missing .env file is fine.
		_ = godotenv.Load()
	})

	key := typeName[T]()
	mu.RLock()
	cached, ok := cache[key]
	mu.RUnlock()
	if ok {
		*v = cached.(T)
		return nil
	}
	return ForceReload(v)
}

// ForceReload parses environment variables into v and replaces the cache entry.
func ForceReload[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	var fresh T
	if err := env.Parse(&fresh); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	mu.Lock()
	cache[typeName[T]()] = fresh
	mu.Unlock()
	*v = fresh
	return nil
}

// MustLoad works like Load but panics on failure.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// LoadEnv loads the given .env files into the process environment. Variables
// that are already set are kept, so earlier files win over later ones.
func LoadEnv(paths ...string) error {
	return godotenv.Load(paths...)
}

// ResetCache drops all cached configs.
func ResetCache() {
	mu.Lock()
	cache = map[string]any{}
	mu.Unlock()
}

func typeName[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}
