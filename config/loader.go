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
	dotenvOnce sync.Once
	loaded     sync.Map // type key -> parsed value
	inflight   sync.Map // type key -> *sync.Once
)

// Load parses environment variables into cfg based on `env` struct tags. A
// .env file, if present, is loaded into the environment once per process
// before the first parse. Each distinct configuration type is parsed at most
// once; later calls for the same type receive the cached copy, so concurrent
// callers never trigger duplicate parsing.
//
// Example:
//
//	type Tuning struct {
//		DisableFastPath bool `env:"PARAMKIT_DISABLE_FASTPATH" envDefault:"false"`
//	}
//
//	var t Tuning
//	if err := config.Load(&t); err != nil {
//		// handle error
//	}
func Load[T any](cfg *T) error {
	if cfg == nil {
		return ErrNilPointer
	}

	dotenvOnce.Do(func() {
		// Missing .env is fine; the environment alone may be complete.
		_ = godotenv.Load()
	})

	key := typeKey[T]()
	if v, ok := loaded.Load(key); ok {
		*cfg = v.(T)
		return nil
	}

	onceVal, _ := inflight.LoadOrStore(key, new(sync.Once))

	var parseErr error
	onceVal.(*sync.Once).Do(func() {
		if err := env.Parse(cfg); err != nil {
			parseErr = errors.Join(ErrParsingConfig, err)
			return
		}
		// Store a copy so later mutation of cfg cannot leak into the cache.
		loaded.Store(key, *cfg)
	})
	if parseErr != nil {
		return parseErr
	}

	if v, ok := loaded.Load(key); ok {
		*cfg = v.(T)
		return nil
	}

	// The winning Do failed earlier; this caller lost the race and has no
	// parsed value to hand out.
	return ErrConfigNotLoaded
}

// MustLoad is Load that panics on failure, for configuration the process
// cannot start without.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

func typeKey[T any]() string {
	var zero T
	if t := reflect.TypeOf(zero); t != nil {
		return t.String()
	}
	// Interface-typed T has no concrete type until assigned.
	return fmt.Sprintf("%T", *new(T))
}
