package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrInvalidConfigType is returned when Load is given anything but a pointer
// to a struct.
var ErrInvalidConfigType = errors.New("config must be a non-nil pointer to a struct")

var (
	dotenvOnce sync.Once
	cache      sync.Map // reflect.Type -> struct value
)

// Load fills cfg from the environment. The first load of a type parses the
// environment; subsequent loads of the same type return the cached value.
func Load(cfg any) error {
	dotenvOnce.Do(func() {
		// Missing .env is fine; explicit environment always wins anyway.
		_ = godotenv.Load()
	})

	v := reflect.ValueOf(cfg)
	if v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return ErrInvalidConfigType
	}

	typ := v.Elem().Type()
	if cached, ok := cache.Load(typ); ok {
		v.Elem().Set(reflect.ValueOf(cached))
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse %s from environment: %w", typ, err)
	}

	cache.Store(typ, v.Elem().Interface())
	return nil
}

// MustLoad is Load panicking on failure, for use at startup.
func MustLoad(cfg any) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
