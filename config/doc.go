// Package config loads environment-backed configuration structs exactly once
// per type for the life of the process.
//
// It combines godotenv (optional .env file support for local development)
// with caarlos0/env struct-tag parsing, and caches the parsed value per
// configuration type so repeated and concurrent loads are cheap and
// consistent. paramkit uses it for its own tuning knobs; embedding
// applications are free to reuse it for theirs.
//
// # Usage
//
//	type Tuning struct {
//		TraceCompile bool `env:"PARAMKIT_TRACE_COMPILE" envDefault:"false"`
//	}
//
//	var t Tuning
//	if err := config.Load(&t); err != nil {
//		// handle error
//	}
//
// Load never re-reads the environment for a type it has already parsed, so a
// value observed once stays stable for the whole process.
package config
