// Package config loads configuration structs from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11: the
// default .env file is loaded once per process (and silently skipped when
// absent), then the environment is parsed into any struct carrying env field
// tags.
//
// # Usage
//
//	type appConfig struct {
//	    LogLevel  slog.Level `env:"LOG_LEVEL" envDefault:"info"`
//	    LogFormat string     `env:"LOG_FORMAT" envDefault:"text"`
//	}
//
//	var cfg appConfig
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("failed to parse environment: %v", err)
//	}
//
// MustLoad panics instead of returning the error, for configuration the
// process cannot run without.
//
// # Error Handling
//
// Failures wrap sentinel errors comparable with errors.Is:
//
//   - ErrParsingConfig: the environment does not satisfy the struct's tags.
//   - ErrNilPointer: a nil pointer was passed to Load.
package config
