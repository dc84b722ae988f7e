package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"

	"github.com/emirozcannn/dietitian-platform-oguzyolyapan-v2/internal/i18n"
)

var (
	ErrDefaultLocaleUnsupported = errors.New("platform config: default locale is not supported")
	ErrStorageProviderUnknown   = errors.New("platform config: storage provider is invalid")
	ErrLoggingProviderRequired  = errors.New("platform config: logging provider is required when logging is enabled")
	ErrLoggingProviderUnknown   = errors.New("platform config: logging provider is invalid")
	ErrLoggingLevelInvalid      = errors.New("platform config: logging level is invalid")
	ErrLoggingFormatInvalid     = errors.New("platform config: logging format is invalid")
)

// Config aggregates feature flags and adapter bindings for the platform
// module. Fields intentionally use simple types so host applications can
// populate them from any configuration source.
type Config struct {
	Enabled       bool
	DefaultLocale string
	Storage       StorageConfig
	Logging       LoggingConfig
	Features      Features
}

// StorageConfig selects the persistence backend.
type StorageConfig struct {
	Provider string
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
}

// Features toggles module functionality.
type Features struct {
	Scheduling     bool
	DefaultContent bool
	Testimonials   bool
	FAQ            bool
	Packages       bool
	Logger         bool
}

// DefaultConfig returns opinionated defaults: memory storage, Turkish as
// the primary locale, every content feature on.
func DefaultConfig() Config {
	return Config{
		Enabled:       true,
		DefaultLocale: i18n.DefaultLocale,
		Storage: StorageConfig{
			Provider: "memory",
		},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
		},
		Features: Features{
			Scheduling:     true,
			DefaultContent: true,
			Testimonials:   true,
			FAQ:            true,
			Packages:       true,
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if locale := strings.TrimSpace(cfg.DefaultLocale); locale != "" && !i18n.IsSupported(locale) {
		return fmt.Errorf("%w: %s", ErrDefaultLocaleUnsupported, locale)
	}
	switch provider := strings.ToLower(strings.TrimSpace(cfg.Storage.Provider)); provider {
	case "", "memory", "bun":
	default:
		return fmt.Errorf("%w: %s", ErrStorageProviderUnknown, provider)
	}
	if cfg.Features.Logger {
		provider := strings.ToLower(strings.TrimSpace(cfg.Logging.Provider))
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if provider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
