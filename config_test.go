package platform_test

import (
	"errors"
	"testing"

	platform "github.com/emirozcannn/dietitian-platform-oguzyolyapan-v2"
)

func TestDefaultConfigValidates(t *testing.T) {
	cfg := platform.DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned unexpected error: %v", err)
	}
}

func TestConfigValidateDefaultLocaleUnsupported(t *testing.T) {
	cfg := platform.DefaultConfig()
	cfg.DefaultLocale = "fr"

	if err := cfg.Validate(); !errors.Is(err, platform.ErrDefaultLocaleUnsupported) {
		t.Fatalf("expected ErrDefaultLocaleUnsupported, got %v", err)
	}
}

func TestConfigValidateStorageProviderUnknown(t *testing.T) {
	cfg := platform.DefaultConfig()
	cfg.Storage.Provider = "mongo"

	if err := cfg.Validate(); !errors.Is(err, platform.ErrStorageProviderUnknown) {
		t.Fatalf("expected ErrStorageProviderUnknown, got %v", err)
	}
}

func TestConfigValidateLoggingProviderRequired(t *testing.T) {
	cfg := platform.DefaultConfig()
	cfg.Features.Logger = true
	cfg.Logging.Provider = ""

	if err := cfg.Validate(); !errors.Is(err, platform.ErrLoggingProviderRequired) {
		t.Fatalf("expected ErrLoggingProviderRequired, got %v", err)
	}
}

func TestConfigValidateLoggingProviderUnknown(t *testing.T) {
	cfg := platform.DefaultConfig()
	cfg.Features.Logger = true
	cfg.Logging.Provider = "zap"

	if err := cfg.Validate(); !errors.Is(err, platform.ErrLoggingProviderUnknown) {
		t.Fatalf("expected ErrLoggingProviderUnknown, got %v", err)
	}
}

func TestConfigValidateLoggingLevelInvalid(t *testing.T) {
	cfg := platform.DefaultConfig()
	cfg.Features.Logger = true
	cfg.Logging.Level = "verbose"

	if err := cfg.Validate(); !errors.Is(err, platform.ErrLoggingLevelInvalid) {
		t.Fatalf("expected ErrLoggingLevelInvalid, got %v", err)
	}
}

func TestConfigValidateLoggingFormatInvalid(t *testing.T) {
	cfg := platform.DefaultConfig()
	cfg.Features.Logger = true
	cfg.Logging.Provider = "gologger"
	cfg.Logging.Format = "xml"

	if err := cfg.Validate(); !errors.Is(err, platform.ErrLoggingFormatInvalid) {
		t.Fatalf("expected ErrLoggingFormatInvalid, got %v", err)
	}
}
