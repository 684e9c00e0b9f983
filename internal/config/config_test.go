package config

import (
	"errors"
	"testing"
)

// TestNewConfig verifies that NewConfig returns documented defaults.
func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()

	t.Run("default SeedURI is www.meetangee.com", func(t *testing.T) {
		t.Parallel()
		if cfg.SeedURI != "www.meetangee.com" {
			t.Errorf("expected default seed URI, got %q", cfg.SeedURI)
		}
	})

	t.Run("default SeedFilename is ./index.html", func(t *testing.T) {
		t.Parallel()
		if cfg.SeedFilename != "./index.html" {
			t.Errorf("expected ./index.html, got %q", cfg.SeedFilename)
		}
	})

	t.Run("default ThreadMin is 1", func(t *testing.T) {
		t.Parallel()
		if cfg.ThreadMin != 1 {
			t.Errorf("expected ThreadMin 1, got %d", cfg.ThreadMin)
		}
	})

	t.Run("default ThreadMax is 0 (unbounded)", func(t *testing.T) {
		t.Parallel()
		if cfg.ThreadMax != 0 {
			t.Errorf("expected ThreadMax 0, got %d", cfg.ThreadMax)
		}
	})
}

// TestConfigValidate tests Validate with various configurations.
func TestConfigValidate(t *testing.T) {
	t.Parallel()

	t.Run("default config is valid", func(t *testing.T) {
		t.Parallel()
		if err := NewConfig().Validate(); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})

	t.Run("empty seed URI returns ErrNoSeedURI", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.SeedURI = ""

		if err := cfg.Validate(); !errors.Is(err, ErrNoSeedURI) {
			t.Errorf("expected ErrNoSeedURI, got %v", err)
		}
	})

	t.Run("negative thread max returns ErrInvalidThreadMax", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.ThreadMax = -1

		if err := cfg.Validate(); !errors.Is(err, ErrInvalidThreadMax) {
			t.Errorf("expected ErrInvalidThreadMax, got %v", err)
		}
	})

	t.Run("positive thread max is valid", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.ThreadMax = 4

		if err := cfg.Validate(); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})
}
