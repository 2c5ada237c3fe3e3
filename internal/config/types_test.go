// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"testing"
)

func TestColorScheme_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value   ColorScheme
		wantErr bool
	}{
		{ColorSchemeAuto, false},
		{ColorSchemeDark, false},
		{ColorSchemeLight, false},
		{"", true},
		{"neon", true},
	}

	for _, tt := range tests {
		t.Run(string(tt.value), func(t *testing.T) {
			t.Parallel()
			err := tt.value.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("ColorScheme(%q).Validate() error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidColorScheme) {
				t.Errorf("error should wrap ErrInvalidColorScheme, got %v", err)
			}
		})
	}
}

func TestColorScheme_GlamourStyle(t *testing.T) {
	t.Parallel()

	if got := ColorScheme("").GlamourStyle(); got != "auto" {
		t.Errorf("empty scheme style = %q, want auto", got)
	}
	if got := ColorSchemeLight.GlamourStyle(); got != "light" {
		t.Errorf("light scheme style = %q, want light", got)
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		mutate     func(*Config)
		wantFields int
	}{
		{name: "defaults", mutate: func(*Config) {}, wantFields: 0},
		{name: "timeout zero disables injection", mutate: func(c *Config) {
			c.Tests.DefaultTimeout = 0
			c.Tests.TimeoutFlag = ""
		}, wantFields: 0},
		{name: "negative timeout", mutate: func(c *Config) { c.Tests.DefaultTimeout = -1 }, wantFields: 1},
		{name: "bad pattern", mutate: func(c *Config) { c.Tests.Pattern = "test_[" }, wantFields: 1},
		{name: "flag without dash", mutate: func(c *Config) { c.Tests.TimeoutFlag = "timeout" }, wantFields: 1},
		{name: "several", mutate: func(c *Config) {
			c.VenvDir = " "
			c.Tests.Dir = ""
			c.Tests.Framework = ""
		}, wantFields: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantFields == 0 {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			var cfgErr *InvalidConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("Validate() = %v, want *InvalidConfigError", err)
			}
			if len(cfgErr.FieldErrors) != tt.wantFields {
				t.Errorf("FieldErrors = %d (%v), want %d", len(cfgErr.FieldErrors), cfgErr.FieldErrors, tt.wantFields)
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Error("error should wrap ErrInvalidConfig")
			}
		})
	}
}
