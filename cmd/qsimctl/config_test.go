// Copyright 2025 The qsim Authors. SPDX-License-Identifier: Apache-2.0

package main

import "testing"

func TestValidateConfig_Valid(t *testing.T) {
	cfg := DefaultConfig()
	if err := ValidateConfig(&cfg); err != nil {
		t.Errorf("ValidateConfig() error = %v, want nil", err)
	}
}

func TestValidateConfig_EmptyMetricsAddr(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MetricsAddr = ""
	if err := ValidateConfig(&cfg); err != ErrInvalidMetricsAddr {
		t.Errorf("ValidateConfig() error = %v, want %v", err, ErrInvalidMetricsAddr)
	}
}

func TestValidateConfig_InvalidOMPThreshold(t *testing.T) {
	cfg := DefaultConfig()
	cfg.OMPThreshold = 0
	if err := ValidateConfig(&cfg); err != ErrInvalidOMPThreshold {
		t.Errorf("ValidateConfig() error = %v, want %v", err, ErrInvalidOMPThreshold)
	}
}

func TestValidateConfig_InvalidOMPThreads(t *testing.T) {
	cfg := DefaultConfig()
	cfg.OMPThreads = -1
	if err := ValidateConfig(&cfg); err != ErrInvalidOMPThreads {
		t.Errorf("ValidateConfig() error = %v, want %v", err, ErrInvalidOMPThreads)
	}
}

func TestValidateConfig_InvalidLogLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LogLevel = "trace"
	if err := ValidateConfig(&cfg); err != ErrInvalidLogLevel {
		t.Errorf("ValidateConfig() error = %v, want %v", err, ErrInvalidLogLevel)
	}
}

func TestValidateConfig_ValidLogLevels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		cfg := DefaultConfig()
		cfg.LogLevel = level
		if err := ValidateConfig(&cfg); err != nil {
			t.Errorf("ValidateConfig() with LogLevel=%q error = %v, want nil", level, err)
		}
	}
}

func TestDefaultConfig_IsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := ValidateConfig(&cfg); err != nil {
		t.Errorf("ValidateConfig(DefaultConfig()) = %v, want nil", err)
	}
}
