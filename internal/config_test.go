package internal

import (
	"testing"
	"time"
)

func TestUIConfig_DefaultsValid(t *testing.T) {
	cfg := NewDefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should pass: %v", err)
	}
	if cfg.UI.SoundEffectTTL != time.Second {
		t.Errorf("ttl = %v, want 1s", cfg.UI.SoundEffectTTL)
	}
	if !cfg.UI.AltScreen {
		t.Error("alt screen should default on")
	}
}

func TestUIConfig_ZeroTTL(t *testing.T) {
	cfg := UIConfig{SoundEffectTTL: 0}
	if err := cfg.Validate(); err == nil {
		t.Fatal("zero ttl should fail validation")
	}
}

func TestUIConfig_TTLBelowFloor(t *testing.T) {
	cfg := UIConfig{SoundEffectTTL: 50 * time.Millisecond}
	if err := cfg.Validate(); err == nil {
		t.Fatal("sub-100ms ttl should fail validation")
	}
}

func TestFullConfig_UIValidationCalled(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.UI.SoundEffectTTL = time.Millisecond
	if err := cfg.Validate(); err == nil {
		t.Fatal("full config validate should catch ui error")
	}
}
