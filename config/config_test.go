package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultsAreValid(t *testing.T) {
	cfg := Default()
	if err := cfg.validate(); err != nil {
		t.Fatalf("Default config invalid: %v", err)
	}
	if cfg.Keys.Attack != "space" {
		t.Errorf("Default attack key = %q", cfg.Keys.Attack)
	}
}

func TestParseSparseOverride(t *testing.T) {
	cfg := Default()
	data := []byte("audio:\n  master_volume: 0.3\nkeys:\n  dodge: e\n")

	if err := Parse(data, cfg); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Audio.MasterVolume != 0.3 {
		t.Errorf("master_volume = %.2f, expected 0.3", cfg.Audio.MasterVolume)
	}
	if cfg.Keys.Dodge != "e" {
		t.Errorf("dodge key = %q, expected e", cfg.Keys.Dodge)
	}
	// Untouched keys keep their defaults
	if cfg.Keys.Up != "w" {
		t.Errorf("up key = %q, expected w", cfg.Keys.Up)
	}
}

func TestParseRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"volume out of range", "audio:\n  master_volume: 1.5\n"},
		{"negative seed", "seed: -1\n"},
		{"empty key", "keys:\n  attack: \"\"\n"},
		{"malformed yaml", "audio: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Parse([]byte(tt.data), Default()); err == nil {
				t.Error("Expected an error")
			}
		})
	}

	// Enabled: false alone keeps the default volume, which stays valid
	cfg := Default()
	if err := Parse([]byte("audio:\n  enabled: false\n"), cfg); err != nil {
		t.Errorf("Disabling audio should parse: %v", err)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Missing file should not error: %v", err)
	}
	if cfg.Audio.MasterVolume != Default().Audio.MasterVolume {
		t.Error("Expected default settings")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	if err := os.WriteFile(path, []byte("seed: 42\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Seed != 42 {
		t.Errorf("seed = %d, expected 42", cfg.Seed)
	}
}
