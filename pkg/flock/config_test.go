package flock

import (
	"strings"
	"testing"
)

const schemaFile = "../../flock.schema.json"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.NumBoids != 10 {
		t.Errorf("NumBoids = %d; want 10", cfg.NumBoids)
	}
	if cfg.ProtectedRange != 15.0 {
		t.Errorf("ProtectedRange = %v; want 15", cfg.ProtectedRange)
	}
	if cfg.AvoidFactor != 0.005 {
		t.Errorf("AvoidFactor = %v; want 0.005", cfg.AvoidFactor)
	}
	if cfg.MaxSpeed != 6.0 {
		t.Errorf("MaxSpeed = %v; want 6", cfg.MaxSpeed)
	}
	if cfg.MinSpeed != 3.0 {
		t.Errorf("MinSpeed = %v; want 3", cfg.MinSpeed)
	}
}

func TestLoadConfig_Valid(t *testing.T) {
	cfg, err := LoadConfig("testdata/valid.json", schemaFile)
	if err != nil {
		t.Fatalf("LoadConfig failed on valid input: %v", err)
	}

	if cfg.NumBoids != 25 {
		t.Errorf("NumBoids = %d; want 25", cfg.NumBoids)
	}
	if cfg.ProtectedRange != 12.0 {
		t.Errorf("ProtectedRange = %v; want 12", cfg.ProtectedRange)
	}
	if cfg.WorldWidth != 1024 {
		t.Errorf("WorldWidth = %v; want 1024", cfg.WorldWidth)
	}
}

func TestLoadConfig_SchemaRejection(t *testing.T) {
	// invalid.json has a negative boid count and a zero max speed.
	_, err := LoadConfig("testdata/invalid.json", schemaFile)
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}
	if !strings.Contains(err.Error(), "validation") {
		t.Errorf("expected a validation error, got: %v", err)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig("testdata/nope.json", schemaFile); err == nil {
		t.Fatal("expected error for missing config file, got nil")
	}
}
