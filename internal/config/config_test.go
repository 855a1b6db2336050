package config

import (
	"reflect"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"LISTEN_ADDR", "WATCH_DIR", "SCHEMA_FILE", "OUTPUT_DIR",
		"EXPORT_FORMATS", "POSTGRES_DSN", "VERBOSE",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.ListenAddr != ":8080" {
		t.Errorf("ListenAddr = %q, want :8080", cfg.ListenAddr)
	}
	if cfg.WatchDir != "./data" {
		t.Errorf("WatchDir = %q, want ./data", cfg.WatchDir)
	}
	if cfg.OutputDir != "./outputs" {
		t.Errorf("OutputDir = %q, want ./outputs", cfg.OutputDir)
	}
	if !reflect.DeepEqual(cfg.ExportFormats, []string{"json", "csv"}) {
		t.Errorf("ExportFormats = %v, want [json csv]", cfg.ExportFormats)
	}
	if cfg.Verbose {
		t.Error("Verbose defaulted to true")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("LISTEN_ADDR", ":9999")
	t.Setenv("EXPORT_FORMATS", "XLSX, sqlite ,")
	t.Setenv("VERBOSE", "1")

	cfg := Load()
	if cfg.ListenAddr != ":9999" {
		t.Errorf("ListenAddr = %q, want :9999", cfg.ListenAddr)
	}
	if !reflect.DeepEqual(cfg.ExportFormats, []string{"xlsx", "sqlite"}) {
		t.Errorf("ExportFormats = %v, want lowered and trimmed", cfg.ExportFormats)
	}
	if !cfg.Verbose {
		t.Error("Verbose not enabled")
	}
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"csv,json", []string{"csv", "json"}},
		{" CSV , Json ", []string{"csv", "json"}},
		{",,", nil},
		{"", nil},
	}
	for _, tt := range tests {
		if got := splitList(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("splitList(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
