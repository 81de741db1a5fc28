package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Output.Format != "text" {
		t.Errorf("expected default format text, got %s", cfg.Output.Format)
	}
	if cfg.Output.TopN != 10 {
		t.Errorf("expected default top_n 10, got %d", cfg.Output.TopN)
	}
	if cfg.Watch.DebounceDelay != 500*time.Millisecond {
		t.Errorf("expected default debounce 500ms, got %v", cfg.Watch.DebounceDelay)
	}
	if cfg.Metrics.Listen != "" {
		t.Errorf("expected metrics disabled by default, got %s", cfg.Metrics.Listen)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid default config",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "json format",
			modify:  func(c *Config) { c.Output.Format = "json" },
			wantErr: false,
		},
		{
			name:    "unknown format",
			modify:  func(c *Config) { c.Output.Format = "xml" },
			wantErr: true,
		},
		{
			name:    "negative top_n",
			modify:  func(c *Config) { c.Output.TopN = -1 },
			wantErr: true,
		},
		{
			name:    "negative debounce",
			modify:  func(c *Config) { c.Watch.DebounceDelay = -time.Second },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	content := `
output:
  format: "json"
  top_n: 5
watch:
  debounce_delay: 2s
metrics:
  listen: ":9090"
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}

	if cfg.Output.Format != "json" {
		t.Errorf("expected format json, got %s", cfg.Output.Format)
	}
	if cfg.Output.TopN != 5 {
		t.Errorf("expected top_n 5, got %d", cfg.Output.TopN)
	}
	if cfg.Watch.DebounceDelay != 2*time.Second {
		t.Errorf("expected debounce 2s, got %v", cfg.Watch.DebounceDelay)
	}
	if cfg.Metrics.Listen != ":9090" {
		t.Errorf("expected listen :9090, got %s", cfg.Metrics.Listen)
	}
}

func TestLoadFromFile_Missing(t *testing.T) {
	if _, err := LoadFromFile("/nonexistent/config.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadFromFile_PartialKeepsDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	content := `
output:
  format: "yaml"
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}

	if cfg.Output.Format != "yaml" {
		t.Errorf("expected format yaml, got %s", cfg.Output.Format)
	}
	if cfg.Output.TopN != 10 {
		t.Errorf("expected default top_n preserved, got %d", cfg.Output.TopN)
	}
}

func TestConfigMerge(t *testing.T) {
	base := DefaultConfig()
	other := &Config{
		Output: OutputConfig{Format: "json", TopN: 3},
	}

	base.Merge(other)

	if base.Output.Format != "json" {
		t.Errorf("expected merged format json, got %s", base.Output.Format)
	}
	if base.Output.TopN != 3 {
		t.Errorf("expected merged top_n 3, got %d", base.Output.TopN)
	}
	if base.Watch.DebounceDelay != 500*time.Millisecond {
		t.Errorf("expected debounce untouched, got %v", base.Watch.DebounceDelay)
	}
}

func TestSaveAndReload(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.Output.TopN = 7
	if err := cfg.SaveToFile(configPath); err != nil {
		t.Fatalf("SaveToFile() error = %v", err)
	}

	loaded, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}
	if loaded.Output.TopN != 7 {
		t.Errorf("expected top_n 7 after reload, got %d", loaded.Output.TopN)
	}
}
