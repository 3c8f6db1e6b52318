package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_AllLayersPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "framegrab.yaml")

	configContent := `input: file.mp4
offset: "25%"
interval: 10
ffprobe_binary: /file/ffprobe
ffmpeg_binary: /file/ffmpeg
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to create temp config: %v", err)
	}

	// Environment overrides the file, flags override the environment
	t.Setenv("FRAMEGRAB_FFMPEG_BINARY", "/env/ffmpeg")
	t.Setenv("FRAMEGRAB_OFFSET", "3s")

	fs := newFlagSet(t, "--config", configPath, "--offset", "7")

	cfg, err := LoadConfig(fs)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Offset != "7" {
		t.Errorf("Expected offset '7' (from CLI), got '%s'", cfg.Offset)
	}
	if cfg.FFmpegBinary != "/env/ffmpeg" {
		t.Errorf("Expected ffmpeg binary from env, got '%s'", cfg.FFmpegBinary)
	}
	if cfg.FFprobeBinary != "/file/ffprobe" {
		t.Errorf("Expected ffprobe binary from file, got '%s'", cfg.FFprobeBinary)
	}
	if cfg.Interval != 10 {
		t.Errorf("Expected interval 10 (from file), got %v", cfg.Interval)
	}
	if cfg.Input != "file.mp4" {
		t.Errorf("Expected input from file, got '%s'", cfg.Input)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("Expected default log level, got '%s'", cfg.LogLevel)
	}
}

func TestLoadConfig_MissingConfigFile(t *testing.T) {
	fs := newFlagSet(t, "--config", "/nonexistent/framegrab.yaml")

	if _, err := LoadConfig(fs); err == nil {
		t.Error("Expected error for missing config file")
	}
}

func TestLoadConfig_NilFlagSet(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("HOME", t.TempDir())
	t.Setenv("FRAMEGRAB_INPUT", "env-only.mp4")

	cfg, err := LoadConfig(nil)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Input != "env-only.mp4" {
		t.Errorf("Expected input from env, got '%s'", cfg.Input)
	}
	if cfg.FFmpegBinary != "ffmpeg" {
		t.Errorf("Expected default ffmpeg binary, got '%s'", cfg.FFmpegBinary)
	}
}
