package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("NOTESWEEP_ADDR", "")
	t.Setenv("NOTESWEEP_COOKIE", "")
	t.Setenv("NOTESWEEP_DEBUG", "")
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Addr != DefaultAddr {
		t.Errorf("Addr = %q, want %q", cfg.Addr, DefaultAddr)
	}
	if cfg.OmitContentType {
		t.Error("OmitContentType = true, want false")
	}
}

func TestLoad_File(t *testing.T) {
	isolate(t)
	path := writeConfig(t, `
addr: https://notes.example.com
cookie: session=abc
headers:
  X-CSRF-Token: tok
omit_content_type: true
debug: true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Addr != "https://notes.example.com" {
		t.Errorf("Addr = %q", cfg.Addr)
	}
	if cfg.Cookie != "session=abc" {
		t.Errorf("Cookie = %q", cfg.Cookie)
	}
	if cfg.Headers["X-CSRF-Token"] != "tok" {
		t.Errorf("Headers = %v", cfg.Headers)
	}
	if !cfg.OmitContentType || !cfg.Debug {
		t.Errorf("OmitContentType = %v, Debug = %v, want both true", cfg.OmitContentType, cfg.Debug)
	}
}

func TestLoad_DefaultPathFile(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	if err := os.MkdirAll(filepath.Join(dir, "notesweep"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notesweep", "config.yaml"), []byte("addr: notes.local:8080\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Addr != "notes.local:8080" {
		t.Errorf("Addr = %q, want notes.local:8080", cfg.Addr)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	isolate(t)
	path := writeConfig(t, "addr: https://from-file.example.com\ncookie: a=1\n")
	t.Setenv("NOTESWEEP_ADDR", "https://from-env.example.com")
	t.Setenv("NOTESWEEP_COOKIE", "b=2")
	t.Setenv("NOTESWEEP_DEBUG", "true")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Addr != "https://from-env.example.com" {
		t.Errorf("Addr = %q", cfg.Addr)
	}
	if cfg.Cookie != "b=2" {
		t.Errorf("Cookie = %q", cfg.Cookie)
	}
	if !cfg.Debug {
		t.Error("Debug = false, want true")
	}
}

func TestLoad_Errors(t *testing.T) {
	isolate(t)

	t.Run("missing explicit file", func(t *testing.T) {
		if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
			t.Error("Load() error = nil, want error")
		}
	})

	t.Run("bad yaml", func(t *testing.T) {
		path := writeConfig(t, "addr: [unterminated\n")
		if _, err := Load(path); err == nil {
			t.Error("Load() error = nil, want error")
		}
	})

	t.Run("bad debug env", func(t *testing.T) {
		t.Setenv("NOTESWEEP_DEBUG", "sometimes")
		if _, err := Load(""); err == nil {
			t.Error("Load() error = nil, want error")
		}
	})
}

func TestConfig_Validate(t *testing.T) {
	cfg := Config{Addr: " notes.local:8080/ "}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if cfg.Addr != "http://notes.local:8080" {
		t.Errorf("Addr = %q, want http://notes.local:8080", cfg.Addr)
	}

	bad := Config{Addr: "http://"}
	if err := bad.Validate(); err == nil {
		t.Error("Validate() error = nil, want error")
	}
}
