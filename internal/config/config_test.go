package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("INFORMATICA_API_KEY", "token")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.InformaticaURL != DefaultInformaticaURL {
		t.Fatalf("expected default informatica url, got %s", cfg.InformaticaURL)
	}
	if cfg.OpenAIModel != "gpt-4-1106-preview" {
		t.Fatalf("unexpected model: %s", cfg.OpenAIModel)
	}
	if cfg.OracleTimeout != 60*time.Second || cfg.NotifierTimeout != 15*time.Second {
		t.Fatalf("unexpected timeouts: %s %s", cfg.OracleTimeout, cfg.NotifierTimeout)
	}
	if !cfg.NotifierEnabled {
		t.Fatalf("expected notifier enabled by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("INFORMATICA_URL", "http://localhost:9999/case")
	t.Setenv("NOTIFIER_TIMEOUT", "3s")
	t.Setenv("NOTIFIER_ENABLED", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.InformaticaURL != "http://localhost:9999/case" {
		t.Fatalf("unexpected url: %s", cfg.InformaticaURL)
	}
	if cfg.NotifierTimeout != 3*time.Second {
		t.Fatalf("unexpected timeout: %s", cfg.NotifierTimeout)
	}
	if cfg.NotifierEnabled {
		t.Fatalf("expected notifier disabled")
	}
}

func TestValidateMissingSecrets(t *testing.T) {
	err := Config{InformaticaURL: DefaultInformaticaURL}.Validate()
	if err == nil {
		t.Fatalf("expected error")
	}
	want := "missing required configuration: OPENAI_API_KEY, INFORMATICA_API_KEY"
	if err.Error() != want {
		t.Fatalf("expected %q, got %q", want, err.Error())
	}

	err = Config{OpenAIAPIKey: "sk", InformaticaKey: "  ", InformaticaURL: DefaultInformaticaURL}.Validate()
	if err == nil || err.Error() != "missing required configuration: INFORMATICA_API_KEY" {
		t.Fatalf("unexpected error: %v", err)
	}
}
