package cfg

import (
	"testing"
)

func TestGetVersion(t *testing.T) {
	// Test default version
	if GetVersion() == "" {
		t.Error("GetVersion should never return empty string")
	}

	version := GetVersion()
	if version != "dev" && version != "unknown" {
		// This is fine, version could be set at build time
		t.Logf("Version: %s", version)
	}
}

func TestConfigFields(t *testing.T) {
	cfg := &Cfg{
		CMSBaseUrl:      "https://cms.example.com",
		FetchTimeout:    10,
		FetchRetries:    2,
		FallbackMode:    "seed",
		Port:            "8080",
		WorkerCount:     2,
		RefreshInterval: 300,
		APIAccessKey:    "test-key",
		LLMBaseUrl:      "https://api.anthropic.com",
		ChatModel:       "claude-sonnet-4-20250514",
		ChatMaxTokens:   1024,
		ChatRatePerMin:  10,
		DebounceMs:      300,
		UserAgent:       "Test Agent",
		Timezone:        "UTC",
		Debug:           true,
		Version:         "test-version",
	}

	if cfg.CMSBaseUrl != "https://cms.example.com" {
		t.Errorf("Expected CMS base URL 'https://cms.example.com', got '%s'", cfg.CMSBaseUrl)
	}
	if cfg.FetchTimeout != 10 {
		t.Errorf("Expected fetch timeout 10, got %d", cfg.FetchTimeout)
	}
	if cfg.FetchRetries != 2 {
		t.Errorf("Expected retry budget 2, got %d", cfg.FetchRetries)
	}
	if cfg.FallbackMode != "seed" {
		t.Errorf("Expected fallback mode 'seed', got '%s'", cfg.FallbackMode)
	}
	if cfg.DebounceMs != 300 {
		t.Errorf("Expected debounce quiet period 300ms, got %d", cfg.DebounceMs)
	}
	if cfg.ChatMaxTokens != 1024 {
		t.Errorf("Expected chat max tokens 1024, got %d", cfg.ChatMaxTokens)
	}
}

func TestGetPanicsWhenNotLoaded(t *testing.T) {
	saved := globalCfg
	globalCfg = nil
	defer func() {
		globalCfg = saved
		if r := recover(); r == nil {
			t.Error("Get should panic when configuration is not loaded")
		}
	}()

	Get()
}
