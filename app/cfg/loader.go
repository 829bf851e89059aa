package cfg

import (
	"cmp"
	"fmt"
	"time"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// CMS configuration
	CMSBaseUrl   string `long:"cms-base-url" env:"CMS_BASE_URL" default:"https://children-families-cms.onrender.com" description:"Base URL of the headless CMS"`
	FetchTimeout int    `long:"fetch-timeout" env:"FETCH_TIMEOUT" default:"10" description:"Per-request CMS fetch timeout in seconds"`
	FetchRetries int    `long:"fetch-retries" env:"FETCH_RETRIES" default:"2" description:"Retry budget per CMS collection fetch"`
	FallbackMode string `long:"fallback-mode" env:"FALLBACK_MODE" default:"seed" choice:"seed" choice:"empty" description:"Collection contents when the CMS is unreachable"`

	// Application configuration
	Port            string `long:"port" env:"PORT" default:"8080" description:"HTTP server port"`
	WorkerCount     int    `long:"worker-count" env:"WORKER_COUNT" default:"2" description:"Number of background workers for archive tasks"`
	RefreshInterval int    `long:"refresh-interval" env:"REFRESH_INTERVAL" default:"300" description:"Archive refresh interval in seconds"`
	APIAccessKey    string `long:"api-key" env:"API_ACCESS_KEY" description:"API access key for admin endpoints (optional)"`

	// Chat configuration
	LLMBaseUrl     string `long:"llm-base-url" env:"LLM_BASE_URL" default:"https://api.anthropic.com" description:"Base URL of the conversational completion API"`
	LLMAPIKey      string `long:"llm-api-key" env:"LLM_API_KEY" description:"Credential for the conversational completion API"`
	ChatModel      string `long:"chat-model" env:"CHAT_MODEL" default:"claude-sonnet-4-20250514" description:"Model identifier sent to the completion API"`
	ChatMaxTokens  int    `long:"chat-max-tokens" env:"CHAT_MAX_TOKENS" default:"1024" description:"Maximum completion tokens per chat response"`
	ChatRatePerMin int    `long:"chat-rate" env:"CHAT_RATE" default:"10" description:"Chat requests allowed per minute"`

	// Search configuration
	DebounceMs int `long:"debounce-ms" env:"DEBOUNCE_MS" default:"300" description:"Quiet period for search input debouncing in milliseconds"`

	// Application metadata
	UserAgent string `long:"user-agent" env:"USER_AGENT" default:"Hidden Histories Archive/1.0" description:"User agent string for HTTP requests"`
	Timezone  string `long:"timezone" env:"TZ" default:"UTC" description:"Timezone for timestamps (e.g., UTC, America/Chicago)"`
	Debug     bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		CMSBaseUrl:      raw.CMSBaseUrl,
		FetchTimeout:    raw.FetchTimeout,
		FetchRetries:    raw.FetchRetries,
		FallbackMode:    raw.FallbackMode,
		Port:            raw.Port,
		WorkerCount:     raw.WorkerCount,
		RefreshInterval: raw.RefreshInterval,
		APIAccessKey:    raw.APIAccessKey,
		LLMBaseUrl:      raw.LLMBaseUrl,
		LLMAPIKey:       raw.LLMAPIKey,
		ChatModel:       raw.ChatModel,
		ChatMaxTokens:   raw.ChatMaxTokens,
		ChatRatePerMin:  raw.ChatRatePerMin,
		DebounceMs:      raw.DebounceMs,
		UserAgent:       raw.UserAgent,
		Timezone:        raw.Timezone,
		Debug:           raw.Debug,
		Version:         GetVersion(),
	}

	if err := applyTimezone(cfg.Timezone); err != nil {
		fmt.Printf("Warning: Invalid timezone '%s', using system default: %v\n", cfg.Timezone, err)
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}

func applyTimezone(timezone string) error {
	if timezone != "" {
		if loc, err := time.LoadLocation(timezone); err != nil {
			return err
		} else {
			time.Local = loc
			fmt.Printf("Timezone configured: %s\n", timezone)
		}
	}
	return nil
}
