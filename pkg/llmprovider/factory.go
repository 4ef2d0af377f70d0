package llmprovider

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"apple-orchard-advisor/config"
	"apple-orchard-advisor/pkg/deepseek"
)

// Provider names accepted in llm.providers[].name
const (
	ProviderDeepSeek  = "deepseek"
	ProviderOpenAI    = "openai"
	ProviderQwen      = "qwen"
	ProviderAnthropic = "anthropic"
)

// DefaultQwenBaseURL is DashScope's OpenAI compatible endpoint.
const DefaultQwenBaseURL = "https://dashscope-intl.aliyuncs.com/compatible-mode/v1"

// InitializeProvider builds the enabled provider with the lowest priority number.
// Providers that fail to initialize (missing key, unknown name) are skipped; there
// is exactly one provider serving requests, never a runtime fallback chain.
// When every enabled provider lacks an API key the error wraps ErrNoProvidersConfigured.
func InitializeProvider(cfg *config.LLMConfig) (Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("LLM config is nil")
	}

	var enabled []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabled = append(enabled, p)
		}
	}
	if len(enabled) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	sort.SliceStable(enabled, func(i, j int) bool {
		return enabled[i].Priority < enabled[j].Priority
	})

	var initErrors []error
	keyless := 0
	for _, p := range enabled {
		provider, err := createProvider(p)
		if err != nil {
			if errors.Is(err, errMissingAPIKey) {
				keyless++
			}
			initErrors = append(initErrors, fmt.Errorf("provider %s (priority %d): %w", p.Name, p.Priority, err))
			continue
		}
		return provider, nil
	}

	if keyless == len(enabled) {
		return nil, fmt.Errorf("%w: %w", ErrNoProvidersConfigured, errors.Join(initErrors...))
	}
	return nil, fmt.Errorf("no provider successfully initialized: %w", errors.Join(initErrors...))
}

// createProvider creates a concrete provider instance based on the provider config
func createProvider(cfg config.ProviderConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, errMissingAPIKey
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("model is required")
	}

	var timeout time.Duration
	if cfg.Timeout != "" {
		d, err := time.ParseDuration(cfg.Timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid timeout %q: %w", cfg.Timeout, err)
		}
		timeout = d
	}

	switch cfg.Name {
	case ProviderDeepSeek:
		client, err := deepseek.New(deepseek.Config{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			BaseURL: cfg.BaseURL,
			Timeout: timeout,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create deepseek client: %w", err)
		}
		return NewDeepSeekAdapter(client), nil

	case ProviderOpenAI:
		return NewOpenAIAdapter(NewRealChatCompletionClient(cfg.APIKey, cfg.BaseURL, timeout), ProviderOpenAI, cfg.Model), nil

	case ProviderQwen, "alibaba":
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = DefaultQwenBaseURL
		}
		return NewOpenAIAdapter(NewRealChatCompletionClient(cfg.APIKey, baseURL, timeout), ProviderQwen, cfg.Model), nil

	case ProviderAnthropic:
		return NewAnthropicAdapter(NewRealAnthropicClient(cfg.APIKey, cfg.BaseURL, timeout), cfg.Model), nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, cfg.Name)
	}
}
