package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"

	"apple-orchard-advisor/pkg/log"
	"apple-orchard-advisor/pkg/metrics"
)

// Manager wraps the configured provider with logging, metrics and optional retry pacing.
type Manager struct {
	provider Provider
	config   *Config
	logger   log.Logger
	metrics  *metrics.Metrics
}

// Config defines configuration for the Provider Manager
type Config struct {
	// RetryAttempts is the total number of calls per request; 0 and 1 both mean a single call.
	RetryAttempts   int
	RetryDelay      time.Duration
	MaxTotalTimeout time.Duration // 0 leaves the call unbounded
}

// NewManager creates a new Provider Manager. m may be nil.
func NewManager(provider Provider, config *Config, logger log.Logger, m *metrics.Metrics) *Manager {
	if config == nil {
		config = &Config{}
	}
	return &Manager{
		provider: provider,
		config:   config,
		logger:   logger,
		metrics:  m,
	}
}

// Name returns the underlying provider name, or "" when none is configured.
func (m *Manager) Name() string {
	if m.provider == nil {
		return ""
	}
	return m.provider.Name()
}

// Model returns the underlying provider model, or "" when none is configured.
func (m *Manager) Model() string {
	if m.provider == nil {
		return ""
	}
	return m.provider.Model()
}

// GenerateContent calls the provider. A completion without text is returned as is;
// callers decide what an empty answer means.
func (m *Manager) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if m.provider == nil {
		return nil, ErrNoProvidersConfigured
	}
	if req == nil || (len(req.Messages) == 0 && req.SystemInstruction == nil) {
		return nil, ErrInvalidRequest
	}

	if m.config.MaxTotalTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.config.MaxTotalTimeout)
		defer cancel()
	}

	resp, err := m.generateWithRetry(ctx, req)
	if err != nil {
		m.logFailure(ctx, err)
		m.metrics.ObserveLLMRequest(m.provider.Name(), "failure")
		return nil, &ProviderError{Provider: m.provider.Name(), Err: err}
	}

	if resp.Text() == "" {
		m.logger.Warn(ctx, "LLM generation returned no text",
			"provider", m.provider.Name(),
			"model", m.provider.Model(),
		)
		m.metrics.ObserveLLMRequest(m.provider.Name(), "empty")
		return resp, nil
	}

	m.logSuccess(ctx, resp)
	m.metrics.ObserveLLMRequest(m.provider.Name(), "success")
	return resp, nil
}

func (m *Manager) generateWithRetry(ctx context.Context, req *Request) (*Response, error) {
	attempts := m.config.RetryAttempts
	if attempts <= 1 {
		return m.provider.GenerateContent(ctx, req)
	}

	bo := backoff.NewExponentialBackOff()
	if m.config.RetryDelay > 0 {
		bo.InitialInterval = m.config.RetryDelay
	}
	bo.MaxElapsedTime = 0
	policy := backoff.WithContext(backoff.WithMaxRetries(bo, uint64(attempts-1)), ctx)

	var resp *Response
	err := backoff.Retry(func() error {
		r, err := m.provider.GenerateContent(ctx, req)
		if err != nil {
			if !retryable(err) {
				return backoff.Permanent(err)
			}
			return err
		}
		resp = r
		return nil
	}, policy)
	if err != nil {
		return nil, fmt.Errorf("after %d attempt(s): %w", attempts, err)
	}
	return resp, nil
}

// retryable is false for errors that report themselves as not Temporary, such as a 401 from the API.
// Errors without that method are retried.
func retryable(err error) bool {
	var t interface{ Temporary() bool }
	if errors.As(err, &t) {
		return t.Temporary()
	}
	return true
}

// logSuccess logs successful LLM generation with metrics
func (m *Manager) logSuccess(ctx context.Context, resp *Response) {
	input, output := 0, 0
	if resp.Usage != nil {
		input, output = resp.Usage.InputTokens, resp.Usage.OutputTokens
	}
	m.logger.Info(ctx, "LLM generation successful",
		"provider", m.provider.Name(),
		"model", m.provider.Model(),
		"input_tokens", input,
		"output_tokens", output,
	)
}

// logFailure logs failed LLM generation attempts
func (m *Manager) logFailure(ctx context.Context, err error) {
	m.logger.Warn(ctx, "LLM generation failed",
		"provider", m.provider.Name(),
		"model", m.provider.Model(),
		"error", err.Error(),
	)
}
