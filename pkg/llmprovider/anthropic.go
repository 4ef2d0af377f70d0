package llmprovider

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// DefaultAnthropicMaxTokens is used when the request does not set MaxTokens; the API requires one.
const DefaultAnthropicMaxTokens = 1024

// AnthropicMessagesClient defines the interface for Anthropic API calls
type AnthropicMessagesClient interface {
	New(ctx context.Context, params anthropic.MessageNewParams) (*anthropic.Message, error)
}

// RealAnthropicClient wraps the real Anthropic client
type RealAnthropicClient struct {
	messages *anthropic.MessageService
}

// NewRealAnthropicClient builds an SDK client for apiKey and an optional baseURL.
func NewRealAnthropicClient(apiKey, baseURL string, timeout time.Duration) *RealAnthropicClient {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	if timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(timeout))
	}
	client := anthropic.NewClient(opts...)
	return &RealAnthropicClient{messages: &client.Messages}
}

// New calls the real Anthropic API
func (r *RealAnthropicClient) New(ctx context.Context, params anthropic.MessageNewParams) (*anthropic.Message, error) {
	return r.messages.New(ctx, params)
}

// AnthropicAdapter adapts the Anthropic messages API to Provider.
type AnthropicAdapter struct {
	client AnthropicMessagesClient
	model  string
}

// NewAnthropicAdapter creates a new Anthropic adapter
func NewAnthropicAdapter(client AnthropicMessagesClient, model string) *AnthropicAdapter {
	return &AnthropicAdapter{client: client, model: model}
}

// GenerateContent implements Provider interface
func (a *AnthropicAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = DefaultAnthropicMaxTokens
	}

	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(a.model),
		MaxTokens:   int64(maxTokens),
		Messages:    convertToAnthropicMessages(req.Messages),
		Temperature: anthropic.Float(req.Temperature),
	}
	if req.SystemInstruction != nil {
		params.System = []anthropic.TextBlockParam{
			{Text: req.SystemInstruction.Text()},
		}
	}

	msg, err := a.client.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("anthropic: %w", err)
	}

	out := &Response{
		Content:      Message{Role: RoleAssistant, Parts: []Part{}},
		ProviderName: ProviderAnthropic,
		ModelName:    string(msg.Model),
		Usage: &Usage{
			InputTokens:  int(msg.Usage.InputTokens),
			OutputTokens: int(msg.Usage.OutputTokens),
			TotalTokens:  int(msg.Usage.InputTokens + msg.Usage.OutputTokens),
		},
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	if sb.Len() > 0 {
		out.Content.Parts = append(out.Content.Parts, Part{Text: sb.String()})
	}
	return out, nil
}

// Name returns provider name
func (a *AnthropicAdapter) Name() string {
	return ProviderAnthropic
}

// Model returns model name
func (a *AnthropicAdapter) Model() string {
	return a.model
}

// System turns inside the history are folded into user turns; the API only accepts user/assistant.
func convertToAnthropicMessages(msgs []Message) []anthropic.MessageParam {
	out := make([]anthropic.MessageParam, 0, len(msgs))
	for _, msg := range msgs {
		block := anthropic.NewTextBlock(msg.Text())
		if msg.Role == RoleAssistant {
			out = append(out, anthropic.NewAssistantMessage(block))
			continue
		}
		out = append(out, anthropic.NewUserMessage(block))
	}
	return out
}
