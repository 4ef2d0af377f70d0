package llmprovider

import (
	"context"
	"fmt"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
)

// ChatCompletionClient is the slice of the OpenAI SDK the adapter needs.
type ChatCompletionClient interface {
	New(ctx context.Context, params openai.ChatCompletionNewParams) (*openai.ChatCompletion, error)
}

// RealChatCompletionClient wraps the SDK chat completion service.
type RealChatCompletionClient struct {
	completions *openai.ChatCompletionService
}

// NewRealChatCompletionClient builds an SDK client for apiKey and baseURL.
// baseURL may point at any OpenAI compatible endpoint (DashScope, DeepSeek, local gateways).
// The SDK's own retries are disabled; retry pacing belongs to Manager.
func NewRealChatCompletionClient(apiKey, baseURL string, timeout time.Duration) *RealChatCompletionClient {
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
	client := openai.NewClient(opts...)
	return &RealChatCompletionClient{completions: &client.Chat.Completions}
}

// New calls the chat completions API.
func (r *RealChatCompletionClient) New(ctx context.Context, params openai.ChatCompletionNewParams) (*openai.ChatCompletion, error) {
	return r.completions.New(ctx, params)
}

// OpenAIAdapter adapts the OpenAI chat completions API to Provider.
type OpenAIAdapter struct {
	client ChatCompletionClient
	name   string
	model  string
}

// NewOpenAIAdapter creates an adapter. name is reported in logs and metrics ("openai", "qwen").
func NewOpenAIAdapter(client ChatCompletionClient, name, model string) *OpenAIAdapter {
	return &OpenAIAdapter{client: client, name: name, model: model}
}

// GenerateContent implements Provider interface
func (a *OpenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(req.Messages)+1)
	if req.SystemInstruction != nil {
		messages = append(messages, openai.SystemMessage(req.SystemInstruction.Text()))
	}
	for _, msg := range req.Messages {
		switch msg.Role {
		case RoleAssistant:
			messages = append(messages, openai.AssistantMessage(msg.Text()))
		case RoleSystem:
			messages = append(messages, openai.SystemMessage(msg.Text()))
		default:
			messages = append(messages, openai.UserMessage(msg.Text()))
		}
	}

	params := openai.ChatCompletionNewParams{
		Model:       shared.ChatModel(a.model),
		Messages:    messages,
		Temperature: openai.Float(req.Temperature),
	}
	if req.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(req.MaxTokens))
	}

	completion, err := a.client.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", a.name, err)
	}

	out := &Response{
		Content:      Message{Role: RoleAssistant, Parts: []Part{}},
		ProviderName: a.name,
		ModelName:    completion.Model,
		Usage: &Usage{
			InputTokens:  int(completion.Usage.PromptTokens),
			OutputTokens: int(completion.Usage.CompletionTokens),
			TotalTokens:  int(completion.Usage.TotalTokens),
		},
	}
	if len(completion.Choices) > 0 && completion.Choices[0].Message.Content != "" {
		out.Content.Parts = append(out.Content.Parts, Part{Text: completion.Choices[0].Message.Content})
	}
	return out, nil
}

// Name returns the provider name
func (a *OpenAIAdapter) Name() string {
	return a.name
}

// Model returns the model name
func (a *OpenAIAdapter) Model() string {
	return a.model
}
