package router

import (
	"context"
	"fmt"
	"strings"

	"apple-orchard-advisor/internal/advisor"
	"apple-orchard-advisor/pkg/llmprovider"
)

// Classify determines which advisor should answer message. It makes exactly one LLM call.
// Completions that do not name a known advisor degrade to RouterFallbackLabel with Fallback set;
// only transport and provider errors are returned.
func (r *SemanticRouter) Classify(ctx context.Context, message string) (Classification, error) {
	system := llmprovider.NewTextMessage(llmprovider.RoleSystem, PromptRouterSystem)
	resp, err := r.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: &system,
		Messages: []llmprovider.Message{
			llmprovider.NewTextMessage(llmprovider.RoleUser, fmt.Sprintf(PromptFarmerQuestion, message)),
		},
		Temperature: r.temperature,
	})
	if err != nil {
		return Classification{}, fmt.Errorf("%s: %s: %w", LogPrefixClassify, ErrMsgLLMCallFailed, err)
	}

	raw := resp.Text()
	if strings.TrimSpace(raw) == "" {
		r.l.Warnf(ctx, "%s: %s", LogPrefixClassify, ErrMsgEmptyResponse)
		return r.observe(Classification{Label: RouterFallbackLabel, Fallback: true}), nil
	}
	label, ok := Normalize(raw)
	if !ok {
		r.l.Warnf(ctx, "%s: %s: %q", LogPrefixClassify, ErrMsgUnknownLabel, raw)
		return r.observe(Classification{Label: label, Raw: raw, Fallback: true}), nil
	}

	r.l.Infof(ctx, "%s: Classified as %s", LogPrefixClassify, label)
	return r.observe(Classification{Label: label, Raw: raw}), nil
}

func (r *SemanticRouter) observe(c Classification) Classification {
	r.metrics.ObserveClassification(c.Label.String(), c.Fallback)
	return c
}

// Normalize maps a raw completion onto a label: trim, lower-case, spaces to underscores.
// The boolean is false when the result is not a known label, in which case RouterFallbackLabel is returned.
func Normalize(raw string) (advisor.Label, bool) {
	candidate := advisor.Label(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(raw)), " ", "_"))
	if candidate.Valid() {
		return candidate, true
	}
	return RouterFallbackLabel, false
}
