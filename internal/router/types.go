package router

import "apple-orchard-advisor/internal/advisor"

// Classification is the routing decision for one question.
type Classification struct {
	Label advisor.Label
	// Raw is the untouched model completion.
	Raw string
	// Fallback is set when Raw did not name a known advisor and RouterFallbackLabel was substituted.
	Fallback bool
}
