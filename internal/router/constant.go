package router

import "apple-orchard-advisor/internal/advisor"

// Log prefixes
const (
	LogPrefixClassify = "internal.router.Classify"
)

// Router prompts
const (
	PromptRouterSystem = `You are a routing agent for an apple orchard AI advisory system.

Analyze the farmer's query and route to the appropriate specialist:

1. data_analyzer - Current conditions, sensor readings, "what's my current...?"
2. irrigation_advisor - Watering, soil moisture, irrigation scheduling
3. risk_advisor - Pests, diseases, weather threats, warnings
4. fertilizer_pesticide - Fertilization, nutrients, pest control products
5. general_advisor - Pruning, varieties, harvesting, general apple farming
6. off_topic - Any question NOT about farming, agriculture, or sensor data (e.g., "who is the prime minister", "what is a computer")

Respond with ONLY the advisor name (e.g., "irrigation_advisor"), nothing else.`

	PromptFarmerQuestion = "Farmer's question: %s"
)

// RouterFallbackLabel answers questions the router cannot place.
const RouterFallbackLabel = advisor.DefaultLabel

// Error messages
const (
	ErrMsgLLMCallFailed = "LLM call failed"
	ErrMsgUnknownLabel  = "Unknown advisor label, falling back to general_advisor"
	ErrMsgEmptyResponse = "Empty LLM response, falling back to general_advisor"
)
