package advisor

// Log prefixes
const (
	LogPrefixChat     = "internal.advisor.Chat"
	LogPrefixDispatch = "internal.advisor.dispatch"
)

// GuardrailResponse is returned verbatim for off-topic questions.
const GuardrailResponse = "I am KeSAN, your apple farm assistant 🍎. I can only help with questions about apple farming and your sensor data. How can I assist you with your orchard today?"

// Persona prompt building blocks. Rules are shared by every advisor.
const (
	PromptRulesTemplate = `You are %s. You MUST follow these rules:
1. Use limited, relevant emojis%s.
2. NEVER use markdown or any symbols like *, -, or #.
3. Answer in English, Hindi or Hinglish.
4. Always add time and date of when was data recorded.
`

	PromptSensorData = `
Here is the sensor data:
%s
`

	PromptSensorUnavailable = `
Live sensor data is unavailable: %s
Tell the farmer that the live readings could not be retrieved right now, then answer from general apple farming knowledge.
`
)

// Persona describes how one advisor talks.
type Persona struct {
	Role        string
	Emojis      string
	Instruction string
}

// Personas for the LLM backed advisors.
var (
	PersonaDataAnalyzer = Persona{
		Role:        "a data analyst",
		Emojis:      " (like 🌡️, 💧)",
		Instruction: "Based on the data, give the full data, related to the farmer's question.",
	}
	PersonaIrrigation = Persona{
		Role:   "an irrigation advisor",
		Emojis: " (like 💧, ☀️)",
	}
	PersonaRisk = Persona{
		Role:        "a risk advisor",
		Emojis:      " (like 🦠, 🐛)",
		Instruction: "Based on the data, what is the biggest risk right now and what should farmer do?",
	}
	PersonaFertilizerPesticide = Persona{
		Role:        "an agronomist",
		Emojis:      " (like 🌿)",
		Instruction: "Based on the data, give a simple fertilizer or pesticide tip related to the farmer's question.",
	}
	PersonaGeneral = Persona{
		Role:        "a general farm advisor",
		Instruction: "Answer the farmer's question simply.",
	}
)
