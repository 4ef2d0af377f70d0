package advisor

import (
	"fmt"
	"strings"

	"apple-orchard-advisor/internal/sensor"
)

// BuildPrompt renders the persona system prompt. data is embedded according to its status:
// a report, an explicit unavailability notice with the reason, or nothing when no fetch was made.
func BuildPrompt(p Persona, data sensor.FetchResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, PromptRulesTemplate, p.Role, p.Emojis)

	switch data.Status {
	case sensor.StatusOk:
		fmt.Fprintf(&b, PromptSensorData, data.Report)
	case sensor.StatusUnavailable:
		fmt.Fprintf(&b, PromptSensorUnavailable, data.Reason)
	case sensor.StatusNotFetched:
	}

	if p.Instruction != "" {
		b.WriteString("\n")
		b.WriteString(p.Instruction)
	}
	return b.String()
}
