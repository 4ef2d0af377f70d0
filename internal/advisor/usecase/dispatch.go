package usecase

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"apple-orchard-advisor/internal/advisor"
	"apple-orchard-advisor/internal/model"
	"apple-orchard-advisor/pkg/llmprovider"
)

// dispatch runs the advisor the state was routed to. The switch covers every label;
// adding a label without a case fails TestDispatch_EveryLabelHandled.
func (uc *implUseCase) dispatch(ctx context.Context, state advisor.State) (advisor.State, error) {
	label, ok := state.NextAction.Route()
	if !ok {
		return state, fmt.Errorf("%s: %w", advisor.LogPrefixDispatch, advisor.ErrNotRouted)
	}

	ctx, span := uc.tracer.Start(ctx, "advisor.dispatch")
	span.SetAttributes(attribute.String("advisor.label", label.String()))
	defer span.End()

	switch label {
	case advisor.LabelDataAnalyzer:
		return uc.sensorAdvisor(ctx, state, advisor.PersonaDataAnalyzer)
	case advisor.LabelIrrigationAdvisor:
		return uc.sensorAdvisor(ctx, state, advisor.PersonaIrrigation)
	case advisor.LabelRiskAdvisor:
		return uc.sensorAdvisor(ctx, state, advisor.PersonaRisk)
	case advisor.LabelFertilizerPesticide:
		return uc.sensorAdvisor(ctx, state, advisor.PersonaFertilizerPesticide)
	case advisor.LabelGeneralAdvisor:
		return uc.answer(ctx, state, advisor.PersonaGeneral)
	case advisor.LabelOffTopic:
		return state.Finish(advisor.GuardrailResponse), nil
	default:
		return state, fmt.Errorf("%s: %w: %q", advisor.LogPrefixDispatch, advisor.ErrInvalidLabel, label)
	}
}

// sensorAdvisor fetches the label's reading window before answering.
func (uc *implUseCase) sensorAdvisor(ctx context.Context, state advisor.State, p advisor.Persona) (advisor.State, error) {
	result := uc.fetcher.Fetch(ctx, state.DeviceID, state.CurrentAdvisor.FetchLimit())
	return uc.answer(ctx, state.WithSensorData(result), p)
}

// answer makes the advisor LLM call: persona system prompt plus the whole conversation.
func (uc *implUseCase) answer(ctx context.Context, state advisor.State, p advisor.Persona) (advisor.State, error) {
	system := llmprovider.NewTextMessage(llmprovider.RoleSystem, advisor.BuildPrompt(p, state.SensorData))

	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: &system,
		Messages:          toProviderMessages(state.Messages),
		Temperature:       uc.cfg.Temperature,
		MaxTokens:         uc.cfg.MaxTokens,
	})
	if err != nil {
		return state, fmt.Errorf("%s: %s: %w", advisor.LogPrefixDispatch, state.CurrentAdvisor, err)
	}
	return state.Finish(resp.Text()), nil
}

func toProviderMessages(msgs []model.Message) []llmprovider.Message {
	out := make([]llmprovider.Message, 0, len(msgs))
	for _, m := range msgs {
		role := llmprovider.RoleUser
		switch m.Role {
		case model.RoleAssistant:
			role = llmprovider.RoleAssistant
		case model.RoleSystem:
			role = llmprovider.RoleSystem
		}
		out = append(out, llmprovider.NewTextMessage(role, m.Content))
	}
	return out
}
