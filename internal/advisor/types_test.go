package advisor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"apple-orchard-advisor/internal/model"
	"apple-orchard-advisor/internal/sensor"
)

func TestLabels(t *testing.T) {
	labels := AllLabels()
	require.Len(t, labels, 6)
	for _, l := range labels {
		assert.True(t, l.Valid(), l)
	}
	assert.False(t, Label("weather_advisor").Valid())
	assert.False(t, Label("").Valid())
	assert.True(t, DefaultLabel.Valid())
}

func TestFetchLimit(t *testing.T) {
	want := map[Label]int{
		LabelDataAnalyzer:        5,
		LabelFertilizerPesticide: 5,
		LabelIrrigationAdvisor:   10,
		LabelRiskAdvisor:         10,
		LabelGeneralAdvisor:      0,
		LabelOffTopic:            0,
	}
	for _, l := range AllLabels() {
		assert.Equal(t, want[l], l.FetchLimit(), l)
	}
}

func TestState_WithMessageDoesNotMutate(t *testing.T) {
	s1 := NewState("ORCH-7", "Should I irrigate today?")
	s2 := s1.WithMessage(model.NewAssistantMessage("Yes"))

	assert.Len(t, s1.Messages, 1)
	assert.Len(t, s2.Messages, 2)
	assert.Equal(t, "Should I irrigate today?", s2.Question())
	assert.Equal(t, "Yes", s2.Answer())
	assert.Empty(t, s1.Answer())
}

func TestState_WithAdvisorOnce(t *testing.T) {
	s := NewState("ORCH-7", "q")
	assert.False(t, s.NextAction.IsEnd())
	_, routed := s.NextAction.Route()
	assert.False(t, routed)

	s, err := s.WithAdvisor(LabelRiskAdvisor)
	require.NoError(t, err)
	assert.Equal(t, LabelRiskAdvisor, s.CurrentAdvisor)
	label, routed := s.NextAction.Route()
	assert.True(t, routed)
	assert.Equal(t, LabelRiskAdvisor, label)

	again, err := s.WithAdvisor(LabelOffTopic)
	assert.ErrorIs(t, err, ErrAdvisorAlreadySet)
	assert.Equal(t, LabelRiskAdvisor, again.CurrentAdvisor)
}

func TestState_WithAdvisorRejectsUnknown(t *testing.T) {
	_, err := NewState("ORCH-7", "q").WithAdvisor(Label("banana"))
	assert.ErrorIs(t, err, ErrInvalidLabel)
}

func TestState_Finish(t *testing.T) {
	s, err := NewState("ORCH-7", "q").WithAdvisor(LabelGeneralAdvisor)
	require.NoError(t, err)

	s = s.Finish("answer")
	assert.True(t, s.NextAction.IsEnd())
	assert.Equal(t, "end", s.NextAction.String())
	assert.Equal(t, "answer", s.Answer())
}

func TestBuildPrompt(t *testing.T) {
	t.Run("report embedded", func(t *testing.T) {
		p := BuildPrompt(PersonaRisk, sensor.Ok("REPORT BODY", 10))

		assert.Contains(t, p, "You are a risk advisor. You MUST follow these rules:")
		assert.Contains(t, p, "1. Use limited, relevant emojis (like 🦠, 🐛).")
		assert.Contains(t, p, "NEVER use markdown or any symbols like *, -, or #.")
		assert.Contains(t, p, "Answer in English, Hindi or Hinglish.")
		assert.Contains(t, p, "Always add time and date of when was data recorded.")
		assert.Contains(t, p, "Here is the sensor data:\nREPORT BODY")
		assert.Contains(t, p, PersonaRisk.Instruction)
	})

	t.Run("unavailable reason embedded", func(t *testing.T) {
		p := BuildPrompt(PersonaIrrigation, sensor.Unavailable("Request timed out while fetching data for device ORCH-7"))

		assert.Contains(t, p, "Live sensor data is unavailable: Request timed out while fetching data for device ORCH-7")
		assert.NotContains(t, p, "Here is the sensor data:")
	})

	t.Run("no fetch", func(t *testing.T) {
		p := BuildPrompt(PersonaGeneral, sensor.FetchResult{})

		assert.Contains(t, p, "You are a general farm advisor.")
		assert.Contains(t, p, "1. Use limited, relevant emojis.")
		assert.NotContains(t, p, "sensor data")
		assert.True(t, len(p) > 0)
		assert.Contains(t, p, "Answer the farmer's question simply.")
	})
}
