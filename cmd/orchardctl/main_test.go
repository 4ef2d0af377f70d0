package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"apple-orchard-advisor/internal/advisor"
	"apple-orchard-advisor/internal/sensor"
)

type stubAdvisor struct {
	out  advisor.ChatOutput
	last advisor.ChatInput
}

func (s *stubAdvisor) Chat(ctx context.Context, input advisor.ChatInput) (advisor.ChatOutput, error) {
	s.last = input
	return s.out, nil
}

type stubSensor struct {
	result    sensor.FetchResult
	lastLimit int
}

func (s *stubSensor) Fetch(ctx context.Context, deviceID string, limit int) sensor.FetchResult {
	s.lastLimit = limit
	return s.result
}

func (s *stubSensor) ListReadings(ctx context.Context, input sensor.ListReadingsInput) (sensor.ListReadingsOutput, error) {
	return sensor.ListReadingsOutput{}, nil
}

func withCore(t *testing.T, a advisor.UseCase, s sensor.UseCase) {
	t.Helper()
	orig := buildCore
	buildCore = func(ctx context.Context) (*core, error) {
		return &core{advisor: a, sensor: s, close: func() {}}, nil
	}
	t.Cleanup(func() {
		buildCore = orig
		askDevice, askExpect = "", ""
		sensorsDevice, sensorsLimit = "", sensor.DefaultLimit
	})
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestPrintAnswer(t *testing.T) {
	var buf bytes.Buffer
	out := advisor.ChatOutput{
		Response:       "Irrigate 20 litres per tree this evening.",
		Advisor:        advisor.LabelIrrigationAdvisor,
		SensorDataUsed: true,
	}

	printAnswer(&buf, "s-1", "Should I irrigate?", out, 1500*time.Millisecond, "")

	got := buf.String()
	assert.Contains(t, got, "📝 Query: Should I irrigate?")
	assert.Contains(t, got, "✅ Advisor Used: irrigation_advisor")
	assert.Contains(t, got, "📊 Sensor Data Used: true")
	assert.Contains(t, got, "⏱️  Response Time: 1.50s")
	assert.Contains(t, got, "💬 RESPONSE:\nIrrigate 20 litres per tree this evening.")
	assert.NotContains(t, got, "WARNING")
}

func TestPrintAnswer_ExpectMismatch(t *testing.T) {
	var buf bytes.Buffer
	out := advisor.ChatOutput{Advisor: advisor.LabelGeneralAdvisor, Fallback: true}

	printAnswer(&buf, "s-1", "Trees not good", out, time.Second, advisor.LabelRiskAdvisor)

	assert.Contains(t, buf.String(), "↩️  Routed by fallback")
	assert.Contains(t, buf.String(), "⚠️  WARNING: Expected risk_advisor, got general_advisor")
}

func TestAskCommand(t *testing.T) {
	stub := &stubAdvisor{out: advisor.ChatOutput{Response: "Prune in late winter.", Advisor: advisor.LabelGeneralAdvisor}}
	withCore(t, stub, &stubSensor{})

	got, err := run(t, "ask", "--device", "1", "When", "should", "I", "prune?")

	require.NoError(t, err)
	assert.Equal(t, advisor.ChatInput{DeviceID: "1", Message: "When should I prune?"}, stub.last)
	assert.Contains(t, got, "Prune in late winter.")
}

func TestAskCommand_UnknownExpectation(t *testing.T) {
	withCore(t, &stubAdvisor{}, &stubSensor{})

	_, err := run(t, "ask", "--device", "1", "--expect", "weather_advisor", "hello")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "weather_advisor")
}

func TestSensorsCommand(t *testing.T) {
	stub := &stubSensor{result: sensor.Ok("📊 SENSOR DATA REPORT", 5)}
	withCore(t, &stubAdvisor{}, stub)

	got, err := run(t, "sensors", "--device", "1", "--limit", "3")

	require.NoError(t, err)
	assert.Equal(t, 3, stub.lastLimit)
	assert.True(t, strings.HasPrefix(got, "📊 SENSOR DATA REPORT"))
}

func TestSensorsCommand_Unavailable(t *testing.T) {
	withCore(t, &stubAdvisor{}, &stubSensor{result: sensor.Unavailable("No sensor data available for device 9")})

	_, err := run(t, "sensors", "--device", "9")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "No sensor data available for device 9")
}
