package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"apple-orchard-advisor/internal/advisor"
	"apple-orchard-advisor/internal/router"
)

// Chat runs one advisory turn: route, then exactly one advisor.
func (uc *implUseCase) Chat(ctx context.Context, input advisor.ChatInput) (advisor.ChatOutput, error) {
	if strings.TrimSpace(input.DeviceID) == "" {
		return advisor.ChatOutput{}, advisor.ErrDeviceIDRequired
	}

	start := time.Now()
	ctx, span := uc.tracer.Start(ctx, "advisor.Chat", trace.WithAttributes(
		attribute.String("advisor.device_id", input.DeviceID),
	))
	defer span.End()

	state := advisor.NewState(input.DeviceID, input.Message)

	state, cls, err := uc.route(ctx, state)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return advisor.ChatOutput{}, err
	}

	state, err = uc.dispatch(ctx, state)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return advisor.ChatOutput{}, err
	}

	span.SetAttributes(
		attribute.String("advisor.label", state.CurrentAdvisor.String()),
		attribute.Bool("advisor.fallback", cls.Fallback),
		attribute.Bool("advisor.sensor_data_used", state.SensorData.Fetched()),
	)
	uc.metrics.ObserveChat(state.CurrentAdvisor.String(), time.Since(start))
	uc.l.Infof(ctx, "%s: device %s answered by %s in %s", advisor.LogPrefixChat, input.DeviceID, state.CurrentAdvisor, time.Since(start).Round(time.Millisecond))

	return advisor.ChatOutput{
		Response:       state.Answer(),
		Advisor:        state.CurrentAdvisor,
		SensorDataUsed: state.SensorData.Fetched(),
		Fallback:       cls.Fallback,
		Messages:       state.Messages,
	}, nil
}

func (uc *implUseCase) route(ctx context.Context, state advisor.State) (advisor.State, router.Classification, error) {
	ctx, span := uc.tracer.Start(ctx, "advisor.route")
	defer span.End()

	cls, err := uc.router.Classify(ctx, state.Question())
	if err != nil {
		return state, cls, fmt.Errorf("%s: route: %w", advisor.LogPrefixChat, err)
	}
	span.SetAttributes(attribute.String("advisor.label", cls.Label.String()), attribute.Bool("advisor.fallback", cls.Fallback))

	state, err = state.WithAdvisor(cls.Label)
	if err != nil {
		return state, cls, fmt.Errorf("%s: route: %w", advisor.LogPrefixChat, err)
	}
	return state, cls, nil
}
