package sensor

import "context"

// Fetcher produces the sensor report embedded in advisor prompts. It never fails;
// problems come back as an Unavailable result.
type Fetcher interface {
	Fetch(ctx context.Context, deviceID string, limit int) FetchResult
}

//go:generate mockery --name UseCase
type UseCase interface {
	Fetcher
	ListReadings(ctx context.Context, input ListReadingsInput) (ListReadingsOutput, error)
}
