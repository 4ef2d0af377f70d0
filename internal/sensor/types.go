package sensor

// Reading is one telemetry sample. Devices report newest first.
type Reading struct {
	Timestamp       string   `json:"timestamp"`
	Temp            float64  `json:"temp"`
	Humidity        float64  `json:"humidity"`
	SurfaceTemp     float64  `json:"surface_temp"`
	SurfaceHumidity float64  `json:"surface_humidity"`
	DepthTemp       float64  `json:"depth_temp"`
	DepthHumidity   float64  `json:"depth_humidity"`
	LightIntensity  float64  `json:"light_intensity"`
	Pressure        float64  `json:"pressure"`
	Rainfall        float64  `json:"rainfall"`
	WindSpeed       float64  `json:"wind_speed"`
	WindDirection   float64  `json:"wind_direction"`
	LeafWetness     *float64 `json:"leafwetness"`
}

// FetchStatus tags a FetchResult.
type FetchStatus int

const (
	StatusNotFetched FetchStatus = iota
	StatusOk
	StatusUnavailable
)

func (s FetchStatus) String() string {
	switch s {
	case StatusOk:
		return "ok"
	case StatusUnavailable:
		return "unavailable"
	default:
		return "not_fetched"
	}
}

// FetchResult is either a rendered report or the reason no report could be built.
// The zero value means no fetch was attempted.
type FetchResult struct {
	Status FetchStatus
	Report string
	Reason string
	Count  int
}

// Ok wraps a rendered report built from count readings.
func Ok(report string, count int) FetchResult {
	return FetchResult{Status: StatusOk, Report: report, Count: count}
}

// Unavailable records why no report could be produced.
func Unavailable(reason string) FetchResult {
	return FetchResult{Status: StatusUnavailable, Reason: reason}
}

// Fetched reports whether a fetch was attempted, whatever its outcome.
func (r FetchResult) Fetched() bool {
	return r.Status != StatusNotFetched
}

// Summary aggregates the analysis window of a reading series.
type Summary struct {
	Latest         Reading
	Count          int
	Limit          int
	AvgTemp        float64
	AvgHumidity    float64
	AvgSurfaceTemp float64
	AvgDepthTemp   float64
	TotalRainfall  float64
}

// --- Structured summary ---

// Parsed is the machine readable summary served next to raw readings.
type Parsed struct {
	LatestReading LatestReading `json:"latest_reading"`
	Averages      Averages      `json:"averages"`
	Totals        Totals        `json:"totals"`
	ReadingCount  int           `json:"reading_count"`
}

type LatestReading struct {
	Timestamp       string   `json:"timestamp"`
	AirTemp         float64  `json:"air_temp"`
	Humidity        float64  `json:"humidity"`
	LightIntensity  float64  `json:"light_intensity"`
	Pressure        float64  `json:"pressure"`
	Rainfall        float64  `json:"rainfall"`
	WindSpeed       float64  `json:"wind_speed"`
	SurfaceTemp     float64  `json:"surface_temp"`
	SurfaceHumidity float64  `json:"surface_humidity"`
	DepthTemp       float64  `json:"depth_temp"`
	DepthHumidity   float64  `json:"depth_humidity"`
	LeafWetness     *float64 `json:"leaf_wetness"`
}

type Averages struct {
	AirTemp     float64 `json:"air_temp"`
	Humidity    float64 `json:"humidity"`
	SurfaceTemp float64 `json:"surface_temp"`
	DepthTemp   float64 `json:"depth_temp"`
}

type Totals struct {
	Rainfall float64 `json:"rainfall"`
}

// --- UseCase Inputs/Outputs ---

type ListReadingsInput struct {
	DeviceID string
	Limit    int
}

type ListReadingsOutput struct {
	DeviceID      string
	Readings      []Reading
	TotalReadings int
	Summary       *Parsed
}
