package sensor

// Log prefixes
const (
	LogPrefixFetch        = "internal.sensor.Fetch"
	LogPrefixListReadings = "internal.sensor.ListReadings"
)

// DefaultLimit is the advisor window when the caller asks for none.
const DefaultLimit = 5

// Unavailable reasons. %s is the device id or the upstream error.
const (
	ReasonNoData      = "No sensor data available for device %s"
	ReasonTimeout     = "Request timed out while fetching data for device %s"
	ReasonFetchFailed = "Failed to fetch sensor data: %s"
)
