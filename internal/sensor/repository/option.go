package repository

// ListReadingsOptions holds filter parameters for listing readings.
// Limit 0 leaves the window to the backend; sources that cannot limit return everything.
type ListReadingsOptions struct {
	DeviceID string
	Limit    int
}
