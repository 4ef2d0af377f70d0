package http

import (
	"apple-orchard-advisor/internal/sensor"
)

const defaultLimit = 10

// --- Request DTOs ---

type listReq struct {
	DeviceID string `uri:"device_id"`
	Limit    *int   `form:"limit"`
}

func (r listReq) validate() error {
	if r.DeviceID == "" {
		return errDeviceIDRequired
	}
	if r.Limit != nil && *r.Limit < 0 {
		return errInvalidLimit
	}
	return nil
}

// toInput applies defaultLimit only when the query carries no limit.
func (r listReq) toInput() sensor.ListReadingsInput {
	limit := defaultLimit
	if r.Limit != nil {
		limit = *r.Limit
	}
	return sensor.ListReadingsInput{
		DeviceID: r.DeviceID,
		Limit:    limit,
	}
}

// --- Response DTOs ---

type listResp struct {
	DeviceID      string           `json:"device_id"`
	Readings      []sensor.Reading `json:"readings"`
	TotalReadings int              `json:"total_readings"`
	Summary       *sensor.Parsed   `json:"summary,omitempty"`
}

func (h *handler) newListResp(out sensor.ListReadingsOutput) listResp {
	readings := out.Readings
	if readings == nil {
		readings = []sensor.Reading{}
	}
	return listResp{
		DeviceID:      out.DeviceID,
		Readings:      readings,
		TotalReadings: out.TotalReadings,
		Summary:       out.Summary,
	}
}
