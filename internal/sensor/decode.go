package sensor

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// number accepts a JSON number, a numeric string, "" or null.
type number float64

func (n *number) UnmarshalJSON(b []byte) error {
	v, ok, err := parseNumber(b)
	if err != nil {
		return err
	}
	if ok {
		*n = number(v)
	}
	return nil
}

func parseNumber(b []byte) (float64, bool, error) {
	raw := bytes.TrimSpace(b)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, false, nil
	}

	s := string(raw)
	if raw[0] == '"' {
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, false, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return 0, false, nil
		}
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false, fmt.Errorf("%w: %q is not numeric", ErrInvalidPayload, s)
	}
	return v, true, nil
}

// UnmarshalJSON decodes a telemetry reading whose numeric fields may be strings.
func (r *Reading) UnmarshalJSON(b []byte) error {
	var aux struct {
		Timestamp       json.RawMessage `json:"timestamp"`
		Temp            number          `json:"temp"`
		Humidity        number          `json:"humidity"`
		SurfaceTemp     number          `json:"surface_temp"`
		SurfaceHumidity number          `json:"surface_humidity"`
		DepthTemp       number          `json:"depth_temp"`
		DepthHumidity   number          `json:"depth_humidity"`
		LightIntensity  number          `json:"light_intensity"`
		Pressure        number          `json:"pressure"`
		Rainfall        number          `json:"rainfall"`
		WindSpeed       number          `json:"wind_speed"`
		WindDirection   number          `json:"wind_direction"`
		LeafWetness     json.RawMessage `json:"leafwetness"`
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}

	*r = Reading{
		Timestamp:       rawString(aux.Timestamp),
		Temp:            float64(aux.Temp),
		Humidity:        float64(aux.Humidity),
		SurfaceTemp:     float64(aux.SurfaceTemp),
		SurfaceHumidity: float64(aux.SurfaceHumidity),
		DepthTemp:       float64(aux.DepthTemp),
		DepthHumidity:   float64(aux.DepthHumidity),
		LightIntensity:  float64(aux.LightIntensity),
		Pressure:        float64(aux.Pressure),
		Rainfall:        float64(aux.Rainfall),
		WindSpeed:       float64(aux.WindSpeed),
		WindDirection:   float64(aux.WindDirection),
	}

	lw, ok, err := parseNumber(aux.LeafWetness)
	if err != nil {
		return err
	}
	if ok {
		r.LeafWetness = &lw
	}
	return nil
}

// rawString keeps timestamps verbatim whether they arrive quoted or not.
func rawString(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}
