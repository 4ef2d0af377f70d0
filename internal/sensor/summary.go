package sensor

// Summarize aggregates the first min(limit, len(readings)) readings.
// Readings are expected newest first; the first one is reported as Latest.
func Summarize(readings []Reading, limit int) Summary {
	window := readings
	if limit >= 0 && limit < len(window) {
		window = window[:limit]
	}

	s := Summary{Count: len(window), Limit: limit}
	if len(window) == 0 {
		return s
	}
	s.Latest = window[0]

	var temp, humidity, surface, depth float64
	for _, r := range window {
		temp += r.Temp
		humidity += r.Humidity
		surface += r.SurfaceTemp
		depth += r.DepthTemp
		s.TotalRainfall += r.Rainfall
	}
	n := float64(len(window))
	s.AvgTemp = temp / n
	s.AvgHumidity = humidity / n
	s.AvgSurfaceTemp = surface / n
	s.AvgDepthTemp = depth / n
	return s
}

// Parse builds the structured summary over all given readings. It returns nil for an empty series.
func Parse(readings []Reading) *Parsed {
	if len(readings) == 0 {
		return nil
	}

	s := Summarize(readings, len(readings))
	latest := s.Latest
	return &Parsed{
		LatestReading: LatestReading{
			Timestamp:       latest.Timestamp,
			AirTemp:         latest.Temp,
			Humidity:        latest.Humidity,
			LightIntensity:  latest.LightIntensity,
			Pressure:        latest.Pressure,
			Rainfall:        latest.Rainfall,
			WindSpeed:       latest.WindSpeed,
			SurfaceTemp:     latest.SurfaceTemp,
			SurfaceHumidity: latest.SurfaceHumidity,
			DepthTemp:       latest.DepthTemp,
			DepthHumidity:   latest.DepthHumidity,
			LeafWetness:     latest.LeafWetness,
		},
		Averages: Averages{
			AirTemp:     s.AvgTemp,
			Humidity:    s.AvgHumidity,
			SurfaceTemp: s.AvgSurfaceTemp,
			DepthTemp:   s.AvgDepthTemp,
		},
		Totals:       Totals{Rainfall: s.TotalRainfall},
		ReadingCount: s.Count,
	}
}
