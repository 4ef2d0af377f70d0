package sensor

import (
	"fmt"
	"strconv"
	"strings"
)

const reportRule = "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━"

// RenderReport formats a summary as the text block handed to the advisor model.
func RenderReport(deviceID string, s Summary) string {
	l := s.Latest
	// Stations without a leaf wetness sensor report 0, which reads the same as no value.
	leafWetness := "Not Available"
	if l.LeafWetness != nil && *l.LeafWetness != 0 {
		leafWetness = formatNumber(*l.LeafWetness)
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("╔═══════════════════════════════════════════════════════════════╗\n")
	fmt.Fprintf(&b, "║          APPLE ORCHARD SENSOR DATA (Device: %s)     ║\n", deviceID)
	b.WriteString("╚═══════════════════════════════════════════════════════════════╝\n\n")

	fmt.Fprintf(&b, "📅 LATEST READING: %s\n", l.Timestamp)
	b.WriteString(reportRule + "\n\n")

	b.WriteString("🌡️  ATMOSPHERIC CONDITIONS:\n")
	fmt.Fprintf(&b, "   • Air Temperature: %s°C (Avg: %.2f°C)\n", formatNumber(l.Temp), s.AvgTemp)
	fmt.Fprintf(&b, "   • Humidity: %s%% (Avg: %.2f%%)\n", formatNumber(l.Humidity), s.AvgHumidity)
	fmt.Fprintf(&b, "   • Atmospheric Pressure: %s hPa\n", formatNumber(l.Pressure))
	fmt.Fprintf(&b, "   • Light Intensity: %s lux\n\n", formatNumber(l.LightIntensity))

	b.WriteString("🌧️  WEATHER PARAMETERS:\n")
	fmt.Fprintf(&b, "   • Rainfall: %s mm (Total: %.2f mm)\n", formatNumber(l.Rainfall), s.TotalRainfall)
	fmt.Fprintf(&b, "   • Wind Speed: %s m/s\n", formatNumber(l.WindSpeed))
	fmt.Fprintf(&b, "   • Wind Direction: %s°\n\n", formatNumber(l.WindDirection))

	b.WriteString("🌱 SOIL CONDITIONS:\n")
	fmt.Fprintf(&b, "   • Surface Temperature: %s°C (Avg: %.2f°C)\n", formatNumber(l.SurfaceTemp), s.AvgSurfaceTemp)
	fmt.Fprintf(&b, "   • Surface Humidity: %s%%\n", formatNumber(l.SurfaceHumidity))
	fmt.Fprintf(&b, "   • Depth Temperature: %s°C (Avg: %.2f°C)\n", formatNumber(l.DepthTemp), s.AvgDepthTemp)
	fmt.Fprintf(&b, "   • Depth Humidity: %s%%\n\n", formatNumber(l.DepthHumidity))

	b.WriteString("🍃 DISEASE INDICATORS:\n")
	fmt.Fprintf(&b, "   • Leaf Wetness: %s\n\n", leafWetness)
	b.WriteString(reportRule + "\n\n")

	fmt.Fprintf(&b, "📊 ANALYSIS PERIOD: Last %d readings\n", s.Count)
	fmt.Fprintf(&b, "📈 Data Quality: %d/%d readings available\n\n", s.Count, s.Limit)

	b.WriteString("OPTIMAL RANGES FOR APPLE ORCHARDS:\n")
	b.WriteString("- Air Temperature: 15-25°C (growth), 10-18°C (fruiting)\n")
	b.WriteString("- Soil Moisture: 60-80% field capacity\n")
	b.WriteString("- Leaf Wetness Duration: <6 hours (to prevent diseases)\n")
	return b.String()
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
