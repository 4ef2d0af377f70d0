package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"apple-orchard-advisor/internal/sensor"
)

var (
	sensorsDevice string
	sensorsLimit  int
)

var sensorsCmd = &cobra.Command{
	Use:   "sensors",
	Short: "Print the sensor report an advisor would see",
	Long: `Fetch the newest readings of a device and print the rendered report
exactly as it is embedded in advisor prompts.

Examples:
  orchardctl sensors --device 1
  orchardctl sensors --device 1 --limit 10`,
	Args: cobra.NoArgs,
	RunE: runSensors,
}

func init() {
	sensorsCmd.Flags().StringVarP(&sensorsDevice, "device", "d", "", "Sensor device ID (required)")
	sensorsCmd.Flags().IntVarP(&sensorsLimit, "limit", "n", sensor.DefaultLimit, "Number of readings to summarize")
	_ = sensorsCmd.MarkFlagRequired("device")
	rootCmd.AddCommand(sensorsCmd)
}

func runSensors(cmd *cobra.Command, args []string) error {
	c, err := buildCore(cmd.Context())
	if err != nil {
		return err
	}
	defer c.close()

	result := c.sensor.Fetch(cmd.Context(), sensorsDevice, sensorsLimit)
	if result.Status != sensor.StatusOk {
		return fmt.Errorf("sensor data unavailable: %s", result.Reason)
	}

	fmt.Fprintln(cmd.OutOrStdout(), result.Report)
	return nil
}
