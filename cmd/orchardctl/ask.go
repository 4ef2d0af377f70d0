package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"apple-orchard-advisor/internal/advisor"
	"apple-orchard-advisor/pkg/log"
)

var (
	askDevice string
	askExpect string
)

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask the advisor one question",
	Long: `Route one question through the advisor and print which advisor answered,
whether live sensor data was used, the response time and the answer.

Examples:
  orchardctl ask --device 1 "Should I irrigate my apple trees today?"
  orchardctl ask --device 1 --expect risk_advisor "Is there a risk of apple scab right now?"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().StringVarP(&askDevice, "device", "d", "", "Sensor device ID (required)")
	askCmd.Flags().StringVar(&askExpect, "expect", "", "Warn when the question is routed to a different advisor")
	_ = askCmd.MarkFlagRequired("device")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	question := strings.Join(args, " ")
	if askExpect != "" && !advisor.Label(askExpect).Valid() {
		return fmt.Errorf("unknown advisor %q", askExpect)
	}

	session := uuid.NewString()
	ctx := log.WithRequestID(cmd.Context(), session)

	c, err := buildCore(ctx)
	if err != nil {
		return err
	}
	defer c.close()

	start := time.Now()
	out, err := c.advisor.Chat(ctx, advisor.ChatInput{DeviceID: askDevice, Message: question})
	if err != nil {
		return fmt.Errorf("agent error: %w", err)
	}

	printAnswer(cmd.OutOrStdout(), session, question, out, time.Since(start), advisor.Label(askExpect))
	return nil
}

func printAnswer(w io.Writer, session, question string, out advisor.ChatOutput, elapsed time.Duration, expect advisor.Label) {
	fmt.Fprintf(w, "🧪 Session: %s\n", session)
	fmt.Fprintf(w, "📝 Query: %s\n", question)
	fmt.Fprintln(w, strings.Repeat("-", 80))
	fmt.Fprintf(w, "✅ Advisor Used: %s\n", out.Advisor)
	fmt.Fprintf(w, "📊 Sensor Data Used: %t\n", out.SensorDataUsed)
	if out.Fallback {
		fmt.Fprintln(w, "↩️  Routed by fallback")
	}
	fmt.Fprintf(w, "⏱️  Response Time: %.2fs\n", elapsed.Seconds())
	fmt.Fprintf(w, "\n💬 RESPONSE:\n%s\n\n", out.Response)

	if expect != "" && out.Advisor != expect {
		fmt.Fprintf(w, "⚠️  WARNING: Expected %s, got %s\n", expect, out.Advisor)
	}
}
