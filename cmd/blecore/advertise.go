package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/srg/blecore/internal/radio"
	"github.com/srg/blecore/pkg/phy"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// advertiseCmd represents the advertise command
var advertiseCmd = &cobra.Command{
	Use:   "advertise",
	Short: "Simulate advertising events",
	Long: `Simulates advertising events without a radio. Each event sends the payload
on channel 37, then 38, then 39. Transmissions are captured in a bounded ring
buffer (see capture_size in the config file) and printed once all events ran.

Run with --log-level debug to see each transmission as it happens.`,
	Args: cobra.NoArgs,
	RunE: runAdvertise,
}

var (
	advertiseEvents  int
	advertisePayload string
	advertiseJSON    bool
)

func init() {
	advertiseCmd.Flags().IntVarP(&advertiseEvents, "events", "n", 1, "Number of advertising events")
	advertiseCmd.Flags().StringVar(&advertisePayload, "payload", "", "Payload as hex (spaces and colons allowed)")
	advertiseCmd.Flags().BoolVar(&advertiseJSON, "json", false, "Output as JSON")
}

func runAdvertise(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if advertiseEvents < 1 {
		return fmt.Errorf("--events must be at least 1, got %d", advertiseEvents)
	}
	payload, err := parsePayload(advertisePayload)
	if err != nil {
		return err
	}

	// All arguments validated - don't show usage on runtime errors
	cmd.SilenceUsage = true

	logger := configureLogger(cmd, cfg)
	capture, err := radio.NewCaptureRadio(cfg.CaptureSize)
	if err != nil {
		return err
	}
	r := &radio.LogRadio{Logger: logger, Next: capture}

	simulateAdvertising(r, advertiseEvents, payload)

	sent, err := capture.Drain()
	if err != nil {
		return err
	}
	if dropped := capture.Overwritten(); dropped > 0 {
		logger.WithFields(logrus.Fields{
			"dropped":      dropped,
			"capture_size": cfg.CaptureSize,
		}).Warn("Capture buffer overflowed, oldest transmissions dropped")
	}

	if wantJSON(cfg, advertiseJSON) {
		return writeTransmissionsJSON(cmd.OutOrStdout(), sent)
	}
	return writeTransmissionsTable(cmd.OutOrStdout(), sent)
}

// simulateAdvertising sends payload on every advertising channel, events times.
func simulateAdvertising(r phy.Radio, events int, payload []byte) {
	for range events {
		ch := phy.FirstAdvertisingChannel()
		for range len(phy.AdvertisingChannelList()) {
			phy.TransmitOn(r, ch, payload)
			ch = ch.Cycle()
		}
	}
}

// parsePayload decodes hex with optional space or colon separators and an
// optional leading 0x.
func parsePayload(s string) ([]byte, error) {
	clean := strings.TrimSpace(s)
	if len(clean) >= 2 && clean[0] == '0' && (clean[1] == 'x' || clean[1] == 'X') {
		clean = clean[2:]
	}
	clean = strings.NewReplacer(" ", "", ":", "").Replace(clean)
	b, err := hex.DecodeString(clean)
	if err != nil {
		return nil, fmt.Errorf("invalid payload %q: %w", s, err)
	}
	return b, nil
}

// advertisingChannelAt maps a centre frequency back to its advertising channel.
func advertisingChannelAt(freq uint16) string {
	for c := range phy.AdvertisingChannels() {
		if c.Freq() == freq {
			return c.String()
		}
	}
	return "?"
}

func writeTransmissionsTable(out io.Writer, sent []radio.Transmission) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tCHANNEL\tFREQ\tDATA")
	for i, t := range sent {
		fmt.Fprintf(w, "%d\t%s\t%d MHz\t%s\n", i, advertisingChannelAt(t.Freq), t.Freq, formatValue(t.Data))
	}
	return w.Flush()
}

func writeTransmissionsJSON(out io.Writer, sent []radio.Transmission) error {
	rows := make([]*orderedmap.OrderedMap[string, any], 0, len(sent))
	for _, t := range sent {
		row := orderedmap.New[string, any]()
		row.Set("channel", advertisingChannelAt(t.Freq))
		row.Set("freq_mhz", t.Freq)
		row.Set("data", hex.EncodeToString(t.Data))
		rows = append(rows, row)
	}
	return encodeJSON(out, rows)
}
