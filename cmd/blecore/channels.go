package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/srg/blecore/pkg/phy"
	orderedmap "github.com/wk8/go-ordered-map/v2"
	"golang.org/x/term"
)

// channelsCmd represents the channels command
var channelsCmd = &cobra.Command{
	Use:   "channels",
	Short: "Print the BLE channel map",
	Long: `Prints all 40 channel indices with their RF channel, centre frequency and
data whitening seed. Advertising channels (37, 38, 39) are highlighted.`,
	Args: cobra.NoArgs,
	RunE: runChannels,
}

var (
	channelsJSON    bool
	channelsNoColor bool
)

func init() {
	channelsCmd.Flags().BoolVar(&channelsJSON, "json", false, "Output as JSON")
	channelsCmd.Flags().BoolVar(&channelsNoColor, "no-color", false, "Disable colored output")
}

func runChannels(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	cmd.SilenceUsage = true

	out := cmd.OutOrStdout()
	if wantJSON(cfg, channelsJSON) {
		return writeChannelsJSON(out)
	}
	return writeChannelsTable(out, cfg.Color && !channelsNoColor && isTerminal(out))
}

// isTerminal reports whether out is an interactive terminal.
func isTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func channelKind(c phy.Channel) string {
	if _, ok := c.(phy.AdvertisingChannel); ok {
		return "adv"
	}
	return "data"
}

func writeChannelsTable(out io.Writer, colored bool) error {
	adv := color.New(color.FgCyan, color.Bold)
	if colored {
		adv.EnableColor()
	} else {
		adv.DisableColor()
	}

	fmt.Fprintf(out, "%-5s  %-4s  %-3s  %-8s  %s\n", "INDEX", "KIND", "RF", "FREQ", "WHITENING")
	for c := range phy.AllChannels() {
		line := fmt.Sprintf("%-5d  %-4s  %-3d  %-8s  0x%02X", c.Index(), channelKind(c), c.RFChannel(),
			fmt.Sprintf("%d MHz", c.Freq()), c.WhiteningIV())
		if channelKind(c) == "adv" {
			line = adv.Sprint(line)
		}
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	return nil
}

func writeChannelsJSON(out io.Writer) error {
	rows := make([]*orderedmap.OrderedMap[string, any], 0, phy.NumChannels)
	for c := range phy.AllChannels() {
		row := orderedmap.New[string, any]()
		row.Set("index", c.Index())
		row.Set("kind", channelKind(c))
		row.Set("rf_channel", c.RFChannel())
		row.Set("freq_mhz", c.Freq())
		row.Set("whitening_iv", c.WhiteningIV())
		rows = append(rows, row)
	}
	return encodeJSON(out, rows)
}
