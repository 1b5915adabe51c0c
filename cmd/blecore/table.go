package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/srg/blecore/internal/bledb"
	"github.com/srg/blecore/pkg/att"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// tableCmd represents the table command
var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Dump the attributes of a GATT table",
	Long: `Walks the attributes of a GATT attribute table within a handle range,
the same way an ATT server answers Find Information or Read By Type requests.

The table is either built in (see --table) or loaded from a YAML profile.`,
	Args: cobra.NoArgs,
	RunE: runTable,
}

var (
	tableProfile string
	tableName    string
	tableStart   string
	tableEnd     string
	tableJSON    bool
)

func init() {
	tableCmd.Flags().StringVarP(&tableProfile, "profile", "p", "", "YAML profile describing the attribute table")
	tableCmd.Flags().StringVarP(&tableName, "table", "t", "", "Built-in table (battery, midi)")
	tableCmd.Flags().StringVar(&tableStart, "start", "0x0001", "First handle of the range")
	tableCmd.Flags().StringVar(&tableEnd, "end", "0xFFFF", "Last handle of the range")
	tableCmd.Flags().BoolVar(&tableJSON, "json", false, "Output as JSON")
}

func runTable(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	r, err := parseRange(tableStart, tableEnd)
	if err != nil {
		return err
	}

	// All arguments validated - don't show usage on runtime errors
	cmd.SilenceUsage = true

	logger := configureLogger(cmd, cfg)
	p, err := resolveProvider(cfg, tableProfile, tableName, logger)
	if err != nil {
		return err
	}

	attrs, err := att.Collect(p, r)
	if err != nil {
		return err
	}
	logger.WithFields(logrus.Fields{"range": r.String(), "count": len(attrs)}).Debug("Collected attributes")

	if wantJSON(cfg, tableJSON) {
		return writeAttributesJSON(cmd.OutOrStdout(), attrs)
	}
	return writeAttributesTable(cmd.OutOrStdout(), attrs)
}

func writeAttributesTable(out io.Writer, attrs []*att.Attribute) error {
	if len(attrs) == 0 {
		fmt.Fprintln(out, "No attributes in range")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "HANDLE\tTYPE\tNAME\tVALUE")
	for _, a := range attrs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", a.Handle, a.Type, bledb.Name(a.Type), formatValue(a.Value))
	}
	return w.Flush()
}

func writeAttributesJSON(out io.Writer, attrs []*att.Attribute) error {
	rows := make([]*orderedmap.OrderedMap[string, any], 0, len(attrs))
	for _, a := range attrs {
		row := orderedmap.New[string, any]()
		row.Set("handle", a.Handle.String())
		row.Set("type", a.Type.String())
		if name := bledb.Name(a.Type); name != "" {
			row.Set("name", name)
		}
		row.Set("value", hex.EncodeToString(a.Value))
		rows = append(rows, row)
	}
	return encodeJSON(out, rows)
}

func encodeJSON(out io.Writer, v any) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// formatValue prints bytes as spaced upper-case hex.
func formatValue(b []byte) string {
	if len(b) == 0 {
		return "-"
	}
	return strings.TrimSpace(fmt.Sprintf("% X", b))
}
