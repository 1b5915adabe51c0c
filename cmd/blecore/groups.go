package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/srg/blecore/internal/bledb"
	"github.com/srg/blecore/pkg/att"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// groupsCmd represents the groups command
var groupsCmd = &cobra.Command{
	Use:   "groups",
	Short: "List attribute groups in a handle range",
	Long: `Lists the groups a Read By Group Type request would report: the handle of
each grouping declaration, the handle of the last attribute in its group and
the declaration value (the service UUID for services).`,
	Args: cobra.NoArgs,
	RunE: runGroups,
}

var (
	groupsProfile string
	groupsTable   string
	groupsStart   string
	groupsEnd     string
	groupsType    string
	groupsJSON    bool
)

func init() {
	groupsCmd.Flags().StringVarP(&groupsProfile, "profile", "p", "", "YAML profile describing the attribute table")
	groupsCmd.Flags().StringVarP(&groupsTable, "table", "t", "", "Built-in table (battery, midi)")
	groupsCmd.Flags().StringVar(&groupsStart, "start", "0x0001", "First handle of the range")
	groupsCmd.Flags().StringVar(&groupsEnd, "end", "0xFFFF", "Last handle of the range")
	groupsCmd.Flags().StringVar(&groupsType, "type", "2800", "Grouping attribute type UUID")
	groupsCmd.Flags().BoolVar(&groupsJSON, "json", false, "Output as JSON")
}

func runGroups(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	r, err := parseRange(groupsStart, groupsEnd)
	if err != nil {
		return err
	}
	groupType, err := att.ParseUUID(groupsType)
	if err != nil {
		return fmt.Errorf("invalid group type: %w", err)
	}

	// All arguments validated - don't show usage on runtime errors
	cmd.SilenceUsage = true

	logger := configureLogger(cmd, cfg)
	p, err := resolveProvider(cfg, groupsProfile, groupsTable, logger)
	if err != nil {
		return err
	}

	var groups []att.Group
	err = att.ForGroupsInRange(p, r, groupType, func(g att.Group) error {
		groups = append(groups, g)
		return nil
	})
	if err != nil {
		return err
	}

	if wantJSON(cfg, groupsJSON) {
		return writeGroupsJSON(cmd.OutOrStdout(), groups)
	}
	return writeGroupsTable(cmd.OutOrStdout(), groups)
}

// groupName resolves a declaration value holding a UUID to a known name.
func groupName(value []byte) (att.UUID, string) {
	var u att.UUID
	switch len(value) {
	case 2:
		u = att.UUID16(uint16(value[0]) | uint16(value[1])<<8)
	case 16:
		u = att.UUID128([16]byte(value))
	default:
		return u, ""
	}
	return u, bledb.Name(u)
}

func writeGroupsTable(out io.Writer, groups []att.Group) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "START\tEND\tUUID\tNAME")
	for _, g := range groups {
		u, name := groupName(g.Value)
		uuid := u.String()
		if u.IsZero() {
			uuid = formatValue(g.Value)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", g.Start, g.End, uuid, name)
	}
	return w.Flush()
}

func writeGroupsJSON(out io.Writer, groups []att.Group) error {
	rows := make([]*orderedmap.OrderedMap[string, any], 0, len(groups))
	for _, g := range groups {
		row := orderedmap.New[string, any]()
		row.Set("start", g.Start.String())
		row.Set("end", g.End.String())
		u, name := groupName(g.Value)
		if !u.IsZero() {
			row.Set("uuid", u.String())
		}
		if name != "" {
			row.Set("name", name)
		}
		rows = append(rows, row)
	}
	return encodeJSON(out, rows)
}
