package main

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/srg/blecore/internal/testutils"
	"github.com/srg/blecore/pkg/att"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

const heartRateProfile = `
name: heart-rate
services:
  - uuid: 180d
    characteristics:
      - uuid: 2a37
        properties: notify
        value: "00 48"
      - uuid: 2a38
        properties: read
        value: "01"
        descriptors:
          - uuid: "2901"
            value: "6c 6f 63"
  - uuid: 6e400001-b5a3-f393-e0a9-e50e24dcca9e
    characteristics:
      - uuid: 6e400003-b5a3-f393-e0a9-e50e24dcca9e
        properties: read,write-cmd
        text: hello
`

type CommandsTestSuite struct {
	CommandTestSuite
}

func (s *CommandsTestSuite) TestTable_BatteryText() {
	// GOAL: Verify the default table dumps the Battery Service with names and values
	//
	// TEST SCENARIO: run "table" without flags → three rows → matches expected layout

	out, _, err := s.ExecuteCommand("table")
	s.Require().NoError(err, "table MUST succeed")

	testutils.NewTextAsserter(s.T()).Assert(out, `
HANDLE  TYPE  NAME             VALUE
0x0001  2800  Primary Service  0F 18
0x0002  2803  Characteristic   02 03 00 19 2A
0x0003  2a19  Battery Level    30
`)
}

func (s *CommandsTestSuite) TestTable_MidiJSONRange() {
	// GOAL: Verify --start/--end clamp the walk and --json keeps field order
	//
	// TEST SCENARIO: midi table, range 2..3 → declaration and MIDI I/O value → JSON rows

	out, _, err := s.ExecuteCommand("table", "--table", "midi", "--start", "2", "--end", "0x0003", "--json")
	s.Require().NoError(err, "table MUST succeed")

	testutils.NewJSONAsserter(s.T()).Assert(out, `[
  {"handle": "0x0002", "type": "2803", "name": "Characteristic", "value": "1e0300f36b109d66f2a9a112416838dbe57277"},
  {"handle": "0x0003", "type": "7772e5db-3868-4112-a1a9-f2669d106bf3", "name": "MIDI Data I/O", "value": ""}
]`)
	s.Less(strings.Index(out, `"handle"`), strings.Index(out, `"type"`), "JSON keys MUST keep insertion order")
}

func (s *CommandsTestSuite) TestTable_EmptyRange() {
	out, _, err := s.ExecuteCommand("table", "--start", "0x0010", "--end", "0x0020")
	s.Require().NoError(err)
	s.Contains(out, "No attributes in range")
}

func (s *CommandsTestSuite) TestTable_InvalidArguments() {
	// GOAL: Verify malformed ranges and unknown tables surface as errors
	//
	// TEST SCENARIO: bad flags → command error → wraps the matching sentinel

	tests := []struct {
		name string
		args []string
		want error
	}{
		{"zero start", []string{"table", "--start", "0"}, att.ErrInvalidHandle},
		{"reversed range", []string{"table", "--start", "5", "--end", "2"}, att.ErrInvalidRange},
		{"not a number", []string{"table", "--start", "first"}, ErrHandleSyntax},
		{"too large", []string{"table", "--end", "0x10000"}, ErrHandleSyntax},
		{"unknown table", []string{"table", "--table", "heart-rate"}, ErrUnknownTable},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()
			_, _, err := s.ExecuteCommand(tt.args...)
			s.ErrorIs(err, tt.want)
		})
	}
}

func (s *CommandsTestSuite) TestTable_Profile() {
	// GOAL: Verify a YAML profile replaces the built-in table
	//
	// TEST SCENARIO: heart-rate profile → table --json → ten attributes with an automatic CCCD

	path := s.WriteFile("hr.yaml", heartRateProfile)

	out, _, err := s.ExecuteCommand("table", "--profile", path, "--json", "--end", "4")
	s.Require().NoError(err, "table MUST succeed")

	testutils.NewJSONAsserter(s.T(), testutils.WithIgnoredFields("value")).Assert(out, `[
  {"handle": "0x0001", "type": "2800", "name": "Primary Service"},
  {"handle": "0x0002", "type": "2803", "name": "Characteristic"},
  {"handle": "0x0003", "type": "2a37", "name": "Heart Rate Measurement"},
  {"handle": "0x0004", "type": "2902", "name": "Client Characteristic Configuration"}
]`)
}

func (s *CommandsTestSuite) TestTable_ConfigFile() {
	// GOAL: Verify config file settings apply when no flag overrides them
	//
	// TEST SCENARIO: config selects midi and json → table → MIDI JSON output

	cfg := s.WriteFile("blecore.yaml", "table: midi\noutput_format: json\n")

	out, _, err := s.ExecuteCommand("table", "--config", cfg, "--end", "1")
	s.Require().NoError(err, "table MUST succeed")

	testutils.NewJSONAsserter(s.T(), testutils.WithIgnoreExtraKeys(true)).Assert(out, `[
  {"handle": "0x0001", "type": "2800", "value": "00c7c44ee36c51a7334be8ed5a0eb803"}
]`)
}

func (s *CommandsTestSuite) TestGroups_Profile() {
	// GOAL: Verify group bounds cover every member of each service
	//
	// TEST SCENARIO: heart-rate profile → groups → two services, each ending at its last attribute

	path := s.WriteFile("hr.yaml", heartRateProfile)

	out, _, err := s.ExecuteCommand("groups", "--profile", path, "--json")
	s.Require().NoError(err, "groups MUST succeed")

	testutils.NewJSONAsserter(s.T()).Assert(out, `[
  {"start": "0x0001", "end": "0x0007", "uuid": "180d", "name": "Heart Rate"},
  {"start": "0x0008", "end": "0x000A", "uuid": "6e400001-b5a3-f393-e0a9-e50e24dcca9e"}
]`)
}

func (s *CommandsTestSuite) TestGroups_BatteryText() {
	out, _, err := s.ExecuteCommand("groups")
	s.Require().NoError(err, "groups MUST succeed")

	testutils.NewTextAsserter(s.T()).Assert(out, `
START   END     UUID  NAME
0x0001  0x0003  180f  Battery Service
`)
}

func (s *CommandsTestSuite) TestGroups_Errors() {
	_, _, err := s.ExecuteCommand("groups", "--type", "2803")
	s.ErrorIs(err, att.ErrUnsupportedGroupType)
	s.Equal("the table does not group attributes by that type", FormatUserError(err))

	s.SetupTest()
	_, _, err = s.ExecuteCommand("groups", "--start", "2")
	s.ErrorIs(err, att.ErrAttributeNotFound, "a range past the only declaration MUST report not found")

	s.SetupTest()
	_, _, err = s.ExecuteCommand("groups", "--type", "xyz")
	s.Error(err)
}

func (s *CommandsTestSuite) TestChannels_Text() {
	// GOAL: Verify the channel map lists all 40 indices without color on non-terminals
	//
	// TEST SCENARIO: channels → header plus 40 rows → advertising rows carry their RF channel

	out, _, err := s.ExecuteCommand("channels")
	s.Require().NoError(err, "channels MUST succeed")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	s.Require().Len(lines, 41, "channel map MUST have a header and 40 rows")
	s.NotContains(out, "\x1b[", "output to a buffer MUST NOT be colored")

	testutils.NewTextAsserter(s.T()).Assert(strings.Join([]string{lines[0], lines[1], lines[12], lines[38], lines[39], lines[40]}, "\n"), `
INDEX  KIND  RF   FREQ      WHITENING
0      data  1    2404 MHz  0x40
11     data  13   2428 MHz  0x4B
37     adv   0    2402 MHz  0x65
38     adv   12   2426 MHz  0x66
39     adv   39   2480 MHz  0x67
`)
}

func (s *CommandsTestSuite) TestChannels_JSON() {
	out, _, err := s.ExecuteCommand("channels", "--json", "--no-color")
	s.Require().NoError(err, "channels MUST succeed")

	s.Contains(out, `"index": 36`)
	testutils.NewJSONAsserter(s.T()).Assert(extractRow(out, 10), `{"index": 10, "kind": "data", "rf_channel": 11, "freq_mhz": 2424, "whitening_iv": 74}`)
}

func (s *CommandsTestSuite) TestAdvertise() {
	// GOAL: Verify advertising events cycle 37 → 38 → 39 and repeat
	//
	// TEST SCENARIO: two events with a payload → six transmissions in channel order

	out, _, err := s.ExecuteCommand("advertise", "--events", "2", "--payload", "02:01:06", "--json")
	s.Require().NoError(err, "advertise MUST succeed")

	row := func(ch string, freq int) string {
		return fmt.Sprintf(`{"channel": %q, "freq_mhz": %d, "data": "020106"}`, ch, freq)
	}
	testutils.NewJSONAsserter(s.T()).Assert(out, "["+strings.Join([]string{
		row("adv37", 2402), row("adv38", 2426), row("adv39", 2480),
		row("adv37", 2402), row("adv38", 2426), row("adv39", 2480),
	}, ",")+"]")
}

func (s *CommandsTestSuite) TestAdvertise_OverflowAndDebugLog() {
	// GOAL: Verify a small capture buffer keeps the newest transmissions and warns
	//
	// TEST SCENARIO: capture_size 4, three events, debug log → newest four kept → log shows all nine

	cfg := s.WriteFile("blecore.yaml", "capture_size: 4\n")

	out, logs, err := s.ExecuteCommand("advertise", "--config", cfg, "--log-level", "debug", "--events", "3", "--payload", "AA")
	s.Require().NoError(err, "advertise MUST succeed")

	testutils.NewTextAsserter(s.T()).Assert(out, `
#  CHANNEL  FREQ      DATA
0  adv39    2480 MHz  AA
1  adv37    2402 MHz  AA
2  adv38    2426 MHz  AA
3  adv39    2480 MHz  AA
`)

	s.Equal(9, strings.Count(logs, "Radio transmit"), "every transmission MUST be logged")
	s.Contains(logs, "Capture buffer overflowed")
	s.Contains(logs, "dropped=5")
}

func (s *CommandsTestSuite) TestAdvertise_InvalidArguments() {
	_, _, err := s.ExecuteCommand("advertise", "--events", "0")
	s.Error(err)

	s.SetupTest()
	_, _, err = s.ExecuteCommand("advertise", "--payload", "zz")
	s.ErrorContains(err, "invalid payload")

	s.SetupTest()
	_, _, err = s.ExecuteCommand("advertise", "--log-level", "chatty")
	s.ErrorIs(err, ErrInvalidLogLevel)
}

func (s *CommandsTestSuite) TestFormatUserError() {
	layout := &att.LayoutError{Handle: 3, Reason: "handle out of order"}
	s.Equal("attribute table is malformed at 0x0003: handle out of order", FormatUserError(fmt.Errorf("wrap: %w", layout)))
	s.Equal("no attribute in the requested handle range", FormatUserError(att.ErrAttributeNotFound))
	s.Equal("plain", FormatUserError(errors.New("plain")))
}

// extractRow returns the JSON object of the row whose index field equals idx.
func extractRow(out string, idx int) string {
	marker := fmt.Sprintf(`"index": %d,`, idx)
	start := strings.Index(out, marker)
	if start < 0 {
		return ""
	}
	start = strings.LastIndex(out[:start], "{")
	end := strings.Index(out[start:], "}")
	return out[start : start+end+1]
}

func TestCommandsTestSuite(t *testing.T) {
	suite.Run(t, new(CommandsTestSuite))
}

func TestParsePayload(t *testing.T) {
	for input, expected := range map[string][]byte{
		"":           {},
		"AA":         {0xAA},
		"0x0201":     {0x02, 0x01},
		"0X0201":     {0x02, 0x01},
		" 02:01:06 ": {0x02, 0x01, 0x06},
		"02 01 06":   {0x02, 0x01, 0x06},
	} {
		got, err := parsePayload(input)
		if assert.NoError(t, err, input) {
			assert.Equal(t, expected, got, input)
		}
	}

	// 0x is a prefix, not a separator
	for _, bad := range []string{"020x01", "0x0x02", "zz"} {
		_, err := parsePayload(bad)
		assert.Error(t, err, bad)
	}
}
