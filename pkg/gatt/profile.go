package gatt

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mcuadros/go-defaults"
	"github.com/srg/blecore/pkg/att"
	"gopkg.in/yaml.v3"
)

// Profile is a user-defined attribute table loaded from YAML:
//
//	name: heart-rate
//	base: 1
//	services:
//	  - uuid: "180d"
//	    characteristics:
//	      - uuid: "2a37"
//	        properties: notify
//	        value: "00 48"
type Profile struct {
	Name     string          `yaml:"name"`
	Base     uint16          `yaml:"base" default:"1"`
	Services []ServiceConfig `yaml:"services"`
}

// ServiceConfig is one service of a Profile.
type ServiceConfig struct {
	UUID            att.UUID               `yaml:"uuid"`
	Characteristics []CharacteristicConfig `yaml:"characteristics,omitempty"`
}

// CharacteristicConfig is one characteristic of a ServiceConfig. Value is
// hex encoded; Text is used verbatim when Value is empty.
type CharacteristicConfig struct {
	UUID        att.UUID           `yaml:"uuid"`
	Properties  string             `yaml:"properties,omitempty"` // e.g. "read,write,notify"
	Value       string             `yaml:"value,omitempty"`
	Text        string             `yaml:"text,omitempty"`
	Subscribed  string             `yaml:"subscribed,omitempty"` // e.g. "notify"
	Descriptors []DescriptorConfig `yaml:"descriptors,omitempty"`
}

// DescriptorConfig is one descriptor of a CharacteristicConfig.
type DescriptorConfig struct {
	UUID  att.UUID `yaml:"uuid"`
	Value string   `yaml:"value,omitempty"`
}

// LoadProfile decodes a YAML profile.
func LoadProfile(r io.Reader) (*Profile, error) {
	p := &Profile{}
	defaults.SetDefaults(p)

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(p); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("profile is empty")
		}
		return nil, fmt.Errorf("failed to decode profile: %w", err)
	}
	if len(p.Services) == 0 {
		return nil, fmt.Errorf("profile %q declares no services", p.Name)
	}
	return p, nil
}

// LoadProfileFile decodes the YAML profile at path.
func LoadProfileFile(path string) (*Profile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	p, err := LoadProfile(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// ServiceDefs converts the profile into BuildTable input.
func (p *Profile) ServiceDefs() ([]Service, error) {
	services := make([]Service, 0, len(p.Services))
	for _, sc := range p.Services {
		svc := Service{UUID: sc.UUID}
		for _, cc := range sc.Characteristics {
			props, err := ParseProperties(cc.Properties)
			if err != nil {
				return nil, fmt.Errorf("characteristic %s: %w", cc.UUID, err)
			}
			value, err := decodeHexValue(cc.Value)
			if err != nil {
				return nil, fmt.Errorf("characteristic %s: %w", cc.UUID, err)
			}
			if value == nil && cc.Text != "" {
				value = []byte(cc.Text)
			}

			subscribed, err := ParseCCCDFlags(cc.Subscribed)
			if err != nil {
				return nil, fmt.Errorf("characteristic %s: %w", cc.UUID, err)
			}

			c := Characteristic{UUID: cc.UUID, Properties: props, Value: value, Subscribed: subscribed}
			for _, dc := range cc.Descriptors {
				dv, err := decodeHexValue(dc.Value)
				if err != nil {
					return nil, fmt.Errorf("descriptor %s: %w", dc.UUID, err)
				}
				c.Descriptors = append(c.Descriptors, Descriptor{UUID: dc.UUID, Value: dv})
			}
			svc.Characteristics = append(svc.Characteristics, c)
		}
		services = append(services, svc)
	}
	return services, nil
}

// Table builds the attribute table described by the profile.
func (p *Profile) Table() (*att.Table, error) {
	services, err := p.ServiceDefs()
	if err != nil {
		return nil, err
	}
	return BuildTable(att.Handle(p.Base), services...)
}

// decodeHexValue accepts "0a0b", "0a 0b", "0a:0b" and "0x0a0b".
func decodeHexValue(s string) ([]byte, error) {
	s = trimHexPrefix(strings.TrimSpace(s))
	if s == "" {
		return nil, nil
	}
	s = strings.NewReplacer(" ", "", ":", "", "-", "").Replace(s)
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid hex value %q: %w", s, err)
	}
	return b, nil
}

// trimHexPrefix removes one leading "0x" or "0X".
func trimHexPrefix(s string) string {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}
