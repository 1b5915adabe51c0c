// Package gatt builds GATT service tables on top of package att.
//
// It holds the reference Battery and MIDI tables, a builder that lays out
// user-defined services, and a YAML profile loader feeding that builder.
package gatt
