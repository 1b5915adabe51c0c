// Package att models the attribute table of an Attribute Protocol server.
//
// An attribute table is a flat, handle-addressed array of attributes. A
// Provider exposes one such table to an ATT server through three queries:
//   - ForAttrsInRange visits the attributes of a handle range in order
//   - IsGroupingAttr tells which attribute types open a group
//   - GroupEnd finds the last attribute of a group
//
// The package does not parse or encode ATT PDUs.
package att
