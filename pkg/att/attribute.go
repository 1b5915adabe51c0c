package att

import "fmt"

// Attribute is one entry of an attribute table.
type Attribute struct {
	Type   UUID
	Handle Handle
	Value  []byte
}

// NewAttribute returns an attribute of type typ at handle h.
func NewAttribute(typ UUID, h Handle, value []byte) Attribute {
	return Attribute{Type: typ, Handle: h, Value: value}
}

func (a *Attribute) String() string {
	return fmt.Sprintf("%s %s [% X]", a.Handle, a.Type, a.Value)
}

// Visitor is called for each attribute visited by a range query. Returning
// an error stops the query, and the error is handed back to its caller.
type Visitor func(p Provider, a *Attribute) error

// Provider is an attribute table that can be served by an ATT server.
//
// The n-th attribute a provider yields has handle base+n: handles are
// ascending and unique, so a range query is answered by index arithmetic.
//
// Providers do no locking. Callers serialize concurrent queries against the
// same provider, typically by letting one ATT task own it.
type Provider interface {
	// ForAttrsInRange calls f for every attribute whose handle is in r,
	// in ascending handle order. Ranges outside the table visit nothing.
	ForAttrsInRange(r HandleRange, f Visitor) error

	// IsGroupingAttr reports whether attributes of type uuid open a group.
	IsGroupingAttr(uuid UUID) bool

	// GroupEnd returns the last attribute of the group containing h.
	GroupEnd(h Handle) (*Attribute, bool)
}

// VisitSlice calls f for each attribute of attrs that falls in r. attrs must
// hold consecutive handles starting at base. It backs the fixed-array
// providers as well as Table.
func VisitSlice(p Provider, attrs []Attribute, base Handle, r HandleRange, f Visitor) error {
	lo, hi := Bounds(base, len(attrs), r)
	for i := lo; i < hi; i++ {
		if err := f(p, &attrs[i]); err != nil {
			return err
		}
	}
	return nil
}
