package att

// Group is one group reported by a Read By Group Type style query.
type Group struct {
	Start Handle
	End   Handle
	Value []byte
}

// ForGroupsInRange calls f for every group opened by an attribute of type
// groupType within r, in ascending handle order.
//
// It returns ErrUnsupportedGroupType when p does not group by groupType, and
// ErrAttributeNotFound when r holds no such group.
func ForGroupsInRange(p Provider, r HandleRange, groupType UUID, f func(Group) error) error {
	if !p.IsGroupingAttr(groupType) {
		return ErrUnsupportedGroupType
	}

	found := false
	err := p.ForAttrsInRange(r, func(p Provider, a *Attribute) error {
		if !a.Type.Equal(groupType) {
			return nil
		}
		g := Group{Start: a.Handle, End: a.Handle, Value: a.Value}
		if last, ok := p.GroupEnd(a.Handle); ok {
			g.End = last.Handle
		}
		found = true
		return f(g)
	})
	if err != nil {
		return err
	}
	if !found {
		return ErrAttributeNotFound
	}
	return nil
}

// FindByType calls f for every attribute of type typ within r. It returns
// ErrAttributeNotFound when none matched.
func FindByType(p Provider, r HandleRange, typ UUID, f Visitor) error {
	found := false
	err := p.ForAttrsInRange(r, func(p Provider, a *Attribute) error {
		if !a.Type.Equal(typ) {
			return nil
		}
		found = true
		return f(p, a)
	})
	if err != nil {
		return err
	}
	if !found {
		return ErrAttributeNotFound
	}
	return nil
}

// Collect returns the attributes of p within r.
func Collect(p Provider, r HandleRange) ([]*Attribute, error) {
	var out []*Attribute
	err := p.ForAttrsInRange(r, func(_ Provider, a *Attribute) error {
		out = append(out, a)
		return nil
	})
	return out, err
}
