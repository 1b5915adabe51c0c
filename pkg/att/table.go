package att

// A Table is a contiguous, array-backed range of attributes.
type Table struct {
	attrs    []Attribute
	base     Handle   // handle of attrs[0]
	grouping UUID     // attribute type that opens a group
	groupEnd []uint16 // per attribute: index of the last attribute of its group, or noGroup
}

const noGroup = 0xFFFF

// PrimaryService is the attribute type that opens a group in a Table.
var PrimaryService = UUID16(0x2800)

// NewTable validates attrs and returns a Table serving them. attrs[i] must
// have handle base+i.
//
// Each Primary Service declaration opens a group that lasts until the
// attribute before the next declaration, or the end of the table.
// Attributes before the first declaration belong to no group.
func NewTable(base Handle, attrs []Attribute) (*Table, error) {
	if !base.IsValid() {
		return nil, &LayoutError{Handle: base, Reason: "base handle is reserved"}
	}
	if int(base)+len(attrs)-1 > int(HandleMax) {
		return nil, &LayoutError{Handle: HandleMax, Reason: "table overflows the handle space"}
	}
	for i := range attrs {
		if want := base + Handle(i); attrs[i].Handle != want {
			return nil, &LayoutError{Handle: attrs[i].Handle, Reason: "expected " + want.String()}
		}
	}

	t := &Table{
		attrs:    attrs,
		base:     base,
		grouping: PrimaryService,
		groupEnd: make([]uint16, len(attrs)),
	}
	t.indexGroups()
	return t, nil
}

// indexGroups computes the group end of every attribute in one backward pass.
func (t *Table) indexGroups() {
	end := len(t.attrs) - 1
	for i := len(t.attrs) - 1; i >= 0; i-- {
		t.groupEnd[i] = uint16(end)
		if t.attrs[i].Type.Equal(t.grouping) {
			end = i - 1
		}
	}
	for i := range t.attrs {
		if t.attrs[i].Type.Equal(t.grouping) {
			break
		}
		t.groupEnd[i] = noGroup
	}
}

// Len returns the number of attributes.
func (t *Table) Len() int { return len(t.attrs) }

// Base returns the handle of the first attribute.
func (t *Table) Base() Handle { return t.base }

// Last returns the handle of the last attribute, or HandleInvalid for an
// empty table.
func (t *Table) Last() Handle {
	if len(t.attrs) == 0 {
		return HandleInvalid
	}
	return t.base + Handle(len(t.attrs)-1)
}

// At returns the attribute at handle h.
func (t *Table) At(h Handle) (*Attribute, bool) {
	i := index(t.base, len(t.attrs), int(h))
	if i < 0 {
		return nil, false
	}
	return &t.attrs[i], true
}

func (t *Table) ForAttrsInRange(r HandleRange, f Visitor) error {
	return VisitSlice(t, t.attrs, t.base, r, f)
}

func (t *Table) IsGroupingAttr(uuid UUID) bool {
	return uuid.Equal(t.grouping)
}

func (t *Table) GroupEnd(h Handle) (*Attribute, bool) {
	i := index(t.base, len(t.attrs), int(h))
	if i < 0 || t.groupEnd[i] == noGroup {
		return nil, false
	}
	return &t.attrs[t.groupEnd[i]], true
}
