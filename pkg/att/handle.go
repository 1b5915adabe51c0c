package att

import "fmt"

// Handle addresses one attribute in a provider's table. 0x0000 is reserved.
type Handle uint16

const (
	HandleInvalid Handle = 0x0000
	HandleMin     Handle = 0x0001
	HandleMax     Handle = 0xFFFF
)

// IsValid reports whether h may be assigned to an attribute.
func (h Handle) IsValid() bool {
	return h != HandleInvalid
}

func (h Handle) String() string {
	return fmt.Sprintf("0x%04X", uint16(h))
}

// HandleRange is the inclusive handle window [Start, End] of a query.
type HandleRange struct {
	Start Handle
	End   Handle
}

// FullRange covers every assignable handle.
var FullRange = HandleRange{Start: HandleMin, End: HandleMax}

// NewHandleRange validates a range the way an ATT server must before
// answering a request: Start must be non-zero and not past End.
func NewHandleRange(start, end Handle) (HandleRange, error) {
	if !start.IsValid() {
		return HandleRange{}, fmt.Errorf("%w: start handle %s", ErrInvalidHandle, start)
	}
	if start > end {
		return HandleRange{}, fmt.Errorf("%w: %s > %s", ErrInvalidRange, start, end)
	}
	return HandleRange{Start: start, End: end}, nil
}

// Contains reports whether h lies in r.
func (r HandleRange) Contains(h Handle) bool {
	return r.Start <= h && h <= r.End
}

func (r HandleRange) String() string {
	return fmt.Sprintf("[%s, %s]", r.Start, r.End)
}

const (
	tooSmall = -1
	tooLarge = -2
)

// index maps handle h onto a table of n attributes starting at base.
// If h is below base, index returns tooSmall (-1).
// If h is past the last attribute, index returns tooLarge (-2).
func index(base Handle, n int, h int) int {
	if h < int(base) {
		return tooSmall
	}
	if h >= int(base)+n {
		return tooLarge
	}
	return h - int(base)
}

// Bounds returns the half-open index window [lo, hi) of r within a table of
// n attributes whose first handle is base. An empty window has lo == hi.
// Bounds does not panic for out-of-range or reversed ranges.
func Bounds(base Handle, n int, r HandleRange) (lo, hi int) {
	if r.Start > r.End {
		return 0, 0
	}

	lo = index(base, n, int(r.Start))
	switch lo {
	case tooSmall:
		lo = 0
	case tooLarge:
		return 0, 0
	}

	hi = index(base, n, int(r.End)+1) // [start, end] includes its upper bound!
	switch hi {
	case tooSmall:
		return 0, 0
	case tooLarge:
		hi = n
	}
	return lo, hi
}
