package quadboard

// Index is a slot position in [0, 64). NewIndex, IndexOf and IndexUnchecked
// are the only ways to make one, so consumers of an Index do not bounds
// check it. The zero value is slot 0.
type Index struct {
	v uint8
}

var (
	MinIndex = Index{v: 0}
	MaxIndex = Index{v: 63}
)

// IsValidIndex reports if v can be used as an Index. A uint8 is less than
// 64 exactly when its two upper bits are clear, which is also what lets
// OptIndex store "no index" in the same byte.
func IsValidIndex(v uint8) bool { return v&0b1100_0000 == 0 }

// NewIndex returns v as an Index, failing if v is 64 or more.
func NewIndex(v uint8) (Index, error) {
	if !IsValidIndex(v) {
		return Index{}, IndexError.New("%d is greater than 63", v)
	}
	return Index{v: v}, nil
}

// IndexOf returns v as an Index, failing if v is outside of [0, 64).
func IndexOf(v int) (Index, error) {
	if v < 0 || v > int(MaxIndex.v) {
		return Index{}, IndexError.New("%d is outside of [0, 64)", v)
	}
	return Index{v: uint8(v)}, nil
}

// IndexUnchecked returns v as an Index without checking it. v must be less
// than 64. Building with the quadboard_debug tag turns the precondition
// into a panic.
func IndexUnchecked(v uint8) Index {
	if debugChecks && !IsValidIndex(v) {
		panic(IndexError.New("%d is greater than 63", v))
	}
	return Index{v: v}
}

// AllIndexes returns every Index in increasing order.
func AllIndexes() (out [64]Index) {
	for i := range out {
		out[i] = Index{v: uint8(i)}
	}
	return out
}

func (i Index) Uint8() uint8 { return i.v }
func (i Index) Int() int     { return int(i.v) }

//
// optional index
//

// OptIndex is an Index that may be absent. It is the same size as an
// Index: every pattern with one of the upper two bits set means absent.
type OptIndex uint8

// NoIndex is the absent OptIndex.
const NoIndex OptIndex = 0xff

func SomeIndex(i Index) OptIndex { return OptIndex(i.v) }

func (o OptIndex) Valid() bool { return IsValidIndex(uint8(o)) }

// Get returns the index and true if o is present.
func (o OptIndex) Get() (Index, bool) {
	if !o.Valid() {
		return Index{}, false
	}
	return Index{v: uint8(o)}, true
}
