package quadboard

// Nibble is a 4 bit unsigned value in [0, 16). NewNibble and
// NibbleUnchecked are the only ways to make one. The zero value is 0.
type Nibble struct {
	v uint8
}

// MaxNibble is the largest value a Nibble can hold.
var MaxNibble = Nibble{v: 0xf}

// IsValidNibble reports if v fits in 4 bits.
func IsValidNibble(v uint8) bool { return v&0xf0 == 0 }

// NewNibble returns v as a Nibble, failing if v does not fit in 4 bits.
func NewNibble(v uint8) (Nibble, error) {
	if !IsValidNibble(v) {
		return Nibble{}, NibbleError.New("%d is greater than 15", v)
	}
	return Nibble{v: v}, nil
}

// NibbleUnchecked returns v as a Nibble. v must be less than 16.
func NibbleUnchecked(v uint8) Nibble {
	if debugChecks && !IsValidNibble(v) {
		panic(NibbleError.New("%d is greater than 15", v))
	}
	return Nibble{v: v}
}

// AllNibbles returns every Nibble in increasing order.
func AllNibbles() (out [16]Nibble) {
	for i := range out {
		out[i] = Nibble{v: uint8(i)}
	}
	return out
}

func (n Nibble) Uint8() uint8 { return n.v }

// Bit returns the kth bit of n as either 0 or 1.
func (n Nibble) Bit(k uint) uint64 { return uint64(n.v>>k) & 1 }
