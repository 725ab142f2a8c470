package quadboard

import "math"

//
// a raw board is a 64x4 bit matrix stored as four channels. bit i of
// channel k is bit k of the nibble in slot i:
//
//            slot 63                                          slot 0
//            v                                                v
// channel 0  a............................................... e   bit 0
// channel 1  b............................................... f   bit 1
// channel 2  c............................................... g   bit 2
// channel 3  d............................................... h   bit 3
//
// so slot 0 holds hgfe and slot 63 holds dcba. every operation is a fixed
// sequence of masks and shifts on the slot index; none of them branch on it.
//

// Raw is an untyped board of 64 nibbles. The zero value holds 0 in every
// slot.
type Raw struct {
	channels [4]uint64
}

// Splat returns a Raw with every slot set to n.
func Splat(n Nibble) Raw {
	// bit k of n is either 0 or 1, so the product is either 0 or all ones.
	return Raw{channels: [4]uint64{
		n.Bit(0) * math.MaxUint64,
		n.Bit(1) * math.MaxUint64,
		n.Bit(2) * math.MaxUint64,
		n.Bit(3) * math.MaxUint64,
	}}
}

// FromChannels returns a Raw backed by the given channels, in order.
func FromChannels(channels [4]uint64) Raw { return Raw{channels: channels} }

// Channels returns the four channel words, channel 0 first.
func (r Raw) Channels() [4]uint64 { return r.channels }

func (r Raw) Get(idx Index) Nibble     { return r.GetUnchecked(idx.v) }
func (r *Raw) Set(idx Index, n Nibble) { r.SetUnchecked(idx.v, n) }

// GetAt returns the nibble at i, failing if i is outside of [0, 64).
func (r Raw) GetAt(i int) (Nibble, error) {
	idx, err := IndexOf(i)
	if err != nil {
		return Nibble{}, err
	}
	return r.Get(idx), nil
}

// SetAt writes n to slot i, failing if i is outside of [0, 64).
func (r *Raw) SetAt(i int, n Nibble) error {
	idx, err := IndexOf(i)
	if err != nil {
		return err
	}
	r.Set(idx, n)
	return nil
}

// GetUnchecked returns the nibble at idx. idx must be less than 64.
func (r Raw) GetUnchecked(idx uint8) Nibble {
	mask := uint64(1) << idx

	// each term is a single bit at a distinct position in [0, 4), so the
	// sum never carries.
	sum := (r.channels[0]&mask)>>idx<<0 +
		(r.channels[1]&mask)>>idx<<1 +
		(r.channels[2]&mask)>>idx<<2 +
		(r.channels[3]&mask)>>idx<<3

	return NibbleUnchecked(uint8(sum))
}

// SetUnchecked writes n to slot idx. idx must be less than 64.
func (r *Raw) SetUnchecked(idx uint8, n Nibble) {
	keep := ^(uint64(1) << idx)
	for k := range r.channels {
		r.channels[k] = r.channels[k]&keep | n.Bit(uint(k))<<idx
	}
}

// Match returns a bitboard with bit i set when slot i holds n.
func (r Raw) Match(n Nibble) uint64 {
	m := uint64(math.MaxUint64)
	for k, ch := range r.channels {
		m &^= ch ^ n.Bit(uint(k))*math.MaxUint64
	}
	return m
}

// NonZero returns a bitboard with bit i set when slot i holds anything but 0.
func (r Raw) NonZero() uint64 {
	return r.channels[0] | r.channels[1] | r.channels[2] | r.channels[3]
}

// Nibbles returns every slot in index order.
func (r Raw) Nibbles() (out [64]Nibble) {
	for i := range out {
		out[i] = r.GetUnchecked(uint8(i))
	}
	return out
}
