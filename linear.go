package quadboard

// Linear holds 64 nibbles in row-major order, two to a byte: slot i is the
// low nibble of byte i/2 when i is even and the high nibble when i is odd.
// It is the layout most other code expects, and converts to and from the
// channel layout of a Raw without loss.
type Linear [32]byte

func (l *Linear) reader() nibbleReader { return newNibbleReader(l[:]) }

func (l *Linear) Get(idx Index) Nibble    { return Nibble{v: l.reader().Get(uint(idx.v))} }
func (l *Linear) Set(idx Index, n Nibble) { l.reader().Put(uint(idx.v), n.v) }

// Linear returns the slots of r in row-major order.
func (r Raw) Linear() (l Linear) {
	nr := l.reader()
	for i := uint(0); i < nr.Len(); i++ {
		nr.Put(i, r.GetUnchecked(uint8(i)).v)
	}
	return l
}

// Transpose returns the Raw holding the same slots as l.
func (l Linear) Transpose() (r Raw) {
	nr := l.reader()
	for i := uint(0); i < nr.Len(); i++ {
		r.SetUnchecked(uint8(i), Nibble{v: nr.Get(i)})
	}
	return r
}
