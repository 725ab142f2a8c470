package quadboard

// nibbleReader abstracts reading 4 bit values from a byte array where
// the values are packed two to a byte, lowest order nibble first.
type nibbleReader struct {
	buf []byte
}

func newNibbleReader(buf []byte) nibbleReader {
	return nibbleReader{buf: buf}
}

func (nr nibbleReader) Len() uint { return uint(len(nr.buf)) * 2 }

func (nr nibbleReader) Get(idx uint) uint8 {
	return nr.buf[idx/2] >> (idx % 2 * 4) & 0xf
}

func (nr nibbleReader) Put(idx uint, val uint8) {
	b, o := &nr.buf[idx/2], idx%2*4
	*b &^= 0xf << o
	*b |= val & 0xf << o
}
