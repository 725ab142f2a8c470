package quadboard

// Codec converts between element values and the nibbles stored for them.
// Encode must accept every T. Decode may fail for nibbles that do not name
// a T; its error is handed back to callers untouched.
//
// Codecs are used through their zero value, so implementations are
// usually empty structs.
type Codec[T any] interface {
	Encode(T) Nibble
	Decode(Nibble) (T, error)
}

// EmptyCodec is a Codec with a canonical nibble for "no element".
type EmptyCodec[T any] interface {
	Codec[T]
	Empty() Nibble
}

// Board is a fixed array of 64 T values stored in 32 bytes. The zero value
// holds nibble 0 in every slot.
type Board[T any, C Codec[T]] struct {
	raw Raw
}

// Empty returns a Board with every slot holding the codec's empty nibble.
func Empty[T any, C EmptyCodec[T]]() Board[T, C] {
	var c C
	return Board[T, C]{raw: Splat(c.Empty())}
}

// FromRaw returns a Board reading its slots from raw.
func FromRaw[T any, C Codec[T]](raw Raw) Board[T, C] {
	return Board[T, C]{raw: raw}
}

// Raw returns a copy of the underlying untyped board.
func (b Board[T, C]) Raw() Raw { return b.raw }

func (b Board[T, C]) Read(idx Index) (T, error) { return b.ReadUnchecked(idx.v) }
func (b *Board[T, C]) Write(idx Index, v T)     { b.WriteUnchecked(idx.v, v) }

// ReadUnchecked decodes the value at idx. idx must be less than 64.
func (b Board[T, C]) ReadUnchecked(idx uint8) (T, error) {
	var c C
	return c.Decode(b.raw.GetUnchecked(idx))
}

// WriteUnchecked encodes v into slot idx. idx must be less than 64.
func (b *Board[T, C]) WriteUnchecked(idx uint8, v T) {
	var c C
	b.raw.SetUnchecked(idx, c.Encode(v))
}

// ReadAt decodes the value at i, failing if i is outside of [0, 64) or if
// the stored nibble does not decode.
func (b Board[T, C]) ReadAt(i int) (v T, err error) {
	idx, err := IndexOf(i)
	if err != nil {
		return v, err
	}
	return b.Read(idx)
}

// WriteAt encodes v into slot i, failing if i is outside of [0, 64).
func (b *Board[T, C]) WriteAt(i int, v T) error {
	idx, err := IndexOf(i)
	if err != nil {
		return err
	}
	b.Write(idx, v)
	return nil
}

// Slot is the result of decoding a single slot.
type Slot[T any] struct {
	Value T
	Err   error
}

// ToArray decodes every slot in index order.
func (b Board[T, C]) ToArray() (out [64]Slot[T]) {
	for i := range out {
		out[i].Value, out[i].Err = b.ReadUnchecked(uint8(i))
	}
	return out
}

// NibbleCodec stores nibbles as themselves, with 0 as the empty nibble.
type NibbleCodec struct{}

func (NibbleCodec) Encode(n Nibble) Nibble          { return n }
func (NibbleCodec) Decode(n Nibble) (Nibble, error) { return n, nil }
func (NibbleCodec) Empty() Nibble                   { return Nibble{} }
