package quadboard

import (
	"testing"

	"github.com/zeebo/assert"
	"github.com/zeebo/pcg"
)

func TestLinear(t *testing.T) {
	t.Run("Basic", func(t *testing.T) {
		var l Linear
		l.Set(ix(0), nib(1))
		l.Set(ix(1), nib(2))
		l.Set(ix(63), nib(0xf))

		assert.Equal(t, l[0], byte(0x21))
		assert.Equal(t, l[31], byte(0xf0))
		assert.Equal(t, l.Get(ix(0)), nib(1))
		assert.Equal(t, l.Get(ix(1)), nib(2))
		assert.Equal(t, l.Get(MaxIndex), MaxNibble)
	})

	t.Run("Transpose", func(t *testing.T) {
		var r Raw
		r.SetUnchecked(0, nib(0b1111))
		r.SetUnchecked(5, nib(0b1101))
		r.SetUnchecked(32, nib(0b1111))
		r.SetUnchecked(63, nib(0b0111))

		l := r.Linear()
		assert.Equal(t, l[0], byte(0x0f))
		assert.Equal(t, l[2], byte(0xd0))
		assert.Equal(t, l[16], byte(0x0f))
		assert.Equal(t, l[31], byte(0x70))
		assert.Equal(t, l.Transpose(), r)
	})

	t.Run("Fuzz", func(t *testing.T) {
		var r Raw
		var l Linear

		for j := 0; j < 1000; j++ {
			i, v := randIndex(), randNibble()
			r.Set(i, v)
			l.Set(i, v)
			assert.Equal(t, r.Linear(), l)
			assert.Equal(t, l.Transpose(), r)
		}
	})
}

func TestNibbleReader(t *testing.T) {
	buf := make([]byte, 5)
	nr := newNibbleReader(buf)
	assert.Equal(t, nr.Len(), uint(10))

	exp := make([]uint8, nr.Len())
	for j := 0; j < 100; j++ {
		i, v := uint(pcg.Uint32n(uint32(nr.Len()))), uint8(pcg.Uint32n(16))
		nr.Put(i, v)
		exp[i] = v
		for i := range exp {
			assert.Equal(t, nr.Get(uint(i)), exp[i])
		}
	}
}

func BenchmarkLinear(b *testing.B) {
	r := Splat(nib(0b1010))
	l := r.Linear()

	b.Run("Linear", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			r.Linear()
		}
	})

	b.Run("Transpose", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			l.Transpose()
		}
	})
}
