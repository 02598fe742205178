package overlay

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// record is a padding-free fixed layout, 16 bytes, 8-byte alignment.
type record struct {
	A uint64
	B uint32
	C uint16
	D [2]byte
}

const recordSize = 16

// sink pins buffers so they escape to the heap, where make's 8-byte
// allocation alignment guarantees that a [1:] sub-slice is misaligned; a
// stack-allocated []byte has no such alignment and the base itself can sit
// at an odd address.
var sink []byte

func fill(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i + 1)
	}
	return b
}

func TestNewTooShort(t *testing.T) {
	for n := 0; n < recordSize; n++ {
		require.Nilf(t, New[record](fill(n)), "length %d must not produce a view", n)
	}
}

func TestNewExactAndTrailing(t *testing.T) {
	require.NotNil(t, New[record](fill(recordSize)))
	require.NotNil(t, New[record](fill(recordSize+13)))
}

func TestBorrowedIdentity(t *testing.T) {
	buf := fill(recordSize + 8)

	v := New[record](buf)
	require.NotNil(t, v)
	assert.True(t, v.Borrowed())

	// Zero copying means zero transformation: the view's bytes are the
	// buffer's first recordSize bytes at every offset.
	assert.True(t, bytes.Equal(buf[:recordSize], v.Bytes()))

	assert.Equal(t, uint64(0x0807060504030201), v.Value().A)
	assert.Equal(t, uint32(0x0c0b0a09), v.Value().B)
	assert.Equal(t, uint16(0x0e0d), v.Value().C)
	assert.Equal(t, [2]byte{0x0f, 0x10}, v.Value().D)
}

func TestUnalignedCopyEquivalence(t *testing.T) {
	buf := fill(recordSize)

	aligned := New[record](buf)
	require.NotNil(t, aligned)
	require.True(t, aligned.Borrowed())

	// The same logical bytes at an odd address force the copy path for
	// an 8-aligned record. Decoding must not change.
	shifted := make([]byte, recordSize+1)
	sink = shifted
	copy(shifted[1:], buf)
	v := New[record](shifted[1:])
	require.NotNil(t, v)
	assert.False(t, v.Borrowed())

	if diff := cmp.Diff(*aligned.Value(), *v.Value()); diff != "" {
		t.Errorf("decoded record mismatch (-borrowed +owned):\n%s", diff)
	}
	assert.True(t, bytes.Equal(buf, v.Bytes()))
}

func TestOwnedCopyIsIndependent(t *testing.T) {
	shifted := make([]byte, recordSize+1)
	sink = shifted
	src := shifted[1:]
	src[0] = 0x7f

	v := New[record](src)
	require.NotNil(t, v)
	require.False(t, v.Borrowed())

	src[0] = 0
	assert.EqualValues(t, 0x7f, v.Bytes()[0])
}

func TestBorrowedAliasesSource(t *testing.T) {
	buf := fill(recordSize)
	v := New[record](buf)
	require.NotNil(t, v)
	require.True(t, v.Borrowed())

	buf[0] = 0xaa
	assert.EqualValues(t, 0xaa, v.Bytes()[0])
}
