package overlay

import "unsafe"

// View is a read-only projection of a fixed-layout struct over a byte
// buffer. A borrowed view points directly into the caller's buffer and is
// valid only as long as that buffer lives; an owned view holds a private
// copy and is valid on its own. Which one you get is decided once, at
// construction, and the view is never mutated afterwards.
type View[T any] struct {
	v        *T
	borrowed bool
}

// New overlays T onto the first unsafe.Sizeof(T) bytes of data and returns
// nil when data is too short. Trailing bytes are ignored. When the buffer
// start satisfies T's alignment the view borrows the bytes in place with
// zero copying; otherwise they are copied into a freshly allocated T, so
// correctness never depends on how the caller's buffer is aligned.
//
// T must be a fixed-layout struct with no implicit padding: every byte of
// the overlaid region becomes an observable field value.
func New[T any](data []byte) *View[T] {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if len(data) < size {
		return nil
	}

	p := unsafe.Pointer(unsafe.SliceData(data))
	if uintptr(p)%unsafe.Alignof(zero) == 0 {
		return &View[T]{v: (*T)(p), borrowed: true}
	}

	owned := new(T)
	copy(unsafe.Slice((*byte)(unsafe.Pointer(owned)), size), data[:size])
	return &View[T]{v: owned}
}

// Value returns the overlaid struct. The caller must not write through it.
func (v *View[T]) Value() *T { return v.v }

// Borrowed reports whether the view aliases the source buffer instead of
// owning a copy.
func (v *View[T]) Borrowed() bool { return v.borrowed }

// Bytes returns the raw bytes backing the view, read-only by convention.
func (v *View[T]) Bytes() []byte {
	var zero T
	return unsafe.Slice((*byte)(unsafe.Pointer(v.v)), unsafe.Sizeof(zero))
}
