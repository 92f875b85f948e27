// Package bitfield provides a variable-width vector of boolean flags.
package bitfield

// BitField is a fixed-width vector of boolean flags, indexed from 0.
// Accessing a position outside of the configured width is a no-op for
// mutators and yields false for queries.
type BitField struct {
	bits []byte
	size int
}

// New creates a BitField holding numBits flags, all unset.
func New(numBits int) BitField {
	if numBits < 0 {
		numBits = 0
	}

	return BitField{
		bits: make([]byte, (numBits+7)/8),
		size: numBits,
	}
}

// Size returns the number of flags held by the BitField.
func (b BitField) Size() int {
	return b.size
}

// Has checks whether the flag at the given position is set.
func (b BitField) Has(pos int) bool {
	if pos < 0 || pos >= b.size {
		return false
	}

	return b.bits[pos/8]&(1<<uint(pos%8)) != 0
}

// Set sets the flag at the given position.
func (b *BitField) Set(pos int) {
	if pos < 0 || pos >= b.size {
		return
	}
	b.bits[pos/8] |= 1 << uint(pos%8)
}

// Unset clears the flag at the given position.
func (b *BitField) Unset(pos int) {
	if pos < 0 || pos >= b.size {
		return
	}
	b.bits[pos/8] &^= 1 << uint(pos%8)
}

// Clear unsets every flag without changing the width.
func (b *BitField) Clear() {
	for i := range b.bits {
		b.bits[i] = 0
	}
}

// Resize changes the width of the BitField to numBits. Flags below the new
// width keep their state, flags beyond it are discarded.
func (b *BitField) Resize(numBits int) {
	if numBits < 0 {
		numBits = 0
	}

	resized := New(numBits)
	for i := 0; i < numBits && i < b.size; i++ {
		if b.Has(i) {
			resized.Set(i)
		}
	}
	*b = resized
}

// Clone returns a copy of the BitField that shares no state with the original.
func (b BitField) Clone() BitField {
	clone := BitField{
		bits: make([]byte, len(b.bits)),
		size: b.size,
	}
	copy(clone.bits, b.bits)

	return clone
}
