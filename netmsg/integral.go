package netmsg

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/blockspacer/odamex/constraints"
)

// Integral stores a fixed-width integral value. The bit width is fixed at
// construction time, so Size is constant and no caching is needed.
type Integral[T constraints.Integer] struct {
	fieldName
	width int
	value T
}

// Instantiations for the integral kinds used by the wire format.
type (
	// U8 is an Integral holding an unsigned 8-bit value.
	U8 = Integral[uint8]
	// S8 is an Integral holding a signed 8-bit value.
	S8 = Integral[int8]
	// U16 is an Integral holding an unsigned 16-bit value.
	U16 = Integral[uint16]
	// S16 is an Integral holding a signed 16-bit value.
	S16 = Integral[int16]
	// U32 is an Integral holding an unsigned 32-bit value.
	U32 = Integral[uint32]
	// S32 is an Integral holding a signed 32-bit value.
	S32 = Integral[int32]
)

// NewIntegral creates a component holding value, encoded in width bits.
// The width must lie in [1, 32]; values wider than the given width are
// truncated to it on write.
func NewIntegral[T constraints.Integer](value T, width int) *Integral[T] {
	if width < 1 || width > 32 {
		panic(fmt.Sprintf("illegal bit width %d in netmsg.NewIntegral", width))
	}

	return &Integral[T]{
		width: width,
		value: value,
	}
}

// NewU8 creates a component holding an unsigned 8-bit value.
func NewU8(value uint8) *U8 { return NewIntegral(value, 8) }

// NewS8 creates a component holding a signed 8-bit value.
func NewS8(value int8) *S8 { return NewIntegral(value, 8) }

// NewU16 creates a component holding an unsigned 16-bit value.
func NewU16(value uint16) *U16 { return NewIntegral(value, 16) }

// NewS16 creates a component holding a signed 16-bit value.
func NewS16(value int16) *S16 { return NewIntegral(value, 16) }

// NewU32 creates a component holding an unsigned 32-bit value.
func NewU32(value uint32) *U32 { return NewIntegral(value, 32) }

// NewS32 creates a component holding a signed 32-bit value.
func NewS32(value int32) *S32 { return NewIntegral(value, 32) }

// Size returns the component's fixed bit width.
func (i *Integral[T]) Size() int {
	return i.width
}

// Clear resets the held value to zero.
func (i *Integral[T]) Clear() {
	i.value = 0
}

// Get returns the held value.
func (i *Integral[T]) Get() T {
	return i.value
}

// Set sets the held value.
func (i *Integral[T]) Set(value T) {
	i.value = value
}

// Read reads the value as a raw bit pattern of the component's width.
func (i *Integral[T]) Read(stream BitReadStream) (int, error) {
	raw, err := stream.ReadBits(i.width)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to read %d bit integral field", i.width)
	}
	i.value = integralFromWire[T](raw, i.width)

	return i.width, nil
}

// Write writes the value as a raw bit pattern of the component's width,
// without sign extension beyond the stored width.
func (i *Integral[T]) Write(stream BitWriteStream) (int, error) {
	if err := stream.WriteBits(integralToWire(i.value, i.width), i.width); err != nil {
		return 0, errors.Wrapf(err, "failed to write %d bit integral field", i.width)
	}

	return i.width, nil
}

// Clone returns an independent copy of the component.
func (i *Integral[T]) Clone() Component {
	clone := *i

	return &clone
}

// Bool stores a boolean flag encoded in a single bit.
type Bool struct {
	fieldName
	value bool
}

// NewBool creates a component holding a boolean flag.
func NewBool(value bool) *Bool {
	return &Bool{value: value}
}

// Size returns 1, the fixed width of a boolean flag.
func (b *Bool) Size() int {
	return 1
}

// Clear resets the flag to false.
func (b *Bool) Clear() {
	b.value = false
}

// Get returns the held flag.
func (b *Bool) Get() bool {
	return b.value
}

// Set sets the held flag.
func (b *Bool) Set(value bool) {
	b.value = value
}

// Read reads the flag from a single bit.
func (b *Bool) Read(stream BitReadStream) (int, error) {
	raw, err := stream.ReadBits(1)
	if err != nil {
		return 0, errors.Wrap(err, "failed to read boolean field")
	}
	b.value = raw != 0

	return 1, nil
}

// Write writes the flag as a single bit.
func (b *Bool) Write(stream BitWriteStream) (int, error) {
	var raw uint32
	if b.value {
		raw = 1
	}
	if err := stream.WriteBits(raw, 1); err != nil {
		return 0, errors.Wrap(err, "failed to write boolean field")
	}

	return 1, nil
}

// Clone returns an independent copy of the component.
func (b *Bool) Clone() Component {
	clone := *b

	return &clone
}

// integralToWire truncates value to the raw unsigned bit pattern of the
// given width.
func integralToWire[T constraints.Integer](value T, width int) uint32 {
	mask := uint64(1)<<uint(width) - 1

	return uint32(uint64(value) & mask)
}

// integralFromWire reconstructs a value of type T from its raw bit pattern,
// sign extending from the stored width for signed kinds.
func integralFromWire[T constraints.Integer](raw uint32, width int) T {
	if isSigned[T]() && raw&(1<<uint(width-1)) != 0 {
		return T(int64(uint64(raw) | ^uint64(0)<<uint(width)))
	}

	return T(raw)
}

func isSigned[T constraints.Integer]() bool {
	var zero T

	return zero-1 < zero
}

var (
	_ Component = (*U8)(nil)
	_ Component = (*Bool)(nil)
)
