package netmsg

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/cockroachdb/errors"
)

// Range stores an int32 known to lie within inclusive bounds and encodes it
// as the offset from the lower bound, using the minimum number of bits that
// can represent the span.
//
// The bit width only depends on the bounds, so it is computed lazily on the
// first Size call and cached until the bounds are reassigned. The value is
// expected to lie within the bounds; Write fails with ErrValueOutOfRange
// instead of clamping, since silent clamping would corrupt the protocol
// undetected.
type Range struct {
	fieldName
	cachedSizeValid bool
	cachedSize      int

	value      int32
	lowerBound int32
	upperBound int32
}

// NewRange creates a component bounded by the full signed 32-bit range.
func NewRange(value int32) *Range {
	return NewBoundedRange(value, math.MinInt32, math.MaxInt32)
}

// NewBoundedRange creates a component holding value, known to lie within
// [lowerBound, upperBound].
func NewBoundedRange(value int32, lowerBound int32, upperBound int32) *Range {
	if lowerBound > upperBound {
		panic(fmt.Sprintf("illegal bounds [%d, %d] in netmsg.NewBoundedRange", lowerBound, upperBound))
	}

	return &Range{
		value:      value,
		lowerBound: lowerBound,
		upperBound: upperBound,
	}
}

// Size returns the number of bits needed to represent the declared span,
// ceil(log2(upperBound-lowerBound+1)). Equal bounds encode in zero bits.
func (r *Range) Size() int {
	if !r.cachedSizeValid {
		span := uint64(int64(r.upperBound) - int64(r.lowerBound))
		r.cachedSize = bits.Len64(span)
		r.cachedSizeValid = true
	}

	return r.cachedSize
}

// Clear resets the held value to zero. The bounds are left untouched.
func (r *Range) Clear() {
	r.value = 0
}

// Get returns the held value.
func (r *Range) Get() int32 {
	return r.value
}

// Set sets the held value. The value does not change the bit width, only
// whether it fits at write time.
func (r *Range) Set(value int32) {
	r.value = value
}

// Bounds returns the inclusive bounds of the component.
func (r *Range) Bounds() (lowerBound int32, upperBound int32) {
	return r.lowerBound, r.upperBound
}

// SetBounds reassigns the inclusive bounds and invalidates the cached bit
// width.
func (r *Range) SetBounds(lowerBound int32, upperBound int32) {
	if lowerBound > upperBound {
		panic(fmt.Sprintf("illegal bounds [%d, %d] in Range.SetBounds", lowerBound, upperBound))
	}

	r.lowerBound = lowerBound
	r.upperBound = upperBound
	r.cachedSizeValid = false
}

// Read decodes the unsigned offset field and adds the lower bound back to
// reconstruct the value. A decoded value beyond the upper bound fails with
// ErrValueOutOfRange, leaving the previously held value in place.
func (r *Range) Read(stream BitReadStream) (int, error) {
	size := r.Size()

	raw, err := stream.ReadBits(size)
	if err != nil {
		return 0, errors.Wrap(err, "failed to read range field")
	}

	decoded := int64(r.lowerBound) + int64(raw)
	if decoded > int64(r.upperBound) {
		return size, errors.Wrapf(ErrValueOutOfRange, "decoded value %d exceeds upper bound %d", decoded, r.upperBound)
	}
	r.value = int32(decoded)

	return size, nil
}

// Write encodes value - lowerBound as an unsigned integer of the span's bit
// width. A value outside of the bounds fails with ErrValueOutOfRange.
func (r *Range) Write(stream BitWriteStream) (int, error) {
	if r.value < r.lowerBound || r.value > r.upperBound {
		return 0, errors.Wrapf(ErrValueOutOfRange, "value %d outside of [%d, %d]", r.value, r.lowerBound, r.upperBound)
	}

	size := r.Size()
	if err := stream.WriteBits(uint32(int64(r.value)-int64(r.lowerBound)), size); err != nil {
		return 0, errors.Wrap(err, "failed to write range field")
	}

	return size, nil
}

// Clone returns an independent copy of the component.
func (r *Range) Clone() Component {
	clone := *r

	return &clone
}

var _ Component = (*Range)(nil)
