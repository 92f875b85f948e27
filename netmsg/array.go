package netmsg

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/blockspacer/odamex/stringify"
)

// Array stores a homogeneous, variable-length list of components. The wire
// format is a range-bounded count field followed by the elements back to
// back; since it carries no per-element type information, the array holds
// an element prototype that is cloned to materialize new slots during Read.
//
// The element count must lie within [minCount, maxCount] when the array is
// written; a violation fails with ErrCountOutOfBounds instead of clamping.
type Array struct {
	fieldName
	cachedSizeValid bool
	cachedSize      int

	minCount   int
	maxCount   int
	countField *Range
	prototype  Component
	fields     []Component
}

// NewArray creates an empty array with the given element prototype and
// inclusive count bounds. The prototype is cloned, the caller keeps
// ownership of the passed component.
func NewArray(prototype Component, minCount int, maxCount int) *Array {
	if minCount < 0 || minCount > maxCount {
		panic(fmt.Sprintf("illegal count bounds [%d, %d] in netmsg.NewArray", minCount, maxCount))
	}

	return &Array{
		minCount:   minCount,
		maxCount:   maxCount,
		countField: NewBoundedRange(int32(minCount), int32(minCount), int32(maxCount)),
		prototype:  prototype.Clone(),
	}
}

// NewUnboundedArray creates an empty array with the default count bounds
// [0, 65535].
func NewUnboundedArray(prototype Component) *Array {
	return NewArray(prototype, 0, 65535)
}

// Count returns the current number of elements.
func (a *Array) Count() int {
	return len(a.fields)
}

// CountBounds returns the inclusive element count bounds.
func (a *Array) CountBounds() (minCount int, maxCount int) {
	return a.minCount, a.maxCount
}

// At returns the element at the given index. Elements are owned by the
// array; mutating one in place requires InvalidateSize on the array
// afterwards.
func (a *Array) At(index int) (Component, bool) {
	if index < 0 || index >= len(a.fields) {
		return nil, false
	}

	return a.fields[index], true
}

// Append takes ownership of the given component and appends it to the
// array. Elements are expected to share the prototype's runtime type; the
// wire format cannot express anything else.
func (a *Array) Append(field Component) {
	a.fields = append(a.fields, field)
	a.InvalidateSize()
}

// Size returns the count field width plus the sum of the element sizes,
// cached until the next mutation of the array.
func (a *Array) Size() int {
	if !a.cachedSizeValid {
		size := a.countField.Size()
		for _, field := range a.fields {
			size += field.Size()
		}
		a.cachedSize = size
		a.cachedSizeValid = true
	}

	return a.cachedSize
}

// InvalidateSize drops the cached total size. Mutating operations on the
// array call this themselves; it only needs to be called by hand after
// mutating an element obtained via At in place.
func (a *Array) InvalidateSize() {
	a.cachedSizeValid = false
}

// Clear destroys all elements.
func (a *Array) Clear() {
	a.fields = nil
	a.countField.Clear()
	a.InvalidateSize()
}

// Read reads the bounds-checked element count, materializes that many
// elements by cloning the prototype and reads each in turn, replacing any
// prior contents.
func (a *Array) Read(stream BitReadStream) (int, error) {
	consumed, err := a.countField.Read(stream)
	if err != nil {
		if errors.Is(err, ErrValueOutOfRange) {
			return consumed, errors.Wrap(ErrCountOutOfBounds, "failed to read array count field")
		}

		return consumed, errors.Wrap(err, "failed to read array count field")
	}

	count := int(a.countField.Get())
	if count < a.minCount || count > a.maxCount {
		return consumed, errors.Wrapf(ErrCountOutOfBounds, "decoded count %d outside of [%d, %d]", count, a.minCount, a.maxCount)
	}

	a.fields = make([]Component, 0, count)
	a.InvalidateSize()
	for i := 0; i < count; i++ {
		field := a.prototype.Clone()
		fieldConsumed, err := field.Read(stream)
		consumed += fieldConsumed
		if err != nil {
			return consumed, errors.Wrapf(err, "failed to read array element %d", i)
		}
		a.fields = append(a.fields, field)
	}

	return consumed, nil
}

// Write writes the current element count through the internal count field,
// then every element in sequence.
func (a *Array) Write(stream BitWriteStream) (int, error) {
	count := len(a.fields)
	if count < a.minCount || count > a.maxCount {
		return 0, errors.Wrapf(ErrCountOutOfBounds, "count %d outside of [%d, %d]", count, a.minCount, a.maxCount)
	}

	a.countField.Set(int32(count))
	written, err := a.countField.Write(stream)
	if err != nil {
		return written, errors.Wrap(err, "failed to write array count field")
	}

	for i, field := range a.fields {
		fieldWritten, err := field.Write(stream)
		written += fieldWritten
		if err != nil {
			return written, errors.Wrapf(err, "failed to write array element %d", i)
		}
	}

	return written, nil
}

// Clone returns a deep copy of the array, its bounds, its prototype and all
// current elements.
func (a *Array) Clone() Component {
	clone := &Array{
		fieldName: a.fieldName,
		minCount:  a.minCount,
		maxCount:  a.maxCount,
		//nolint:forcetypeassert // Range.Clone returns *Range
		countField: a.countField.Clone().(*Range),
		prototype:  a.prototype.Clone(),
		fields:     make([]Component, len(a.fields)),
	}
	for i, field := range a.fields {
		clone.fields[i] = field.Clone()
	}

	return clone
}

func (a *Array) String() string {
	return stringify.Struct("Array",
		stringify.NewStructField("fieldName", a.FieldName()),
		stringify.NewStructField("count", a.Count()),
		stringify.NewStructField("size", a.Size()),
	)
}

var _ Component = (*Array)(nil)
