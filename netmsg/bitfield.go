package netmsg

import (
	"github.com/cockroachdb/errors"

	"github.com/blockspacer/odamex/ds/bitfield"
)

// BitField stores a packed vector of boolean flags of configurable width,
// encoded as one bit per flag in declaration order.
type BitField struct {
	fieldName
	field bitfield.BitField
}

// NewBitField creates a component holding numFields unset flags.
func NewBitField(numFields int) *BitField {
	return &BitField{field: bitfield.New(numFields)}
}

// NewBitFieldFromValue creates a component holding a copy of the given bit
// field.
func NewBitFieldFromValue(value bitfield.BitField) *BitField {
	return &BitField{field: value.Clone()}
}

// Size returns the configured flag count in bits.
func (b *BitField) Size() int {
	return b.field.Size()
}

// Clear unsets every flag.
func (b *BitField) Clear() {
	b.field.Clear()
}

// Get returns a copy of the held bit field.
func (b *BitField) Get() bitfield.BitField {
	return b.field.Clone()
}

// Set replaces the held bit field with a copy of the given one.
func (b *BitField) Set(value bitfield.BitField) {
	b.field = value.Clone()
}

// SetBit sets the flag at the given position.
func (b *BitField) SetBit(pos int) {
	b.field.Set(pos)
}

// ClearBit unsets the flag at the given position.
func (b *BitField) ClearBit(pos int) {
	b.field.Unset(pos)
}

// HasBit checks whether the flag at the given position is set.
func (b *BitField) HasBit(pos int) bool {
	return b.field.Has(pos)
}

// Resize changes the flag count, preserving the state of flags below the
// new width.
func (b *BitField) Resize(numFields int) {
	b.field.Resize(numFields)
}

// Read unpacks the configured number of flags from the stream.
func (b *BitField) Read(stream BitReadStream) (int, error) {
	for i := 0; i < b.field.Size(); i++ {
		raw, err := stream.ReadBits(1)
		if err != nil {
			return i, errors.Wrapf(err, "failed to read bit field flag %d", i)
		}
		if raw != 0 {
			b.field.Set(i)
		} else {
			b.field.Unset(i)
		}
	}

	return b.field.Size(), nil
}

// Write packs the configured number of flags onto the stream.
func (b *BitField) Write(stream BitWriteStream) (int, error) {
	for i := 0; i < b.field.Size(); i++ {
		var raw uint32
		if b.field.Has(i) {
			raw = 1
		}
		if err := stream.WriteBits(raw, 1); err != nil {
			return i, errors.Wrapf(err, "failed to write bit field flag %d", i)
		}
	}

	return b.field.Size(), nil
}

// Clone returns an independent copy of the component.
func (b *BitField) Clone() Component {
	return &BitField{
		fieldName: b.fieldName,
		field:     b.field.Clone(),
	}
}

var _ Component = (*BitField)(nil)
