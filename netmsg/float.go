package netmsg

import (
	"github.com/cockroachdb/errors"
)

const floatSize = 32

// Float stores a 32-bit IEEE-754 floating point value. The encoding is a
// pass-through to the stream's float primitive; no range or NaN handling is
// performed.
type Float struct {
	fieldName
	value float32
}

// NewFloat creates a component holding a 32-bit floating point value.
func NewFloat(value float32) *Float {
	return &Float{value: value}
}

// Size returns 32, the fixed width of the encoding.
func (f *Float) Size() int {
	return floatSize
}

// Clear resets the held value to zero.
func (f *Float) Clear() {
	f.value = 0
}

// Get returns the held value.
func (f *Float) Get() float32 {
	return f.value
}

// Set sets the held value.
func (f *Float) Set(value float32) {
	f.value = value
}

// Read reads the value from the stream's float primitive.
func (f *Float) Read(stream BitReadStream) (int, error) {
	value, err := stream.ReadFloat()
	if err != nil {
		return 0, errors.Wrap(err, "failed to read float field")
	}
	f.value = value

	return floatSize, nil
}

// Write writes the value to the stream's float primitive.
func (f *Float) Write(stream BitWriteStream) (int, error) {
	if err := stream.WriteFloat(f.value); err != nil {
		return 0, errors.Wrap(err, "failed to write float field")
	}

	return floatSize, nil
}

// Clone returns an independent copy of the component.
func (f *Float) Clone() Component {
	clone := *f

	return &clone
}

var _ Component = (*Float)(nil)
