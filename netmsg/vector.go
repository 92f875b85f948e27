package netmsg

import (
	"github.com/cockroachdb/errors"
)

// Fixed is a 32-bit signed fixed-point number, the coordinate format of the
// wire protocol.
type Fixed int32

// Vec2 is a two-dimensional fixed-point vector.
type Vec2 struct {
	X Fixed
	Y Fixed
}

// Vec3 is a three-dimensional fixed-point vector.
type Vec3 struct {
	X Fixed
	Y Fixed
	Z Fixed
}

// V2Fixed stores a two-dimensional fixed-point vector, encoded as two
// independent 32-bit signed fields in axis order.
type V2Fixed struct {
	fieldName
	value Vec2
}

// NewV2Fixed creates a component holding a two-dimensional vector.
func NewV2Fixed(value Vec2) *V2Fixed {
	return &V2Fixed{value: value}
}

// Size returns 2 * 32, the fixed width of the encoding.
func (v *V2Fixed) Size() int {
	return 2 * 32
}

// Clear resets the held vector to the zero vector.
func (v *V2Fixed) Clear() {
	v.value = Vec2{}
}

// Get returns the held vector.
func (v *V2Fixed) Get() Vec2 {
	return v.value
}

// Set sets the held vector.
func (v *V2Fixed) Set(value Vec2) {
	v.value = value
}

// Read reads the x and y fields in declared order.
func (v *V2Fixed) Read(stream BitReadStream) (int, error) {
	x, err := stream.ReadS32()
	if err != nil {
		return 0, errors.Wrap(err, "failed to read vector x field")
	}
	y, err := stream.ReadS32()
	if err != nil {
		return 32, errors.Wrap(err, "failed to read vector y field")
	}
	v.value = Vec2{X: Fixed(x), Y: Fixed(y)}

	return v.Size(), nil
}

// Write writes the x and y fields in declared order.
func (v *V2Fixed) Write(stream BitWriteStream) (int, error) {
	if err := stream.WriteS32(int32(v.value.X)); err != nil {
		return 0, errors.Wrap(err, "failed to write vector x field")
	}
	if err := stream.WriteS32(int32(v.value.Y)); err != nil {
		return 32, errors.Wrap(err, "failed to write vector y field")
	}

	return v.Size(), nil
}

// Clone returns an independent copy of the component.
func (v *V2Fixed) Clone() Component {
	clone := *v

	return &clone
}

// V3Fixed stores a three-dimensional fixed-point vector, encoded as three
// independent 32-bit signed fields in axis order.
type V3Fixed struct {
	fieldName
	value Vec3
}

// NewV3Fixed creates a component holding a three-dimensional vector.
func NewV3Fixed(value Vec3) *V3Fixed {
	return &V3Fixed{value: value}
}

// Size returns 3 * 32, the fixed width of the encoding.
func (v *V3Fixed) Size() int {
	return 3 * 32
}

// Clear resets the held vector to the zero vector.
func (v *V3Fixed) Clear() {
	v.value = Vec3{}
}

// Get returns the held vector.
func (v *V3Fixed) Get() Vec3 {
	return v.value
}

// Set sets the held vector.
func (v *V3Fixed) Set(value Vec3) {
	v.value = value
}

// Read reads the x, y and z fields in declared order.
func (v *V3Fixed) Read(stream BitReadStream) (int, error) {
	x, err := stream.ReadS32()
	if err != nil {
		return 0, errors.Wrap(err, "failed to read vector x field")
	}
	y, err := stream.ReadS32()
	if err != nil {
		return 32, errors.Wrap(err, "failed to read vector y field")
	}
	z, err := stream.ReadS32()
	if err != nil {
		return 64, errors.Wrap(err, "failed to read vector z field")
	}
	v.value = Vec3{X: Fixed(x), Y: Fixed(y), Z: Fixed(z)}

	return v.Size(), nil
}

// Write writes the x, y and z fields in declared order.
func (v *V3Fixed) Write(stream BitWriteStream) (int, error) {
	if err := stream.WriteS32(int32(v.value.X)); err != nil {
		return 0, errors.Wrap(err, "failed to write vector x field")
	}
	if err := stream.WriteS32(int32(v.value.Y)); err != nil {
		return 32, errors.Wrap(err, "failed to write vector y field")
	}
	if err := stream.WriteS32(int32(v.value.Z)); err != nil {
		return 64, errors.Wrap(err, "failed to write vector z field")
	}

	return v.Size(), nil
}

// Clone returns an independent copy of the component.
func (v *V3Fixed) Clone() Component {
	clone := *v

	return &clone
}

var (
	_ Component = (*V2Fixed)(nil)
	_ Component = (*V3Fixed)(nil)
)
