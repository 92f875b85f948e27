package netmsg

import (
	"github.com/cockroachdb/errors"
	"github.com/emirpasic/gods/maps/linkedhashmap"

	"github.com/blockspacer/odamex/stringify"
)

// Group stores a named collection of required and optional components. The
// wire format is a presence bit-field with one bit per optional field in
// declaration order, followed by all required fields in declaration order,
// followed by only the present optional fields in declaration order.
//
// Presence is explicit state, set via SetPresent or by Read, never inferred
// from a field's value. Absent optional fields occupy zero wire bits but
// stay allocated with their last value.
//
// The name table is a non-owning index into the field sequences; the group
// owns its fields and destroys them with itself.
type Group struct {
	fieldName
	cachedSizeValid bool
	cachedSize      int

	nameTable         *linkedhashmap.Map
	optionalIndicator *BitField
	optionalFields    []Component
	requiredFields    []Component
}

// NewGroup creates an empty group.
func NewGroup() *Group {
	return &Group{
		nameTable:         linkedhashmap.New(),
		optionalIndicator: NewBitField(0),
	}
}

// AddField takes ownership of the given component and registers it as a
// required or optional field. Optional fields grow the presence bit-field
// by one bit and start out absent. A non-empty field name indexes the
// component for lookup; a duplicate name shadows the earlier entry, which
// is discouraged but not an error.
func (g *Group) AddField(field Component, optional bool) {
	if optional {
		g.optionalFields = append(g.optionalFields, field)
		g.optionalIndicator.Resize(len(g.optionalFields))
	} else {
		g.requiredFields = append(g.requiredFields, field)
	}

	if name := field.FieldName(); name != "" {
		if _, shadowed := g.nameTable.Get(name); shadowed {
			log.Warnf("field name %q shadows an earlier field of the group", name)
		}
		g.nameTable.Put(name, field)
	}

	g.InvalidateSize()
}

// HasField reports whether a component is registered under the given name,
// present or not.
func (g *Group) HasField(name string) bool {
	_, has := g.nameTable.Get(name)

	return has
}

// Field returns the component registered under the given name. An unknown
// name yields (nil, false), not an error. The component stays owned by the
// group; mutating it in place requires InvalidateSize on the group
// afterwards.
func (g *Group) Field(name string) (Component, bool) {
	value, has := g.nameTable.Get(name)
	if !has {
		return nil, false
	}

	//nolint:forcetypeassert // the table only ever holds components
	return value.(Component), true
}

// Present reports whether the named optional field is marked present.
// Required and unknown fields yield false.
func (g *Group) Present(name string) bool {
	index, found := g.optionalIndex(name)
	if !found {
		return false
	}

	return g.optionalIndicator.HasBit(index)
}

// SetPresent marks the named optional field as present or absent. It
// reports whether an optional field with that name exists.
func (g *Group) SetPresent(name string, present bool) bool {
	index, found := g.optionalIndex(name)
	if !found {
		return false
	}

	if present {
		g.optionalIndicator.SetBit(index)
	} else {
		g.optionalIndicator.ClearBit(index)
	}
	g.InvalidateSize()

	return true
}

// Size returns the presence bit-field size plus the sum of the required
// sizes and the present optional sizes, cached until the next mutation of
// the group.
func (g *Group) Size() int {
	if !g.cachedSizeValid {
		size := g.optionalIndicator.Size()
		for _, field := range g.requiredFields {
			size += field.Size()
		}
		for i, field := range g.optionalFields {
			if g.optionalIndicator.HasBit(i) {
				size += field.Size()
			}
		}
		g.cachedSize = size
		g.cachedSizeValid = true
	}

	return g.cachedSize
}

// InvalidateSize drops the cached total size. Mutating operations on the
// group call this themselves; it only needs to be called by hand after
// mutating a field obtained via Field in place.
func (g *Group) InvalidateSize() {
	g.cachedSizeValid = false
}

// Clear resets every field to its default value and marks all optional
// fields absent. The group's structure is left untouched.
func (g *Group) Clear() {
	g.optionalIndicator.Clear()
	for _, field := range g.requiredFields {
		field.Clear()
	}
	for _, field := range g.optionalFields {
		field.Clear()
	}
	g.InvalidateSize()
}

// Read reads the presence bit-field, then all required fields, then each
// optional field whose presence bit is set. Skipped optional fields retain
// their prior value and are marked absent.
func (g *Group) Read(stream BitReadStream) (int, error) {
	consumed, err := g.optionalIndicator.Read(stream)
	g.InvalidateSize()
	if err != nil {
		return consumed, errors.Wrap(err, "failed to read presence indicator")
	}

	for _, field := range g.requiredFields {
		fieldConsumed, err := field.Read(stream)
		consumed += fieldConsumed
		if err != nil {
			return consumed, errors.Wrapf(err, "failed to read required field %q", field.FieldName())
		}
	}

	for i, field := range g.optionalFields {
		if !g.optionalIndicator.HasBit(i) {
			continue
		}
		fieldConsumed, err := field.Read(stream)
		consumed += fieldConsumed
		if err != nil {
			return consumed, errors.Wrapf(err, "failed to read optional field %q", field.FieldName())
		}
	}

	return consumed, nil
}

// Write writes the presence bit-field, then all required fields, then each
// optional field whose presence bit is set, all in declaration order.
func (g *Group) Write(stream BitWriteStream) (int, error) {
	written, err := g.optionalIndicator.Write(stream)
	if err != nil {
		return written, errors.Wrap(err, "failed to write presence indicator")
	}

	for _, field := range g.requiredFields {
		fieldWritten, err := field.Write(stream)
		written += fieldWritten
		if err != nil {
			return written, errors.Wrapf(err, "failed to write required field %q", field.FieldName())
		}
	}

	for i, field := range g.optionalFields {
		if !g.optionalIndicator.HasBit(i) {
			continue
		}
		fieldWritten, err := field.Write(stream)
		written += fieldWritten
		if err != nil {
			return written, errors.Wrapf(err, "failed to write optional field %q", field.FieldName())
		}
	}

	return written, nil
}

// Clone returns a deep copy of the group. All fields are cloned recursively
// and the name table is rebuilt to point at the clone's own fields.
func (g *Group) Clone() Component {
	clone := NewGroup()
	clone.fieldName = g.fieldName
	//nolint:forcetypeassert // BitField.Clone returns *BitField
	clone.optionalIndicator = g.optionalIndicator.Clone().(*BitField)
	clone.requiredFields = make([]Component, len(g.requiredFields))
	for i, field := range g.requiredFields {
		clone.requiredFields[i] = field.Clone()
	}
	clone.optionalFields = make([]Component, len(g.optionalFields))
	for i, field := range g.optionalFields {
		clone.optionalFields[i] = field.Clone()
	}

	iterator := g.nameTable.Iterator()
	for iterator.Next() {
		//nolint:forcetypeassert // the table only ever holds string keys and components
		name, original := iterator.Key().(string), iterator.Value().(Component)
		if index := componentIndex(g.requiredFields, original); index >= 0 {
			clone.nameTable.Put(name, clone.requiredFields[index])

			continue
		}
		if index := componentIndex(g.optionalFields, original); index >= 0 {
			clone.nameTable.Put(name, clone.optionalFields[index])
		}
	}

	return clone
}

func (g *Group) String() string {
	return stringify.Struct("Group",
		stringify.NewStructField("fieldName", g.FieldName()),
		stringify.NewStructField("requiredFields", len(g.requiredFields)),
		stringify.NewStructField("optionalFields", len(g.optionalFields)),
		stringify.NewStructField("size", g.Size()),
	)
}

// optionalIndex resolves a field name to its index in the optional
// sequence, identifying the field through the name table.
func (g *Group) optionalIndex(name string) (int, bool) {
	field, has := g.Field(name)
	if !has {
		return 0, false
	}
	index := componentIndex(g.optionalFields, field)
	if index < 0 {
		return 0, false
	}

	return index, true
}

// componentIndex locates a component in a field sequence by identity.
func componentIndex(fields []Component, component Component) int {
	for i, field := range fields {
		if field == component {
			return i
		}
	}

	return -1
}

var _ Component = (*Group)(nil)
