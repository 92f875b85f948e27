// Package netmsg implements the building blocks of network messages.
//
// Components are typed values that know how to serialize and deserialize
// themselves to and from a bit-granular stream and can compute their own
// encoded size. Composite components (Array, Group) treat collections of
// components through the same interface as primitive ones, which lets a
// consumer assemble arbitrary wire-message layouts out of small typed
// pieces without hand-written per-message serialization code.
//
// Every component can produce a deep copy of itself via Clone. This allows
// a prototype instance of each message layout to be built once and stamped
// out on demand, see TypeDatabase.
//
// Component trees are not safe for concurrent use: Size may lazily compute
// and cache its result even though it is conceptually a query, so all
// access to a tree must come from a single goroutine.
package netmsg

import (
	"github.com/blockspacer/odamex/logger"
)

// BitReadStream is the stream surface components consume bits from.
// Implementations report how the bits are ordered within the underlying
// buffer; the components only rely on reads mirroring writes.
type BitReadStream interface {
	// ReadBits reads the next n bits (n <= 32) as an unsigned value.
	ReadBits(n int) (uint32, error)
	// ReadFloat reads a 32-bit IEEE-754 floating point value.
	ReadFloat() (float32, error)
	// ReadString reads text up to and including its terminator.
	ReadString() (string, error)
	// ReadS32 reads a 32-bit signed value.
	ReadS32() (int32, error)
}

// BitWriteStream is the stream surface components emit bits to.
type BitWriteStream interface {
	// WriteBits writes the low n bits (n <= 32) of value.
	WriteBits(value uint32, n int) error
	// WriteFloat writes a 32-bit IEEE-754 floating point value.
	WriteFloat(value float32) error
	// WriteString writes text followed by its terminator.
	WriteString(value string) error
	// WriteS32 writes a 32-bit signed value.
	WriteS32(value int32) error
}

// Component is the uniform contract implemented by every message building
// block, primitive and composite alike.
type Component interface {
	// FieldName returns the name the component is looked up under within an
	// owning Group.
	FieldName() string
	// SetFieldName sets the component's field name.
	SetFieldName(name string)

	// Size returns the exact number of bits the component currently
	// occupies on the wire. It always matches what Write would emit for the
	// current value.
	Size() int
	// Clear resets the component to its type-specific default value.
	Clear()

	// Read consumes the component's encoding from the stream, updates the
	// held value and returns the number of bits consumed. On error the
	// returned count reflects exactly the bits that were consumed before
	// the failure.
	Read(stream BitReadStream) (int, error)
	// Write emits the component's encoding to the stream without mutating
	// the held value and returns the number of bits written.
	Write(stream BitWriteStream) (int, error)

	// Clone returns a new, independently owned deep copy of the component
	// with an identical field name and value.
	Clone() Component
}

// fieldName provides the name accessors of the Component interface and is
// embedded by every concrete component.
type fieldName struct {
	name string
}

// FieldName returns the component's field name.
func (f *fieldName) FieldName() string {
	return f.name
}

// SetFieldName sets the component's field name.
func (f *fieldName) SetFieldName(name string) {
	f.name = name
}

var log = logger.NewNopLogger()

// SetLogger routes the package's diagnostics (shadowed field names, type
// re-registrations) to the given logger. The default logger discards them.
func SetLogger(l *logger.Logger) {
	log = logger.NewLogger(l, "netmsg")
}
