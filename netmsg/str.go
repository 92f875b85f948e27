package netmsg

import (
	"github.com/cockroachdb/errors"
)

// String stores a text value whose encoded length is implied by a one byte
// terminator rather than a length prefix. The text must not contain the
// terminator itself.
type String struct {
	fieldName
	value string
}

// NewString creates a component holding a text value.
func NewString(value string) *String {
	return &String{value: value}
}

// Size returns 8 * (length + 1) bits, reserving one byte for the
// terminator.
func (s *String) Size() int {
	return 8 * (len(s.value) + 1)
}

// Clear resets the held text to the empty string.
func (s *String) Clear() {
	s.value = ""
}

// Get returns the held text.
func (s *String) Get() string {
	return s.value
}

// Set sets the held text.
func (s *String) Set(value string) {
	s.value = value
}

// Read reads text up to and including the terminator and reports the
// consumed bit count matching Size after the read.
func (s *String) Read(stream BitReadStream) (int, error) {
	value, err := stream.ReadString()
	if err != nil {
		return 0, errors.Wrap(err, "failed to read string field")
	}
	s.value = value

	return s.Size(), nil
}

// Write writes the text followed by its terminator.
func (s *String) Write(stream BitWriteStream) (int, error) {
	if err := stream.WriteString(s.value); err != nil {
		return 0, errors.Wrap(err, "failed to write string field")
	}

	return s.Size(), nil
}

// Clone returns an independent copy of the component.
func (s *String) Clone() Component {
	clone := *s

	return &clone
}

var _ Component = (*String)(nil)
