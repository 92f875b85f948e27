// Package bitstream implements a sequential, bit-granular view over a byte
// buffer. Writes append behind a write cursor and grow the buffer as
// needed; reads advance an independent read cursor and fail with
// netmsg.ErrStreamExhausted once the written data runs out. Bits are packed
// most significant first within each byte.
package bitstream

import (
	"fmt"
	"math"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/blockspacer/odamex/netmsg"
)

// Stream is a bit-granular read/write buffer.
type Stream struct {
	bytes       []byte
	size        int
	readOffset  int
	writeOffset int
}

// New creates an empty stream.
func New() *Stream {
	return &Stream{}
}

// FromBytes creates a stream whose readable contents are the given bytes.
// The buffer is copied; the write cursor starts behind the existing data.
func FromBytes(data []byte) *Stream {
	stream := &Stream{
		bytes:       make([]byte, len(data)),
		size:        8 * len(data),
		writeOffset: 8 * len(data),
	}
	copy(stream.bytes, data)

	return stream
}

// BitsWritten returns the number of bits written so far.
func (s *Stream) BitsWritten() int {
	return s.writeOffset
}

// BitsRead returns the number of bits consumed so far.
func (s *Stream) BitsRead() int {
	return s.readOffset
}

// BitsLeft returns the number of written bits not yet consumed.
func (s *Stream) BitsLeft() int {
	return s.size - s.readOffset
}

// Bytes returns a copy of the written contents, the final partial byte
// padded with zero bits.
func (s *Stream) Bytes() []byte {
	data := make([]byte, (s.size+7)/8)
	copy(data, s.bytes)

	return data
}

// WriteBits writes the low n bits of value, most significant bit first.
// n must lie in [0, 32].
func (s *Stream) WriteBits(value uint32, n int) error {
	checkBitCount(n)
	for i := n - 1; i >= 0; i-- {
		s.writeBit(value>>uint(i)&1 != 0)
	}

	return nil
}

// ReadBits reads the next n bits as an unsigned value, most significant bit
// first. n must lie in [0, 32]. A read past the written data fails without
// consuming anything.
func (s *Stream) ReadBits(n int) (uint32, error) {
	checkBitCount(n)
	if s.readOffset+n > s.size {
		return 0, errors.Wrapf(netmsg.ErrStreamExhausted, "tried to read %d bits with %d left", n, s.size-s.readOffset)
	}

	var value uint32
	for i := 0; i < n; i++ {
		value <<= 1
		if s.bytes[s.readOffset/8]&(0x80>>uint(s.readOffset%8)) != 0 {
			value |= 1
		}
		s.readOffset++
	}

	return value, nil
}

// WriteFloat writes a 32-bit IEEE-754 floating point value.
func (s *Stream) WriteFloat(value float32) error {
	return s.WriteBits(math.Float32bits(value), 32)
}

// ReadFloat reads a 32-bit IEEE-754 floating point value.
func (s *Stream) ReadFloat() (float32, error) {
	raw, err := s.ReadBits(32)
	if err != nil {
		return 0, err
	}

	return math.Float32frombits(raw), nil
}

// WriteS32 writes a 32-bit signed value.
func (s *Stream) WriteS32(value int32) error {
	return s.WriteBits(uint32(value), 32)
}

// ReadS32 reads a 32-bit signed value.
func (s *Stream) ReadS32() (int32, error) {
	raw, err := s.ReadBits(32)
	if err != nil {
		return 0, err
	}

	return int32(raw), nil
}

// WriteString writes the text's bytes followed by a zero terminator. The
// text must not contain the terminator itself.
func (s *Stream) WriteString(value string) error {
	for i := 0; i < len(value); i++ {
		if err := s.WriteBits(uint32(value[i]), 8); err != nil {
			return err
		}
	}

	return s.WriteBits(0, 8)
}

// ReadString reads text up to and including the zero terminator.
func (s *Stream) ReadString() (string, error) {
	builder := strings.Builder{}
	for {
		raw, err := s.ReadBits(8)
		if err != nil {
			return "", errors.Wrap(err, "failed to read string terminator")
		}
		if raw == 0 {
			return builder.String(), nil
		}
		builder.WriteByte(byte(raw))
	}
}

func (s *Stream) writeBit(bit bool) {
	if s.writeOffset/8 >= len(s.bytes) {
		s.bytes = append(s.bytes, 0)
	}
	if bit {
		s.bytes[s.writeOffset/8] |= 0x80 >> uint(s.writeOffset%8)
	} else {
		s.bytes[s.writeOffset/8] &^= 0x80 >> uint(s.writeOffset%8)
	}
	s.writeOffset++
	if s.writeOffset > s.size {
		s.size = s.writeOffset
	}
}

func checkBitCount(n int) {
	if n < 0 || n > 32 {
		panic(fmt.Sprintf("illegal bit count %d in bitstream", n))
	}
}

var (
	_ netmsg.BitReadStream  = (*Stream)(nil)
	_ netmsg.BitWriteStream = (*Stream)(nil)
)
