package netmsg

import (
	"crypto/md5" //nolint:gosec // fixed historical wire format
	"encoding/hex"

	"github.com/cockroachdb/errors"
)

const (
	// DigestSize is the fixed width of a digest in bits.
	DigestSize = 128

	digestBytes   = DigestSize / 8
	digestTextLen = 2 * digestBytes
)

// Digest stores a fixed 128-bit hash value with a canonical lowercase hex
// external representation. The hex view is cached and refreshed after every
// mutating operation.
type Digest struct {
	fieldName
	value      [digestBytes]byte
	cachedText string
}

// NewDigest creates a component holding the zero digest.
func NewDigest() *Digest {
	digest := &Digest{}
	digest.cacheText()

	return digest
}

// NewDigestFromString creates a component from a 32 character hex string.
func NewDigestFromString(text string) (*Digest, error) {
	digest := NewDigest()
	if err := digest.Set(text); err != nil {
		return nil, err
	}

	return digest, nil
}

// SumDigest creates a component holding the MD5 sum of the given data. The
// protocol identifies resource files by their MD5 sums.
func SumDigest(data []byte) *Digest {
	digest := &Digest{value: md5.Sum(data)} //nolint:gosec // fixed historical wire format
	digest.cacheText()

	return digest
}

// Size returns 128 regardless of the held value.
func (d *Digest) Size() int {
	return DigestSize
}

// Clear resets the digest to the zero value.
func (d *Digest) Clear() {
	d.value = [digestBytes]byte{}
	d.cacheText()
}

// Get returns the cached hex representation of the digest.
func (d *Digest) Get() string {
	return d.cachedText
}

// Set parses a 32 character hex string into the raw digest value. Text of
// the wrong length or with non-hex characters fails with
// ErrMalformedDigest, leaving the held value untouched.
func (d *Digest) Set(text string) error {
	if len(text) != digestTextLen {
		return errors.Wrapf(ErrMalformedDigest, "text length must be %d but is %d", digestTextLen, len(text))
	}

	decoded, err := hex.DecodeString(text)
	if err != nil {
		return errors.Wrapf(ErrMalformedDigest, "text %q is not a hex string", text)
	}

	copy(d.value[:], decoded)
	d.cacheText()

	return nil
}

// Bytes returns the raw digest value.
func (d *Digest) Bytes() [digestBytes]byte {
	return d.value
}

// Read moves the raw 128 bits from the stream and refreshes the hex cache.
func (d *Digest) Read(stream BitReadStream) (int, error) {
	var value [digestBytes]byte
	for i := range value {
		raw, err := stream.ReadBits(8)
		if err != nil {
			return i * 8, errors.Wrap(err, "failed to read digest field")
		}
		value[i] = byte(raw)
	}

	d.value = value
	d.cacheText()

	return DigestSize, nil
}

// Write moves the raw 128 bits onto the stream.
func (d *Digest) Write(stream BitWriteStream) (int, error) {
	for i, b := range d.value {
		if err := stream.WriteBits(uint32(b), 8); err != nil {
			return i * 8, errors.Wrap(err, "failed to write digest field")
		}
	}

	return DigestSize, nil
}

// Clone returns an independent copy of the component.
func (d *Digest) Clone() Component {
	clone := *d

	return &clone
}

func (d *Digest) cacheText() {
	d.cachedText = hex.EncodeToString(d.value[:])
}

var _ Component = (*Digest)(nil)
