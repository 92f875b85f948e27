package netmsg

import (
	"github.com/cockroachdb/errors"
)

var (
	// ErrStreamExhausted gets returned when a read needs more bits than the
	// underlying stream has left. It propagates unchanged through every
	// composite ancestor of the failing component.
	ErrStreamExhausted = errors.New("bit stream exhausted")
	// ErrValueOutOfRange gets returned when a range-bounded integer's value
	// lies outside its declared bounds at write time, or when a decoded
	// value would land outside of them.
	ErrValueOutOfRange = errors.New("value outside of declared range")
	// ErrCountOutOfBounds gets returned when an array's element count,
	// supplied or decoded, falls outside of its declared bounds.
	ErrCountOutOfBounds = errors.New("element count outside of declared bounds")
	// ErrMalformedDigest gets returned when text handed to a digest
	// component is not a well-formed hex string of the expected length.
	ErrMalformedDigest = errors.New("malformed digest text")
)
