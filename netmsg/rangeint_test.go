package netmsg_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/blockspacer/odamex/bitstream"
	"github.com/blockspacer/odamex/netmsg"
)

func TestRange_SizeLaw(t *testing.T) {
	tests := []struct {
		name         string
		lowerBound   int32
		upperBound   int32
		expectedSize int
	}{
		{name: "byte range", lowerBound: 0, upperBound: 255, expectedSize: 8},
		{name: "eleven values", lowerBound: -5, upperBound: 5, expectedSize: 4},
		{name: "single value", lowerBound: 7, upperBound: 7, expectedSize: 0},
		{name: "two values", lowerBound: 0, upperBound: 1, expectedSize: 1},
		{name: "full int32", lowerBound: math.MinInt32, upperBound: math.MaxInt32, expectedSize: 32},
		{name: "player count", lowerBound: 1, upperBound: 64, expectedSize: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			component := netmsg.NewBoundedRange(tt.lowerBound, tt.lowerBound, tt.upperBound)
			require.Equal(t, tt.expectedSize, component.Size())
		})
	}
}

func TestRange_RoundTrip(t *testing.T) {
	component := netmsg.NewBoundedRange(-2, -5, 5)

	stream := bitstream.New()
	written, err := component.Write(stream)
	require.NoError(t, err)
	require.Equal(t, 4, written)

	restored := netmsg.NewBoundedRange(0, -5, 5)
	consumed, err := restored.Read(stream)
	require.NoError(t, err)
	require.Equal(t, written, consumed)
	require.EqualValues(t, -2, restored.Get())
}

func TestRange_RoundTripFullRange(t *testing.T) {
	component := netmsg.NewRange(math.MinInt32)

	stream := bitstream.New()
	written, err := component.Write(stream)
	require.NoError(t, err)
	require.Equal(t, 32, written)

	restored := netmsg.NewRange(0)
	_, err = restored.Read(stream)
	require.NoError(t, err)
	require.EqualValues(t, math.MinInt32, restored.Get())
}

func TestRange_WriteOutOfRange(t *testing.T) {
	component := netmsg.NewBoundedRange(0, 0, 10)
	component.Set(11)

	stream := bitstream.New()
	written, err := component.Write(stream)
	require.ErrorIs(t, err, netmsg.ErrValueOutOfRange)
	require.Equal(t, 0, written)
	require.Equal(t, 0, stream.BitsWritten())
}

func TestRange_ReadOutOfRange(t *testing.T) {
	// Bounds [0, 4] encode in 3 bits; the raw pattern 0b111 decodes to 7,
	// beyond the upper bound.
	stream := bitstream.New()
	require.NoError(t, stream.WriteBits(0b111, 3))

	component := netmsg.NewBoundedRange(2, 0, 4)
	consumed, err := component.Read(stream)
	require.ErrorIs(t, err, netmsg.ErrValueOutOfRange)
	require.Equal(t, 3, consumed)

	// The previously held value stays in place.
	require.EqualValues(t, 2, component.Get())
}

func TestRange_SetBoundsInvalidatesSize(t *testing.T) {
	component := netmsg.NewBoundedRange(0, 0, 255)
	require.Equal(t, 8, component.Size())

	component.SetBounds(0, 15)
	require.Equal(t, 4, component.Size())

	// The value does not change the bit width.
	component.Set(9)
	require.Equal(t, 4, component.Size())
}

func TestRange_ZeroWidthRoundTrip(t *testing.T) {
	component := netmsg.NewBoundedRange(3, 3, 3)
	require.Equal(t, 0, component.Size())

	stream := bitstream.New()
	written, err := component.Write(stream)
	require.NoError(t, err)
	require.Equal(t, 0, written)

	restored := netmsg.NewBoundedRange(0, 3, 3)
	restored.Clear()
	consumed, err := restored.Read(stream)
	require.NoError(t, err)
	require.Equal(t, 0, consumed)
	require.EqualValues(t, 3, restored.Get())
}

func TestRange_IllegalBounds(t *testing.T) {
	require.Panics(t, func() { netmsg.NewBoundedRange(0, 1, 0) })
}

func TestRange_CloneIndependence(t *testing.T) {
	component := netmsg.NewBoundedRange(4, 0, 10)

	//nolint:forcetypeassert // Clone returns the concrete type
	clone := component.Clone().(*netmsg.Range)
	clone.Set(9)
	clone.SetBounds(0, 100)

	require.EqualValues(t, 4, component.Get())
	require.Equal(t, 4, component.Size())
	require.Equal(t, 7, clone.Size())
}
