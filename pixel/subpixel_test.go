package pixel

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertInRange(t *testing.T) {
	assert.Equal(t, uint8(200), Convert[uint16, uint8](200))
	assert.Equal(t, int16(-300), Convert[int32, int16](-300))
	assert.Equal(t, float64(42), Convert[uint8, float64](42))
	assert.Equal(t, uint32(7), Convert[float64, uint32](7.0))
}

func TestConvertOutOfRangeDegradesToZero(t *testing.T) {
	tests := []struct {
		name string
		got  any
		want any
	}{
		{"uint16 over uint8", Convert[uint16, uint8](300), uint8(0)},
		{"negative to unsigned", Convert[int8, uint8](-1), uint8(0)},
		{"large float to int8", Convert[float64, int8](1e6), int8(0)},
		{"negative float to uint32", Convert[float64, uint32](-0.5), uint32(0)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.got)
		})
	}
}

func TestConvertNaN(t *testing.T) {
	assert.Equal(t, uint8(0), Convert[float64, uint8](math.NaN()))
	assert.Equal(t, int64(0), Convert[float32, int64](float32(math.NaN())))
	// NaN to a float target stays NaN rather than degrading.
	assert.True(t, math.IsNaN(Convert[float64, float64](math.NaN())))
}

func TestConvertTruncatesTowardZero(t *testing.T) {
	assert.Equal(t, uint8(3), Convert[float64, uint8](3.9))
	assert.Equal(t, int8(-3), Convert[float64, int8](-3.9))
}

func TestConvertFloatTargetAlwaysSucceeds(t *testing.T) {
	got, ok := TryConvert[float64, float32](math.MaxFloat64)
	require.True(t, ok)
	assert.True(t, math.IsInf(float64(got), 1))
}

func TestConvertIdentityPreserves64Bit(t *testing.T) {
	assert.Equal(t, uint64(math.MaxUint64), Convert[uint64, uint64](math.MaxUint64))
	assert.Equal(t, int64(math.MinInt64), Convert[int64, int64](math.MinInt64))
}

func TestConvertBoundary(t *testing.T) {
	got, ok := TryConvert[uint16, uint8](255)
	require.True(t, ok)
	assert.Equal(t, uint8(255), got)

	_, ok = TryConvert[uint16, uint8](256)
	assert.False(t, ok)
}

func TestConvertBoundary64Bit(t *testing.T) {
	// MaxInt64 and MaxUint64 round up in float64, so values one past the
	// range must still degrade to zero rather than wrap.
	assert.Equal(t, int64(0), Convert[uint64, int64](1<<63))
	assert.Equal(t, int64(0), Convert[float64, int64](9223372036854775808))
	assert.Equal(t, uint64(0), Convert[float64, uint64](18446744073709551616))

	// The last float64-representable values inside the ranges convert.
	got, ok := TryConvert[float64, int64](9223372036854773760) // 2^63 - 2048
	require.True(t, ok)
	assert.Equal(t, int64(9223372036854773760), got)
	gotU, ok := TryConvert[float64, uint64](18446744073709547520) // 2^64 - 4096
	require.True(t, ok)
	assert.Equal(t, uint64(18446744073709547520), gotU)

	// Signed lower bound: -2^63 is exact and inclusive.
	gotMin, ok := TryConvert[float64, int64](-9223372036854775808)
	require.True(t, ok)
	assert.Equal(t, int64(-9223372036854775808), gotMin)
	_, ok = TryConvert[float64, int64](-9223372036854777856) // next float below -2^63
	assert.False(t, ok)

	_, ok = TryConvert[int64, uint32](1 << 32)
	assert.False(t, ok)
}

func TestBounds(t *testing.T) {
	assert.Equal(t, uint8(0), MinValue[uint8]())
	assert.Equal(t, uint8(255), MaxValue[uint8]())
	assert.Equal(t, int16(math.MinInt16), MinValue[int16]())
	assert.Equal(t, int16(math.MaxInt16), MaxValue[int16]())
	assert.Equal(t, -math.MaxFloat64, MinValue[float64]())
	assert.Equal(t, float32(math.MaxFloat32), MaxValue[float32]())
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 5, int(Clamp[int32](9, 0, 5)))
	assert.Equal(t, 0, int(Clamp[int32](-3, 0, 5)))
	assert.Equal(t, 4, int(Clamp[int32](4, 0, 5)))
}
