// Copyright 2025 Queryforge
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sqlval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRoundTrip[T Scalar](t *testing.T, in T) {
	t.Helper()
	require.Equal(t, in, Unwrap[T](New(in)))
}

func TestConvert_RoundTrip(t *testing.T) {
	testRoundTrip(t, true)
	testRoundTrip(t, false)
	testRoundTrip(t, int8(127))
	testRoundTrip(t, int8(-128))
	testRoundTrip(t, int16(32767))
	testRoundTrip(t, int32(1073741824))
	testRoundTrip(t, int64(8589934592))
	testRoundTrip(t, int64(-8589934592))
	testRoundTrip(t, uint8(255))
	testRoundTrip(t, uint16(65535))
	testRoundTrip(t, uint32(4294967295))
	testRoundTrip(t, uint64(18446744073709551615))
	testRoundTrip(t, float32(1.5))
	testRoundTrip(t, float64(-2.25))
	testRoundTrip(t, "hello")
	testRoundTrip(t, []byte{0x00, 0xff, 0x10})
}

func TestConvert_TypedExtractors(t *testing.T) {
	assert.Equal(t, int8(-5), Int8Value(-5).Int8())
	assert.Equal(t, uint32(7), Uint32Value(7).Uint32())
	assert.Equal(t, float64(3.5), Float64Value(3.5).Float64())
	assert.Equal(t, "abc", StringValue("abc").Str())
	assert.True(t, BoolValue(true).Bool())
}

func TestConvert_OptionalAbsent(t *testing.T) {
	require.True(t, BoolOrNull(nil).IsNull())
	require.True(t, Int32OrNull(nil).IsNull())
	require.True(t, Uint64OrNull(nil).IsNull())
	require.True(t, Float64OrNull(nil).IsNull())
	require.True(t, StringOrNull(nil).IsNull())
	require.True(t, BytesOrNull(nil).IsNull())
	require.True(t, NewOrNull[int64](nil).IsNull())
}

func TestConvert_OptionalPresent(t *testing.T) {
	n := int32(7)
	v := Int32OrNull(&n)
	require.True(t, v.IsInt32())
	out := v.Int32OrNull()
	require.NotNil(t, out)
	require.Equal(t, int32(7), *out)
}

func TestConvert_ExtractOptionalFromNull(t *testing.T) {
	null := NullValue()
	assert.Nil(t, null.BoolOrNull())
	assert.Nil(t, null.Int64OrNull())
	assert.Nil(t, null.Float32OrNull())
	assert.Nil(t, null.StrOrNull())
	assert.Nil(t, null.BytesOrNull())
	assert.Nil(t, UnwrapOrNull[string](null))
}

// A Bytes Value built from a nil slice is still present, so the
// optional extractor must not collapse it into the Null case.
func TestConvert_BytesOrNullDistinguishesNull(t *testing.T) {
	present := BytesValue(nil)
	require.True(t, present.IsBytes())
	out := present.BytesOrNull()
	require.NotNil(t, out)
	require.Empty(t, *out)

	require.Nil(t, NullValue().BytesOrNull())

	require.NotNil(t, UnwrapOrNull[[]byte](present))
	require.Nil(t, UnwrapOrNull[[]byte](NullValue()))
}

func TestConvert_MismatchAborts(t *testing.T) {
	require.PanicsWithValue(t, "sqlval: cannot extract Int32 from String value", func() {
		StringValue("a").Int32()
	})
	require.Panics(t, func() { Int64Value(1).Str() })
	require.Panics(t, func() { NullValue().Int64() })
	// the optional extractor tolerates Null only, not other kinds
	require.Panics(t, func() { BoolValue(true).StrOrNull() })
	require.Panics(t, func() { Unwrap[int16](Uint16Value(1)) })
}

func TestConvert_Narrow(t *testing.T) {
	v, err := Int64Value(120).Narrow(KindInt8)
	require.NoError(t, err)
	require.Equal(t, int8(120), v.Int8())

	v, err = Int32Value(200).Narrow(KindUint8)
	require.NoError(t, err)
	require.Equal(t, uint8(200), v.Uint8())

	_, err = Int64Value(300).Narrow(KindInt8)
	require.Equal(t, OverflowError{Value: "300", Target: KindInt8}, err)

	_, err = Int64Value(-1).Narrow(KindUint64)
	require.Equal(t, OverflowError{Value: "-1", Target: KindUint64}, err)

	_, err = Uint64Value(1 << 40).Narrow(KindInt32)
	require.Equal(t, OverflowError{Value: "1099511627776", Target: KindInt32}, err)

	_, err = StringValue("5").Narrow(KindInt32)
	require.ErrorIs(t, err, ErrFailToConvert)
}

func TestFromAny(t *testing.T) {
	v, err := FromAny(nil)
	require.NoError(t, err)
	require.True(t, v.IsNull())

	v, err = FromAny(42)
	require.NoError(t, err)
	require.Equal(t, int64(42), v.Int64())

	v, err = FromAny(uint(7))
	require.NoError(t, err)
	require.Equal(t, uint64(7), v.Uint64())

	v, err = FromAny("abc")
	require.NoError(t, err)
	require.Equal(t, "abc", v.Str())

	// a Value passes through unchanged
	v, err = FromAny(Int8Value(1))
	require.NoError(t, err)
	require.True(t, v.IsInt8())

	_, err = FromAny(struct{ X int }{1})
	require.ErrorIs(t, err, ErrFailToConvert)
}
