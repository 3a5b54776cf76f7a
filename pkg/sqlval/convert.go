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
	"bytes"
	"math"
	"strconv"
)

// Constructors are total and injective within their kind: distinct
// inputs yield distinct Values of that kind. The pointer-taking
// variants map nil to the Null kind.
//
// Extractors are partial: calling one on a Value of another kind aborts
// with a diagnostic (see mustBe). The XxxOrNull extractors additionally
// accept the Null kind and map it to nil.

func BoolValue(v bool) Value {
	var w uint64
	if v {
		w = 1
	}
	return newWord(KindBool, w)
}

func Int8Value(v int8) Value { return newWord(KindInt8, uint64(int64(v))) }
func Int16Value(v int16) Value { return newWord(KindInt16, uint64(int64(v))) }
func Int32Value(v int32) Value { return newWord(KindInt32, uint64(int64(v))) }
func Int64Value(v int64) Value { return newWord(KindInt64, uint64(v)) }

func Uint8Value(v uint8) Value { return newWord(KindUint8, uint64(v)) }
func Uint16Value(v uint16) Value { return newWord(KindUint16, uint64(v)) }
func Uint32Value(v uint32) Value { return newWord(KindUint32, uint64(v)) }
func Uint64Value(v uint64) Value { return newWord(KindUint64, v) }

func Float32Value(v float32) Value { return newWord(KindFloat32, uint64(math.Float32bits(v))) }
func Float64Value(v float64) Value { return newWord(KindFloat64, math.Float64bits(v)) }

func StringValue(v string) Value { return newBox(KindString, v) }

// BytesValue copies v so the Value owns its payload.
func BytesValue(v []byte) Value { return newBox(KindBytes, bytes.Clone(v)) }

func BoolOrNull(v *bool) Value {
	if v == nil {
		return NullValue()
	}
	return BoolValue(*v)
}

func Int8OrNull(v *int8) Value {
	if v == nil {
		return NullValue()
	}
	return Int8Value(*v)
}

func Int16OrNull(v *int16) Value {
	if v == nil {
		return NullValue()
	}
	return Int16Value(*v)
}

func Int32OrNull(v *int32) Value {
	if v == nil {
		return NullValue()
	}
	return Int32Value(*v)
}

func Int64OrNull(v *int64) Value {
	if v == nil {
		return NullValue()
	}
	return Int64Value(*v)
}

func Uint8OrNull(v *uint8) Value {
	if v == nil {
		return NullValue()
	}
	return Uint8Value(*v)
}

func Uint16OrNull(v *uint16) Value {
	if v == nil {
		return NullValue()
	}
	return Uint16Value(*v)
}

func Uint32OrNull(v *uint32) Value {
	if v == nil {
		return NullValue()
	}
	return Uint32Value(*v)
}

func Uint64OrNull(v *uint64) Value {
	if v == nil {
		return NullValue()
	}
	return Uint64Value(*v)
}

func Float32OrNull(v *float32) Value {
	if v == nil {
		return NullValue()
	}
	return Float32Value(*v)
}

func Float64OrNull(v *float64) Value {
	if v == nil {
		return NullValue()
	}
	return Float64Value(*v)
}

func StringOrNull(v *string) Value {
	if v == nil {
		return NullValue()
	}
	return StringValue(*v)
}

// BytesOrNull maps a nil pointer to Null; a pointer to a nil slice
// still constructs an (empty) Bytes kind.
func BytesOrNull(v *[]byte) Value {
	if v == nil {
		return NullValue()
	}
	return BytesValue(*v)
}

func (v Value) Bool() bool { return v.mustBe(KindBool).word != 0 }
func (v Value) Int8() int8 { return int8(int64(v.mustBe(KindInt8).word)) }
func (v Value) Int16() int16 { return int16(int64(v.mustBe(KindInt16).word)) }
func (v Value) Int32() int32 { return int32(int64(v.mustBe(KindInt32).word)) }
func (v Value) Int64() int64 { return int64(v.mustBe(KindInt64).word) }
func (v Value) Uint8() uint8 { return uint8(v.mustBe(KindUint8).word) }
func (v Value) Uint16() uint16 { return uint16(v.mustBe(KindUint16).word) }
func (v Value) Uint32() uint32 { return uint32(v.mustBe(KindUint32).word) }
func (v Value) Uint64() uint64 { return v.mustBe(KindUint64).word }
func (v Value) Float32() float32 { return math.Float32frombits(uint32(v.mustBe(KindFloat32).word)) }
func (v Value) Float64() float64 { return math.Float64frombits(v.mustBe(KindFloat64).word) }
func (v Value) Str() string { return v.mustBe(KindString).box.(string) }

// Bytes returns a copy of the payload; the Value stays immutable.
func (v Value) Bytes() []byte { return bytes.Clone(v.mustBe(KindBytes).box.([]byte)) }

func (v Value) BoolOrNull() *bool {
	if v.IsNull() {
		return nil
	}
	out := v.Bool()
	return &out
}

func (v Value) Int8OrNull() *int8 {
	if v.IsNull() {
		return nil
	}
	out := v.Int8()
	return &out
}

func (v Value) Int16OrNull() *int16 {
	if v.IsNull() {
		return nil
	}
	out := v.Int16()
	return &out
}

func (v Value) Int32OrNull() *int32 {
	if v.IsNull() {
		return nil
	}
	out := v.Int32()
	return &out
}

func (v Value) Int64OrNull() *int64 {
	if v.IsNull() {
		return nil
	}
	out := v.Int64()
	return &out
}

func (v Value) Uint8OrNull() *uint8 {
	if v.IsNull() {
		return nil
	}
	out := v.Uint8()
	return &out
}

func (v Value) Uint16OrNull() *uint16 {
	if v.IsNull() {
		return nil
	}
	out := v.Uint16()
	return &out
}

func (v Value) Uint32OrNull() *uint32 {
	if v.IsNull() {
		return nil
	}
	out := v.Uint32()
	return &out
}

func (v Value) Uint64OrNull() *uint64 {
	if v.IsNull() {
		return nil
	}
	out := v.Uint64()
	return &out
}

func (v Value) Float32OrNull() *float32 {
	if v.IsNull() {
		return nil
	}
	out := v.Float32()
	return &out
}

func (v Value) Float64OrNull() *float64 {
	if v.IsNull() {
		return nil
	}
	out := v.Float64()
	return &out
}

func (v Value) StrOrNull() *string {
	if v.IsNull() {
		return nil
	}
	out := v.Str()
	return &out
}

// BytesOrNull returns a pointer like the other optional extractors so
// a Null Value stays distinguishable from a Bytes Value holding a nil
// slice. The pointed-to slice is a copy.
func (v Value) BytesOrNull() *[]byte {
	if v.IsNull() {
		return nil
	}
	out := v.Bytes()
	return &out
}

// Narrow converts an integer Value into the integer kind target,
// failing with OverflowError when the magnitude does not fit. Both
// operands must be integer kinds; anything else is a generic
// conversion failure.
func (v Value) Narrow(target Kind) (Value, error) {
	if !v.Kind().IsInteger() || !target.IsInteger() {
		return Value{}, fmtErrFailToConvert("narrow %s to %s", v.Kind(), target)
	}

	if v.Kind().IsSignedInteger() {
		n := int64(v.rep.word)
		if n < 0 {
			if target.IsUnsignedInteger() {
				return Value{}, OverflowError{Value: strconv.FormatInt(n, 10), Target: target}
			}
			if lo, _ := signedRange(target); n < lo {
				return Value{}, OverflowError{Value: strconv.FormatInt(n, 10), Target: target}
			}
			return signedValue(target, n), nil
		}
		return narrowNonNegative(uint64(n), target)
	}

	return narrowNonNegative(v.rep.word, target)
}

func narrowNonNegative(u uint64, target Kind) (Value, error) {
	if u > unsignedMax(target) {
		return Value{}, OverflowError{Value: strconv.FormatUint(u, 10), Target: target}
	}
	if target.IsSignedInteger() {
		return signedValue(target, int64(u)), nil
	}
	return unsignedValue(target, u), nil
}

func signedRange(k Kind) (int64, int64) {
	switch k {
	case KindInt8:
		return math.MinInt8, math.MaxInt8
	case KindInt16:
		return math.MinInt16, math.MaxInt16
	case KindInt32:
		return math.MinInt32, math.MaxInt32
	default:
		return math.MinInt64, math.MaxInt64
	}
}

// unsignedMax returns the largest non-negative magnitude kind k can
// hold, for signed and unsigned kinds alike.
func unsignedMax(k Kind) uint64 {
	switch k {
	case KindInt8:
		return math.MaxInt8
	case KindInt16:
		return math.MaxInt16
	case KindInt32:
		return math.MaxInt32
	case KindInt64:
		return math.MaxInt64
	case KindUint8:
		return math.MaxUint8
	case KindUint16:
		return math.MaxUint16
	case KindUint32:
		return math.MaxUint32
	default:
		return math.MaxUint64
	}
}

func signedValue(k Kind, n int64) Value {
	switch k {
	case KindInt8:
		return Int8Value(int8(n))
	case KindInt16:
		return Int16Value(int16(n))
	case KindInt32:
		return Int32Value(int32(n))
	default:
		return Int64Value(n)
	}
}

func unsignedValue(k Kind, u uint64) Value {
	switch k {
	case KindUint8:
		return Uint8Value(uint8(u))
	case KindUint16:
		return Uint16Value(uint16(u))
	case KindUint32:
		return Uint32Value(uint32(u))
	default:
		return Uint64Value(u)
	}
}
