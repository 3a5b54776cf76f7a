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

// Scalar is the set of native types with an always-enabled kind.
// Capability-gated payloads (JSON, date-time, UUID) go through their
// own constructors so that disabling a capability removes the entry
// point entirely.
type Scalar interface {
	bool |
		int8 | int16 | int32 | int64 |
		uint8 | uint16 | uint32 | uint64 |
		float32 | float64 |
		string | []byte
}

// New constructs the Value of the kind matching T.
func New[T Scalar](v T) Value {
	switch x := any(v).(type) {
	case bool:
		return BoolValue(x)
	case int8:
		return Int8Value(x)
	case int16:
		return Int16Value(x)
	case int32:
		return Int32Value(x)
	case int64:
		return Int64Value(x)
	case uint8:
		return Uint8Value(x)
	case uint16:
		return Uint16Value(x)
	case uint32:
		return Uint32Value(x)
	case uint64:
		return Uint64Value(x)
	case float32:
		return Float32Value(x)
	case float64:
		return Float64Value(x)
	case string:
		return StringValue(x)
	case []byte:
		return BytesValue(x)
	}
	panic("sqlval: unreachable scalar type")
}

// NewOrNull maps a nil pointer to the Null kind and otherwise
// constructs the kind matching T.
func NewOrNull[T Scalar](v *T) Value {
	if v == nil {
		return NullValue()
	}
	return New(*v)
}

// Unwrap extracts the payload of the kind matching T, with the same
// contract as the typed extractors: a kind mismatch aborts.
func Unwrap[T Scalar](v Value) T {
	var out T
	switch p := any(&out).(type) {
	case *bool:
		*p = v.Bool()
	case *int8:
		*p = v.Int8()
	case *int16:
		*p = v.Int16()
	case *int32:
		*p = v.Int32()
	case *int64:
		*p = v.Int64()
	case *uint8:
		*p = v.Uint8()
	case *uint16:
		*p = v.Uint16()
	case *uint32:
		*p = v.Uint32()
	case *uint64:
		*p = v.Uint64()
	case *float32:
		*p = v.Float32()
	case *float64:
		*p = v.Float64()
	case *string:
		*p = v.Str()
	case *[]byte:
		*p = v.Bytes()
	}
	return out
}

// UnwrapOrNull is the optional form of Unwrap: the Null kind yields
// nil, any other kind mismatch aborts.
func UnwrapOrNull[T Scalar](v Value) *T {
	if v.IsNull() {
		return nil
	}
	out := Unwrap[T](v)
	return &out
}
