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

// fromAnyHooks is the extension point for capability-gated kinds: each
// enabled capability registers its native types from an init func, so a
// disabled capability contributes no mapping at all.
var fromAnyHooks []func(any) (Value, bool)

// FromAny converts a native Go value into a Value without any implicit
// coercion: the dynamic type must match a supported kind exactly, with
// the sole widening that platform-sized int and uint map to the 64-bit
// kinds. Unknown types fail with ErrFailToConvert.
func FromAny(v any) (Value, error) {
	switch x := v.(type) {
	case nil:
		return NullValue(), nil
	case Value:
		return x, nil
	case bool:
		return BoolValue(x), nil
	case int8:
		return Int8Value(x), nil
	case int16:
		return Int16Value(x), nil
	case int32:
		return Int32Value(x), nil
	case int64:
		return Int64Value(x), nil
	case int:
		return Int64Value(int64(x)), nil
	case uint8:
		return Uint8Value(x), nil
	case uint16:
		return Uint16Value(x), nil
	case uint32:
		return Uint32Value(x), nil
	case uint64:
		return Uint64Value(x), nil
	case uint:
		return Uint64Value(uint64(x)), nil
	case float32:
		return Float32Value(x), nil
	case float64:
		return Float64Value(x), nil
	case string:
		return StringValue(x), nil
	case []byte:
		return BytesValue(x), nil
	}

	for _, hook := range fromAnyHooks {
		if out, ok := hook(v); ok {
			return out, nil
		}
	}
	return Value{}, fmtErrFailToConvert("native type %T", v)
}
