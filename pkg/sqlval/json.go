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

//go:build !sqlval_no_json

package sqlval

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// JSONValue wraps a raw JSON document as the structured-JSON kind
// without decomposing it. The document is copied.
func JSONValue(v json.RawMessage) Value {
	return newBox(KindJSON, json.RawMessage(bytes.Clone(v)))
}

func JSONOrNull(v json.RawMessage) Value {
	if v == nil {
		return NullValue()
	}
	return JSONValue(v)
}

// JSON returns a copy of the wrapped document.
func (v Value) JSON() json.RawMessage {
	return json.RawMessage(bytes.Clone(v.mustBe(KindJSON).box.(json.RawMessage)))
}

func (v Value) JSONOrNull() json.RawMessage {
	if v.IsNull() {
		return nil
	}
	return v.JSON()
}

// FromJSON converts a decoded JSON scalar into a Value.
//
// Booleans intentionally widen to the Int32 kind holding 0 or 1 - they
// are NOT preserved as the Bool kind. Downstream consumers depend on
// this mapping; do not "fix" it to a boolean round trip.
//
// Numbers prefer the Float64 kind when the source token carries a
// fractional or exponent part, otherwise Int64 when representable,
// otherwise Uint64 when representable; larger magnitudes fail with
// ErrFailToConvert. Arrays are not scalar payloads and must be unpacked
// by the caller before reaching this bridge. Objects are wrapped
// opaquely as the structured-JSON kind.
func FromJSON(res gjson.Result) (Value, error) {
	switch res.Type {
	case gjson.Null:
		return NullValue(), nil
	case gjson.False:
		return Int32Value(0), nil
	case gjson.True:
		return Int32Value(1), nil
	case gjson.String:
		return StringValue(res.Str), nil
	case gjson.Number:
		raw := res.Raw
		if strings.ContainsAny(raw, ".eE") {
			f := res.Float()
			if math.IsInf(f, 0) {
				return Value{}, fmtErrFailToConvert("number %s is not representable", raw)
			}
			return Float64Value(f), nil
		}
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return Int64Value(n), nil
		}
		if u, err := strconv.ParseUint(raw, 10, 64); err == nil {
			return Uint64Value(u), nil
		}
		return Value{}, fmtErrFailToConvert("number %s is not representable", raw)
	case gjson.JSON:
		if res.IsArray() {
			return Value{}, fmtErrFailToConvert("array payload must be unpacked by the caller")
		}
		return JSONValue(json.RawMessage(res.Raw)), nil
	}
	return Value{}, fmtErrFailToConvert("JSON token %s", res.Type)
}

// ToJSON renders v as a JSON value.
//
// A byte-sequence payload is reinterpreted as UTF-8 text and fails with
// InvalidUTF8Error when it is not valid UTF-8; binary payloads do not
// round-trip through this path. The date-time kind formats as
// "YYYY-MM-DD HH:MM:SS" with sub-second precision and time zone
// dropped. The UUID kind formats as its canonical text. Non-finite
// float payloads have no JSON number form and render as null.
func (v Value) ToJSON() (json.RawMessage, error) {
	switch v.Kind() {
	case KindNull:
		return json.RawMessage("null"), nil
	case KindBool:
		if v.Bool() {
			return json.RawMessage("true"), nil
		}
		return json.RawMessage("false"), nil
	case KindInt8, KindInt16, KindInt32, KindInt64:
		return json.RawMessage(strconv.FormatInt(int64(v.rep.word), 10)), nil
	case KindUint8, KindUint16, KindUint32, KindUint64:
		return json.RawMessage(strconv.FormatUint(v.rep.word, 10)), nil
	case KindFloat32:
		f := float64(v.Float32())
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return json.RawMessage("null"), nil
		}
		return json.RawMessage(strconv.FormatFloat(f, 'g', -1, 32)), nil
	case KindFloat64:
		f := v.Float64()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return json.RawMessage("null"), nil
		}
		return json.RawMessage(strconv.FormatFloat(f, 'g', -1, 64)), nil
	case KindString:
		return json.Marshal(v.Str())
	case KindBytes:
		b := v.rep.box.([]byte)
		if !utf8.Valid(b) {
			return nil, InvalidUTF8Error{Data: bytes.Clone(b)}
		}
		return json.Marshal(string(b))
	case KindJSON:
		return v.JSON(), nil
	case KindDateTime:
		return json.Marshal(v.rep.box.(time.Time).Format(dateTimeLayout))
	case KindUUID:
		return json.Marshal(v.rep.box.(uuid.UUID).String())
	}
	return nil, fmtErrFailToConvert("kind %s", v.Kind())
}

// ToJSONArray renders the parameter sequence as a JSON array, applying
// ToJSON element-wise.
func (vs Values) ToJSONArray() (json.RawMessage, error) {
	out := []byte("[]")
	for i, v := range vs {
		raw, err := v.ToJSON()
		if err != nil {
			return nil, err
		}
		out, err = sjson.SetRawBytes(out, "-1", raw)
		if err != nil {
			return nil, fmt.Errorf("append element %d: %w", i, err)
		}
	}
	return out, nil
}

func init() {
	fromAnyHooks = append(fromAnyHooks, func(x any) (Value, bool) {
		if j, ok := x.(json.RawMessage); ok {
			return JSONValue(j), true
		}
		return Value{}, false
	})
}
