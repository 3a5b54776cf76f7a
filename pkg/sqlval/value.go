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

// Package sqlval is the scalar value layer underpinning SQL query
// construction: a tagged union over every scalar that can appear as a
// query parameter or inline literal, conversions between the union and
// native Go types, and escape/unescape routines for literal text.
package sqlval

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

// dateTimeLayout renders the naive date-time kind. Sub-second precision
// and time zone are dropped.
const dateTimeLayout = "2006-01-02 15:04:05"

// Value holds exactly one scalar or no value at all. It is immutable
// once constructed; duplication is an explicit Clone, never aliasing.
//
// A Value is exactly one machine pointer wide regardless of which
// capability-gated kinds are compiled in. Parameter-heavy queries carry
// long Values sequences, so the per-element size must not depend on the
// build configuration. The inline-size threshold is one pointer width:
// scalars no wider than a machine word live inside the single heap rep,
// anything wider sits behind one more indirection in the rep's box.
//
// The zero Value holds the Null kind.
type Value struct {
	rep *rep
}

type rep struct {
	kind Kind
	// word packs bool, integer and float payloads: integers are stored
	// two's-complement, floats via their IEEE 754 bit pattern.
	word uint64
	// box owns payloads wider than a machine word: string, []byte,
	// json.RawMessage, time.Time, uuid.UUID.
	box any
}

var nullRep = rep{kind: KindNull}

// NullValue returns the explicit no-value Value.
func NullValue() Value {
	return Value{rep: &nullRep}
}

func newWord(k Kind, w uint64) Value {
	return Value{rep: &rep{kind: k, word: w}}
}

func newBox(k Kind, b any) Value {
	return Value{rep: &rep{kind: k, box: b}}
}

// Kind returns the tag identifying which alternative v currently holds.
func (v Value) Kind() Kind {
	if v.rep == nil {
		return KindNull
	}
	return v.rep.kind
}

// mustBe aborts with a diagnostic when v does not hold kind k. A
// mismatched extraction is a defect in the calling code, not a runtime
// condition: callers that do not know the kind statically must check
// the predicate first.
func (v Value) mustBe(k Kind) *rep {
	if v.Kind() != k {
		panic(fmt.Sprintf("sqlval: cannot extract %s from %s value", k, v.Kind()))
	}
	return v.rep
}

// Clone returns an independent copy of v. Payloads backed by byte
// slices are duplicated so the copy shares no mutable state.
func (v Value) Clone() Value {
	if v.rep == nil {
		return v
	}
	r := *v.rep
	switch b := r.box.(type) {
	case []byte:
		r.box = bytes.Clone(b)
	case json.RawMessage:
		r.box = json.RawMessage(bytes.Clone(b))
	}
	return Value{rep: &r}
}

func (v Value) IsNull() bool { return v.Kind() == KindNull }
func (v Value) IsBool() bool { return v.Kind() == KindBool }
func (v Value) IsInt8() bool { return v.Kind() == KindInt8 }
func (v Value) IsInt16() bool { return v.Kind() == KindInt16 }
func (v Value) IsInt32() bool { return v.Kind() == KindInt32 }
func (v Value) IsInt64() bool { return v.Kind() == KindInt64 }
func (v Value) IsUint8() bool { return v.Kind() == KindUint8 }
func (v Value) IsUint16() bool { return v.Kind() == KindUint16 }
func (v Value) IsUint32() bool { return v.Kind() == KindUint32 }
func (v Value) IsUint64() bool { return v.Kind() == KindUint64 }
func (v Value) IsFloat32() bool { return v.Kind() == KindFloat32 }
func (v Value) IsFloat64() bool { return v.Kind() == KindFloat64 }
func (v Value) IsString() bool { return v.Kind() == KindString }
func (v Value) IsBytes() bool { return v.Kind() == KindBytes }

// IsJSON, IsDateTime and IsUUID exist in every build configuration.
// When the corresponding capability is compiled out no constructor for
// the kind exists, so they report false rather than being absent.
func (v Value) IsJSON() bool { return v.Kind() == KindJSON }
func (v Value) IsDateTime() bool { return v.Kind() == KindDateTime }
func (v Value) IsUUID() bool { return v.Kind() == KindUUID }

// String renders a debug form such as Int32(5) or String("abc"). It is
// meant for diagnostics, not for SQL output.
func (v Value) String() string {
	k := v.Kind()
	switch k {
	case KindNull:
		return "Null"
	case KindBool:
		return fmt.Sprintf("Bool(%v)", v.rep.word != 0)
	case KindInt8, KindInt16, KindInt32, KindInt64:
		return fmt.Sprintf("%s(%d)", k, int64(v.rep.word))
	case KindUint8, KindUint16, KindUint32, KindUint64:
		return fmt.Sprintf("%s(%d)", k, v.rep.word)
	case KindFloat32:
		return fmt.Sprintf("Float32(%v)", math.Float32frombits(uint32(v.rep.word)))
	case KindFloat64:
		return fmt.Sprintf("Float64(%v)", math.Float64frombits(v.rep.word))
	case KindString:
		return fmt.Sprintf("String(%q)", v.rep.box.(string))
	case KindBytes:
		return fmt.Sprintf("Bytes(0x%x)", v.rep.box.([]byte))
	case KindJSON:
		return fmt.Sprintf("JSON(%s)", v.rep.box.(json.RawMessage))
	case KindDateTime:
		return fmt.Sprintf("DateTime(%s)", v.rep.box.(time.Time).Format(dateTimeLayout))
	case KindUUID:
		return fmt.Sprintf("UUID(%s)", v.rep.box.(uuid.UUID))
	}
	return k.String()
}
