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

import "fmt"

// Kind identifies which alternative a Value currently holds.
//
// Every kind has a constant here, including the capability-gated ones
// (KindJSON, KindDateTime, KindUUID). Disabling a capability at build
// time removes the constructors and extractors for that kind, not the
// tag itself, so predicates keep compiling and simply never match.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
	KindString
	KindBytes
	KindJSON
	KindDateTime
	KindUUID
)

var kindNames = map[Kind]string{
	KindNull:     "Null",
	KindBool:     "Bool",
	KindInt8:     "Int8",
	KindInt16:    "Int16",
	KindInt32:    "Int32",
	KindInt64:    "Int64",
	KindUint8:    "Uint8",
	KindUint16:   "Uint16",
	KindUint32:   "Uint32",
	KindUint64:   "Uint64",
	KindFloat32:  "Float32",
	KindFloat64:  "Float64",
	KindString:   "String",
	KindBytes:    "Bytes",
	KindJSON:     "JSON",
	KindDateTime: "DateTime",
	KindUUID:     "UUID",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// IsSignedInteger reports whether k is one of the signed integer kinds.
func (k Kind) IsSignedInteger() bool {
	return k >= KindInt8 && k <= KindInt64
}

// IsUnsignedInteger reports whether k is one of the unsigned integer kinds.
func (k Kind) IsUnsignedInteger() bool {
	return k >= KindUint8 && k <= KindUint64
}

// IsInteger reports whether k is an integer kind of any signedness.
func (k Kind) IsInteger() bool {
	return k.IsSignedInteger() || k.IsUnsignedInteger()
}
