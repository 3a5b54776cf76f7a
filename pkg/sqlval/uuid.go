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

//go:build !sqlval_no_uuid

package sqlval

import "github.com/google/uuid"

// UUIDValue constructs the 128-bit UUID kind.
func UUIDValue(v uuid.UUID) Value {
	return newBox(KindUUID, v)
}

func UUIDOrNull(v *uuid.UUID) Value {
	if v == nil {
		return NullValue()
	}
	return UUIDValue(*v)
}

func (v Value) UUID() uuid.UUID {
	return v.mustBe(KindUUID).box.(uuid.UUID)
}

func (v Value) UUIDOrNull() *uuid.UUID {
	if v.IsNull() {
		return nil
	}
	out := v.UUID()
	return &out
}

func init() {
	fromAnyHooks = append(fromAnyHooks, func(x any) (Value, bool) {
		if u, ok := x.(uuid.UUID); ok {
			return UUIDValue(u), true
		}
		return Value{}, false
	})
}
