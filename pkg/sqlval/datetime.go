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

//go:build !sqlval_no_datetime

package sqlval

import "time"

// TimeValue constructs the naive date-time kind. The time is kept as
// given; location and sub-second precision are dropped only when the
// value is rendered.
func TimeValue(v time.Time) Value {
	return newBox(KindDateTime, v)
}

func TimeOrNull(v *time.Time) Value {
	if v == nil {
		return NullValue()
	}
	return TimeValue(*v)
}

func (v Value) Time() time.Time {
	return v.mustBe(KindDateTime).box.(time.Time)
}

func (v Value) TimeOrNull() *time.Time {
	if v.IsNull() {
		return nil
	}
	out := v.Time()
	return &out
}

func init() {
	fromAnyHooks = append(fromAnyHooks, func(x any) (Value, bool) {
		if t, ok := x.(time.Time); ok {
			return TimeValue(t), true
		}
		return Value{}, false
	})
}
