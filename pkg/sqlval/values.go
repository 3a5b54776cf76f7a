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

// Values is an ordered sequence of Value used for positional parameter
// binding. Order is part of the query semantics; rearranging it changes
// the query.
type Values []Value

// Clone returns a deep copy of vs.
func (vs Values) Clone() Values {
	if vs == nil {
		return nil
	}
	out := make(Values, len(vs))
	for i, v := range vs {
		out[i] = v.Clone()
	}
	return out
}

// ColumnBinding pairs a column name with the value bound at its
// position.
type ColumnBinding struct {
	Column string
	Value  Value
}

// BindColumns pairs columns with values positionally. A length mismatch
// fails with CountMismatchError carrying both counts.
func BindColumns(columns []string, values Values) ([]ColumnBinding, error) {
	if len(columns) != len(values) {
		return nil, CountMismatchError{Columns: len(columns), Values: len(values)}
	}
	out := make([]ColumnBinding, len(columns))
	for i, c := range columns {
		out[i] = ColumnBinding{Column: c, Value: values[i]}
	}
	return out, nil
}
