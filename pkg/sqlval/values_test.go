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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindColumns(t *testing.T) {
	cols := []string{"id", "title", "rating"}
	vals := Values{Int64Value(1), StringValue("a"), Float64Value(4.5)}

	bindings, err := BindColumns(cols, vals)
	require.NoError(t, err)
	require.Len(t, bindings, 3)
	// positional: order is query semantics
	assert.Equal(t, "id", bindings[0].Column)
	assert.Equal(t, int64(1), bindings[0].Value.Int64())
	assert.Equal(t, "rating", bindings[2].Column)
	assert.Equal(t, 4.5, bindings[2].Value.Float64())
}

func TestBindColumns_CountMismatch(t *testing.T) {
	_, err := BindColumns([]string{"a", "b", "c"}, Values{Int64Value(1), Int64Value(2)})
	require.Error(t, err)
	require.Equal(t, CountMismatchError{Columns: 3, Values: 2}, err)
	require.True(t, errors.Is(err, CountMismatchError{Columns: 3, Values: 2}))
	require.NotEqual(t, CountMismatchError{Columns: 2, Values: 3}, err)
	require.Equal(t, "columns and values length mismatch: 3 != 2", err.Error())
}

func TestValues_Clone(t *testing.T) {
	vs := Values{BytesValue([]byte{1, 2}), StringValue("x"), NullValue()}
	cp := vs.Clone()
	require.Len(t, cp, 3)

	mutated := cp[0].Bytes()
	mutated[0] = 9
	require.Equal(t, []byte{1, 2}, vs[0].Bytes())
	require.Equal(t, []byte{1, 2}, cp[0].Bytes())
	require.True(t, cp[2].IsNull())
}

func TestErrors_Equality(t *testing.T) {
	require.Equal(t, OverflowError{Value: "300", Target: KindInt8}, OverflowError{Value: "300", Target: KindInt8})
	require.NotEqual(t, OverflowError{Value: "300", Target: KindInt8}, OverflowError{Value: "300", Target: KindInt16})
	require.Equal(t, InvalidUTF8Error{Data: []byte{0xff}}, InvalidUTF8Error{Data: []byte{0xff}})
	require.EqualError(t, OverflowError{Value: "300", Target: KindInt8}, "value 300 overflows Int8")
	require.NotErrorIs(t, ErrFailToConvert, ErrInfallible)
}
