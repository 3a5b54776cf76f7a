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
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_PointerSized(t *testing.T) {
	require.Equal(t, unsafe.Sizeof(uintptr(0)), unsafe.Sizeof(Value{}))
	require.Equal(t, unsafe.Sizeof(uintptr(0)), unsafe.Sizeof(StringValue("abc")))
	require.Equal(t, unsafe.Sizeof(uintptr(0)), unsafe.Sizeof(BytesValue([]byte{1, 2, 3})))
}

func TestValue_ZeroIsNull(t *testing.T) {
	var v Value
	require.Equal(t, KindNull, v.Kind())
	require.True(t, v.IsNull())
	require.True(t, NullValue().IsNull())
}

func TestValue_HoldsExactlyOneKind(t *testing.T) {
	v := Int32Value(5)
	assert.Equal(t, KindInt32, v.Kind())
	assert.True(t, v.IsInt32())
	assert.False(t, v.IsInt64())
	assert.False(t, v.IsNull())
	assert.False(t, v.IsString())
	assert.False(t, v.IsJSON())
	assert.False(t, v.IsDateTime())
	assert.False(t, v.IsUUID())

	s := StringValue("abc")
	assert.True(t, s.IsString())
	assert.False(t, s.IsBytes())
}

func TestValue_CloneOwnsBytes(t *testing.T) {
	src := []byte("abc")
	v := BytesValue(src)
	src[0] = 'x'
	require.Equal(t, []byte("abc"), v.Bytes())

	c := v.Clone()
	got := c.Bytes()
	got[0] = 'y'
	require.Equal(t, []byte("abc"), c.Bytes())
	require.Equal(t, []byte("abc"), v.Bytes())
}

func TestValue_String(t *testing.T) {
	assert.Equal(t, "Null", NullValue().String())
	assert.Equal(t, "Bool(true)", BoolValue(true).String())
	assert.Equal(t, "Int16(-12)", Int16Value(-12).String())
	assert.Equal(t, "Uint64(42)", Uint64Value(42).String())
	assert.Equal(t, `String("abc")`, StringValue("abc").String())
	assert.Equal(t, "Bytes(0x0102)", BytesValue([]byte{1, 2}).String())
}
