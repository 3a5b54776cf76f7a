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

//go:build sqlval_no_json && sqlval_no_datetime && sqlval_no_uuid

package sqlval

// Runs only in a build with every optional capability disabled:
//
//	go test -tags 'sqlval_no_json sqlval_no_datetime sqlval_no_uuid' ./pkg/sqlval
//
// With the constructors and extractors compiled out, the predicates
// must still exist and report false, and the size invariant must hold
// unchanged.

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestDisabledCapabilities_PredicatesReportFalse(t *testing.T) {
	for _, v := range []Value{NullValue(), BoolValue(true), StringValue("x"), BytesValue([]byte{1})} {
		require.False(t, v.IsJSON())
		require.False(t, v.IsDateTime())
		require.False(t, v.IsUUID())
	}
}

func TestDisabledCapabilities_ValueStillPointerSized(t *testing.T) {
	require.Equal(t, unsafe.Sizeof(uintptr(0)), unsafe.Sizeof(Value{}))
}
