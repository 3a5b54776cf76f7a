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
	"fmt"
)

// ErrFailToConvert is the generic conversion failure: no applicable
// mapping exists for the input (unrepresentable numeric magnitude,
// unsupported array payload, unknown native type). Producers wrap it
// with context; match with errors.Is.
var ErrFailToConvert = errors.New("sqlval: fail to convert")

// ErrInfallible marks call sites that share an error channel but are
// statically unable to fail. It must not occur in correct code; seeing
// it reported means the infallible assumption was broken.
var ErrInfallible = errors.New("sqlval: infallible conversion reported failure")

func fmtErrFailToConvert(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrFailToConvert)...)
}

// CountMismatchError is raised when a positional-binding bulk operation
// receives a different number of columns than values. Instances built
// from the same counts compare equal.
type CountMismatchError struct {
	Columns int
	Values  int
}

func (e CountMismatchError) Error() string {
	return fmt.Sprintf("columns and values length mismatch: %d != %d", e.Columns, e.Values)
}

// OverflowError reports an integer narrowing that lost information.
// Value keeps the decimal text of the offending magnitude.
type OverflowError struct {
	Value  string
	Target Kind
}

func (e OverflowError) Error() string {
	return fmt.Sprintf("value %s overflows %s", e.Value, e.Target)
}

// InvalidUTF8Error reports a byte-sequence payload that is not valid
// UTF-8 where text was required. Data keeps the offending payload.
// The Data field makes the struct non-comparable with ==; compare
// structurally (reflect-based equality) or match with errors.As.
type InvalidUTF8Error struct {
	Data []byte
}

func (e InvalidUTF8Error) Error() string {
	return fmt.Sprintf("invalid UTF-8 in %d-byte payload", len(e.Data))
}
