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

import "strings"

// EscapeString transforms s for safe embedding inside a single-quoted
// SQL text literal. The substitution table, applied in a single pass so
// backslashes introduced by one substitution are never re-escaped:
//
//	\ -> \\    " -> \"    ' -> \'    NUL -> \0    BS -> \b
//	TAB -> \t  SUB -> \z  LF -> \n   CR -> \r
//
// UnescapeString(EscapeString(x)) == x for every x. The converse does
// not hold: UnescapeString accepts inputs EscapeString never produces.
func EscapeString(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\'':
			b.WriteString(`\'`)
		case 0x00:
			b.WriteString(`\0`)
		case 0x08:
			b.WriteString(`\b`)
		case 0x09:
			b.WriteString(`\t`)
		case 0x1a:
			b.WriteString(`\z`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// UnescapeString is the left inverse of EscapeString. It scans left to
// right; an unescaped backslash starts a two-character sequence whose
// second character is mapped back through the same table. Characters
// outside the table (the quotes and the backslash itself among them)
// pass through unchanged once the marker is consumed. The scan never
// looks further than the one character after the marker.
func UnescapeString(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	escaped := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case escaped:
			switch c {
			case '0':
				b.WriteByte(0x00)
			case 'b':
				b.WriteByte(0x08)
			case 't':
				b.WriteByte(0x09)
			case 'z':
				b.WriteByte(0x1a)
			case 'n':
				b.WriteByte('\n')
			case 'r':
				b.WriteByte('\r')
			default:
				b.WriteByte(c)
			}
			escaped = false
		case c == '\\':
			escaped = true
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
