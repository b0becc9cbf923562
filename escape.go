// Copyright (c) 2009 The Go Authors. All rights reserved.

// Redistribution and use in source and binary forms, with or without
// modification, are permitted provided that the following conditions are
// met:

// * Redistributions of source code must retain the above copyright
// notice, this list of conditions and the following disclaimer.
// * Redistributions in binary form must reproduce the above
// copyright notice, this list of conditions and the following disclaimer
// in the documentation and/or other materials provided with the
// distribution.
// * Neither the name of Google Inc. nor the names of its
// contributors may be used to endorse or promote products derived from
// this software without specific prior written permission.

// THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
// "AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
// LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
// A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
// OWNER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
// SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
// LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
// DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
// THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
// (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
// OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

package speedyxml

import (
	"strings"
	"unicode/utf8"
)

// the escape replacement bytes are taken from encoding/xml/xml.go; the
// numeric forms for the quotes are shorter than "&quot;" and "&apos;".

var (
	escQuot = []byte("&#34;")
	escApos = []byte("&#39;")
	escAmp  = []byte("&amp;")
	escLt   = []byte("&lt;")
	escGt   = []byte("&gt;")
	escFffd = []byte("\uFFFD") // Unicode replacement character
)

// contentSafe marks bytes which pass through EscapeContent untouched.
// Anything outside the table takes the slow path: markup characters and
// quotes are escaped, runes outside the XML character range become U+FFFD.
var contentSafe [256]int

func init() {
	for i := 0x20; i < 0x80; i++ {
		contentSafe[i] = 1
	}
	contentSafe['\t'] = 1
	contentSafe['\n'] = 1
	contentSafe['\r'] = 1
	for _, b := range []byte{'"', '\'', '&', '<', '>'} {
		contentSafe[b] = 0
	}
}

// EscapeContent returns text with all markup-significant characters
// replaced by character references. Both quote characters are escaped, so
// the result is safe in text content and inside an attribute value
// regardless of the quote used to delimit it. Runes outside the XML
// character range are replaced with U+FFFD.
//
// If nothing needs escaping the input string is returned unchanged.
func EscapeContent(s string) string {
	i := 0
	for ; i < len(s); i++ {
		if contentSafe[s[i]] == 0 {
			goto slow
		}
	}
	return s

slow:
	var b strings.Builder
	b.Grow(len(s) + 8)
	b.WriteString(s[:i])

	last := i
	for i < len(s) {
		r, width := utf8.DecodeRuneInString(s[i:])
		i += width
		var esc []byte
		switch r {
		case '"':
			esc = escQuot
		case '\'':
			esc = escApos
		case '&':
			esc = escAmp
		case '<':
			esc = escLt
		case '>':
			esc = escGt
		default:
			if !isInCharacterRange(r) || (r == 0xFFFD && width == 1) {
				esc = escFffd
				break
			}
			continue
		}
		b.WriteString(s[last : i-width])
		b.Write(esc)
		last = i
	}
	b.WriteString(s[last:])
	return b.String()
}

// EscapeComment returns text made safe for a comment body. Character
// references are not recognized inside comments, so this is a lossy
// transformation: a space is inserted between consecutive dashes and after
// a trailing dash. The result never contains "--" and never ends with "-",
// which keeps both the comment terminator and the "--->" form out of the
// output.
//
// If nothing needs escaping the input string is returned unchanged.
func EscapeComment(s string) string {
	if !strings.Contains(s, "--") && !strings.HasSuffix(s, "-") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 4)
	for i := 0; i < len(s); i++ {
		b.WriteByte(s[i])
		if s[i] == '-' && (i+1 == len(s) || s[i+1] == '-') {
			b.WriteByte(' ')
		}
	}
	return b.String()
}

// Decide whether the given rune is in the XML Character Range, per
// the Char production of http://www.xml.com/axml/testaxml.htm,
// Section 2.2 Characters.
func isInCharacterRange(r rune) (inrange bool) {
	return r == 0x09 ||
		r == 0x0A ||
		r == 0x0D ||
		r >= 0x20 && r <= 0xD7FF ||
		r >= 0xE000 && r <= 0xFFFD ||
		r >= 0x10000 && r <= 0x10FFFF
}
