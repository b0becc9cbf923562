package speedyxml

import (
	"fmt"
	"testing"

	tt "github.com/afishhh/speedy-xml/testtool"
)

func TestEscapeContent(t *testing.T) {
	for idx, c := range []struct {
		in, out string
	}{
		{"", ""},
		{"hello", "hello"},
		{"tabs\tand\nnewlines\r", "tabs\tand\nnewlines\r"},
		{"a < b", "a &lt; b"},
		{"a > b", "a &gt; b"},
		{"a & b", "a &amp; b"},
		{`say "hi"`, "say &#34;hi&#34;"},
		{"it's", "it&#39;s"},
		{`<a href="x">&amp;</a>`, "&lt;a href=&#34;x&#34;&gt;&amp;amp;&lt;/a&gt;"},
		{"Résumé 😀", "Résumé 😀"},
		// control bytes are outside the XML character range
		{"a\x00b", "a�b"},
		{"a\x0bb", "a�b"},
		// a lone continuation byte decodes as RuneError with width 1
		{"a\x80b", "a�b"},
		// a genuine U+FFFD survives
		{"a�b", "a�b"},
	} {
		t.Run(fmt.Sprintf("%d", idx), func(t *testing.T) {
			tt.Equals(t, c.out, EscapeContent(c.in))
		})
	}
}

// The fast path must return the input string itself, not a copy.
func TestEscapeContentPassthrough(t *testing.T) {
	in := "nothing to do here"
	tt.Equals(t, in, EscapeContent(in))
}

func TestEscapeComment(t *testing.T) {
	for idx, c := range []struct {
		in, out string
	}{
		{"", ""},
		{"hello", "hello"},
		{"a-b", "a-b"},
		{"a--b", "a- -b"},
		{"a---b", "a- - -b"},
		{"a----b", "a- - - -b"},
		{"tail-", "tail- "},
		{"tail--", "tail- - "},
		{"-", "- "},
		{"--", "- - "},
		{"-a-b-", "-a-b- "},
	} {
		t.Run(fmt.Sprintf("%d", idx), func(t *testing.T) {
			out := EscapeComment(c.in)
			tt.Equals(t, c.out, out)
		})
	}
}
