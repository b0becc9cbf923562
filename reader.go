package speedyxml

import (
	"fmt"
	"io"
	"strings"
)

// Reader is a minimal pull parser over a string. It yields events whose
// payloads are raw source spans, which is what Writer.WriteEvent needs to
// reproduce the input byte for byte: text stays escaped, attribute values
// keep their original quote character, comments and CDATA sections keep
// their delimiters.
//
// The Reader lexes structure only. Names are not checked against the name
// grammar, entities are not decoded, end tags are not matched against start
// tags, and top-level text is allowed. Processing instructions and XML
// declarations have no event representation and are rejected.
type Reader struct {
	src string
	pos int
}

// NewReader returns a Reader over src.
func NewReader(src string) *Reader {
	return &Reader{src: src}
}

// Pos returns the byte offset of the next event in the source.
func (r *Reader) Pos() int {
	return r.pos
}

// Next returns the next event. Once the input is exhausted it returns
// io.EOF.
func (r *Reader) Next() (Event, error) {
	if r.pos >= len(r.src) {
		return nil, io.EOF
	}
	if r.src[r.pos] != '<' {
		start := r.pos
		if end := strings.IndexByte(r.src[r.pos:], '<'); end >= 0 {
			r.pos += end
		} else {
			r.pos = len(r.src)
		}
		return TextEvent{Raw: r.src[start:r.pos]}, nil
	}

	rest := r.src[r.pos:]
	switch {
	case strings.HasPrefix(rest, "<!--"):
		raw, err := r.span("<!--", "-->")
		if err != nil {
			return nil, err
		}
		return CommentEvent{Raw: raw}, nil
	case strings.HasPrefix(rest, "<![CDATA["):
		raw, err := r.span("<![CDATA[", "]]>")
		if err != nil {
			return nil, err
		}
		return CDataEvent{Raw: raw}, nil
	case strings.HasPrefix(rest, "<!"):
		raw, err := r.span("<!", ">")
		if err != nil {
			return nil, err
		}
		return DoctypeEvent{Raw: raw}, nil
	case strings.HasPrefix(rest, "<?"):
		return nil, fmt.Errorf("speedyxml: processing instruction at position %d is not supported", r.pos)
	case strings.HasPrefix(rest, "</"):
		return r.endTag()
	default:
		return r.startTag()
	}
}

// span consumes a construct running from open to the first occurrence of
// term and returns the whole raw span, delimiters included.
func (r *Reader) span(open, term string) (string, error) {
	idx := strings.Index(r.src[r.pos+len(open):], term)
	if idx < 0 {
		return "", fmt.Errorf("speedyxml: unterminated %q at position %d", open, r.pos)
	}
	start := r.pos
	r.pos += len(open) + idx + len(term)
	return r.src[start:r.pos], nil
}

func (r *Reader) endTag() (Event, error) {
	end := strings.IndexByte(r.src[r.pos:], '>')
	if end < 0 {
		return nil, fmt.Errorf("speedyxml: unterminated end tag at position %d", r.pos)
	}
	name := strings.TrimRight(r.src[r.pos+2:r.pos+end], " \t\r\n")
	r.pos += end + 1
	prefix, local := splitName(name)
	return EndEvent{Prefix: prefix, Name: local}, nil
}

func (r *Reader) startTag() (Event, error) {
	i := r.pos + 1
	nameStart := i
	for i < len(r.src) && !isTagDelim(r.src[i]) {
		i++
	}
	if nameStart == i {
		return nil, fmt.Errorf("speedyxml: missing element name at position %d", r.pos)
	}
	var ev StartEvent
	ev.Prefix, ev.Name = splitName(r.src[nameStart:i])

	for {
		for i < len(r.src) && isSpaceByte(r.src[i]) {
			i++
		}
		if i >= len(r.src) {
			return nil, fmt.Errorf("speedyxml: unterminated start tag at position %d", r.pos)
		}
		switch r.src[i] {
		case '>':
			r.pos = i + 1
			return ev, nil
		case '/':
			if i+1 >= len(r.src) || r.src[i+1] != '>' {
				return nil, fmt.Errorf("speedyxml: malformed start tag at position %d", r.pos)
			}
			ev.Empty = true
			r.pos = i + 2
			return ev, nil
		}

		attrStart := i
		for i < len(r.src) && r.src[i] != '=' && r.src[i] != '>' && r.src[i] != '/' && !isSpaceByte(r.src[i]) {
			i++
		}
		name := r.src[attrStart:i]
		if name == "" {
			return nil, fmt.Errorf("speedyxml: missing attribute name at position %d", attrStart)
		}
		for i < len(r.src) && isSpaceByte(r.src[i]) {
			i++
		}
		if i >= len(r.src) || r.src[i] != '=' {
			return nil, fmt.Errorf("speedyxml: attribute %q missing '=' at position %d", name, attrStart)
		}
		i++
		for i < len(r.src) && isSpaceByte(r.src[i]) {
			i++
		}
		if i >= len(r.src) || (r.src[i] != '"' && r.src[i] != '\'') {
			return nil, fmt.Errorf("speedyxml: attribute %q missing quoted value at position %d", name, attrStart)
		}
		quote := r.src[i]
		i++
		valStart := i
		end := strings.IndexByte(r.src[i:], quote)
		if end < 0 {
			return nil, fmt.Errorf("speedyxml: unterminated attribute value at position %d", valStart)
		}
		i += end
		ev.Attrs = append(ev.Attrs, AttrEvent{
			Name:     name,
			Quote:    AttrQuote(quote),
			RawValue: r.src[valStart:i],
		})
		i++
	}
}

func splitName(name string) (prefix, local string) {
	if i := strings.IndexByte(name, ':'); i >= 0 {
		return name[:i], name[i+1:]
	}
	return "", name
}

func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

func isTagDelim(b byte) bool {
	return isSpaceByte(b) || b == '>' || b == '/'
}
