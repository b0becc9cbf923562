package speedyxml

import "fmt"

// AttrQuote selects the quote byte delimiting an attribute value. It is
// chosen per attribute write, not globally.
type AttrQuote byte

// Allowed AttrQuote values.
const (
	DoubleQuote AttrQuote = '"'
	SingleQuote AttrQuote = '\''
)

// EventKind is the kind of a parsed event.
type EventKind int

// Range of allowed EventKind values.
const (
	NoEvent EventKind = iota
	StartKind
	EndKind
	TextKind
	CDataKind
	CommentKind
	DoctypeKind

	eventKindLength int = iota
)

var eventKindName = [eventKindLength]string{
	NoEvent:     "none",
	StartKind:   "start",
	EndKind:     "end",
	TextKind:    "text",
	CDataKind:   "cdata",
	CommentKind: "comment",
	DoctypeKind: "doctype",
}

// Name returns a stable name for the EventKind. If the EventKind is
// invalid, the Name() will be empty. String() returns a human-readable
// representation for information purposes; if a stable string is required,
// use this instead.
func (k EventKind) Name() string {
	if int(k) < eventKindLength {
		return eventKindName[k]
	}
	return ""
}

// String returns a human-readable representation of the EventKind. If a
// stable string is required, use Name().
func (k EventKind) String() string {
	s := k.Name()
	if s == "" {
		s = "<unknown>"
	}
	return fmt.Sprintf("%s(%d)", s, k)
}

// Event is one structural item produced by a Reader. The text-bearing
// variants carry the raw source span - escaped exactly as it appeared in
// the input, delimiters included - so that replaying events through
// Writer.WriteEvent reproduces the input byte for byte.
type Event interface {
	Kind() EventKind
}

// StartEvent is an opening or self-closing tag together with its
// attributes.
type StartEvent struct {
	Prefix string
	Name   string
	Attrs  []AttrEvent
	Empty  bool
}

// Kind implements Event.
func (StartEvent) Kind() EventKind { return StartKind }

// AttrEvent is a single parsed attribute. RawValue is the escaped value
// exactly as it appeared between the quotes.
type AttrEvent struct {
	Name     string
	Quote    AttrQuote
	RawValue string
}

// EndEvent is a closing tag.
type EndEvent struct {
	Prefix string
	Name   string
}

// Kind implements Event.
func (EndEvent) Kind() EventKind { return EndKind }

// TextEvent is a run of character data. Raw is the escaped source text.
type TextEvent struct {
	Raw string
}

// Kind implements Event.
func (TextEvent) Kind() EventKind { return TextKind }

// CDataEvent is a CDATA section. Raw includes the "<![CDATA[" and "]]>"
// delimiters.
type CDataEvent struct {
	Raw string
}

// Kind implements Event.
func (CDataEvent) Kind() EventKind { return CDataKind }

// CommentEvent is a comment. Raw includes the "<!--" and "-->" delimiters.
type CommentEvent struct {
	Raw string
}

// Kind implements Event.
func (CommentEvent) Kind() EventKind { return CommentKind }

// DoctypeEvent is a document type declaration. Raw includes the "<!" and
// ">" delimiters.
type DoctypeEvent struct {
	Raw string
}

// Kind implements Event.
func (DoctypeEvent) Kind() EventKind { return DoctypeKind }
