package speedyxml

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
)

const defaultBufSize = 2048

// tagState tracks whether the most recently started element is still open
// for attributes, and which byte sequence must finish it.
type tagState uint8

const (
	tagNone      tagState = iota
	tagOpen               // "<name" emitted by WriteStart; ">" pending
	tagOpenEmpty          // "<name" emitted by WriteEmpty; "/>" pending
)

// Writer writes XML to an io.Writer one structural call at a time, without
// building a document tree. Calls must be sequential; the Writer holds no
// lock. Validation failures are detected before any byte is written, so a
// failed call leaves the Writer exactly as it was. An I/O error poisons the
// Writer: the byte stream may be truncated mid-tag and further calls keep
// reporting the same error.
type Writer struct {
	printer printer
	depth   int
	tag     tagState

	omitComments   bool
	initialBufSize int
}

// Option is an option to the Writer.
type Option func(w *Writer)

// WithOmitComments makes WriteComment and WriteRawComment no-ops that
// still validate their input but emit nothing:
//
//	w := speedyxml.Open(b, speedyxml.WithOmitComments())
func WithOmitComments() Option {
	return func(w *Writer) {
		w.omitComments = true
	}
}

// WithInitialBufSize determines how much memory the internal buffer will
// use. Values <= 0 select the default.
func WithInitialBufSize(size int) Option {
	return func(w *Writer) {
		w.initialBufSize = size
	}
}

func newWriter(w io.Writer, options ...Option) *Writer {
	xw := &Writer{}
	for _, o := range options {
		o(xw)
	}
	if xw.initialBufSize <= 0 {
		xw.initialBufSize = defaultBufSize
	}
	xw.printer = printer{Writer: bufio.NewWriterSize(w, xw.initialBufSize)}
	return xw
}

// Open opens a Writer over w. Strings passed to the Writer are expected to
// be UTF-8 and are emitted as UTF-8; no BOM or document declaration is
// written.
func Open(w io.Writer, options ...Option) *Writer {
	return newWriter(w, options...)
}

// OpenEncoding opens a Writer whose output is converted on the fly to the
// supplied encoding from the golang.org/x/text/encoding package. You should
// still write UTF-8 strings to the Writer. Runes the target encoding cannot
// represent are emitted as numeric character references.
//
// This example opens a Writer using the utf16-be encoding:
//
//	enc := unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM).NewEncoder()
//	w := speedyxml.OpenEncoding(b, enc)
func OpenEncoding(w io.Writer, encoder *encoding.Encoder, options ...Option) *Writer {
	return newWriter(encoding.HTMLEscapeUnsupported(encoder).Writer(w), options...)
}

// Depth returns the number of fully opened, not yet closed elements. A
// start tag still open for attributes does not count until it is closed.
func (w *Writer) Depth() int {
	return w.depth
}

// closePending finishes a start tag left open for attributes. This is the
// single point where "<name" becomes "<name>" or "<name/>"; every write
// except attribute writes goes through it first, so once any content
// follows a start tag no further attributes can ever be appended to it.
func (w *Writer) closePending() error {
	switch w.tag {
	case tagOpen:
		w.printer.WriteByte('>')
		w.depth++
	case tagOpenEmpty:
		w.printer.WriteString("/>")
	default:
		return nil
	}
	w.tag = tagNone
	return w.printer.cachedWriteError()
}

func (w *Writer) writeName(lead string, prefix, name string) error {
	w.printer.WriteString(lead)
	if prefix != "" {
		w.printer.WriteString(prefix)
		w.printer.WriteByte(':')
	}
	w.printer.WriteString(name)
	return w.printer.cachedWriteError()
}

// WriteStart writes a start tag with the specified prefix and name. An
// empty prefix means no prefix. The tag is left open so that attributes can
// be appended; the next non-attribute write closes it with ">".
func (w *Writer) WriteStart(prefix, name string) error {
	if prefix != "" && !validElementName(prefix) {
		return errCode(ErrInvalidElementPrefix)
	}
	if !validElementName(name) {
		return errCode(ErrInvalidElementName)
	}
	if err := w.closePending(); err != nil {
		return ioErr(err)
	}
	w.tag = tagOpen
	return ioErr(w.writeName("<", prefix, name))
}

// WriteEmpty writes a self-closing tag with the specified prefix and name.
// The tag is left open so that attributes can be appended; the next
// non-attribute write closes it with "/>" and it contributes nothing to the
// nesting depth. Unlike WriteStart, the prefix is written without being
// validated.
func (w *Writer) WriteEmpty(prefix, name string) error {
	if !validElementName(name) {
		return errCode(ErrInvalidElementName)
	}
	if err := w.closePending(); err != nil {
		return ioErr(err)
	}
	w.tag = tagOpenEmpty
	return ioErr(w.writeName("<", prefix, name))
}

// WriteRawAttribute writes an attribute delimited by the chosen quote. The
// value is not escaped; the caller attests that it is already escaped and
// free of the quote character. Valid only while a start tag is open for
// attributes, i.e. after a successful WriteStart, WriteEmpty,
// WriteAttribute or WriteRawAttribute.
func (w *Writer) WriteRawAttribute(name string, quote AttrQuote, value string) error {
	if w.tag == tagNone {
		return errCode(ErrAttributeOutsideTag)
	}
	if !validAttrName(name) {
		return errCode(ErrInvalidAttributeName)
	}
	if strings.IndexByte(value, 0) >= 0 || strings.IndexByte(value, byte(quote)) >= 0 {
		return errCode(ErrInvalidAttributeValue)
	}
	w.printer.WriteByte(' ')
	w.printer.WriteString(name)
	w.printer.WriteByte('=')
	w.printer.WriteByte(byte(quote))
	w.printer.WriteString(value)
	w.printer.WriteByte(byte(quote))
	return ioErr(w.printer.cachedWriteError())
}

// WriteAttribute escapes value and writes it as a double-quoted attribute.
// EscapeContent escapes both quote characters, so the result embeds safely
// regardless of quote choice.
func (w *Writer) WriteAttribute(name, value string) error {
	return w.WriteRawAttribute(name, DoubleQuote, EscapeContent(value))
}

// WriteEnd writes an end tag with the specified prefix and name and
// decrements the nesting depth. The Writer keeps no name stack: the caller
// must supply the pair matching the corresponding WriteStart, and writing
// more ends than starts is a caller contract violation that is not guarded.
func (w *Writer) WriteEnd(prefix, name string) error {
	if prefix != "" && !validElementName(prefix) {
		return errCode(ErrInvalidElementPrefix)
	}
	if !validElementName(name) {
		return errCode(ErrInvalidElementName)
	}
	if err := w.closePending(); err != nil {
		return ioErr(err)
	}
	if err := w.writeName("</", prefix, name); err != nil {
		return ioErr(err)
	}
	w.printer.WriteByte('>')
	w.depth--
	return ioErr(w.printer.cachedWriteError())
}

func (w *Writer) rawText(text string) error {
	if err := w.closePending(); err != nil {
		return err
	}
	w.printer.WriteString(text)
	return w.printer.cachedWriteError()
}

// WriteRawText writes already-escaped text content verbatim. The text may
// not contain '<' (ErrImproperlyEscaped) or a null byte (ErrInvalidValue).
func (w *Writer) WriteRawText(text string) error {
	if i := strings.IndexAny(text, "\x00<"); i >= 0 {
		if text[i] == '<' {
			return errCode(ErrImproperlyEscaped)
		}
		return errCode(ErrInvalidValue)
	}
	return ioErr(w.rawText(text))
}

// WriteText escapes content and writes it as text.
func (w *Writer) WriteText(content string) error {
	return ioErr(w.rawText(EscapeContent(content)))
}

// WriteCData writes a CDATA section. The text may not contain the CDATA
// terminator "]]>".
func (w *Writer) WriteCData(text string) error {
	if strings.Contains(text, "]]>") {
		return errCode(ErrInvalidCData)
	}
	if err := w.closePending(); err != nil {
		return ioErr(err)
	}
	w.printer.WriteString("<![CDATA[")
	w.printer.WriteString(text)
	w.printer.WriteString("]]>")
	return ioErr(w.printer.cachedWriteError())
}

func (w *Writer) rawComment(text string) error {
	if err := w.closePending(); err != nil {
		return err
	}
	w.printer.WriteString("<!--")
	w.printer.WriteString(text)
	w.printer.WriteString("-->")
	return w.printer.cachedWriteError()
}

// WriteRawComment writes an already-escaped comment body verbatim. The text
// may not contain "-->" (ErrImproperlyEscaped) or a null byte
// (ErrInvalidValue); a bare "--" is accepted. If the Writer was opened with
// WithOmitComments, the input is still validated but nothing is emitted and
// a pending start tag stays open.
func (w *Writer) WriteRawComment(text string) error {
	if strings.Contains(text, "-->") {
		return errCode(ErrImproperlyEscaped)
	}
	if strings.IndexByte(text, 0) >= 0 {
		return errCode(ErrInvalidValue)
	}
	if w.omitComments {
		return nil
	}
	return ioErr(w.rawComment(text))
}

// WriteComment escapes content with EscapeComment and writes it as a
// comment. If the Writer was opened with WithOmitComments, nothing is
// emitted.
func (w *Writer) WriteComment(content string) error {
	if w.omitComments {
		return nil
	}
	return ioErr(w.rawComment(EscapeComment(content)))
}

// WriteAttributeEvent re-emits a parsed attribute byte for byte: name,
// quote choice and raw value are written exactly as they appeared in
// source, with no validation beyond the start tag context check.
func (w *Writer) WriteAttributeEvent(attr AttrEvent) error {
	if w.tag == tagNone {
		return errCode(ErrAttributeOutsideTag)
	}
	w.printer.WriteByte(' ')
	w.printer.WriteString(attr.Name)
	w.printer.WriteByte('=')
	w.printer.WriteByte(byte(attr.Quote))
	w.printer.WriteString(attr.RawValue)
	w.printer.WriteByte(byte(attr.Quote))
	return ioErr(w.printer.cachedWriteError())
}

// WriteEvent dispatches a parsed event to the corresponding raw write path.
// Payloads are re-emitted without re-escaping - escaping is not idempotent,
// and the event producer attests its text is already escaped for its
// context - so replaying a Reader's events reproduces the original bytes.
// Comment events are passed through even when comments are omitted.
func (w *Writer) WriteEvent(ev Event) error {
	switch ev := ev.(type) {
	case StartEvent:
		var err error
		if ev.Empty {
			err = w.WriteEmpty(ev.Prefix, ev.Name)
		} else {
			err = w.WriteStart(ev.Prefix, ev.Name)
		}
		if err != nil {
			return err
		}
		for _, attr := range ev.Attrs {
			if err := w.WriteAttributeEvent(attr); err != nil {
				return err
			}
		}
		return nil
	case EndEvent:
		return w.WriteEnd(ev.Prefix, ev.Name)
	case TextEvent:
		return ioErr(w.rawText(ev.Raw))
	case CDataEvent:
		return ioErr(w.rawText(ev.Raw))
	case CommentEvent:
		return ioErr(w.rawText(ev.Raw))
	case DoctypeEvent:
		return ioErr(w.rawText(ev.Raw))
	default:
		return fmt.Errorf("speedyxml: unexpected event %s", ev.Kind())
	}
}

// Flush closes any pending start tag, then flushes the output buffer to
// the underlying io.Writer.
func (w *Writer) Flush() error {
	if err := w.closePending(); err != nil {
		return ioErr(err)
	}
	return ioErr(w.printer.Flush())
}

// Finish closes any pending start tag and flushes the output buffer. After
// Finish returns, ownership of the underlying io.Writer is back with the
// caller and the Writer must not be used again. A Writer that is simply
// dropped without Finish may leave its last start tag unterminated and
// buffered bytes unwritten.
func (w *Writer) Finish() error {
	return w.Flush()
}
