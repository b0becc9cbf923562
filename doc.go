/*
Package speedyxml provides a fast, forward-only way to generate XML data.

The Writer turns a sequence of structural calls - start tag, attribute,
text, CDATA, comment, end tag - into a syntactically valid XML byte stream.
It enforces XML lexical rules (valid names, proper escaping, balanced tag
closure) while keeping almost no state: one flag saying whether the last
start tag is still open for attributes, and a nesting depth counter. There
is no document tree, no name stack and no namespace resolution; prefixes
are purely lexical.

# Creating

speedyxml.Open takes any io.Writer, along with a variable list of options:

	b := &bytes.Buffer{}
	w := speedyxml.Open(b)

Options use the functional options pattern
(https://dave.cheney.net/2014/10/17/functional-options-for-friendly-apis):

	w := speedyxml.Open(b, speedyxml.WithOmitComments())

Provided options are:
  - WithOmitComments()
  - WithInitialBufSize(int)

# Writing

A start tag stays open for attributes until the next non-attribute write,
which closes it automatically - with "/>" if it was written by WriteEmpty,
with ">" otherwise:

	ec := &speedyxml.ErrCollector{}
	defer ec.Panic()
	ec.Do(
		w.WriteStart("", "doc"),
		w.WriteAttribute("id", "1"),
		w.WriteText("a < b"),
		w.WriteEnd("", "doc"),
		w.Finish(),
	)

Becomes: <doc id="1">a &lt; b</doc>

The Writer buffers internally; don't forget to call Finish (or Flush) or
you'll lose data. Both close a pending start tag first. A Writer that is
simply dropped closes nothing.

# Raw content

Every content method has a raw twin - WriteRawText, WriteRawAttribute,
WriteRawComment - that accepts caller-attested, already-escaped content.
Raw methods only validate that the forbidden sequence for their context is
absent ('<' in text, "-->" in comments, "]]>" in CDATA, the quote character
in attribute values); they never escape, because escaping is not
idempotent and re-escaping parsed content would corrupt it. The plain
methods escape for you and skip that validation, since escaped output
cannot contain the forbidden sequences.

# Events

A Reader lexes an XML string into events whose payloads are raw source
spans. Replaying them through WriteEvent reproduces the input byte for
byte:

	r := speedyxml.NewReader(src)
	w := speedyxml.Open(&out)
	for {
		ev, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		if err := w.WriteEvent(ev); err != nil {
			return err
		}
	}
	return w.Finish()

# Errors

All Writer errors are *Error values carrying an ErrCode. Validation errors
are detected before any byte is written, so the failed call leaves the
Writer untouched. An ErrIO wraps the sink's error and poisons the Writer.
ErrCollector helps keep procedural assembly readable; see its
documentation.

# Encodings

speedyxml supports encoders from the golang.org/x/text/encoding package.
UTF-8 strings written to the Writer are converted on the fly:

	enc := charmap.Windows1252.NewEncoder()
	w := speedyxml.OpenEncoding(b, enc)

No BOM or encoding declaration is emitted automatically.
*/
package speedyxml
