package speedyxml

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

// Null discards everything, successfully.
type Null struct{}

func (Null) Write(p []byte) (n int, err error) {
	return len(p), nil
}

// DodgyWriter lets tests inject sink failures.
type DodgyWriter struct {
	writer     io.Writer
	shouldFail func(b []byte) (fail bool, n int, err error)
}

func (d *DodgyWriter) Write(b []byte) (n int, err error) {
	if fail, n, err := d.shouldFail(b); fail {
		return n, err
	}
	return d.writer.Write(b)
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

func open(o ...Option) (*bytes.Buffer, *Writer) {
	b := &bytes.Buffer{}
	w := Open(b, o...)
	return b, w
}

// str drains the writer's buffer without closing a pending start tag, so
// tests can observe intermediate output like "<elem".
func str(b *bytes.Buffer, w *Writer) string {
	must(w.printer.Flush())
	return b.String()
}

// wantCode fails the test unless err is an *Error with the given code.
func wantCode(tb testing.TB, err error, want ErrCode) {
	tb.Helper()
	var xe *Error
	if !errors.As(err, &xe) {
		tb.Fatalf("expected error code %q, got %v", want, err)
	}
	if xe.Code != want {
		tb.Fatalf("expected error code %q, got %q", want, xe.Code)
	}
}
