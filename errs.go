package speedyxml

import (
	"fmt"
	"runtime"
)

// ErrCode identifies the reason a write was rejected.
type ErrCode int

// Range of allowed ErrCode values.
const (
	// ErrInvalidElementPrefix indicates an invalid prefix was passed to
	// WriteStart or WriteEnd.
	ErrInvalidElementPrefix ErrCode = iota + 1

	// ErrInvalidElementName indicates an invalid name was passed to
	// WriteStart, WriteEmpty or WriteEnd.
	ErrInvalidElementName

	// ErrInvalidAttributeName indicates an invalid name was passed to
	// WriteAttribute or WriteRawAttribute.
	ErrInvalidAttributeName

	// ErrInvalidAttributeValue indicates a raw attribute value collided
	// with the null byte or the chosen quote character.
	ErrInvalidAttributeValue

	// ErrAttributeOutsideTag indicates an attribute write was attempted
	// while no start tag was open.
	ErrAttributeOutsideTag

	// ErrImproperlyEscaped indicates raw content contained a sequence that
	// must never appear unescaped in its context.
	ErrImproperlyEscaped

	// ErrInvalidCData indicates a CDATA payload contained "]]>".
	ErrInvalidCData

	// ErrInvalidValue indicates raw content contained a null byte.
	ErrInvalidValue

	// ErrIO wraps a failure of the underlying sink. It is the only code
	// with a nested cause; the Writer must be considered poisoned after it.
	ErrIO
)

var errText = map[ErrCode]string{
	ErrInvalidElementPrefix:  "invalid element prefix",
	ErrInvalidElementName:    "invalid element name",
	ErrInvalidAttributeName:  "invalid attribute name",
	ErrInvalidAttributeValue: "invalid attribute value",
	ErrAttributeOutsideTag:   "attributes are only allowed inside tags",
	ErrImproperlyEscaped:     "improperly escaped content",
	ErrInvalidCData:          "cdata content cannot contain ']]>'",
	ErrInvalidValue:          "value contains null byte",
	ErrIO:                    "i/o error",
}

func (c ErrCode) String() string {
	if s, ok := errText[c]; ok {
		return s
	}
	return fmt.Sprintf("errcode(%d)", int(c))
}

// Error is the error type returned by all Writer methods. Validation
// failures carry only a Code; sink failures carry ErrIO and wrap the
// underlying error.
type Error struct {
	Code ErrCode
	Err  error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Code == ErrIO && e.Err != nil {
		return "speedyxml: " + e.Err.Error()
	}
	return "speedyxml: " + e.Code.String()
}

// Unwrap returns the underlying sink error, if any.
func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error with the same code, so that
// errors.Is(err, &Error{Code: ErrInvalidCData}) works as expected.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

func errCode(c ErrCode) *Error { return &Error{Code: c} }

func ioErr(err error) error {
	if err == nil {
		return nil
	}
	return &Error{Code: ErrIO, Err: err}
}

/*
ErrCollector allows you to defer raising or accumulating an error
until after a series of procedural calls.

ErrCollector is intended to help cut down on boilerplate like this:

	if err := w.WriteStart("", "doc"); err != nil {
		return err
	}
	if err := w.WriteAttribute("attr", "yep"); err != nil {
		return err
	}
	if err := w.WriteAttribute("attr2", "nup"); err != nil {
		return err
	}
	if err := w.WriteText("hello"); err != nil {
		return err
	}

For any sufficiently complex procedural XML assembly, this is patently
ridiculous. ErrCollector allows you to assume that it's ok to keep writing
until the end of a controlled block, then fail with the first error that
occurred. Every Writer method is safe to call after a failed call: failed
validation leaves the Writer untouched, and after an I/O error the buffer
keeps reporting the same error without doing further work.

For functions that return an error:

	func pants(w *speedyxml.Writer) (err error) {
		ec := &speedyxml.ErrCollector{}
		defer ec.Set(&err)
		ec.Do(
			w.WriteStart("", "elem"),
			w.WriteAttribute("name", "yep"),
			w.WriteText("hello"),
			w.WriteEnd("", "elem"),
		)
		return
	}

If you want to panic instead, just substitute `defer ec.Set(&err)` with
`defer ec.Panic()`.

It is entirely the responsibility of the library's user to remember to call
either `ec.Set()` or `ec.Panic()`. If you don't, you'll be swallowing errors.
*/
type ErrCollector struct {
	File  string
	Line  int
	Index int
	Err   error
}

// Error implements the error interface.
func (e *ErrCollector) Error() string {
	return fmt.Sprintf("error at %s:%d #%d - %v", e.File, e.Line, e.Index, e.Err)
}

// Unwrap returns the collected error.
func (e *ErrCollector) Unwrap() error { return e.Err }

// Panic causes the collector to panic if any error has been collected.
//
// This should be called in a defer:
//
//	func pants() {
//		ec := &speedyxml.ErrCollector{}
//		defer ec.Panic()
//		ec.Do(fmt.Errorf("this will panic at the end"))
//		fmt.Printf("This will print")
//	}
func (e *ErrCollector) Panic() {
	if e.Err != nil {
		panic(e)
	}
}

// Set assigns the collector's internal error to an external error variable.
//
// This should be called in a defer with a named return to allow an error
// to be easily returned if one is collected:
//
//	func pants() (err error) {
//		ec := &speedyxml.ErrCollector{}
//		defer ec.Set(&err)
//		ec.Do(fmt.Errorf("this error will be returned by the pants function"))
//		fmt.Printf("This will print")
//	}
func (e *ErrCollector) Set(err *error) {
	if e.Err != nil {
		*err = e
	}
}

// Do collects the first error in a list of errors and holds on to it.
//
// If you pass the result of multiple functions to Do, they will not be
// short circuited on failure - the first error is retained by the collector
// and the rest are discarded. It is only intended to be used when you know
// that subsequent calls after the first error are safe to make.
func (e *ErrCollector) Do(errs ...error) {
	for i, err := range errs {
		if err != nil {
			_, file, line, _ := runtime.Caller(1)
			e.Err = err
			e.Index = i + 1
			e.File = file
			e.Line = line
			return
		}
	}
}

// Must collects the first error in a list of errors and panics with it.
func (e *ErrCollector) Must(errs ...error) {
	for i, err := range errs {
		if err != nil {
			_, file, line, _ := runtime.Caller(1)
			e.Err = err
			e.Index = i + 1
			e.File = file
			e.Line = line
			panic(e)
		}
	}
}
