package speedyxml

import (
	"errors"
	"fmt"
	"testing"

	tt "github.com/afishhh/speedy-xml/testtool"
)

func TestErrorText(t *testing.T) {
	tt.Equals(t, "speedyxml: invalid element name", errCode(ErrInvalidElementName).Error())
	tt.Equals(t, "speedyxml: cdata content cannot contain ']]>'", errCode(ErrInvalidCData).Error())
}

func TestErrorIOWraps(t *testing.T) {
	in := fmt.Errorf("yep")
	err := ioErr(in)
	tt.Equals(t, "speedyxml: yep", err.Error())
	tt.Assert(t, errors.Is(err, in))
}

func TestErrorIsMatchesCode(t *testing.T) {
	err := error(errCode(ErrInvalidCData))
	tt.Assert(t, errors.Is(err, &Error{Code: ErrInvalidCData}))
	tt.Assert(t, !errors.Is(err, &Error{Code: ErrInvalidValue}))
}

func TestCollectorSet(t *testing.T) {
	in := fmt.Errorf("yep")
	ec := &ErrCollector{}
	result := func() (err error) {
		defer ec.Set(&err)
		ec.Do(nil)
		ec.Do(in)
		return
	}()
	tt.Equals(t, ec, result)
	tt.Pattern(t, `error at .*errs_test\.go.* #1 - yep`, ec.Error())
}

func TestCollectorSetOK(t *testing.T) {
	ec := &ErrCollector{}
	result := func() (err error) {
		defer ec.Set(&err)
		ec.Do(nil)
		return
	}()
	tt.Equals(t, nil, result)
}

func TestCollectorSetMultiple(t *testing.T) {
	in := fmt.Errorf("yep")
	ec := &ErrCollector{}
	result := func() (err error) {
		defer ec.Set(&err)
		ec.Do(nil, nil, in)
		return
	}()
	tt.Equals(t, ec, result)
	tt.Pattern(t, `error at .*errs_test\.go.* #3 - yep`, ec.Error())
}

func TestCollectorPanic(t *testing.T) {
	in := fmt.Errorf("yep")
	ec := &ErrCollector{}
	result := func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = r.(error)
			}
		}()
		func() {
			defer ec.Panic()
			ec.Do(nil, nil, in)
		}()
		return
	}()
	tt.Equals(t, ec, result)
	tt.Pattern(t, `error at .*errs_test\.go.* #3 - yep`, ec.Error())
}

func TestCollectorMust(t *testing.T) {
	in := fmt.Errorf("yep")
	ec := &ErrCollector{}
	result := func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = r.(error)
			}
		}()
		ec.Must(nil, in, fmt.Errorf("discarded"))
		return
	}()
	tt.Equals(t, ec, result)
	tt.Pattern(t, `error at .*errs_test\.go.* #2 - yep`, ec.Error())
}

func TestCollectorUnwrap(t *testing.T) {
	in := fmt.Errorf("yep")
	ec := &ErrCollector{}
	result := func() (err error) {
		defer ec.Set(&err)
		ec.Do(in)
		return
	}()
	tt.Assert(t, errors.Is(result, in))
}
