// Package testtool contains the small assertion helpers used by the
// speedyxml tests.
package testtool

import (
	"reflect"
	"regexp"
	"testing"
)

// Assert fails the test if the condition is false.
func Assert(tb testing.TB, condition bool, v ...interface{}) {
	tb.Helper()
	if !condition {
		if len(v) > 0 {
			tb.Fatalf("assertion failed: "+v[0].(string), v[1:]...)
		}
		tb.Fatal("assertion failed")
	}
}

// OK fails the test if err is not nil.
func OK(tb testing.TB, err error) {
	tb.Helper()
	if err != nil {
		tb.Fatalf("unexpected error: %s", err.Error())
	}
}

// Equals fails the test if exp is not equal to act.
func Equals(tb testing.TB, exp, act interface{}) {
	tb.Helper()
	if !reflect.DeepEqual(exp, act) {
		tb.Fatalf("\n\texp: %#v\n\n\tgot: %#v", exp, act)
	}
}

// Pattern fails the test if the input string does not match the supplied
// regular expression.
func Pattern(tb testing.TB, pattern string, in string) {
	tb.Helper()
	ptn, err := regexp.Compile(pattern)
	if err != nil {
		tb.Fatalf("bad pattern %#v: %v", pattern, err)
	}
	if !ptn.MatchString(in) {
		tb.Fatalf("\n\tptn: %#v\n\n\tgot: %#v", pattern, in)
	}
}
