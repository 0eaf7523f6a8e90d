package assert

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func ObjectsAreEqual(expected, actual any) bool {
	if expected == nil || actual == nil {
		return expected == actual
	}

	exp, ok := expected.([]byte)
	if !ok {
		return cmp.Equal(expected, actual)
	}

	act, ok := actual.([]byte)
	if !ok {
		return false
	}

	return bytes.Equal(exp, act)
}

func message(msgAndArgs ...any) string {
	if len(msgAndArgs) == 0 {
		return ""
	}

	format, ok := msgAndArgs[0].(string)
	if !ok {
		format = fmt.Sprintf("%v", msgAndArgs[0])
	}

	return ": " + fmt.Sprintf(format, msgAndArgs[1:]...)
}

func Equal(t testing.TB, expected, actual any, msgAndArgs ...any) bool {
	t.Helper()
	if !ObjectsAreEqual(expected, actual) {
		t.Errorf("not equal%s (-expected +actual):\n%s", message(msgAndArgs...), cmp.Diff(expected, actual))
		return false
	}
	return true
}

func MustEqual(t testing.TB, expected, actual any, msgAndArgs ...any) {
	t.Helper()
	if !Equal(t, expected, actual, msgAndArgs...) {
		t.FailNow()
	}
}

func NoError(t testing.TB, err error, msgAndArgs ...any) bool {
	t.Helper()
	if err != nil {
		t.Errorf("unexpected error%s: %v", message(msgAndArgs...), err)
		return false
	}
	return true
}

func Error(t testing.TB, err error, msgAndArgs ...any) bool {
	t.Helper()
	if err == nil {
		t.Errorf("expected an error%s", message(msgAndArgs...))
		return false
	}
	return true
}

func True(t testing.TB, value bool, msgAndArgs ...any) bool {
	t.Helper()
	if !value {
		t.Errorf("should be true%s", message(msgAndArgs...))
		return false
	}
	return true
}

func False(t testing.TB, value bool, msgAndArgs ...any) bool {
	t.Helper()
	if value {
		t.Errorf("should be false%s", message(msgAndArgs...))
		return false
	}
	return true
}
