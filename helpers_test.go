package ticks

import (
	"testing"
	"time"
	"unicode/utf8"
)

// fixedWidth measures every rune as 7 pixels, like the 7x13 face.
var fixedWidth = MeasureFunc(func(str string) float64 {
	return 7 * float64(utf8.RuneCountInString(str))
})

func testStyle() Style {
	return DefaultStyle()
}

// within fails the test when fn has not returned after timeout.
func within(t *testing.T, timeout time.Duration, fn func()) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		defer close(done)
		fn()
	}()
	select {
	case <-done:
	case <-time.After(timeout):
		t.Fatalf("not done after %s", timeout)
	}
}
