package tricache

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// String formats the window as "( offset , length )" followed by its terms.
func (w Window) String() string {
	var b bytes.Buffer
	fmt.Fprintf(&b, "( %d , %d )", w.offset, w.length)
	var terms bytes.Buffer
	if w.src != nil && w.src.Display(&terms, w.length, w.offset) == nil {
		b.WriteByte(' ')
		b.Write(terms.Bytes())
	}
	return b.String()
}

// MarshalText emits the "( offset , length )" header.
func (w Window) MarshalText() ([]byte, error) {
	return []byte(fmt.Sprintf("( %d , %d )", w.offset, w.length)), nil
}

// UnmarshalText updates offset and length from "( offset , length )",
// normalizing both like NewWindow, and resets the cursor to 1. Like the
// setters it does not grow the cache. A window with no cache is bound to Default().
func (w *Window) UnmarshalText(text []byte) error {
	offset, length, err := parseHeader(string(text))
	if err != nil {
		return err
	}
	if w.src == nil {
		w.src = Default()
	}
	w.offset = max(offset, 1)
	w.length = max(length, 1)
	w.cursor = 1
	return nil
}

// ParseWindow builds a window over c from "( offset , length )". The cursor
// of the result is 1.
func ParseWindow(c *Cache, s string) (Window, error) {
	offset, length, err := parseHeader(s)
	if err != nil {
		return Window{}, err
	}
	w := NewWindow(c, length, offset)
	w.cursor = 1
	return w, nil
}

func parseHeader(s string) (offset, length int, err error) {
	t := strings.TrimSpace(s)
	if !strings.HasPrefix(t, "(") || !strings.HasSuffix(t, ")") {
		return 0, 0, &SyntaxError{Input: s}
	}
	a, b, ok := strings.Cut(t[1:len(t)-1], ",")
	if !ok {
		return 0, 0, &SyntaxError{Input: s}
	}
	if offset, err = strconv.Atoi(strings.TrimSpace(a)); err != nil {
		return 0, 0, &SyntaxError{Input: s, Err: err}
	}
	if length, err = strconv.Atoi(strings.TrimSpace(b)); err != nil {
		return 0, 0, &SyntaxError{Input: s, Err: err}
	}
	return offset, length, nil
}
