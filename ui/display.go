package ui

import (
	"encoding"
	"encoding/json"
	"fmt"
	"strings"
)

// Displayer is an interface for displaying a string.
type Displayer interface {
	Display() string
}

func Display(v any) string {
	switch v := v.(type) {
	case struct{}:
		return ""
	case Displayer:
		return v.Display()
	case string:
		return v
	case error:
		return v.Error()
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, bool:
		return fmt.Sprint(v)
	case fmt.Stringer:
		return v.String()
	case encoding.TextMarshaler:
		b, err := v.MarshalText()
		if err != nil {
			break
		}
		return string(b)
	default:
		json, err := json.Marshal(v)
		if err != nil {
			break
		}
		return string(json)
	}
	return fmt.Sprintf("[%T?]", v)
}

func Pad(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}

// PadRight left-aligns s in a column of width n.
func PadRight(s string, n int) string {
	return s + Pad(n-len(s))
}

// Plural picks the singular or plural noun for n.
func Plural(n int, one, many string) string {
	if n == 1 {
		return "1 " + one
	}
	return fmt.Sprintf("%d %s", n, many)
}
