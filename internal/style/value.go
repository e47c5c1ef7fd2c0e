package style

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Value is a resolved property value. Lengths resolved against the theme
// are stored as pixel numbers; everything else keeps its CSS text.
type Value struct {
	num   float64
	text  string
	isNum bool
}

// Num returns a numeric (pixel or unitless) value.
func Num(f float64) Value {
	return Value{num: f, isNum: true}
}

// Text returns a textual CSS value.
func Text(s string) Value {
	return Value{text: s}
}

// Number returns the numeric value and true when v is numeric.
func (v Value) Number() (float64, bool) {
	return v.num, v.isNum
}

// IsNumber reports whether v holds a number.
func (v Value) IsNumber() bool {
	return v.isNum
}

// IsZero reports whether v is the zero Value (never set).
func (v Value) IsZero() bool {
	return !v.isNum && v.text == ""
}

// String renders the value. Numbers use the shortest representation.
func (v Value) String() string {
	if v.isNum {
		return FormatNumber(v.num)
	}
	return v.text
}

// MarshalJSON emits numbers as JSON numbers and text as JSON strings.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.isNum {
		return []byte(FormatNumber(v.num)), nil
	}
	return json.Marshal(v.text)
}

// FormatNumber formats f without trailing zeros ("16", "0.5", "-2.25").
func FormatNumber(f float64) string {
	s := strconv.FormatFloat(f, 'f', 4, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		return "0"
	}
	return s
}
