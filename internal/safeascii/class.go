package safeascii

import (
	"errors"
	"strconv"
	"strings"
)

// Printable ASCII bounds: graphic characters, space excluded.
const (
	FirstPrintable byte = 0x21
	LastPrintable  byte = 0x7e
)

// Class is the outcome of classifying a byte.
type Class int

const (
	// NonPrintable bytes are substituted according to the Mode.
	NonPrintable Class = iota
	// Printable bytes are copied to the output unchanged.
	Printable
)

func (c Class) String() string {
	if c == Printable {
		return "printable"
	}
	return "non-printable"
}

// ExcludeSet is the set of byte values passed through unchanged even though
// they fall outside the printable range. The zero value is the empty set.
type ExcludeSet [256]bool

// NewExcludeSet returns a set holding values.
func NewExcludeSet(values ...byte) ExcludeSet {
	var s ExcludeSet
	for _, v := range values {
		s[v] = true
	}
	return s
}

// DefaultExclude lets newline and space through.
func DefaultExclude() ExcludeSet {
	return NewExcludeSet('\n', ' ')
}

// Contains reports whether b is in the set.
func (s ExcludeSet) Contains(b byte) bool {
	return s[b]
}

// Bytes returns the members in ascending order.
func (s ExcludeSet) Bytes() []byte {
	var out []byte
	for i, ok := range s {
		if ok {
			out = append(out, byte(i))
		}
	}
	return out
}

// String renders the set as a comma-separated list of decimal values, the
// same form ParseExcludeList accepts.
func (s ExcludeSet) String() string {
	members := s.Bytes()
	parts := make([]string, len(members))
	for i, b := range members {
		parts[i] = strconv.Itoa(int(b))
	}
	return strings.Join(parts, ",")
}

// ParseExcludeList parses a comma-separated list of decimal byte values.
// An empty (or all-blank) string yields the empty set.
func ParseExcludeList(list string) (ExcludeSet, error) {
	var s ExcludeSet
	if strings.TrimSpace(list) == "" {
		return s, nil
	}
	for _, part := range strings.Split(list, ",") {
		b, err := ParseExcludeValue(part)
		if err != nil {
			return ExcludeSet{}, err
		}
		s[b] = true
	}
	return s, nil
}

// ParseExcludeValue parses one decimal byte value in the range 0..255.
func ParseExcludeValue(v string) (byte, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(v), 10, 8)
	if err != nil {
		reason := "not a decimal integer"
		if errors.Is(err, strconv.ErrRange) {
			reason = "out of range 0-255"
		}
		return 0, &ExcludeError{Value: v, Reason: reason}
	}
	return byte(n), nil
}

// IsPrintableASCII reports whether b is a visible 7-bit ASCII character.
func IsPrintableASCII(b byte) bool {
	return b >= FirstPrintable && b <= LastPrintable
}

// Classify decides whether b is copied through or substituted. The result
// depends only on b and exclude.
func Classify(b byte, exclude *ExcludeSet) Class {
	if IsPrintableASCII(b) || (exclude != nil && exclude.Contains(b)) {
		return Printable
	}
	return NonPrintable
}
