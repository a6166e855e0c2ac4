package safeascii

import (
	"fmt"
	"strings"
)

// Mode selects how non-printable bytes are rendered.
type Mode int

const (
	// Mnemonic renders control bytes as "(TAG)" and everything else as "\xHH".
	Mnemonic Mode = iota
	// Escape renders every non-printable byte as "\xHH".
	Escape
	// Suppress drops non-printable bytes.
	Suppress
)

var modeNames = [...]string{
	Mnemonic: "mnemonic",
	Escape:   "escape",
	Suppress: "suppress",
}

// ModeNames lists the accepted spellings in declaration order.
func ModeNames() []string {
	return append([]string(nil), modeNames[:]...)
}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// Valid reports whether m is one of the declared modes.
func (m Mode) Valid() bool {
	return m >= 0 && int(m) < len(modeNames)
}

// ParseMode maps a mode name (case-insensitive) to its Mode.
func ParseMode(s string) (Mode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range modeNames {
		if n == name {
			return Mode(i), nil
		}
	}
	return 0, fmt.Errorf("%w %q: must be one of %s", ErrInvalidMode, s, strings.Join(modeNames[:], "|"))
}
