package safeascii

const hexDigits = "0123456789abcdef"

// EscapeLen is the length of every "\xHH" escape.
const EscapeLen = 4

// Format returns the replacement text for a non-printable byte. The result is
// a fresh slice the caller may keep. Format does not consult the exclude set;
// callers decide printability with Classify first.
func Format(b byte, mode Mode) []byte {
	switch mode {
	case Suppress:
		return []byte{}
	case Mnemonic:
		if m, ok := MnemonicFor(b); ok {
			out := make([]byte, 0, len(m)+2)
			out = append(out, '(')
			out = append(out, m...)
			return append(out, ')')
		}
	}
	return appendEscape(make([]byte, 0, EscapeLen), b)
}

func appendEscape(dst []byte, b byte) []byte {
	return append(dst, '\\', 'x', hexDigits[b>>4], hexDigits[b&0x0f])
}
