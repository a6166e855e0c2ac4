// Package safeascii converts arbitrary bytes into printable ASCII.
//
// Every input byte is classified as printable or non-printable. Printable
// bytes (0x21 to 0x7e, plus anything in the caller's ExcludeSet) are copied
// unchanged. Non-printable bytes are replaced according to a Mode:
//
//	Mnemonic   0x00 -> "(NUL)", 0x0a -> "(NL)", 0xff -> "\xff"
//	Escape     0x00 -> "\x00",  0x0a -> "\x0a", 0xff -> "\xff"
//	Suppress   the byte is dropped
//
// Bytes without a mnemonic (0x80 to 0xff) fall back to the escape form, so
// Mnemonic mode never drops a byte.
//
// # Usage
//
//	s, err := safeascii.New(safeascii.DefaultConfig())
//	if err != nil {
//		return err
//	}
//	res, err := s.Copy(os.Stdout, f)
//
// NewReader gives the same output as a lazy io.Reader.
//
// # Truncation
//
// Config.Truncate caps the number of output bytes per stream. The cap is
// checked before each output unit, so the final unit may carry the count past
// the limit ("(NUL)" is never cut in half). Unlimited (-1) disables the cap.
//
// The package does no character-set decoding; multi-byte UTF-8 sequences are
// treated as independent high bytes.
package safeascii
