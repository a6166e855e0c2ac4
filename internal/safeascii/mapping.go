package safeascii

// Mapping is the precomputed output unit for each of the 256 byte values
// under one mode and exclude set. It is immutable once built.
type Mapping struct {
	units [256][]byte
	mode  Mode
}

// NewMapping builds the table for mode, letting exclude through verbatim.
func NewMapping(mode Mode, exclude ExcludeSet) *Mapping {
	m := &Mapping{mode: mode}
	for i := range m.units {
		b := byte(i)
		if Classify(b, &exclude) == Printable {
			m.units[i] = []byte{b}
		} else {
			m.units[i] = Format(b, mode)
		}
	}
	return m
}

// Mode reports the mode the table was built for.
func (m *Mapping) Mode() Mode {
	return m.mode
}

// Unit returns the output for b. The slice is shared and must not be modified.
func (m *Mapping) Unit(b byte) []byte {
	return m.units[b]
}

// Append appends the mapped form of every byte in src to dst.
func (m *Mapping) Append(dst, src []byte) []byte {
	for _, b := range src {
		dst = append(dst, m.units[b]...)
	}
	return dst
}

// MapString maps s in full, without truncation.
func (m *Mapping) MapString(s string) string {
	return string(m.Append(make([]byte, 0, len(s)), []byte(s)))
}
