package safeascii_test

import (
	"fmt"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eykd/safe-ascii/internal/safeascii"
)

var escapePattern = regexp.MustCompile(`^\\x[0-9a-f]{2}$`)

func TestFormat_EscapeIsTotal(t *testing.T) {
	seen := make(map[string]bool, 256)
	for i := 0; i < 256; i++ {
		got := string(safeascii.Format(byte(i), safeascii.Escape))
		assert.Len(t, got, safeascii.EscapeLen, "byte %d", i)
		assert.Regexp(t, escapePattern, got, "byte %d", i)
		assert.Equal(t, fmt.Sprintf(`\x%02x`, i), got)
		seen[got] = true
	}
	assert.Len(t, seen, 256, "escape form must be distinct per byte")
}

func TestFormat_EscapeExamples(t *testing.T) {
	assert.Equal(t, `\x00`, string(safeascii.Format(0, safeascii.Escape)))
	assert.Equal(t, `\x0a`, string(safeascii.Format(10, safeascii.Escape)))
	assert.Equal(t, `\xff`, string(safeascii.Format(255, safeascii.Escape)))
}

func TestFormat_Mnemonic(t *testing.T) {
	tests := []struct {
		b    byte
		want string
	}{
		{0, "(NUL)"},
		{7, "(BEL)"},
		{9, "(HT)"},
		{10, "(NL)"},
		{13, "(CR)"},
		{27, "(ESC)"},
		{31, "(US)"},
		{32, "(SP)"},
		{127, "(DEL)"},
		{128, `\x80`},
		{255, `\xff`},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, string(safeascii.Format(tt.b, safeascii.Mnemonic)))
		})
	}
}

func TestFormat_MnemonicNeverEmpty(t *testing.T) {
	for i := 0; i < 256; i++ {
		assert.NotEmpty(t, safeascii.Format(byte(i), safeascii.Mnemonic), "byte %d", i)
	}
}

func TestFormat_SuppressIsEmpty(t *testing.T) {
	for i := 0; i < 256; i++ {
		assert.Empty(t, safeascii.Format(byte(i), safeascii.Suppress), "byte %d", i)
	}
}

func TestMnemonicFor_ControlRange(t *testing.T) {
	for i := 0; i <= 32; i++ {
		_, ok := safeascii.MnemonicFor(byte(i))
		assert.True(t, ok, "byte %d should have a mnemonic", i)
	}
	_, ok := safeascii.MnemonicFor(127)
	assert.True(t, ok)
	for i := 33; i <= 126; i++ {
		_, ok := safeascii.MnemonicFor(byte(i))
		assert.False(t, ok, "byte %d", i)
	}
	for i := 128; i <= 255; i++ {
		_, ok := safeascii.MnemonicFor(byte(i))
		assert.False(t, ok, "byte %d", i)
	}
}
