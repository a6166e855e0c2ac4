package cmd

import "github.com/eykd/safe-ascii/internal/safeascii"

// nameMapping escapes control and non-ASCII bytes in file names echoed to
// stderr, preventing ANSI injection. Space is left readable.
var nameMapping = safeascii.NewMapping(safeascii.Escape, safeascii.NewExcludeSet(' '))

func sanitizeName(s string) string {
	return nameMapping.MapString(s)
}
