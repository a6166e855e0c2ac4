package safeascii

import "fmt"

// Unlimited disables truncation.
const Unlimited int64 = -1

// Config is the resolved, read-only configuration for a run.
type Config struct {
	// Mode selects the substitution for non-printable bytes.
	Mode Mode
	// Truncate caps output bytes per stream; Unlimited disables the cap.
	Truncate int64
	// Exclude lists bytes copied verbatim regardless of their class.
	Exclude ExcludeSet
}

// DefaultConfig returns mnemonic mode, no truncation, newline and space excluded.
func DefaultConfig() Config {
	return Config{
		Mode:     Mnemonic,
		Truncate: Unlimited,
		Exclude:  DefaultExclude(),
	}
}

// Validate checks the mode and truncate length.
func (c *Config) Validate() error {
	if !c.Mode.Valid() {
		return fmt.Errorf("%w %s", ErrInvalidMode, c.Mode)
	}
	if c.Truncate < Unlimited {
		return fmt.Errorf("%w %d: must be %d or a non-negative byte count", ErrInvalidTruncate, c.Truncate, Unlimited)
	}
	return nil
}
