package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/eykd/safe-ascii/internal/config"
	"github.com/eykd/safe-ascii/internal/safeascii"
)

// options holds raw flag values. Only flags the user set override the
// config file.
type options struct {
	mode       modeValue
	truncate   int64
	exclude    excludeValue
	configPath string
	verbose    int
}

// modeValue adapts safeascii.Mode to pflag.Value.
type modeValue struct {
	mode safeascii.Mode
}

func (v *modeValue) String() string { return v.mode.String() }

func (v *modeValue) Set(s string) error {
	m, err := safeascii.ParseMode(s)
	if err != nil {
		return err
	}
	v.mode = m
	return nil
}

func (v *modeValue) Type() string { return strings.Join(safeascii.ModeNames(), "|") }

// excludeValue adapts safeascii.ExcludeSet to pflag.Value. Each occurrence
// of the flag replaces the previous set.
type excludeValue struct {
	set safeascii.ExcludeSet
}

func (v *excludeValue) String() string { return v.set.String() }

func (v *excludeValue) Set(s string) error {
	set, err := safeascii.ParseExcludeList(s)
	if err != nil {
		return err
	}
	v.set = set
	return nil
}

func (v *excludeValue) Type() string { return "bytes" }

func bindFlags(fs *pflag.FlagSet, o *options) {
	defaults := safeascii.DefaultConfig()
	o.mode.mode = defaults.Mode
	o.truncate = defaults.Truncate
	o.exclude.set = defaults.Exclude

	fs.VarP(&o.mode, "mode", "m", "Mode of character conversion/suppression")
	fs.Int64VarP(&o.truncate, "truncate", "t", defaults.Truncate,
		"Output length (bytes) per input to truncate at, -1 for no truncation")
	fs.VarP(&o.exclude, "exclude", "x",
		"Comma-delimited decimal values of non-printable characters to print (empty string for none)\n"+
			"(9 is HT (tab), 10 is NL (newline), 13 is CR (carriage return), 32 is SP (space))")
	fs.StringVar(&o.configPath, "config", "",
		fmt.Sprintf("YAML file with default settings (env %s)", config.EnvVar))
	fs.CountVarP(&o.verbose, "verbose", "v", "Log to stderr; repeat for more detail")
	fs.BoolP("version", "V", false, "Print version information and exit")
}

// resolveConfig layers defaults, the optional config file and explicitly
// set flags, in that order.
func resolveConfig(ctx context.Context, fs *pflag.FlagSet, o *options, sio SanitizeIO) (safeascii.Config, error) {
	cfg := safeascii.DefaultConfig()

	path := o.configPath
	if path == "" {
		path = sio.Getenv(config.EnvVar)
	}
	if path != "" {
		f, err := sio.LoadConfig(ctx, path)
		if err != nil {
			return cfg, err
		}
		if err := f.Apply(&cfg); err != nil {
			return cfg, fmt.Errorf("%s: %w", sanitizeName(path), err)
		}
	}

	if fs.Changed("mode") {
		cfg.Mode = o.mode.mode
	}
	if fs.Changed("truncate") {
		cfg.Truncate = o.truncate
	}
	if fs.Changed("exclude") {
		cfg.Exclude = o.exclude.set
	}
	return cfg, cfg.Validate()
}
