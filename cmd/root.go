// Package cmd implements the safe-ascii CLI.
package cmd

import (
	"github.com/spf13/cobra"
)

const (
	// stdinName is the file operand that selects standard input.
	stdinName = "-"

	longHelp = `Convert input bytes to printable ASCII.

Bytes 33-126 and bytes in the exclude list are copied unchanged. Every other
byte is replaced according to the mode:

  mnemonic   (NUL), (HT), (NL), (SP), (DEL); bytes above 127 as \xHH
  escape     \xHH with lowercase hex digits
  suppress   dropped

With no files, or when a file is -, read standard input.`
)

// NewRootCmd creates the safe-ascii command backed by the real filesystem.
func NewRootCmd() *cobra.Command {
	return newRootCmd(newDefaultSanitizeIO())
}

func newRootCmd(sio SanitizeIO) *cobra.Command {
	var opts options

	root := &cobra.Command{
		Use:           "safe-ascii [flags] [files...]",
		Short:         "Convert bytes to printable ASCII",
		Long:          longHelp,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSanitize(cmd, sio, &opts, args)
		},
	}
	root.SetVersionTemplate("{{.Name}} {{.Version}}\n")
	bindFlags(root.Flags(), &opts)

	return root
}
