package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"syscall"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/eykd/safe-ascii/internal/logging"
	"github.com/eykd/safe-ascii/internal/safeascii"
)

func runSanitize(cmd *cobra.Command, sio SanitizeIO, opts *options, args []string) error {
	ctx := cmd.Context()
	errOut := cmd.ErrOrStderr()
	logger := logging.New(errOut, opts.verbose, logging.ColorEnabled(errOut))

	cfg, err := resolveConfig(ctx, cmd.Flags(), opts, sio)
	if err != nil {
		return &ExitError{Code: ExitFailure, Err: err}
	}
	s, err := safeascii.New(cfg)
	if err != nil {
		return &ExitError{Code: ExitFailure, Err: err}
	}
	logger.Info("configuration",
		"mode", s.Mapping().Mode(),
		"truncate", cfg.Truncate,
		"exclude", cfg.Exclude.String())

	names := args
	if len(names) == 0 {
		names = []string{stdinName}
	}

	r := &sourceRunner{
		sio:    sio,
		s:      s,
		stdin:  cmd.InOrStdin(),
		out:    cmd.OutOrStdout(),
		errOut: errOut,
		prog:   cmd.Root().Name(),
		logger: logger,
	}
	return r.run(ctx, names)
}

// sourceRunner sanitizes each named source in turn into out.
type sourceRunner struct {
	sio    SanitizeIO
	s      *safeascii.Sanitizer
	stdin  io.Reader
	out    io.Writer
	errOut io.Writer
	prog   string
	logger *slog.Logger
}

// run processes names in order. Open and read failures are reported and
// skipped; a write failure ends the run at once.
func (r *sourceRunner) run(ctx context.Context, names []string) error {
	failed := 0
	for _, name := range names {
		res, err := r.one(ctx, name)
		if err == nil {
			r.logger.Debug("sanitized source",
				"source", sanitizeName(name),
				"read", humanize.Bytes(uint64(res.BytesRead)),
				"written", humanize.Bytes(uint64(res.BytesWritten)),
				"limit_reached", res.LimitReached)
			continue
		}

		var writeErr *safeascii.WriteError
		if errors.As(err, &writeErr) {
			if errors.Is(err, syscall.EPIPE) {
				r.logger.Debug("output closed", "source", sanitizeName(name))
				return &ExitError{Code: ExitBrokenPipe}
			}
			return &ExitError{Code: ExitFailure, Err: fmt.Errorf("writing output: %w", writeErr.Err)}
		}

		failed++
		r.report(name, err)
	}

	if failed > 0 {
		r.logger.Info("some sources failed", "failed", failed, "total", len(names))
		return &ExitError{Code: ExitFailure}
	}
	return nil
}

// one sanitizes a single source.
func (r *sourceRunner) one(ctx context.Context, name string) (safeascii.Result, error) {
	if name == stdinName {
		return r.s.Copy(r.out, r.stdin)
	}

	f, err := r.sio.Open(ctx, name)
	if err != nil {
		return safeascii.Result{}, err
	}
	defer f.Close()

	return r.s.Copy(r.out, f)
}

// report prints "prog: name: reason" to stderr.
func (r *sourceRunner) report(name string, err error) {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		err = pathErr.Err
	}
	fmt.Fprintf(r.errOut, "%s: %s: %v\n", r.prog, sanitizeName(name), err)
}
