package cmd

import (
	"context"
	"io"
	"os"

	"github.com/eykd/safe-ascii/internal/config"
)

// SanitizeIO opens input sources and reads settings for the root command.
type SanitizeIO interface {
	Open(ctx context.Context, name string) (io.ReadCloser, error)
	LoadConfig(ctx context.Context, path string) (*config.File, error)
	Getenv(key string) string
}

// fileSanitizeIO implements SanitizeIO using the OS.
type fileSanitizeIO struct{}

func newDefaultSanitizeIO() *fileSanitizeIO {
	return &fileSanitizeIO{}
}

// Open opens the named file for reading.
func (f *fileSanitizeIO) Open(_ context.Context, name string) (io.ReadCloser, error) {
	return os.Open(name)
}

// LoadConfig reads the YAML config file at path.
func (f *fileSanitizeIO) LoadConfig(_ context.Context, path string) (*config.File, error) {
	return config.Load(path)
}

func (f *fileSanitizeIO) Getenv(key string) string {
	return os.Getenv(key)
}
