package cmd

import (
	"bytes"
	"context"
	"io"
	"io/fs"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/eykd/safe-ascii/internal/config"
)

// mockSanitizeIO is a test double for SanitizeIO.
type mockSanitizeIO struct {
	files     map[string][]byte
	openErr   map[string]error
	readErr   map[string]error
	configs   map[string]*config.File
	configErr error
	env       map[string]string
	opened    []string
}

func (m *mockSanitizeIO) Open(_ context.Context, name string) (io.ReadCloser, error) {
	m.opened = append(m.opened, name)
	if err, ok := m.openErr[name]; ok {
		return nil, err
	}
	data, ok := m.files[name]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	var r io.Reader = bytes.NewReader(data)
	if err, ok := m.readErr[name]; ok {
		r = io.MultiReader(r, iotest.ErrReader(err))
	}
	return io.NopCloser(r), nil
}

func (m *mockSanitizeIO) LoadConfig(_ context.Context, path string) (*config.File, error) {
	if m.configErr != nil {
		return nil, m.configErr
	}
	f, ok := m.configs[path]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	return f, nil
}

func (m *mockSanitizeIO) Getenv(key string) string {
	return m.env[key]
}

// execute runs the root command with stdin and args, capturing both streams.
func execute(t *testing.T, sio SanitizeIO, stdin string, args ...string) (string, string, error) {
	t.Helper()
	c := newRootCmd(sio)
	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	c.SetOut(out)
	c.SetErr(errOut)
	c.SetIn(strings.NewReader(stdin))
	if args == nil {
		args = []string{}
	}
	c.SetArgs(args)
	err := c.Execute()
	return out.String(), errOut.String(), err
}
