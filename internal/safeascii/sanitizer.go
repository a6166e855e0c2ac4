package safeascii

import (
	"errors"
	"io"
)

// BlockSize is the size of each read from the input stream.
const BlockSize = 16 * 1024

// maxUnitLen is the longest output unit, "(NUL)".
const maxUnitLen = 5

// Result summarises one stream.
type Result struct {
	BytesRead    int64 // Input bytes translated
	BytesWritten int64 // Output bytes accepted by the writer
	// LimitReached reports that the output budget was used up. Input may have
	// ended at the same point; nothing is read past the limit to find out.
	LimitReached bool
}

// Sanitizer translates byte streams with a fixed Mapping and truncation
// limit. It holds no per-stream state and may be shared between goroutines.
type Sanitizer struct {
	mapping *Mapping
	limit   int64
}

// New validates cfg and builds its mapping table.
func New(cfg Config) (*Sanitizer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Sanitizer{
		mapping: NewMapping(cfg.Mode, cfg.Exclude),
		limit:   cfg.Truncate,
	}, nil
}

// Mapping returns the table in use.
func (s *Sanitizer) Mapping() *Mapping {
	return s.mapping
}

// Limit returns the per-stream output cap, or Unlimited.
func (s *Sanitizer) Limit() int64 {
	return s.limit
}

// budget counts output bytes for a single stream.
type budget struct {
	limit int64
	used  int64
}

func (b *budget) exhausted() bool {
	return b.limit >= 0 && b.used >= b.limit
}

// translate appends the units for src to dst until the budget runs out and
// reports how many input bytes were consumed.
func (s *Sanitizer) translate(dst, src []byte, bud *budget) ([]byte, int) {
	for i, c := range src {
		if bud.exhausted() {
			return dst, i
		}
		u := s.mapping.units[c]
		dst = append(dst, u...)
		bud.used += int64(len(u))
	}
	return dst, len(src)
}

// Copy writes the sanitized form of src to dst, one block at a time, until
// src is exhausted or the output budget is reached. Read failures are
// returned as *ReadError and write failures as *WriteError; in both cases
// the output for earlier blocks has already been written.
func (s *Sanitizer) Copy(dst io.Writer, src io.Reader) (Result, error) {
	var (
		res    Result
		offset int64
		bud    = budget{limit: s.limit}
		in     = make([]byte, BlockSize)
		out    = make([]byte, 0, BlockSize*maxUnitLen)
	)
	for !bud.exhausted() {
		n, rerr := src.Read(in)
		offset += int64(n)
		if n > 0 {
			var used int
			out, used = s.translate(out[:0], in[:n], &bud)
			res.BytesRead += int64(used)
			if len(out) > 0 {
				w, werr := dst.Write(out)
				res.BytesWritten += int64(w)
				if werr == nil && w < len(out) {
					werr = io.ErrShortWrite
				}
				if werr != nil {
					return res, &WriteError{Written: res.BytesWritten, Err: werr}
				}
			}
		}
		if errors.Is(rerr, io.EOF) {
			break
		}
		if rerr != nil {
			return res, &ReadError{Offset: offset, Err: rerr}
		}
	}
	res.LimitReached = bud.exhausted()
	return res, nil
}

// NewReader returns a lazy reader over the sanitized form of src. Each Read
// pulls at most one block from src; nothing is read once the output budget
// is reached. The reader is single-pass and not safe for concurrent use.
func (s *Sanitizer) NewReader(src io.Reader) io.Reader {
	return &reader{
		s:   s,
		src: src,
		bud: budget{limit: s.limit},
	}
}

type reader struct {
	s       *Sanitizer
	src     io.Reader
	bud     budget
	in      []byte
	buf     []byte
	pending []byte
	offset  int64
	err     error
}

func (r *reader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	for len(r.pending) == 0 {
		if r.err != nil {
			return 0, r.err
		}
		if r.bud.exhausted() {
			r.err = io.EOF
			continue
		}
		r.fill()
	}
	n := copy(p, r.pending)
	r.pending = r.pending[n:]
	return n, nil
}

// fill reads one block from src and translates it into pending.
func (r *reader) fill() {
	if r.in == nil {
		r.in = make([]byte, BlockSize)
		r.buf = make([]byte, 0, BlockSize*maxUnitLen)
	}
	n, err := r.src.Read(r.in)
	r.offset += int64(n)
	if n > 0 {
		r.buf, _ = r.s.translate(r.buf[:0], r.in[:n], &r.bud)
		r.pending = r.buf
	}
	switch {
	case errors.Is(err, io.EOF):
		r.err = io.EOF
	case err != nil:
		r.err = &ReadError{Offset: r.offset, Err: err}
	}
}
