package audio

import (
	"errors"
	"io"
	"os"

	"github.com/gopxl/beep"
)

// pcmStreamer decodes raw signed little-endian PCM from a pipe as a beep.Streamer
type pcmStreamer struct {
	r      io.Reader
	format beep.Format
	buf    []byte
	carry  []byte
	done   bool
	err    error
}

func newPCMStreamer(r io.Reader, format beep.Format) *pcmStreamer {
	return &pcmStreamer{
		r:      r,
		format: format,
		carry:  make([]byte, 0, format.Width()),
	}
}

// Stream blocks until at least one whole frame is available
func (s *pcmStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if s.done || len(samples) == 0 {
		return 0, !s.done
	}

	width := s.format.Width()
	want := len(samples) * width
	if cap(s.buf) < want {
		s.buf = make([]byte, want)
	}
	buf := s.buf[:want]

	have := copy(buf, s.carry)
	s.carry = s.carry[:0]
	read, err := io.ReadAtLeast(s.r, buf[have:], width-have)
	total := have + read

	n = total / width
	for i := 0; i < n; i++ {
		samples[i], _ = s.format.DecodeSigned(buf[i*width:])
	}
	s.carry = append(s.carry, buf[n*width:total]...)

	if err != nil {
		s.done = true
		if !isClosed(err) {
			s.err = err
		}
		return n, n > 0
	}
	return n, true
}

// Err returns a read failure other than the pipe closing
func (s *pcmStreamer) Err() error {
	return s.err
}

func isClosed(err error) bool {
	return errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.Is(err, io.ErrClosedPipe) ||
		errors.Is(err, os.ErrClosed)
}
