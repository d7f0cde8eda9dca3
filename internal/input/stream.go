package input

import (
	"io"
	"sync"

	"github.com/muesli/cancelreader"
)

// Stream delivers raw input chunks from a reader via a channel.
type Stream struct {
	ch     chan []byte
	done   chan struct{} // Closed by Stop
	exited chan struct{} // Closed when the reader goroutine returns

	cr       cancelreader.CancelReader // nil when r cannot be wrapped
	stopOnce sync.Once
}

// StartStream spawns a goroutine that reads from r until it fails or the
// stream is stopped, and sends each chunk to the stream. The channel is
// closed when r is exhausted.
func StartStream(r io.Reader) *Stream {
	s := &Stream{
		ch:     make(chan []byte, 64),
		done:   make(chan struct{}),
		exited: make(chan struct{}),
	}
	if cr, err := cancelreader.NewReader(r); err == nil {
		s.cr = cr
		r = cr
	}
	go s.read(r)
	return s
}

func (s *Stream) read(r io.Reader) {
	defer close(s.exited)
	defer close(s.ch)
	buf := make([]byte, 256)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			chunk := make([]byte, n)
			copy(chunk, buf[:n])
			select {
			case s.ch <- chunk:
			case <-s.done:
				return
			}
		}
		if err != nil {
			return
		}
	}
}

// Drain returns every byte received since the last call without blocking.
// closed is true once the reader has ended and all data was drained.
func (s *Stream) Drain() (buf []byte, closed bool) {
	for {
		select {
		case chunk, ok := <-s.ch:
			if !ok {
				return buf, true
			}
			buf = append(buf, chunk...)
		default:
			return buf, false
		}
	}
}

// Stop ends the reader goroutine. Files (a terminal's stdin, os.Pipe) are
// cancelled in place and Stop waits for the goroutine, so the next reader of
// the same file sees every later byte. Other readers can only be abandoned:
// their goroutine ends after its pending Read returns.
func (s *Stream) Stop() {
	s.stopOnce.Do(func() {
		close(s.done)
		if s.cr == nil {
			return
		}
		if s.cr.Cancel() {
			<-s.exited
		}
		s.cr.Close()
	})
}
