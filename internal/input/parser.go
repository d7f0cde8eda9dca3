package input

import (
	"bytes"
	"time"

	"github.com/vovakirdan/tui-tiles/internal/core"
)

// EscDelay is how long an unfinished escape sequence waits for the rest of
// its bytes before the escape is reported as a key of its own.
const EscDelay = 50 * time.Millisecond

// Parser decodes a byte stream that arrives in arbitrary chunks. An escape
// sequence split across two chunks is held back until its tail arrives, so
// an arrow key is never mistaken for the escape key.
type Parser struct {
	delay   time.Duration
	pending []byte
	since   time.Time // When pending was first held
}

// NewParser creates a parser that holds an unfinished sequence for at most
// delay.
func NewParser(delay time.Duration) *Parser {
	return &Parser{delay: delay}
}

// Feed parses buf after any bytes held back by earlier calls. Feeding an
// empty buf releases a held sequence once it has waited for the delay.
func (p *Parser) Feed(buf []byte, now time.Time) []core.Key {
	if len(buf) == 0 && len(p.pending) == 0 {
		return nil
	}

	held := len(p.pending) > 0
	data := append(p.pending, buf...)
	p.pending = nil

	cut := incompleteTail(data)
	if cut == len(data) {
		return ParseKeys(data)
	}
	if !held || cut > 0 {
		p.since = now
	}
	if now.Sub(p.since) >= p.delay {
		return ParseKeys(data)
	}

	p.pending = append([]byte(nil), data[cut:]...)
	return ParseKeys(data[:cut])
}

// Flush parses whatever is held back, e.g. once the input has ended.
func (p *Parser) Flush() []core.Key {
	data := p.pending
	p.pending = nil
	return ParseKeys(data)
}

// incompleteTail returns the index of an escape sequence at the end of data
// that still lacks its final byte, or len(data) if there is none.
func incompleteTail(data []byte) int {
	i := bytes.LastIndexByte(data, esc)
	if i < 0 {
		return len(data)
	}

	rest := data[i+1:]
	switch {
	case len(rest) == 0:
		return i
	case rest[0] == 'O' && len(rest) == 1:
		return i
	case rest[0] == '[':
		for _, b := range rest[1:] {
			if b < 0x20 || b >= 0x40 {
				return len(data)
			}
		}
		return i
	}
	return len(data)
}
