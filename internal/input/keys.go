// Package input turns raw terminal bytes into key names and tracks which keys
// count as held. Terminals report presses and auto-repeats but never releases,
// so a key is held for a short window after its last press.
package input

import (
	"unicode"
	"unicode/utf8"

	"github.com/vovakirdan/tui-tiles/internal/core"
)

const (
	esc       = 0x1b
	ctrlC     = 0x03
	backspace = 0x7f
)

// ParseKeys decodes a chunk of raw terminal input into keys, in order.
// Handles CSI and SS3 arrow sequences, a lone escape, ctrl+c, enter and
// space. Printable characters are lowercased. Unknown escape sequences and
// control bytes are dropped.
func ParseKeys(buf []byte) []core.Key {
	var keys []core.Key

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if b == esc {
			// ESC [ <code> or ESC O <code>
			if i+2 < len(buf) && (buf[i+1] == '[' || buf[i+1] == 'O') {
				if k, ok := arrow(buf[i+2]); ok {
					keys = append(keys, k)
					i += 2
					continue
				}
				if buf[i+1] == '[' {
					i = skipCSI(buf, i+2)
					continue
				}
			}
			keys = append(keys, core.KeyEsc)
			continue
		}

		switch b {
		case ctrlC:
			keys = append(keys, core.KeyCtrlC)
			continue
		case '\r', '\n':
			keys = append(keys, core.KeyEnter)
			continue
		case ' ':
			keys = append(keys, core.KeySpace)
			continue
		case backspace, '\b':
			keys = append(keys, core.KeyBackspace)
			continue
		}

		if b < 0x20 {
			continue
		}

		r, size := utf8.DecodeRune(buf[i:])
		if r == utf8.RuneError {
			continue
		}
		keys = append(keys, core.Key(string(unicode.ToLower(r))))
		i += size - 1
	}

	return keys
}

func arrow(code byte) (core.Key, bool) {
	switch code {
	case 'A':
		return core.KeyUp, true
	case 'B':
		return core.KeyDown, true
	case 'C':
		return core.KeyRight, true
	case 'D':
		return core.KeyLeft, true
	}
	return "", false
}

// skipCSI returns the index of the final byte of a CSI sequence whose
// parameters start at i.
func skipCSI(buf []byte, i int) int {
	for ; i < len(buf); i++ {
		if buf[i] >= 0x40 && buf[i] <= 0x7e {
			return i
		}
	}
	return len(buf) - 1
}
