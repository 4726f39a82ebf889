package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/moasq/devinci/internal/prompt"
)

// escTimeout is how long to wait after a lone Esc for the rest of an
// escape sequence before treating it as the Esc key.
const escTimeout = 50 * time.Millisecond

// KeyReader reads one keypress at a time from a file, normally stdin.
// On a terminal each read switches to raw mode and restores the previous
// state before returning. Piped input is decoded byte by byte.
type KeyReader struct {
	in    *os.File
	piped *bufio.Reader
}

// NewKeyReader returns a reader over in.
func NewKeyReader(in *os.File) *KeyReader {
	return &KeyReader{in: in}
}

// ReadKey blocks until one key is available. The read itself cannot be
// interrupted; ctx is checked before blocking.
func (k *KeyReader) ReadKey(ctx context.Context) (prompt.Key, error) {
	if err := ctx.Err(); err != nil {
		return prompt.KeyUnknown, err
	}

	fd := int(k.in.Fd())
	if !term.IsTerminal(fd) {
		return k.readPiped()
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return prompt.KeyUnknown, fmt.Errorf("failed to enter raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	buf := make([]byte, 16)
	n, err := k.in.Read(buf)
	if err != nil {
		return prompt.KeyUnknown, err
	}
	if n == 1 && buf[0] == 0x1b {
		// Arrow keys usually arrive in one read, but a slow link can split them.
		n += readWithTimeout(k.in, buf[1:], escTimeout)
	}
	return prompt.ParseKey(buf[:n]), nil
}

func (k *KeyReader) readPiped() (prompt.Key, error) {
	if k.piped == nil {
		k.piped = bufio.NewReader(k.in)
	}
	b, err := k.piped.ReadByte()
	if err != nil {
		return prompt.KeyUnknown, err
	}
	seq := []byte{b}
	if b == 0x1b && k.piped.Buffered() >= 2 {
		rest, _ := k.piped.Peek(2)
		if rest[0] == '[' || rest[0] == 'O' {
			seq = append(seq, rest...)
			_, _ = k.piped.Discard(2)
		}
	}
	return prompt.ParseKey(seq), nil
}

// readWithTimeout tries to read from f within the given duration.
// Returns the number of bytes read, 0 if the timeout expires.
func readWithTimeout(f *os.File, buf []byte, timeout time.Duration) int {
	fd := int(f.Fd())
	if err := syscall.SetNonblock(fd, true); err != nil {
		return 0
	}
	defer syscall.SetNonblock(fd, false)

	return pollRead(f.Read, buf, time.Now().Add(timeout))
}

// pollRead calls read until it returns data, fails with something other
// than EAGAIN, or the deadline passes.
func pollRead(read func([]byte) (int, error), buf []byte, deadline time.Time) int {
	for {
		n, err := read(buf)
		if n > 0 {
			return n
		}
		if err != nil && !errors.Is(err, syscall.EAGAIN) && !errors.Is(err, syscall.EWOULDBLOCK) {
			return 0
		}
		if !time.Now().Before(deadline) {
			return 0
		}
		time.Sleep(5 * time.Millisecond)
	}
}

// SizeOf returns a function that queries the size of the terminal behind f
// each time it is called, falling back to 80x24.
func SizeOf(f *os.File) func() (int, int) {
	return func() (int, int) {
		w, h, err := term.GetSize(int(f.Fd()))
		if err != nil || w <= 0 {
			return 80, 24
		}
		return w, h
	}
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
