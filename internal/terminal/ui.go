// Package terminal handles everything that touches the real terminal:
// colours, status lines, the spinner, raw key input and size queries.
package terminal

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// Colors for terminal output. They are cleared by DisableColor.
var (
	Reset   = "\033[0m"
	Bold    = "\033[1m"
	Dim     = "\033[2m"
	Red     = "\033[1;31m"
	Green   = "\033[1;32m"
	Yellow  = "\033[1;33m"
	Blue    = "\033[34m"
	Magenta = "\033[35m"
	Cyan    = "\033[1;36m"
	White   = "\033[1;97m"
)

// out is where status helpers write and errOut is where Error writes.
// Tests swap them for buffers.
var (
	out    io.Writer = os.Stdout
	errOut io.Writer = os.Stderr
)

// DisableColor turns every colour into the empty string.
func DisableColor() {
	Reset, Bold, Dim = "", "", ""
	Red, Green, Yellow, Blue, Magenta, Cyan, White = "", "", "", "", "", "", ""
}

// ColorEnabled reports whether colour output should be used: stdout must be
// a terminal and NO_COLOR must be unset.
func ColorEnabled() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return IsTerminal(os.Stdout)
}

// Spinner provides a terminal spinner for long-running operations.
type Spinner struct {
	mu      sync.Mutex
	message string
	running bool
	done    chan struct{}
	exited  chan struct{}
}

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// NewSpinner creates a new spinner. A stopped spinner may be started again.
func NewSpinner(message string) *Spinner {
	return &Spinner{message: message}
}

// Start begins the spinner animation.
func (s *Spinner) Start() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	done, exited := make(chan struct{}), make(chan struct{})
	s.done, s.exited = done, exited
	s.mu.Unlock()

	go func() {
		defer close(exited)
		i := 0
		ticker := time.NewTicker(80 * time.Millisecond)
		defer ticker.Stop()
		for {
			s.mu.Lock()
			msg := s.message
			s.mu.Unlock()
			fmt.Fprintf(out, "\r%s%s %s%s", Cyan, spinnerFrames[i%len(spinnerFrames)], msg, Reset)
			i++

			select {
			case <-done:
				return
			case <-ticker.C:
			}
		}
	}()
}

// Update changes the spinner message.
func (s *Spinner) Update(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.message = message
}

// Stop stops the spinner and clears the line.
func (s *Spinner) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	done, exited := s.done, s.exited
	s.mu.Unlock()

	close(done)
	<-exited
	fmt.Fprintf(out, "\r%s\r", strings.Repeat(" ", 80))
}

// Status lines. Labels are padded so messages line up in a column.

func status(color, label, msg string) {
	statusTo(out, color, label, msg)
}

func statusTo(w io.Writer, color, label, msg string) {
	fmt.Fprintf(w, "%s %-8s ●%s %s\n", color, label, Reset, msg)
}

// Success prints a green success message.
func Success(msg string) {
	status(Green, "SUCCESS", msg)
}

// Error prints a red error message to stderr.
func Error(msg string) {
	statusTo(errOut, Red, "ERROR", msg)
}

// Info prints a cyan info message.
func Info(msg string) {
	status(Cyan, "INFO", msg)
}

// Warning prints a yellow warning message.
func Warning(msg string) {
	status(Yellow, "WARNING", msg)
}

// Header prints an upper-case title centred between two 80-column rules.
func Header(title string) {
	const width = 80
	rule := strings.Repeat("=", width)
	pad := (width - len([]rune(title))) / 2
	if pad < 0 {
		pad = 0
	}
	fmt.Fprintf(out, "%s%s%s\n", White, rule, Reset)
	fmt.Fprintf(out, "%s%s%s%s\n", White, strings.Repeat(" ", pad), strings.ToUpper(title), Reset)
	fmt.Fprintf(out, "%s%s%s\n", White, rule, Reset)
}

// Detail prints an indented detail line.
func Detail(label, value string) {
	fmt.Fprintf(out, "  %s%s:%s %s\n", Dim, label, Reset, value)
}

// Divider prints a horizontal line.
func Divider() {
	fmt.Fprintf(out, "%s%s%s\n", Dim, strings.Repeat("─", 60), Reset)
}
