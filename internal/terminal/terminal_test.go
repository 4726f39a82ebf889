package terminal

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"syscall"
	"testing"
	"time"

	"github.com/moasq/devinci/internal/prompt"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := out
	out = &buf
	t.Cleanup(func() { out = prev })
	return &buf
}

func TestKeyReaderDecodesPipedInput(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	if _, err := w.WriteString("j\x1b[Ak \rq"); err != nil {
		t.Fatal(err)
	}
	w.Close()

	kr := NewKeyReader(r)
	want := []prompt.Key{prompt.KeyDown, prompt.KeyUp, prompt.KeyUp, prompt.KeyToggle, prompt.KeyEnter, prompt.KeyQuit}
	for i, w := range want {
		got, err := kr.ReadKey(context.Background())
		if err != nil {
			t.Fatalf("key %d: %v", i, err)
		}
		if got != w {
			t.Fatalf("key %d: expected %s, got %s", i, w, got)
		}
	}
	if _, err := kr.ReadKey(context.Background()); !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF after input ends, got %v", err)
	}
}

func TestPollReadRetriesOnEAGAIN(t *testing.T) {
	calls := 0
	read := func(buf []byte) (int, error) {
		calls++
		if calls < 3 {
			return 0, syscall.EAGAIN
		}
		return copy(buf, "[A"), nil
	}

	buf := make([]byte, 8)
	n := pollRead(read, buf, time.Now().Add(time.Second))
	if string(buf[:n]) != "[A" {
		t.Fatalf("expected rest of escape sequence, got %q", buf[:n])
	}
	if calls != 3 {
		t.Fatalf("expected 3 reads, got %d", calls)
	}
}

func TestPollReadStopsAtDeadlineAndOnError(t *testing.T) {
	again := func([]byte) (int, error) { return 0, syscall.EAGAIN }
	start := time.Now()
	if n := pollRead(again, make([]byte, 4), start.Add(20*time.Millisecond)); n != 0 {
		t.Fatalf("expected 0 bytes after deadline, got %d", n)
	}
	if time.Since(start) < 20*time.Millisecond {
		t.Fatal("expected reads to continue until the deadline")
	}

	calls := 0
	broken := func([]byte) (int, error) { calls++; return 0, io.ErrClosedPipe }
	if n := pollRead(broken, make([]byte, 4), time.Now().Add(time.Second)); n != 0 || calls != 1 {
		t.Fatalf("expected a single failed read, got n=%d calls=%d", n, calls)
	}
}

func TestKeyReaderChecksContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewKeyReader(os.Stdin).ReadKey(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestStatusHelpersAlignLabels(t *testing.T) {
	buf := captureOutput(t)
	Info("one")
	Warning("two")
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", buf.String())
	}
	if strings.Index(lines[0], "●") != strings.Index(lines[1], "●") {
		t.Fatalf("expected aligned markers, got %q", lines)
	}
	if !strings.Contains(lines[0], "INFO") || !strings.HasSuffix(lines[0], "one") {
		t.Fatalf("unexpected info line %q", lines[0])
	}
}

func TestHeaderCentersUpperCaseTitle(t *testing.T) {
	buf := captureOutput(t)
	saved := White
	White = ""
	t.Cleanup(func() { White = saved })

	Header("new project")
	lines := strings.Split(buf.String(), "\n")
	if strings.TrimSpace(lines[1]) != "NEW PROJECT" {
		t.Fatalf("expected upper-case title, got %q", lines[1])
	}
	if !strings.HasPrefix(lines[1], strings.Repeat(" ", 34)+"NEW") {
		t.Fatalf("expected title centred in 80 columns, got %q", lines[1])
	}
	if strings.Count(lines[0], "=") != 80 {
		t.Fatalf("expected 80-column rule, got %q", lines[0])
	}
}

func TestErrorWritesToStderrWriter(t *testing.T) {
	stdout := captureOutput(t)
	var stderr bytes.Buffer
	prev := errOut
	errOut = &stderr
	t.Cleanup(func() { errOut = prev })

	Error("boom")
	if stdout.Len() != 0 {
		t.Fatalf("expected nothing on stdout, got %q", stdout.String())
	}
	if !strings.Contains(stderr.String(), "ERROR") || !strings.Contains(stderr.String(), "boom") {
		t.Fatalf("expected error line, got %q", stderr.String())
	}
}

func TestSpinnerRestartsAfterStop(t *testing.T) {
	buf := captureOutput(t)
	s := NewSpinner("first")
	s.Start()
	s.Stop()

	s.Update("second")
	s.Start()
	s.Stop()
	s.Start()
	s.Stop()

	if !strings.Contains(buf.String(), "second") {
		t.Fatalf("expected restarted spinner to draw, got %q", buf.String())
	}
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	captureOutput(t)
	s := NewSpinner("working")
	s.Start()
	s.Update("still working")
	s.Stop()
	s.Stop()
}
