package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func newStore(t *testing.T) *HistoryStore {
	t.Helper()
	return NewHistoryStore(filepath.Join(t.TempDir(), "state", "history.json"))
}

func TestHistoryAppendAndLast(t *testing.T) {
	s := newStore(t)

	a, err := s.Last("select", "Language")
	if err != nil || a != nil {
		t.Fatalf("expected no answer in empty store, got %+v, %v", a, err)
	}

	for _, v := range []string{"Go", "Rust"} {
		if err := s.Append(Answer{Kind: "select", Prompt: "Language", Values: []string{v}}); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}
	if err := s.Append(Answer{Kind: "checkbox", Prompt: "Language", Values: []string{"Zig"}}); err != nil {
		t.Fatal(err)
	}

	a, err = s.Last("select", "Language")
	if err != nil {
		t.Fatal(err)
	}
	if a == nil || a.Values[0] != "Rust" {
		t.Fatalf("expected latest select answer Rust, got %+v", a)
	}
	if a.CreatedAt.IsZero() {
		t.Fatal("expected CreatedAt to be stamped")
	}
}

func TestHistoryRecentAndClear(t *testing.T) {
	s := newStore(t)
	for i := 0; i < 5; i++ {
		if err := s.Append(Answer{Kind: "confirm", Prompt: "p", Values: []string{string(rune('a' + i))}}); err != nil {
			t.Fatal(err)
		}
	}
	recent, err := s.Recent(2)
	if err != nil {
		t.Fatal(err)
	}
	if len(recent) != 2 || recent[0].Values[0] != "d" || recent[1].Values[0] != "e" {
		t.Fatalf("unexpected recent answers %+v", recent)
	}

	if err := s.Clear(); err != nil {
		t.Fatal(err)
	}
	all, err := s.List()
	if err != nil || len(all) != 0 {
		t.Fatalf("expected empty history, got %+v, %v", all, err)
	}
}

func TestHistoryIsBounded(t *testing.T) {
	s := newStore(t)
	for i := 0; i < maxAnswers+5; i++ {
		if err := s.Append(Answer{Kind: "select", Prompt: "p"}); err != nil {
			t.Fatal(err)
		}
	}
	all, err := s.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != maxAnswers {
		t.Fatalf("expected %d answers, got %d", maxAnswers, len(all))
	}
}

func TestHistoryCorruptFile(t *testing.T) {
	s := newStore(t)
	if err := os.MkdirAll(filepath.Dir(s.Path()), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(s.Path(), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := s.List(); err == nil {
		t.Fatal("expected parse error for corrupt history")
	}
	if err := s.Append(Answer{Kind: "select", Prompt: "p", Values: []string{"x"}}); err != nil {
		t.Fatalf("expected append to start fresh, got %v", err)
	}
	all, err := s.List()
	if err != nil || len(all) != 1 {
		t.Fatalf("expected one answer after recovery, got %+v, %v", all, err)
	}
}

func TestIndexOf(t *testing.T) {
	if IndexOf([]string{"a", "b"}, "b") != 1 || IndexOf([]string{"a"}, "z") != -1 {
		t.Fatal("unexpected IndexOf result")
	}
}

func TestHistoryRecentNonPositive(t *testing.T) {
	s := newStore(t)
	if err := s.Append(Answer{Kind: "select", Prompt: "Language", Values: []string{"Go"}}); err != nil {
		t.Fatal(err)
	}

	for _, n := range []int{0, -1, -50} {
		got, err := s.Recent(n)
		if err != nil {
			t.Fatalf("Recent(%d): %v", n, err)
		}
		if len(got) != 0 {
			t.Fatalf("Recent(%d): expected no answers, got %d", n, len(got))
		}
	}
}
