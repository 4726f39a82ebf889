package prompt

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func runSelect(t *testing.T, spec SelectSpec, k ...Key) (Result, string) {
	t.Helper()
	var out bytes.Buffer
	res, err := newTestEngine(keys(k...), &out).Select(context.Background(), spec)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	return res, out.String()
}

func TestSelectImmediateConfirmReturnsDefault(t *testing.T) {
	options := []string{"Go", "Rust", "Zig", "C"}
	for def := range options {
		res, _ := runSelect(t, SelectSpec{Header: "Language", Options: options, Default: def}, KeyEnter)
		if res.Status != StatusSelected {
			t.Fatalf("expected selected status, got %v", res.Status)
		}
		if res.Value != options[def] || res.Index != def {
			t.Fatalf("default %d: expected %q, got %q (index %d)", def, options[def], res.Value, res.Index)
		}
	}
}

func TestSelectDownWrapsBackToStart(t *testing.T) {
	for n := 1; n <= 5; n++ {
		options := make([]string, n)
		for i := range options {
			options[i] = strings.Repeat("o", i+1)
		}
		for def := 0; def < n; def++ {
			v := newSelectView(SelectSpec{Options: options, Default: def})
			for i := 0; i < n; i++ {
				v.apply(KeyDown)
			}
			if v.cursor != def {
				t.Fatalf("n=%d default=%d: expected cursor back at %d, got %d", n, def, def, v.cursor)
			}
		}
	}
}

func TestSelectNavigationWraps(t *testing.T) {
	options := []string{"A", "B", "C"}

	res, _ := runSelect(t, SelectSpec{Options: options}, KeyUp, KeyEnter)
	if res.Value != "C" {
		t.Fatalf("expected up from first to wrap to C, got %q", res.Value)
	}

	res, _ = runSelect(t, SelectSpec{Options: options, Default: 2}, KeyDown, KeyEnter)
	if res.Value != "A" {
		t.Fatalf("expected down from last to wrap to A, got %q", res.Value)
	}

	res, _ = runSelect(t, SelectSpec{Options: options}, KeyDown, KeyToggle, KeyUnknown, KeyDown, KeyEnter)
	if res.Value != "C" {
		t.Fatalf("expected ignored keys to leave navigation alone, got %q", res.Value)
	}
}

func TestSelectSingleOption(t *testing.T) {
	res, _ := runSelect(t, SelectSpec{Options: []string{"only"}}, KeyUp, KeyDown, KeyDown, KeyEnter)
	if res.Value != "only" || res.Index != 0 {
		t.Fatalf("expected only, got %q", res.Value)
	}
}

func TestSelectQuitIsCancelled(t *testing.T) {
	res, _ := runSelect(t, SelectSpec{Options: []string{"A", "B"}}, KeyDown, KeyQuit)
	if !res.Cancelled() {
		t.Fatalf("expected cancelled result, got %v", res)
	}
	if res.Value != "" || res.Index != -1 {
		t.Fatalf("expected empty cancelled result, got %+v", res)
	}
}

func TestSelectValidation(t *testing.T) {
	e := newTestEngine(keys(KeyEnter), &bytes.Buffer{})

	_, err := e.Select(context.Background(), SelectSpec{})
	if !errors.Is(err, ErrNoOptions) {
		t.Fatalf("expected ErrNoOptions, got %v", err)
	}

	for _, def := range []int{-1, 3} {
		_, err = e.Select(context.Background(), SelectSpec{Options: []string{"A", "B", "C"}, Default: def})
		var re *RangeError
		if !errors.As(err, &re) {
			t.Fatalf("default %d: expected *RangeError, got %v", def, err)
		}
		if re.Value != def || re.Hi != 2 {
			t.Fatalf("unexpected range error %+v", re)
		}
	}
}

func TestSelectRendersCursorAndTexts(t *testing.T) {
	_, out := runSelect(t, SelectSpec{Header: "Pick a stack", Sub: "Used for the new project", Options: []string{"Go", "Rust"}, Default: 1}, KeyEnter)
	for _, want := range []string{"Pick a stack", "Used for the new project", "  Go", cursorMark + "Rust", selectHelp} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in frame:\n%s", want, out)
		}
	}
	if strings.Contains(out, cursorMark+"Go") {
		t.Fatal("expected cursor only on the default option")
	}
}
