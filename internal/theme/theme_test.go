package theme

import (
	"errors"
	"testing"
)

func TestGetResolvesEveryRegisteredTheme(t *testing.T) {
	names := Names()
	if len(names) != 9 {
		t.Fatalf("expected 9 registered themes, got %d (%v)", len(names), names)
	}
	for _, name := range names {
		th, err := Get(name)
		if err != nil {
			t.Fatalf("Get(%q): %v", name, err)
		}
		if th.Name != name {
			t.Fatalf("expected theme name %q, got %q", name, th.Name)
		}
		for _, role := range Roles {
			s, err := th.Style(role)
			if err != nil {
				t.Fatalf("theme %q: %v", name, err)
			}
			if s == "" {
				t.Fatalf("theme %q: expected non-empty style for %q", name, role)
			}
		}
		if _, err := th.Palette(); err != nil {
			t.Fatalf("theme %q palette: %v", name, err)
		}
	}
}

func TestGetUnknownTheme(t *testing.T) {
	_, err := Get("not_a_theme")
	if err == nil {
		t.Fatal("expected error for unknown theme")
	}
	var ute *UnknownThemeError
	if !errors.As(err, &ute) {
		t.Fatalf("expected *UnknownThemeError, got %T", err)
	}
	if ute.Name != "not_a_theme" {
		t.Fatalf("expected name not_a_theme, got %q", ute.Name)
	}
	if !errors.Is(err, ErrUnknownTheme) {
		t.Fatal("expected errors.Is(err, ErrUnknownTheme)")
	}
}

func TestMissingRoleNamesThemeAndRole(t *testing.T) {
	th := Theme{Name: "partial", styles: map[Role]string{RoleReset: reset}}
	_, err := th.Palette()
	var mre *MissingRoleError
	if !errors.As(err, &mre) {
		t.Fatalf("expected *MissingRoleError, got %v", err)
	}
	if mre.Theme != "partial" || mre.Role != RoleHeader {
		t.Fatalf("expected partial/header, got %s/%s", mre.Theme, mre.Role)
	}
}

func TestGetReturnsCopy(t *testing.T) {
	th, err := Get(Default)
	if err != nil {
		t.Fatal(err)
	}
	th.styles[RoleHeader] = "mutated"

	again, _ := Get(Default)
	if s, _ := again.Style(RoleHeader); s == "mutated" {
		t.Fatal("expected registry to be unaffected by caller mutation")
	}
}

func TestPlainIsUnstyled(t *testing.T) {
	p, err := Plain().Palette()
	if err != nil {
		t.Fatal(err)
	}
	if p != (Palette{}) {
		t.Fatalf("expected empty palette, got %+v", p)
	}
}
