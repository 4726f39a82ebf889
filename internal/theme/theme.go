// Package theme holds the built-in colour presets used by the prompts.
// A theme maps each display role to an ANSI escape sequence.
package theme

import (
	"errors"
	"fmt"
	"sort"
)

// Role names one styled element of a prompt frame.
type Role string

const (
	RoleHeader         Role = "header"
	RoleSubheader      Role = "subheader"
	RoleOption         Role = "option"
	RoleSelectedOption Role = "selected_option"
	RoleBorder         Role = "border"
	RoleReset          Role = "reset"
)

// Roles lists every role the renderer draws with.
var Roles = []Role{RoleHeader, RoleSubheader, RoleOption, RoleSelectedOption, RoleBorder, RoleReset}

// Default is the theme used when none is configured.
const Default = "material_dark"

// ErrUnknownTheme is matched by errors.Is for any UnknownThemeError.
var ErrUnknownTheme = errors.New("unknown theme")

// UnknownThemeError is returned by Get for names outside the registry.
type UnknownThemeError struct {
	Name string
}

func (e *UnknownThemeError) Error() string {
	return fmt.Sprintf("unknown theme %q", e.Name)
}

func (e *UnknownThemeError) Is(target error) bool {
	return target == ErrUnknownTheme
}

// MissingRoleError is returned when a theme has no style for a role.
type MissingRoleError struct {
	Theme string
	Role  Role
}

func (e *MissingRoleError) Error() string {
	return fmt.Sprintf("theme %q has no style for role %q", e.Theme, e.Role)
}

// Theme is an immutable set of role styles.
type Theme struct {
	Name   string
	styles map[Role]string
}

// Style returns the escape sequence for role.
func (t Theme) Style(role Role) (string, error) {
	s, ok := t.styles[role]
	if !ok {
		return "", &MissingRoleError{Theme: t.Name, Role: role}
	}
	return s, nil
}

// Palette is a theme resolved into plain fields, ready for rendering.
type Palette struct {
	Header         string
	Subheader      string
	Option         string
	SelectedOption string
	Border         string
	Reset          string
}

// Palette resolves every role. It fails on the first missing role.
func (t Theme) Palette() (Palette, error) {
	var p Palette
	fields := map[Role]*string{
		RoleHeader:         &p.Header,
		RoleSubheader:      &p.Subheader,
		RoleOption:         &p.Option,
		RoleSelectedOption: &p.SelectedOption,
		RoleBorder:         &p.Border,
		RoleReset:          &p.Reset,
	}
	for _, role := range Roles {
		s, err := t.Style(role)
		if err != nil {
			return Palette{}, err
		}
		*fields[role] = s
	}
	return p, nil
}

// Get returns the registered theme called name.
func Get(name string) (Theme, error) {
	styles, ok := builtin[name]
	if !ok {
		return Theme{}, &UnknownThemeError{Name: name}
	}
	// Copy so callers can never reach the registry's map.
	cp := make(map[Role]string, len(styles))
	for r, s := range styles {
		cp[r] = s
	}
	return Theme{Name: name, styles: cp}, nil
}

// Names returns the registered theme names in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Plain returns a theme whose every role is unstyled.
// It is used when colour output is disabled.
func Plain() Theme {
	styles := make(map[Role]string, len(Roles))
	for _, r := range Roles {
		styles[r] = ""
	}
	return Theme{Name: "plain", styles: styles}
}

// Of returns the style for role, or "" for roles the palette does not carry.
func (p Palette) Of(role Role) string {
	switch role {
	case RoleHeader:
		return p.Header
	case RoleSubheader:
		return p.Subheader
	case RoleOption:
		return p.Option
	case RoleSelectedOption:
		return p.SelectedOption
	case RoleBorder:
		return p.Border
	case RoleReset:
		return p.Reset
	}
	return ""
}
