package theme

import (
	"context"
	"strings"
)

type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// Preference is the display theme. It is independent of any study session.
type Preference struct {
	mode Mode
}

// Init picks the stored mode when it is valid, otherwise follows the system.
func Init(stored string, systemDark bool) *Preference {
	switch Mode(strings.ToLower(strings.TrimSpace(stored))) {
	case Light:
		return &Preference{mode: Light}
	case Dark:
		return &Preference{mode: Dark}
	}
	if systemDark {
		return &Preference{mode: Dark}
	}
	return &Preference{mode: Light}
}

func (p *Preference) Mode() Mode   { return p.mode }
func (p *Preference) IsDark() bool { return p.mode == Dark }

func (p *Preference) Toggle() Mode {
	if p.mode == Dark {
		p.mode = Light
	} else {
		p.mode = Dark
	}
	return p.mode
}

// ---- preference in context ----

type ctxKey struct{}

func WithPreference(ctx context.Context, p *Preference) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// FromContext returns the carried preference, or a light default.
func FromContext(ctx context.Context) *Preference {
	if p, ok := ctx.Value(ctxKey{}).(*Preference); ok && p != nil {
		return p
	}
	return &Preference{mode: Light}
}
