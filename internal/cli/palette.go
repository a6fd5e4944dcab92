package cli

import "github.com/cedzoi/cedzoi/internal/theme"

// palette maps the theme to ANSI styles.
type palette struct {
	okCode, badCode, dimCode, boldCode string
}

func paletteFor(p *theme.Preference) palette {
	if p.IsDark() {
		return palette{okCode: "\x1b[92m", badCode: "\x1b[91m", dimCode: "\x1b[37m", boldCode: "\x1b[1;97m"}
	}
	return palette{okCode: "\x1b[32m", badCode: "\x1b[31m", dimCode: "\x1b[90m", boldCode: "\x1b[1m"}
}

func wrap(code, s string) string {
	if code == "" {
		return s
	}
	return code + s + "\x1b[0m"
}

func (p palette) ok(s string) string   { return wrap(p.okCode, s) }
func (p palette) bad(s string) string  { return wrap(p.badCode, s) }
func (p palette) dim(s string) string  { return wrap(p.dimCode, s) }
func (p palette) bold(s string) string { return wrap(p.boldCode, s) }

// plain is used when output is not a terminal.
var plain = palette{}
