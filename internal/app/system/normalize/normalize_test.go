package normalize_test

import (
	"testing"

	"github.com/pablutus/catequesis/internal/app/system/normalize"
)

func TestEmail(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Ana.Perez@Mail.COM", "ana.perez@mail.com"},
		{"  ana@mail.com  ", "ana@mail.com"},
		{"", ""},
	}
	for _, c := range cases {
		if got := normalize.Email(c.in); got != c.want {
			t.Errorf("Email(%q): got %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFullName(t *testing.T) {
	cases := []struct{ nombre, apellido, want string }{
		{"  Ana ", " Pérez", "Ana Pérez"},
		{"Ana", "", "Ana"},
		{"", "", ""},
	}
	for _, c := range cases {
		if got := normalize.FullName(c.nombre, c.apellido); got != c.want {
			t.Errorf("FullName(%q, %q): got %q, want %q", c.nombre, c.apellido, got, c.want)
		}
	}
}
