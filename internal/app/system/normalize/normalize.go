// internal/app/system/normalize/normalize.go

// Package normalize holds small input-normalization helpers applied before
// documents are persisted, so lookups behave predictably regardless of how
// the caller typed a value.
package normalize

import "strings"

// Email lowercases and trims an email address. Empty input stays empty.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims surrounding whitespace but preserves case.
func Name(s string) string {
	return strings.TrimSpace(s)
}

// FullName joins nombre and apellido the way the stored
// nombre_completo field expects.
func FullName(nombre, apellido string) string {
	return strings.TrimSpace(Name(nombre) + " " + Name(apellido))
}
