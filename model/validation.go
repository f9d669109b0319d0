package model

import (
	"fmt"
	"sort"
	"strings"
)

// FieldErrors carries per-field validation failures. Validation happens
// before any request leaves the client; a failing payload is never sent.
type FieldErrors map[string]string

func (f FieldErrors) Error() string {
	fields := make([]string, 0, len(f))

	for field := range f {
		fields = append(fields, field)
	}

	sort.Strings(fields)

	parts := make([]string, 0, len(fields))

	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, f[field]))
	}

	return strings.Join(parts, "; ")
}

func (f FieldErrors) OrNil() error {
	if len(f) == 0 {
		return nil
	}

	return f
}
