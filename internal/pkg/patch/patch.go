package patch

import "strings"

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// TrimmedOrEmpty treats a nil or blank string pointer as "no value"
func TrimmedOrEmpty(ptr *string) string {
	return strings.TrimSpace(Coalesce(ptr, ""))
}
