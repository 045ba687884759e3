package services

import (
	"regexp"
	"strings"
)

// HandleSentinel is the canonical leading marker for employee handles.
// Stored handles always carry it; login input may omit it.
const HandleSentinel = "@"

// terminatedTag marks handles of employees let go by bulk tooling that
// renames instead of deleting. Tagged accounts can never log in.
const terminatedTag = "(terminated)"

var monthCodePattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// NormalizeHandle trims, lowercases and prefixes the sentinel when missing,
// so "Alice" and "@alice" address the same account.
func NormalizeHandle(raw string) string {
	handle := strings.ToLower(strings.TrimSpace(raw))
	if handle == "" {
		return ""
	}
	if !strings.HasPrefix(handle, HandleSentinel) {
		handle = HandleSentinel + handle
	}
	return handle
}

func IsTerminatedHandle(handle string) bool {
	return strings.Contains(strings.ToLower(handle), terminatedTag)
}

// ValidMonthCode reports whether the value is a YYYY-MM partition key.
func ValidMonthCode(month string) bool {
	return monthCodePattern.MatchString(strings.TrimSpace(month))
}
