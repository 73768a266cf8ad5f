package domain

import (
	"fmt"
	"strings"
	"time"
)

const (
	// entryDateLayout is the presentation form dates arrive in; no zero
	// padding required.
	entryDateLayout = "1/2/2006"
	// canonicalDateLayout is the zero-padded, lexicographically sortable
	// form used for storage and ordering.
	canonicalDateLayout = "2006-01-02"
)

// CanonicalDate converts a raw date string into the canonical YYYY-MM-DD
// form. It accepts the M/D/YYYY presentation form and, for round-trips from
// stored entries, the canonical form itself.
func CanonicalDate(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty date")
	}
	if t, err := time.Parse(entryDateLayout, raw); err == nil {
		return t.Format(canonicalDateLayout), nil
	}
	if t, err := time.Parse(canonicalDateLayout, raw); err == nil {
		return t.Format(canonicalDateLayout), nil
	}
	return "", fmt.Errorf("unparseable date %q", raw)
}
