package hourfmt

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatHours formats a fractional hour count like "3h 30m" or "45m".
func FormatHours(hours float64) string {
	minutes := int64(math.Round(hours * 60))
	h := minutes / 60
	m := minutes % 60
	if h > 0 && m > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if h > 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dm", m)
}

// ParseHours parses an hour count given either as a decimal ("2.5") or as
// hours and minutes ("2h30m", "2h", "45m").
func ParseHours(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty hours value")
	}
	if !strings.ContainsAny(s, "hm") {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid hours %q: %w", s, err)
		}
		return v, nil
	}

	var h, m int64
	rest := s
	if i := strings.IndexByte(rest, 'h'); i >= 0 {
		v, err := strconv.ParseInt(strings.TrimSpace(rest[:i]), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid hours %q: %w", s, err)
		}
		h = v
		rest = rest[i+1:]
	}
	rest = strings.TrimSpace(rest)
	if rest != "" {
		if !strings.HasSuffix(rest, "m") {
			return 0, fmt.Errorf("invalid hours %q", s)
		}
		v, err := strconv.ParseInt(strings.TrimSpace(strings.TrimSuffix(rest, "m")), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid hours %q: %w", s, err)
		}
		m = v
	}
	return float64(h) + float64(m)/60, nil
}

// MonthOf returns the "YYYY-MM" prefix of a date string, or "" if the
// string is too short to carry one. Dates are free text at the storage
// layer, so this is a best-effort grouping key.
func MonthOf(date string) string {
	if len(date) < 7 {
		return ""
	}
	return date[:7]
}

// InMonth reports whether a date string falls in the given "YYYY-MM" month.
func InMonth(date, month string) bool {
	return month != "" && MonthOf(date) == month
}
