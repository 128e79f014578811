package extract

import "time"

// Dates extracts dates from text. Four literal shapes are scanned
// (M/D/Y, M-D-Y, M.D.Y, "Month D, Y") and each match is attempted against
// an ordered layout list; the first successful parse wins. Matches that fail
// every layout are silently dropped — this is a best-effort signal, never
// authoritative.
func Dates(text string) []time.Time {
	if text == "" {
		return nil
	}

	var out []time.Time
	for _, pattern := range datePatterns {
		for _, match := range pattern.FindAllString(text, -1) {
			if dt, ok := parseDate(match); ok {
				out = append(out, dt)
			}
		}
	}
	return out
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if dt, err := time.Parse(layout, s); err == nil {
			return dt, true
		}
	}
	return time.Time{}, false
}
