package extract

import (
	"sort"
	"strings"
)

// Emails returns all non-overlapping email matches in order of appearance.
// Duplicates are preserved; callers that want uniqueness de-duplicate.
func Emails(text string) []string {
	if text == "" {
		return nil
	}
	return emailPattern.FindAllString(text, -1)
}

// EmailQuality scores an address's value as a lead contact on [0, 1].
// Neutral base 0.5; generic shared-inbox prefixes score down, a
// firstname.lastname local part and a non-freemail domain score up.
func EmailQuality(email string) float64 {
	score := 0.5

	local, domain := splitEmail(email)
	if genericLocalParts[strings.ToLower(local)] {
		score -= 0.2
	}
	if firstLastLocalPattern.MatchString(local) {
		score += 0.3
	}
	if domain != "" && !freeMailDomains[domain] {
		score += 0.2
	}

	return clamp01(score)
}

// IsBusinessEmail reports whether the address's domain is not a consumer
// mail provider.
func IsBusinessEmail(email string) bool {
	_, domain := splitEmail(email)
	return domain != "" && !freeMailDomains[domain]
}

// ScoredEmail pairs an extracted address with its quality score.
type ScoredEmail struct {
	Email      string  `json:"email"`
	Score      float64 `json:"score"`
	IsBusiness bool    `json:"is_business"`
}

// RankEmails extracts and scores all addresses in text, highest score first.
// The sort is stable, so equally-scored addresses keep extraction order.
func RankEmails(text string) []ScoredEmail {
	emails := Emails(text)
	if len(emails) == 0 {
		return nil
	}

	out := make([]ScoredEmail, 0, len(emails))
	for _, e := range emails {
		out = append(out, ScoredEmail{
			Email:      e,
			Score:      EmailQuality(e),
			IsBusiness: IsBusinessEmail(e),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}

func splitEmail(email string) (local, domain string) {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email, ""
	}
	return email[:at], strings.ToLower(email[at+1:])
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
