package lead

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/guardline/leads-cli/internal/extract"
	"github.com/guardline/leads-cli/internal/model"
)

// industryRule maps organization-name keywords to an industry label.
// Rules are evaluated in order; the first match wins.
type industryRule struct {
	terms    []string
	industry string
}

var industryRules = []industryRule{
	{[]string{"school", "university", "college", "academy"}, "Education"},
	{[]string{"hospital", "medical", "health", "clinic"}, "Healthcare"},
	{[]string{"government", "city of", "county", "state", "federal"}, "Government"},
	{[]string{"construction", "builder", "development"}, "Construction"},
	{[]string{"event", "entertainment", "production"}, "Entertainment"},
	{[]string{"retail", "store", "shop", "mall"}, "Retail"},
}

// defaultIndustry is assigned when no rule matches a named organization.
const defaultIndustry = "Security Services"

var guardCountPattern = regexp.MustCompile(`(\d+)\s+(?:guard|officer|security)`)

// Enrich backfills derived fields on a lead and returns a new record; the
// input is never mutated and no already-present value is overwritten.
// The returned lead's confidence score is recomputed, so enriching twice
// yields an identical result.
func Enrich(l model.Lead) model.Lead {
	out := l.Clone()

	enrichOrganization(&out.Organization)
	enrichOpportunity(&out.Opportunity)
	for i := range out.Contacts {
		enrichContact(&out.Contacts[i])
	}

	out.ConfidenceScore = ConfidenceScore(out)
	return out
}

func enrichOrganization(org *model.Organization) {
	if org.Industry != "" || org.Name == "" {
		return
	}

	nameLower := strings.ToLower(org.Name)
	for _, rule := range industryRules {
		for _, term := range rule.terms {
			if strings.Contains(nameLower, term) {
				org.Industry = rule.industry
				return
			}
		}
	}
	org.Industry = defaultIndustry
}

func enrichOpportunity(opp *model.Opportunity) {
	if opp.Description == "" {
		return
	}
	description := strings.ToLower(opp.Description)

	if opp.GuardCount == nil {
		if m := guardCountPattern.FindStringSubmatch(description); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil {
				opp.GuardCount = &n
			}
		}
	}

	if opp.IsArmed == nil {
		switch {
		case strings.Contains(description, "unarmed"):
			v := false
			opp.IsArmed = &v
		case strings.Contains(description, "armed"):
			v := true
			opp.IsArmed = &v
		}
	}
}

func enrichContact(c *model.Contact) {
	if c.Phone != "" {
		// Best effort: keep the raw string when it cannot be formatted.
		if formatted, err := extract.FormatPhone(c.Phone); err == nil {
			c.Phone = formatted
		}
	}

	if c.FirstName == "" && c.LastName == "" && c.Email != "" {
		local, _, _ := strings.Cut(c.Email, "@")
		parts := strings.Split(local, ".")
		if len(parts) == 2 && parts[0] != "" && parts[1] != "" {
			c.FirstName = capitalize(parts[0])
			c.LastName = capitalize(parts[1])
		}
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
