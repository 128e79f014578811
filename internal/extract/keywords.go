package extract

import "strings"

// KeywordCategory is the closed set of security keyword categories. The
// category set is fixed at design time; anything outside it maps to
// CategoryOther.
type KeywordCategory string

const (
	CategorySecurityType KeywordCategory = "security_type"
	CategoryEventType    KeywordCategory = "event_type"
	CategoryConstruction KeywordCategory = "construction"
	CategoryRequirements KeywordCategory = "requirements"
	CategoryOther        KeywordCategory = "other"
)

// ParseCategory maps a category name to its enum value, falling back to
// CategoryOther for unknown names.
func ParseCategory(s string) KeywordCategory {
	switch KeywordCategory(strings.ToLower(strings.TrimSpace(s))) {
	case CategorySecurityType:
		return CategorySecurityType
	case CategoryEventType:
		return CategoryEventType
	case CategoryConstruction:
		return CategoryConstruction
	case CategoryRequirements:
		return CategoryRequirements
	default:
		return CategoryOther
	}
}

// categoryOrder fixes the iteration order for keyword detection.
var categoryOrder = []KeywordCategory{
	CategorySecurityType,
	CategoryEventType,
	CategoryConstruction,
	CategoryRequirements,
}

// keywordTerms holds the literal lowercase phrases per category.
var keywordTerms = map[KeywordCategory][]string{
	CategorySecurityType: {
		"armed security", "unarmed security", "security guard", "security officer",
		"security personnel", "security staff", "security service",
	},
	CategoryEventType: {
		"event security", "concert security", "festival security", "conference security",
		"wedding security", "party security", "corporate event",
	},
	CategoryConstruction: {
		"construction site", "construction security", "site security",
		"building site", "construction project",
	},
	CategoryRequirements: {
		"license", "certification", "experience", "background check",
		"training", "armed", "unarmed", "uniform", "guard card",
	},
}

// DetectKeywords scans text for security-domain phrases. The result holds
// only non-empty categories; each category's matches keep the table's phrase
// order. Matching is case-insensitive substring containment.
func DetectKeywords(text string) map[KeywordCategory][]string {
	if text == "" {
		return map[KeywordCategory][]string{}
	}

	lower := strings.ToLower(text)
	results := make(map[KeywordCategory][]string)

	for _, category := range categoryOrder {
		var matches []string
		for _, term := range keywordTerms[category] {
			if strings.Contains(lower, term) {
				matches = append(matches, term)
			}
		}
		if len(matches) > 0 {
			results[category] = matches
		}
	}
	return results
}
