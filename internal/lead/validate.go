package lead

import (
	"strings"

	"github.com/guardline/leads-cli/internal/model"
)

// Validation rule messages. Every rule is evaluated — there is no
// short-circuit — so a lead can report multiple simultaneous problems.
const (
	IssueLowConfidence = "Confidence score below threshold"
	IssueNotSecurity   = "Not security guard related"
	IssueOrganization  = "Invalid organization data"
	IssueOpportunity   = "Invalid opportunity data"
	IssueNoContact     = "No valid contact information"
)

// MinConfidenceScore is the default confidence floor for a valid lead.
const MinConfidenceScore = 0.3

// securityKeywords indicate physical-security content.
var securityKeywords = []string{
	"security", "guard", "officer", "patrol", "surveillance",
	"protection", "monitor", "safety", "secure", "watch",
}

// blacklistTerms are phrases where "security" means something else entirely.
var blacklistTerms = []string{
	"cyber security", "information security", "network security",
	"security clearance", "food security", "financial security",
	"social security", "security deposit",
}

// Validator applies the business rules that accept or reject a lead.
// The zero value is not usable; construct with NewValidator.
type Validator struct {
	minConfidence  float64
	extraKeywords  []string
	extraBlacklist []string
}

// ValidatorOption customizes a Validator.
type ValidatorOption func(*Validator)

// WithMinConfidence overrides the confidence floor.
func WithMinConfidence(min float64) ValidatorOption {
	return func(v *Validator) { v.minConfidence = min }
}

// WithExtraKeywords appends terms to the security whitelist.
func WithExtraKeywords(terms []string) ValidatorOption {
	return func(v *Validator) { v.extraKeywords = terms }
}

// WithExtraBlacklist appends phrases to the blacklist.
func WithExtraBlacklist(terms []string) ValidatorOption {
	return func(v *Validator) { v.extraBlacklist = terms }
}

// NewValidator builds a Validator with the default rule tables.
func NewValidator(opts ...ValidatorOption) *Validator {
	v := &Validator{minConfidence: MinConfidenceScore}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate evaluates all business rules against a lead. It returns whether
// the lead is valid and the ordered list of rule violations; the lead is
// valid exactly when the list is empty.
func (v *Validator) Validate(l model.Lead) (bool, []string) {
	var issues []string

	if l.ConfidenceScore < v.minConfidence {
		issues = append(issues, IssueLowConfidence)
	}
	if !v.IsSecurityRelated(l.Opportunity.Title, l.Opportunity.Description) {
		issues = append(issues, IssueNotSecurity)
	}
	if len(l.Organization.Name) < 2 {
		issues = append(issues, IssueOrganization)
	}
	if len(l.Opportunity.Title) < 3 {
		issues = append(issues, IssueOpportunity)
	}
	if !l.HasContactInfo() {
		issues = append(issues, IssueNoContact)
	}

	return len(issues) == 0, issues
}

// IsSecurityRelated classifies title+description text. Blacklist phrases are
// removed before the keyword scan so that "social security" does not count as
// a "security" hit; a keyword surviving the removal makes the text
// security-related even when a blacklist phrase is also present, and with no
// surviving keyword the default is deny.
func (v *Validator) IsSecurityRelated(title, description string) bool {
	allText := strings.ToLower(title + " " + description)

	cleaned := stripPhrases(allText, blacklistTerms)
	cleaned = stripPhrases(cleaned, v.extraBlacklist)

	return containsAny(cleaned, securityKeywords) || containsAny(cleaned, v.extraKeywords)
}

func stripPhrases(text string, phrases []string) string {
	for _, phrase := range phrases {
		text = strings.ReplaceAll(text, phrase, " ")
	}
	return text
}

func containsAny(text string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}
