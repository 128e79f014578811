package extract

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/guardline/leads-cli/internal/model"
)

// stateCodes fixes the canonical ordering of the 51 state/DC entries.
var stateCodes = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "FL", "GA",
	"HI", "ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME", "MD",
	"MA", "MI", "MN", "MS", "MO", "MT", "NE", "NV", "NH", "NJ",
	"NM", "NY", "NC", "ND", "OH", "OK", "OR", "PA", "RI", "SC",
	"SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI", "WY", "DC",
}

// stateNames maps state codes to full names. Loaded once; never mutated.
var stateNames = map[string]string{
	"AL": "Alabama", "AK": "Alaska", "AZ": "Arizona", "AR": "Arkansas",
	"CA": "California", "CO": "Colorado", "CT": "Connecticut", "DE": "Delaware",
	"FL": "Florida", "GA": "Georgia", "HI": "Hawaii", "ID": "Idaho",
	"IL": "Illinois", "IN": "Indiana", "IA": "Iowa", "KS": "Kansas",
	"KY": "Kentucky", "LA": "Louisiana", "ME": "Maine", "MD": "Maryland",
	"MA": "Massachusetts", "MI": "Michigan", "MN": "Minnesota", "MS": "Mississippi",
	"MO": "Missouri", "MT": "Montana", "NE": "Nebraska", "NV": "Nevada",
	"NH": "New Hampshire", "NJ": "New Jersey", "NM": "New Mexico", "NY": "New York",
	"NC": "North Carolina", "ND": "North Dakota", "OH": "Ohio", "OK": "Oklahoma",
	"OR": "Oregon", "PA": "Pennsylvania", "RI": "Rhode Island", "SC": "South Carolina",
	"SD": "South Dakota", "TN": "Tennessee", "TX": "Texas", "UT": "Utah",
	"VT": "Vermont", "VA": "Virginia", "WA": "Washington", "WV": "West Virginia",
	"WI": "Wisconsin", "WY": "Wyoming", "DC": "District of Columbia",
}

// stateCodesByName is the reverse mapping, keyed by title-cased full name.
var stateCodesByName = func() map[string]string {
	m := make(map[string]string, len(stateNames))
	for code, name := range stateNames {
		m[name] = code
	}
	return m
}()

var (
	stateCodeAlt = strings.Join(stateCodes, "|")
	stateNameAlt = func() string {
		names := make([]string, 0, len(stateCodes))
		for _, code := range stateCodes {
			names = append(names, stateNames[code])
		}
		return strings.Join(names, "|")
	}()

	cityStatePattern    = regexp.MustCompile(`\b([A-Z][a-z.\s]+),\s*(` + stateCodeAlt + `)\b`)
	cityStateZipPattern = regexp.MustCompile(`\b([A-Z][a-z.\s]+),\s*(` + stateCodeAlt + `)\s+\d{5}(-\d{4})?\b`)
	stateAbbrPattern    = regexp.MustCompile(`\b(` + stateCodeAlt + `)\b`)
	stateNamePattern    = regexp.MustCompile(`(?i)\b(` + stateNameAlt + `)\b`)
)

var titleCaser = cases.Title(language.AmericanEnglish)

// stateFields are the lead fields scanned for state tags, in order.
var stateFields = []string{
	"location", "address", "description", "title",
	"company_location", "job_location", "contact_address",
}

// ExtractState finds the single best state mention in text. Patterns are
// tried in strict priority order — "City, XX", "City, XX 12345", a bare
// 2-letter code as a standalone word, then a full state name — and the first
// match wins. Returns nil when no state is found.
//
// This deliberately differs from StatesFromFields, which is multi-valued:
// global callers want one state, per-lead tagging wants all distinct states.
func ExtractState(text string) *model.State {
	if text == "" {
		return nil
	}

	if m := cityStatePattern.FindStringSubmatch(text); m != nil {
		return stateFromCode(m[2])
	}
	if m := cityStateZipPattern.FindStringSubmatch(text); m != nil {
		return stateFromCode(m[2])
	}
	if m := stateAbbrPattern.FindStringSubmatch(text); m != nil {
		return stateFromCode(m[1])
	}
	if m := stateNamePattern.FindStringSubmatch(text); m != nil {
		return stateFromName(m[1])
	}
	return nil
}

// StatesFromFields scans each field independently and collects the first
// state found per field, de-duplicated by state code in field order. Field
// iteration order is location, address, description, title,
// company_location, job_location, contact_address.
func StatesFromFields(fields map[string]string) []model.State {
	var states []model.State
	seen := make(map[string]bool)

	for _, field := range stateFields {
		text := fields[field]
		if text == "" {
			continue
		}
		st := ExtractState(text)
		if st == nil || seen[st.Code] {
			continue
		}
		seen[st.Code] = true
		states = append(states, *st)
	}
	return states
}

// NormalizeState resolves a state code or full name to its canonical form.
// Falls back to ExtractState for free-text input. Returns nil when the input
// resolves to no known state.
func NormalizeState(input string) *model.State {
	if input == "" {
		return nil
	}

	trimmed := strings.TrimSpace(input)
	if name, ok := stateNames[strings.ToUpper(trimmed)]; ok {
		return &model.State{Code: strings.ToUpper(trimmed), Name: name}
	}
	if code, ok := stateCodesByName[recaseStateName(trimmed)]; ok {
		return &model.State{Code: code, Name: stateNames[code]}
	}
	return ExtractState(trimmed)
}

// AllStates returns the canonical states table in code order.
func AllStates() []model.State {
	out := make([]model.State, 0, len(stateCodes))
	for _, code := range stateCodes {
		out = append(out, model.State{Code: code, Name: stateNames[code]})
	}
	return out
}

func stateFromCode(code string) *model.State {
	name, ok := stateNames[code]
	if !ok {
		return nil
	}
	return &model.State{Code: code, Name: name}
}

func stateFromName(name string) *model.State {
	recased := recaseStateName(name)
	code, ok := stateCodesByName[recased]
	if !ok {
		return nil
	}
	return &model.State{Code: code, Name: recased}
}

// recaseStateName title-cases a matched state name, correcting the one
// entry the generic caser gets wrong.
func recaseStateName(name string) string {
	recased := titleCaser.String(strings.ToLower(strings.TrimSpace(name)))
	if recased == "District Of Columbia" {
		recased = "District of Columbia"
	}
	return recased
}
