package goquery

import "regexp"

// Patterns shared by the extraction strategies. All are search patterns
// (first match anywhere in a string) except emailExactPattern, the anchored
// variant used to validate mailto targets.
var (
	emailPattern      = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	emailExactPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

	// phonePattern is deliberately permissive: optional country code,
	// optional parenthesized area code, 3-4/3-4 digit groups with an
	// optional 1-4 digit tail, separated by spaces, dots or hyphens.
	// Short false positives are accepted and carried through.
	phonePattern = regexp.MustCompile(`(?:\+?\d{1,3}[\s.-]?)?(?:\(?\d{2,4}\)?[\s.-]?)?\d{3,4}[\s.-]?\d{3,4}(?:[\s.-]?\d{1,4})?`)

	// nameLabelPattern matches "Name: John Doe" style labels. The label is
	// case-insensitive; the captured name must be two or more capitalized
	// words.
	nameLabelPattern = regexp.MustCompile(`(?i:name|contact|person)[\s:=-]+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)+)`)
)

// FindEmail returns the first email-shaped substring of s, or "".
func FindEmail(s string) string {
	return emailPattern.FindString(s)
}

// FindPhone returns the first phone-shaped substring of s, or "".
func FindPhone(s string) string {
	return phonePattern.FindString(s)
}

// FindLabeledName returns the capitalized words following a "name",
// "contact" or "person" label in s, or "".
func FindLabeledName(s string) string {
	m := nameLabelPattern.FindStringSubmatch(s)
	if m == nil {
		return ""
	}
	return m[1]
}

// ValidEmail reports whether s as a whole is an email address.
func ValidEmail(s string) bool {
	return emailExactPattern.MatchString(s)
}
