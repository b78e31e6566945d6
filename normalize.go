package rolodex

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// NormalizeName collapses whitespace runs to single spaces, trims, and
// title-cases every word: first letter uppercased, the rest lowercased.
// There are no locale or particle exceptions, so "McDonald" becomes
// "Mcdonald".
func NormalizeName(name string) string {
	words := strings.Fields(name)
	for i, w := range words {
		words[i] = titleWord(w)
	}
	return strings.Join(words, " ")
}

func titleWord(w string) string {
	r, size := utf8.DecodeRuneInString(w)
	if r == utf8.RuneError && size <= 1 {
		return w
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(w[size:])
}

// NormalizeEmail trims surrounding whitespace and lowercases.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// CanonicalPhone reduces a phone number to its digits in original order,
// keeping a single leading "+" when the trimmed input had one and at least
// one digit survives. Inputs with no digits canonicalize to "".
func CanonicalPhone(phone string) string {
	phone = strings.TrimSpace(phone)
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if digits == "" {
		return ""
	}
	if strings.HasPrefix(phone, "+") {
		return "+" + digits
	}
	return digits
}

// NormalizeContact returns a cleaned copy of the contact: name title-cased,
// email lowercased, phone canonicalized, source URL trimmed. Empty fields
// stay empty. The input is not modified.
func NormalizeContact(c *Contact) *Contact {
	return &Contact{
		Name:      NormalizeName(c.Name),
		Email:     NormalizeEmail(c.Email),
		Phone:     CanonicalPhone(c.Phone),
		SourceURL: strings.TrimSpace(c.SourceURL),
	}
}
