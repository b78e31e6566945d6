package rolodex

import "strings"

// documentKey identifies a candidate within a single document.
type documentKey struct {
	name  string
	email string
	phone string
}

// DedupeDocument removes intra-document duplicates from the candidates
// emitted by the extraction strategies. The key is the lowercased, trimmed
// name and email plus the trimmed phone; candidates whose key is entirely
// empty carry no content and are discarded. The first occurrence wins and
// input order is otherwise preserved.
func DedupeDocument(contacts []*Contact) []*Contact {
	seen := make(map[documentKey]struct{}, len(contacts))
	out := make([]*Contact, 0, len(contacts))
	for _, c := range contacts {
		key := documentKey{
			name:  strings.ToLower(strings.TrimSpace(c.Name)),
			email: strings.ToLower(strings.TrimSpace(c.Email)),
			phone: strings.TrimSpace(c.Phone),
		}
		if key == (documentKey{}) {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, c)
	}
	return out
}

// runKey identifies a record across a whole run.
type runKey struct {
	email string
	phone string
}

// DedupeAcross removes cross-document duplicates from the concatenated,
// normalized per-document results. The key is the lowercased email and the
// canonical phone; the name is deliberately not part of the key, so when
// two sources disagree on the name for the same email/phone pair only the
// first-seen name survives. First occurrence wins; running DedupeAcross on
// its own output is a no-op.
func DedupeAcross(contacts []*Contact) []*Contact {
	seen := make(map[runKey]struct{}, len(contacts))
	out := make([]*Contact, 0, len(contacts))
	for _, c := range contacts {
		key := runKey{
			email: strings.ToLower(c.Email),
			phone: CanonicalPhone(c.Phone),
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, c)
	}
	return out
}
