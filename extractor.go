package rolodex

// ContactExtractor extracts contact records from an HTML document.
type ContactExtractor interface {
	// ExtractContacts parses the document, runs every extraction strategy,
	// removes intra-document duplicates, and stamps each surviving record
	// with sourceURL. Malformed HTML is tolerated; a document with no
	// recognizable contacts yields an empty slice, not an error.
	ExtractContacts(html, sourceURL string) ([]*Contact, error)
}
