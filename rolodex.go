// Package rolodex turns web pages into clean contact lists. It fetches HTML
// from URLs or local files, extracts contact records (names, email addresses,
// phone numbers) using complementary DOM and text heuristics, normalizes the
// fields, deduplicates across documents, and writes the result as a report.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, excelize/).
package rolodex
