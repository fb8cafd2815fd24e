// Package cbr resolves the publisher, series and issue catalog of
// comicbookroundup.com and extracts per-issue review metadata.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, matchr/, resty/).
package cbr
