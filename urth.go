// Package urth extracts dictionary entries from semantically marked
// documents and hands them to glossary writers.
//
// This package contains domain types, interfaces and the extraction core
// following Ben Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., goquery/,
// sqlite/, etree/).
package urth
