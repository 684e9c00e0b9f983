// Package uri parses, compares, and serializes the URI value object
// discovered in crawled HTML attribute values and passed on the command
// line as the seed page locator.
//
// Parsing uses a single regular expression with one capture group per
// field, mirroring the field-wise layout of RFC 3986 authority
// components without attempting full RFC conformance: an unparseable
// input yields an all-empty URI rather than an error.
package uri
