// Package crawler implements the streaming tag/attribute segmenter: a
// hand-rolled finite-state machine that parses HTML as it arrives, one
// byte at a time, across arbitrarily fragmented chunks, emitting
// URI-bearing attribute values as soon as they are recognized and
// spawning a sub-download job for each newly discovered one.
//
// The three states (document, tag, attribute) are represented as
// fields of one flat Crawler struct selected by a current-state enum,
// rather than as heap-allocated node objects holding a back-pointer to
// the crawler -- there is exactly one of each, and the state machine
// itself is flat.
package crawler
