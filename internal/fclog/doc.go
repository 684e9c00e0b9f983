// Package fclog provides fcrawl's verbose-aware logger, built on
// log/slog with a handler that sanitizes credential-bearing attribute
// values (URI userinfo, auth headers) before they reach the log sink.
//
// # Usage
//
//	logger := fclog.NewLogger(os.Stderr, verbose)
//	logger.Debug("discovered URI", "uri", uriStr, "line", line, "column", column)
package fclog
