// Package config provides the configuration structure for fcrawl: the
// seed URI, the verbose-logging flag, and the job pool's worker ceiling.
package config
