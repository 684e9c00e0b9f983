// Command fcrawl downloads a seed HTML page, discovers the content
// references in its a/href, img/src, script/src, and iframe/src
// attributes as the page streams in, downloads each one concurrently,
// and reports every resource's storage name, size, and checksum.
package main

import (
	"fmt"
	"os"
)

func main() {
	os.Exit(run())
}

// run executes the root command and maps its outcome onto an exit
// code: 0 success, 1 an unexpected extra positional argument, 64 any
// other unhandled failure -- including an internal-invariant panic,
// recovered here so it still produces a clean exit rather than a raw
// stack trace.
func run() (exitCode int) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintln(os.Stderr, "fcrawl: fatal:", r)
			exitCode = 64
		}
	}()

	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		if err == errTooManyArgs {
			return 1
		}
		return 64
	}

	return 0
}
