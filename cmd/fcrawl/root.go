package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"fcrawl/internal/config"
	"fcrawl/internal/crawler"
	"fcrawl/internal/download"
	"fcrawl/internal/fclog"
	"fcrawl/internal/uri"
)

// errTooManyArgs is returned by the root command's Args check when the
// user supplies more than one positional seed URI; main maps it onto
// exit code 1.
var errTooManyArgs = errors.New("fcrawl accepts at most one positional URI argument")

// NewRootCmd builds fcrawl's single root command. There are no
// subcommands: fcrawl does exactly one thing, crawl a seed page and
// report on what it found, so it exposes one command with flags
// rather than a command tree.
func NewRootCmd() *cobra.Command {
	cfg := config.NewConfig()

	cmd := &cobra.Command{
		Use:   "fcrawl [OPTIONS] [URI]",
		Short: "Crawl a seed page and download its referenced resources",
		Long: `fcrawl downloads a seed HTML page, extracts content references from
a/href, img/src, script/src, and iframe/src attributes as the page
streams in, and concurrently downloads each referenced resource while
computing a running checksum and byte count.`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 1 {
				return errTooManyArgs
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				cfg.SeedURI = args[0]
			}

			verbose, err := cmd.Flags().GetBool("verbose")
			if err != nil {
				return err
			}
			cfg.Verbose = verbose

			threadLimit, err := cmd.Flags().GetInt("thread-limit")
			if err != nil {
				return err
			}
			cfg.ThreadMax = threadLimit

			return runCrawl(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.Flags().BoolP("verbose", "v", false, "Enable verbose logging to stderr")
	cmd.Flags().IntP("thread-limit", "t", config.DefaultThreadMax,
		"Worker pool ceiling (0 means unlimited)")

	return cmd
}

// runCrawl wires the seed download to the crawler, drains the pool,
// and prints the report.
func runCrawl(cfg *config.Config, stdout, stderr io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := fclog.NewLogger(stderr, cfg.Verbose)

	seed := uri.Parse(cfg.SeedURI)
	c := crawler.New(seed.Host, cfg.ThreadMin, cfg.ThreadMax, logger)

	seedDownloader := download.New(seed, cfg.SeedFilename, logger)

	start := time.Now()
	ok := seedDownloader.RunWithObserver(c)
	seedElapsed := time.Since(start)

	if !ok {
		return fmt.Errorf("seed download of %q failed", cfg.SeedURI)
	}

	c.Pool().Shutdown()
	totalElapsed := time.Since(start)

	if err := c.Report(stdout); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	fmt.Fprintf(stdout, "Seed download took %s; total run took %s\n",
		seedElapsed.Round(time.Millisecond), totalElapsed.Round(time.Millisecond))

	return nil
}
