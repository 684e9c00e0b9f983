package main

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"fcrawl/internal/config"
)

// chdirTemp changes the working directory to dir for the duration of
// the test, restoring the previous directory on cleanup.
func chdirTemp(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}

func TestNewRootCmd_Defaults(t *testing.T) {
	t.Parallel()

	cmd := NewRootCmd()

	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil || verbose {
		t.Errorf("verbose default = %v, %v; want false, nil", verbose, err)
	}

	threadLimit, err := cmd.Flags().GetInt("thread-limit")
	if err != nil || threadLimit != config.DefaultThreadMax {
		t.Errorf("thread-limit default = %v, %v; want %d, nil", threadLimit, err, config.DefaultThreadMax)
	}
}

func TestNewRootCmd_TooManyArgs(t *testing.T) {
	t.Parallel()

	cmd := NewRootCmd()
	cmd.SetArgs([]string{"one", "two"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()
	if err != errTooManyArgs {
		t.Errorf("Execute() error = %v, want errTooManyArgs", err)
	}
}

func TestRunCrawl_EndToEnd(t *testing.T) {
	chdirTemp(t, t.TempDir())

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/":
			fmt.Fprint(w, `<html><a href="/page.html">link</a></html>`)
		case "/page.html":
			fmt.Fprint(w, "some page content")
		}
	}))
	defer srv.Close()

	cfg := config.NewConfig()
	cfg.SeedURI = srv.URL + "/"
	cfg.SeedFilename = "./index.html"

	var stdout, stderr bytes.Buffer
	if err := runCrawl(cfg, &stdout, &stderr); err != nil {
		t.Fatalf("runCrawl: %v", err)
	}

	out := stdout.String()
	if !strings.Contains(out, `URI "/page.html"`) {
		t.Errorf("report missing sub-resource entry:\n%s", out)
	}
	if !strings.Contains(out, "Seed download took") {
		t.Errorf("report missing elapsed-time line:\n%s", out)
	}

	if _, err := os.Stat("index.html"); err != nil {
		t.Errorf("seed file not written: %v", err)
	}
}

func TestRunCrawl_SeedFailureAborts(t *testing.T) {
	chdirTemp(t, t.TempDir())

	cfg := config.NewConfig()
	cfg.SeedURI = "http://127.0.0.1:0/unreachable"
	cfg.SeedFilename = "./index.html"

	var stdout, stderr bytes.Buffer
	if err := runCrawl(cfg, &stdout, &stderr); err == nil {
		t.Fatal("expected runCrawl to report an error for an unreachable seed")
	}
	if stdout.Len() != 0 {
		t.Errorf("expected no report output on seed failure, got:\n%s", stdout.String())
	}
}

func TestRun_ExitCodes(t *testing.T) {
	chdirTemp(t, t.TempDir())

	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<html></html>")
	}))
	defer srv.Close()

	os.Args = []string{"fcrawl", srv.URL}
	if code := run(); code != 0 {
		t.Errorf("run() = %d, want 0 for a successful crawl", code)
	}

	os.Args = []string{"fcrawl", "one", "two"}
	if code := run(); code != 1 {
		t.Errorf("run() = %d, want 1 for too many positional arguments", code)
	}
}
