package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunVersion(t *testing.T) {
	t.Parallel()

	deps, stdout, _ := testDeps()
	if err := run(context.Background(), []string{"version"}, deps); err != nil {
		t.Fatalf("run(version): %v", err)
	}
	if !strings.Contains(stdout.String(), "mdbundle ") {
		t.Errorf("version output = %q", stdout.String())
	}
}

func TestRunHelp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"bare help", []string{"help"}, "Usage: mdbundle <command>"},
		{"help assemble", []string{"help", "assemble"}, "Usage: mdbundle assemble"},
		{"help version", []string{"help", "version"}, "Usage: mdbundle version"},
		{"help help", []string{"help", "help"}, "Usage: mdbundle help"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			deps, stdout, _ := testDeps()
			if err := run(context.Background(), tt.args, deps); err != nil {
				t.Fatalf("run(%v): %v", tt.args, err)
			}
			if !strings.Contains(stdout.String(), tt.want) {
				t.Errorf("output = %q, want substring %q", stdout.String(), tt.want)
			}
		})
	}
}

func TestRunHelpUnknownCommand(t *testing.T) {
	t.Parallel()

	deps, _, stderr := testDeps()
	if err := run(context.Background(), []string{"help", "bogus"}, deps); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(stderr.String(), "Unknown command: bogus") {
		t.Errorf("stderr = %q", stderr.String())
	}
}

func TestRunDefaultsToAssemble(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	docs := filepath.Join(dir, "docs")
	if err := os.Mkdir(docs, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(docs, "01_a.md"), []byte("# A\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "GUIDE.md")
	cfgPath := writeTestConfig(t, dir, docs, out, []string{"01_a"})

	// No "assemble" keyword: bare args go straight to the assemble command.
	deps, _, _ := testDeps()
	if err := run(context.Background(), []string{docs, "-c", cfgPath, "-q"}, deps); err != nil {
		t.Fatalf("run without subcommand: %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("artifact not written: %v", err)
	}
}

func TestRunExplicitAssemble(t *testing.T) {
	t.Parallel()

	deps, _, _ := testDeps()
	err := run(context.Background(), []string{"assemble", filepath.Join(t.TempDir(), "nope")}, deps)
	if !errors.Is(err, ErrSourceDirMissing) {
		t.Errorf("error = %v, want ErrSourceDirMissing", err)
	}
}

func TestHasVerboseFlag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		args []string
		want bool
	}{
		{[]string{"docs", "-v"}, true},
		{[]string{"--verbose"}, true},
		{[]string{"docs", "-q"}, false},
		{nil, false},
	}

	for _, tt := range tests {
		if got := hasVerboseFlag(tt.args); got != tt.want {
			t.Errorf("hasVerboseFlag(%v) = %v, want %v", tt.args, got, tt.want)
		}
	}
}
