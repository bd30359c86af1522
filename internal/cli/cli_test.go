package cli_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/yaklabco/mdhtml/internal/cli"
)

func testInfo() cli.BuildInfo {
	return cli.BuildInfo{
		Version: "test",
		Commit:  "test",
		Date:    "test",
	}
}

func TestNewRootCommand(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())

	if cmd == nil {
		t.Fatal("NewRootCommand returned nil")
	}

	if cmd.Name() != "mdhtml" {
		t.Errorf("expected command name 'mdhtml', got %q", cmd.Name())
	}

	if cmd.Short == "" {
		t.Error("expected Short description to be set")
	}

	if cmd.Long == "" {
		t.Error("expected Long description to be set")
	}
}

func TestRootCommandHasSubcommands(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())

	for _, name := range []string{"tokens", "init", "version"} {
		subCmd, _, err := cmd.Find([]string{name})
		if err != nil {
			t.Errorf("expected subcommand %q to exist, got error: %v", name, err)
			continue
		}

		if subCmd.Name() != name {
			t.Errorf("expected subcommand name %q, got %q", name, subCmd.Name())
		}
	}
}

func TestRootCommandFlags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())

	for _, flagName := range []string{"indent", "final-newline", "stdout", "quiet"} {
		if cmd.Flags().Lookup(flagName) == nil {
			t.Errorf("expected flag %q to exist on root command", flagName)
		}
	}
}

func TestGlobalFlags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())

	for _, flagName := range []string{"debug", "config", "no-config", "color"} {
		if cmd.PersistentFlags().Lookup(flagName) == nil {
			t.Errorf("expected global flag %q to exist", flagName)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	info := cli.BuildInfo{
		Version: "1.2.3",
		Commit:  "abc123",
		Date:    "2024-01-01",
	}

	cmd := cli.NewRootCommand(info)
	cmd.SetArgs([]string{"version"})

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("version command failed: %v", err)
	}

	for _, want := range []string{"mdhtml", "version=1.2.3", "commit=abc123", "built=2024-01-01"} {
		if !bytes.Contains(out.Bytes(), []byte(want)) {
			t.Errorf("version output %q missing %q", out.String(), want)
		}
	}
}

func TestInputArgs(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())

	if err := cmd.Args(cmd, []string{"a.md"}); err != nil {
		t.Errorf("one argument should be accepted: %v", err)
	}
	if err := cmd.Args(cmd, []string{"a.md", "a.html"}); err != nil {
		t.Errorf("two arguments should be accepted: %v", err)
	}
	if err := cmd.Args(cmd, nil); !errors.Is(err, cli.ErrMissingInput) {
		t.Errorf("expected ErrMissingInput, got %v", err)
	}
	if err := cmd.Args(cmd, []string{"a", "b", "c"}); cli.ExitCodeFor(err) != cli.ExitInvalidUsage {
		t.Errorf("expected usage error for three arguments, got %v", err)
	}
}
