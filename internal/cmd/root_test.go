package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	if cmd == nil {
		t.Fatal("Root command should not be nil")
	}

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--help"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("--help returned error: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "different") {
		t.Errorf("Help text should contain 'different', got: %s", output)
	}
	if !strings.Contains(output, "line by line") {
		t.Errorf("Help text should describe line comparison, got: %s", output)
	}
}

func TestRootCommandHasSubcommands(t *testing.T) {
	cmd := NewRootCommand()

	if cmd.Use != "different" {
		t.Errorf("Expected Use to be 'different', got '%s'", cmd.Use)
	}

	found := map[string]bool{}
	for _, sub := range cmd.Commands() {
		found[sub.Name()] = true
	}
	for _, name := range []string{"diff", "check"} {
		if !found[name] {
			t.Errorf("expected %q subcommand", name)
		}
	}
}

func TestRootCommandPersistentFlags(t *testing.T) {
	cmd := NewRootCommand()

	for _, name := range []string{"config", "log-level"} {
		if cmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("expected persistent flag --%s", name)
		}
	}
}

func TestRootCommandSilencesErrors(t *testing.T) {
	cmd := NewRootCommand()

	if !cmd.SilenceErrors {
		t.Error("root command should leave error printing to main")
	}
	if !cmd.SilenceUsage {
		t.Error("root command should not print usage on errors")
	}
}
