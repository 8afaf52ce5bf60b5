package commands_test

import (
	"strings"
	"testing"

	"tasksync/internal/commands"
)

func TestRegistryRejectsDuplicates(t *testing.T) {
	r := commands.NewRegistry()
	if err := r.Register(&commands.AddCmd{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := r.Register(&commands.AddCmd{})
	if err == nil || !strings.Contains(err.Error(), "add") {
		t.Errorf("expected duplicate name error, got %v", err)
	}
}

func TestRegistryFindsAliases(t *testing.T) {
	r := commands.NewRegistry()
	if err := r.Register(&commands.RmCmd{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cmd, ok := r.Find("delete")
	if !ok || cmd.Name() != "rm" {
		t.Errorf("expected alias to resolve to rm, got %v %v", cmd, ok)
	}
	if got := len(r.All()); got != 1 {
		t.Errorf("expected aliases not listed separately, got %d commands", got)
	}
}

func TestRegistryAllSorted(t *testing.T) {
	r := commands.NewRegistry()
	for _, c := range []commands.Command{&commands.VersionCmd{}, commands.NewDoneCmd(false), &commands.AddCmd{}} {
		if err := r.Register(c); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	var names []string
	for _, c := range r.All() {
		names = append(names, c.Name())
	}
	if strings.Join(names, ",") != "add,undone,version" {
		t.Errorf("expected sorted names, got %v", names)
	}
}
