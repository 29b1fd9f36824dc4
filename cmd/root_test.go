package cmd

import (
	"bytes"
	"testing"

	"github.com/benboone2/Radia-AI-chat-UI/testutil"
)

func runCommand(t *testing.T, args ...string) error {
	t.Helper()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	return rootCmd.Execute()
}

func testDataArgs(t *testing.T) []string {
	t.Helper()
	return []string{"--data", testutil.TempDBPath(t)}
}

func TestRootCommand_Help(t *testing.T) {
	if err := runCommand(t, "--help"); err != nil {
		t.Errorf("Execute() with --help error = %v", err)
	}
}

func TestSessionCommands(t *testing.T) {
	data := testDataArgs(t)

	if err := runCommand(t, append(data, "new", "First", "topic")...); err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := runCommand(t, append(data, "list")...); err != nil {
		t.Fatalf("list: %v", err)
	}
	if err := runCommand(t, append(data, "show")...); err != nil {
		t.Fatalf("show: %v", err)
	}
}

func TestDeleteCommand_UnknownID(t *testing.T) {
	data := testDataArgs(t)

	if err := runCommand(t, append(data, "delete", "no-such-id")...); err == nil {
		t.Error("delete with unknown id should fail")
	}
}

func TestSwitchCommand_UnknownID(t *testing.T) {
	data := testDataArgs(t)

	if err := runCommand(t, append(data, "switch", "no-such-id")...); err == nil {
		t.Error("switch with unknown id should fail")
	}
}
