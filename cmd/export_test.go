package cmd

import (
	"bytes"
	"os"
	"testing"

	"github.com/KostasZigo/gogitodb/internal/objects"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// createTestRootCmd creates fresh root command with the given subcommand.
// Flag values live in package variables, so they are reset to their defaults
// to keep one test's flags from leaking into the next.
func createTestRootCmd(cmd *cobra.Command) *cobra.Command {
	cmd.Flags().VisitAll(func(flag *pflag.Flag) {
		flag.Value.Set(flag.DefValue)
		flag.Changed = false
	})

	testRootCmd := &cobra.Command{Use: "gogit"}
	testRootCmd.AddCommand(cmd)
	return testRootCmd
}

// storeTestObjects writes objects into the repository at repoPath.
func storeTestObjects(t *testing.T, repoPath string, objs ...objects.Object) {
	t.Helper()

	store, err := objects.OpenObjectStore(repoPath)
	if err != nil {
		t.Fatalf("Failed to open object store: %v", err)
	}
	defer store.Close()

	for _, obj := range objs {
		if err := store.Store(obj); err != nil {
			t.Fatalf("Failed to store object %s: %v", obj.Hash(), err)
		}
	}
}

// captureStdout returns command stdout output as string.
func captureStdout(cmd *cobra.Command) *bytes.Buffer {
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	return &stdout
}

// captureStderr returns command stderr output as string.
func captureStderr(cmd *cobra.Command) *bytes.Buffer {
	var stderr bytes.Buffer
	cmd.SetErr(&stderr)
	return &stderr
}

// changeToRepoDir changes working directory to repo path and registers cleanup.
func changeToRepoDir(t *testing.T, repoPath string) {
	t.Helper()

	oldDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get current directory: %v", err)
	}

	if err := os.Chdir(repoPath); err != nil {
		t.Fatalf("Failed to change to directory %s: %v", repoPath, err)
	}

	t.Cleanup(func() {
		os.Chdir(oldDir)
	})
}
